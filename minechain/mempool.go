package minechain

import (
	"sync"
	"time"
)

// TxStatus tracks a mempool entry's position in the pipeline.
type TxStatus int

const (
	StatusReceived TxStatus = iota
	StatusPicked
	StatusCommitted
)

// MemPoolEntry pairs a transaction with its pipeline status.
type MemPoolEntry struct {
	Status      TxStatus
	Transaction Transaction
}

// MemPool is a node's pending-transaction store, keyed by transaction
// hash (unique by construction — duplicate hashes overwrite, making
// re-insertion idempotent).
type MemPool struct {
	mu   sync.RWMutex
	pool map[string]MemPoolEntry
}

// NewMemPool returns an empty mempool.
func NewMemPool() *MemPool {
	return &MemPool{pool: make(map[string]MemPoolEntry)}
}

// Insert adds or overwrites tx as RECEIVED.
func (m *MemPool) Insert(tx Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pool[tx.Hash] = MemPoolEntry{Status: StatusReceived, Transaction: tx}
}

// Contains reports whether hash is present regardless of status, used by
// the Verifier's "every tx exists in this node's mempool" check.
func (m *MemPool) Contains(hash string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.pool[hash]
	return ok
}

// PickUpTo marks up to n RECEIVED entries as PICKED and returns them in
// map iteration order (selection order is otherwise unspecified),
// aborting early once deadline passes. A partial result on timeout is
// valid and expected.
func (m *MemPool) PickUpTo(n int, deadline time.Time) []Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	picked := make([]Transaction, 0, n)
	checkEvery := 64
	i := 0
	for hash, entry := range m.pool {
		if len(picked) >= n {
			break
		}
		i++
		if i%checkEvery == 0 && time.Now().After(deadline) {
			break
		}
		if entry.Status != StatusReceived {
			continue
		}
		entry.Status = StatusPicked
		m.pool[hash] = entry
		picked = append(picked, entry.Transaction)
	}
	return picked
}

// Drop removes every hash in hashes, called on block commit to purge
// included transactions.
func (m *MemPool) Drop(hashes []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range hashes {
		delete(m.pool, h)
	}
}

// Len returns the current entry count.
func (m *MemPool) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pool)
}
