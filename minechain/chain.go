package minechain

import (
	"sync"

	"github.com/abharun/mini-chain/log"
)

var chainLogger = log.NewModuleLogger(log.Chain)

// Chain is a node's append-only collection of committed blocks with a
// designated leaf. It is guarded by its own RWMutex; callers take the lock
// via Chain's exported methods rather than reaching into its fields, so
// lock-ordering discipline is enforced by the API surface.
type Chain struct {
	mu       sync.RWMutex
	blocks   map[string]*Block
	leaf     string
	sequence uint64
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{blocks: make(map[string]*Block)}
}

// Snapshot is a point-in-time read of the fields the Proposer and Verifier
// need without holding the chain lock across their own work.
type Snapshot struct {
	Leaf     string
	Sequence uint64
}

// Peek returns the current leaf/sequence under a read lock.
func (c *Chain) Peek() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{Leaf: c.leaf, Sequence: c.sequence}
}

// Add admits a block if the chain is empty or block.PrevHash matches the
// current leaf. Returns false if rejected.
func (c *Chain) Add(b *Block) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.blocks) != 0 && b.PrevHash != c.leaf {
		chainLogger.Warn("block rejected: prev_hash does not match leaf", "hash", b.Hash, "prev_hash", b.PrevHash, "leaf", c.leaf)
		return false
	}
	c.blocks[b.Hash] = b
	c.leaf = b.Hash
	c.sequence++
	chainLogger.Info("block committed", "hash", b.Hash, "sequence", c.sequence)
	return true
}

// Get returns the block for hash, if known.
func (c *Chain) Get(hash string) (*Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.blocks[hash]
	return b, ok
}

// Len returns the number of committed blocks.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}
