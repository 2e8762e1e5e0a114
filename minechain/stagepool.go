package minechain

import "sync"

// StagedBlock is an in-flight mined block awaiting quorum votes.
type StagedBlock struct {
	Block *Block
	Votes uint64
}

// StagePool holds every node's in-flight mined blocks. It has no garbage
// collection: blocks that never reach quorum stay here for the lifetime of
// the node. That is a documented gap, not a bug, so this type deliberately
// does not expose an eviction method.
type StagePool struct {
	mu      sync.Mutex
	staged  map[string]*StagedBlock
}

// NewStagePool returns an empty stage pool.
func NewStagePool() *StagePool {
	return &StagePool{staged: make(map[string]*StagedBlock)}
}

// Stage inserts b with an initial self-vote if not already present, and
// returns the resulting entry. Both the Miner (on self-mine) and the
// Verifier (on first sight of a peer's block) call this, each
// contributing their own self-vote upon first seeing the block.
func (sp *StagePool) Stage(b *Block) StagedBlock {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sb, exists := sp.staged[b.Hash]; exists {
		return *sb
	}
	sb := &StagedBlock{Block: b, Votes: 1}
	sp.staged[b.Hash] = sb
	return *sb
}

// Peek returns the current entry for hash without modifying its vote
// count.
func (sp *StagePool) Peek(hash string) (StagedBlock, bool) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sb, ok := sp.staged[hash]
	if !ok {
		return StagedBlock{}, false
	}
	return *sb, true
}

// RegisterVote increments the vote counter for hash if staged, returning
// the updated entry and whether it was found. ChainManager increments
// unconditionally regardless of the vote's verified flag.
func (sp *StagePool) RegisterVote(hash string) (StagedBlock, bool) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sb, ok := sp.staged[hash]
	if !ok {
		return StagedBlock{}, false
	}
	sb.Votes++
	return *sb, true
}

// Remove deletes hash from the pool, called once a block commits.
func (sp *StagePool) Remove(hash string) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	delete(sp.staged, hash)
}

// Len returns the number of staged (including never-to-commit) blocks.
func (sp *StagePool) Len() int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return len(sp.staged)
}
