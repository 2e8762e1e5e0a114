package work

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/abharun/mini-chain/metrics"
	"github.com/abharun/mini-chain/minechain"
	"github.com/abharun/mini-chain/network"
)

// seenBlocksCapacity bounds the Verifier's duplicate-log suppression
// cache. It has no bearing on StagePool admission, which stays unbounded.
const seenBlocksCapacity = 1024

// runVerifier loops on the node's inbound mined-block channel, verifying
// every block that isn't its own and emitting a vote.
func (n *Node) runVerifier() {
	seen, err := lru.New(seenBlocksCapacity)
	if err != nil {
		// A fixed, positive capacity cannot fail to construct.
		panic(err)
	}
	for b := range n.blockIn {
		if b.Builder == n.Address.Public {
			continue // never re-verify a block we built ourselves
		}
		if !seen.Contains(b.Hash) {
			seen.Add(b.Hash, struct{}{})
			n.logger.Debug("verifier: observed new block", "hash", b.Hash, "builder", b.Builder)
		}

		n.StagePool.Stage(b)

		verified := n.verify(b)
		if !verified {
			metrics.VotesRejected.Inc()
		}
		n.net.VoteSender() <- network.VoteTx{BlockHash: b.Hash, Verified: verified}
	}
}

// verify checks a candidate block against the chain tip, the mempool, and
// the configured difficulty before a vote is cast.
func (n *Node) verify(b *minechain.Block) bool {
	snap := n.Chain.Peek()

	if b.PrevHash != snap.Leaf {
		n.logger.Warn("verifier: prev_hash mismatch", "hash", b.Hash, "expected_leaf", snap.Leaf)
		return false
	}
	if b.Sequence != snap.Sequence {
		n.logger.Warn("verifier: sequence mismatch", "hash", b.Hash, "expected", snap.Sequence, "got", b.Sequence)
		return false
	}
	if minechain.RecomputeHash(b, b.Nonce) != b.Hash {
		n.logger.Warn("verifier: hash mismatch", "hash", b.Hash)
		return false
	}
	for _, tx := range b.Transactions {
		if !n.Mempool.Contains(tx.Hash) {
			n.logger.Warn("verifier: unknown transaction", "hash", b.Hash, "tx", tx.Hash)
			return false
		}
	}
	if !b.SatisfiesDifficulty(n.cfg.BlockDifficulty) {
		n.logger.Warn("verifier: difficulty not met", "hash", b.Hash)
		return false
	}
	return true
}
