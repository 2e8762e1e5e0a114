package work

import (
	"github.com/abharun/mini-chain/common"
	"github.com/abharun/mini-chain/metrics"
	"github.com/abharun/mini-chain/minechain"
)

// runMiner loops on the proposer's internal handoff channel. For each
// candidate it searches for a nonce whose RecomputeHash meets the
// configured difficulty, self-stages the sealed block, and broadcasts it.
// The search is CPU-bound and unbounded: it yields only when it next
// sends, never on a timeout.
func (n *Node) runMiner() {
	for candidate := range n.proposed {
		sealed := n.mine(candidate)
		staged := n.StagePool.Stage(sealed)
		metrics.BlocksMined.Inc()
		n.logger.Info("miner: sealed block", "sequence", sealed.Sequence, "hash", sealed.Hash, "nonce", sealed.Nonce)
		n.commitIfQuorum(sealed.Hash, staged)
		n.net.BlockSender() <- sealed
	}
}

func (n *Node) mine(b *minechain.Block) *minechain.Block {
	var nonce uint64
	for {
		h := minechain.RecomputeHash(b, nonce)
		if common.SatisfiesDifficulty(h, n.cfg.BlockDifficulty) {
			b.Nonce = nonce
			b.Hash = h
			return b
		}
		nonce++
	}
}
