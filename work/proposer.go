package work

import (
	"time"

	"github.com/abharun/mini-chain/metrics"
	"github.com/abharun/mini-chain/minechain"
)

// runProposer builds one candidate block every BlockGenSlot, within a
// BlockGenPeriod wall-clock budget; on timeout the candidate is dropped.
// The Proposer never computes Block.Hash — that is the Miner's job.
func (n *Node) runProposer() {
	ticker := time.NewTicker(n.cfg.BlockGenSlot)
	defer ticker.Stop()
	for range ticker.C {
		n.proposeOne()
	}
}

func (n *Node) proposeOne() {
	buildDeadline := time.Now().Add(n.cfg.BlockGenPeriod)
	done := make(chan *minechain.Block, 1)

	go func() {
		done <- n.buildCandidate()
	}()

	select {
	case b := <-done:
		if b == nil {
			return
		}
		select {
		case n.proposed <- b:
		case <-time.After(time.Until(buildDeadline)):
			n.logger.Warn("proposer: could not hand off candidate before deadline, dropping", "sequence", b.Sequence)
			metrics.ProposerTimeouts.Inc()
		}
	case <-time.After(time.Until(buildDeadline)):
		n.logger.Warn("proposer: build budget exceeded, candidate dropped")
		metrics.ProposerTimeouts.Inc()
	}
}

// buildCandidate snapshots Sequence and PrevHash from the chain, then
// fills the block from the mempool up to BlockSize transactions. If the
// chain advances before this block is verified elsewhere, verification
// will later reject it on the stale PrevHash/Sequence.
func (n *Node) buildCandidate() *minechain.Block {
	snap := n.Chain.Peek()
	b := minechain.NewBlock(n.Address.Public, snap.Sequence, snap.Leaf)

	pickupDeadline := time.Now().Add(n.cfg.BlockTxPickupPeriod)
	picked := n.Mempool.PickUpTo(n.cfg.BlockSize, pickupDeadline)
	for _, tx := range picked {
		b.AddTransaction(tx)
	}
	n.logger.Debug("proposer: candidate built", "sequence", b.Sequence, "txs", b.TxCount)
	return b
}
