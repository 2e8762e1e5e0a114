package work

import (
	"github.com/abharun/mini-chain/metrics"
	"github.com/abharun/mini-chain/minechain"
	"github.com/abharun/mini-chain/network"
)

// runChainManager loops on the node's inbound vote channel, tallying votes
// against the stagepool and committing once quorum is reached. A vote for
// a hash this node never staged is logged and dropped — a full
// implementation would request the block from a peer; here that is a
// documented gap.
func (n *Node) runChainManager() {
	for v := range n.voteIn {
		n.tally(v)
	}
}

func (n *Node) tally(v network.VoteTx) {
	staged, ok := n.StagePool.RegisterVote(v.BlockHash)
	if !ok {
		n.logger.Debug("chainmanager: vote for unknown block, ignoring", "hash", v.BlockHash)
		return
	}
	n.commitIfQuorum(v.BlockHash, staged)
}

// commitIfQuorum admits staged's block to the chain once its vote count
// exceeds floor(2*chain.sequence/3), purging committed transactions from
// the mempool. Quorum uses the chain's current height as a stand-in for
// fleet size (a known quirk of this formula, reproduced as-is rather than
// redesigned — see DESIGN.md). Called both from the vote-tally path above
// and directly by the Miner right after self-staging, since a lone
// self-vote can already clear quorum at low chain heights (threshold=0 at
// sequence=0) without any externally observed vote ever arriving.
func (n *Node) commitIfQuorum(hash string, staged minechain.StagedBlock) {
	threshold := uint64(2*n.Chain.Peek().Sequence) / 3
	if staged.Votes <= threshold {
		return
	}

	n.StagePool.Remove(hash)
	if !n.Chain.Add(staged.Block) {
		n.logger.Warn("chainmanager: quorum reached but chain rejected admission", "hash", hash)
		return
	}

	metrics.BlocksCommitted.Inc()
	hashes := make([]string, 0, len(staged.Block.Transactions))
	for _, tx := range staged.Block.Transactions {
		hashes = append(hashes, tx.Hash)
	}
	n.Mempool.Drop(hashes)
	n.logger.Info("chainmanager: block committed, mempool purged", "hash", hash, "txs", len(hashes))
}
