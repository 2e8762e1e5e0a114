package work

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abharun/mini-chain/config"
	"github.com/abharun/mini-chain/minechain"
	"github.com/abharun/mini-chain/network"
)

func stagedTestBlock(prevHash string, sequence uint64) *minechain.Block {
	b := minechain.NewBlock("builder", sequence, prevHash)
	b.Hash = minechain.RecomputeHash(b, 0)
	return b
}

// TestQuorumThresholdUsesChainSequence checks that the quorum formula
// floor(2*n/3) takes n from the chain sequence, not the node count.
func TestQuorumThresholdUsesChainSequence(t *testing.T) {
	cfg := config.Defaults()
	net := network.New()
	net.SetPipeline(nil)
	n := NewNode(cfg, net)

	// Seed the chain to sequence=3 so threshold = floor(2*3/3) = 2.
	b0 := stagedTestBlock("", 0)
	require.True(t, n.Chain.Add(b0))
	b1 := stagedTestBlock(b0.Hash, 1)
	require.True(t, n.Chain.Add(b1))
	b2 := stagedTestBlock(b1.Hash, 2)
	require.True(t, n.Chain.Add(b2))
	require.EqualValues(t, 3, n.Chain.Peek().Sequence)

	candidate := stagedTestBlock(b2.Hash, 3)
	n.StagePool.Stage(candidate) // self-vote: votes = 1

	// One supporting vote brings it to 2, still not > threshold(2).
	n.tally(network.VoteTx{BlockHash: candidate.Hash, Verified: true})
	require.Equal(t, 3, n.Chain.Len(), "two votes must not clear a threshold of 2")

	// A second supporting vote brings it to 3, which clears threshold(2).
	n.tally(network.VoteTx{BlockHash: candidate.Hash, Verified: true})
	require.Equal(t, 4, n.Chain.Len(), "three votes must clear a threshold of 2")
}

// TestVoteCountsRegardlessOfVerifiedFlag checks that ChainManager
// increments the vote tally on every vote, verified or not.
func TestVoteCountsRegardlessOfVerifiedFlag(t *testing.T) {
	cfg := config.Defaults()
	net := network.New()
	net.SetPipeline(nil)
	n := NewNode(cfg, net)

	// Seed the chain to sequence=2 so threshold = floor(2*2/3) = 1: the
	// self-vote alone does not clear it.
	b0 := stagedTestBlock("", 0)
	require.True(t, n.Chain.Add(b0))
	b1 := stagedTestBlock(b0.Hash, 1)
	require.True(t, n.Chain.Add(b1))

	candidate := stagedTestBlock(b1.Hash, 2)
	n.StagePool.Stage(candidate) // self-vote: votes = 1

	n.tally(network.VoteTx{BlockHash: candidate.Hash, Verified: false})
	require.Equal(t, 3, n.Chain.Len(), "the unverified vote brings votes to 2, which clears a threshold of 1")
}

func TestVoteForUnknownBlockIsIgnored(t *testing.T) {
	cfg := config.Defaults()
	net := network.New()
	net.SetPipeline(nil)
	n := NewNode(cfg, net)

	n.tally(network.VoteTx{BlockHash: "unknown", Verified: true})
	require.Equal(t, 0, n.Chain.Len())
}
