package minechain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sealedBlock(t *testing.T, builder string, sequence uint64, prevHash string) *Block {
	t.Helper()
	b := NewBlock(builder, sequence, prevHash)
	b.Hash = RecomputeHash(b, 0)
	return b
}

func TestChainAddsEmptyChainUnconditionally(t *testing.T) {
	c := NewChain()
	b := sealedBlock(t, "builder", 0, "anything")
	require.True(t, c.Add(b), "an empty chain admits any first block")
	require.Equal(t, b.Hash, c.Peek().Leaf, "after admission, chain.leaf == block.hash")
	require.EqualValues(t, 1, c.Peek().Sequence)
}

func TestChainRejectsWrongPrevHash(t *testing.T) {
	c := NewChain()
	first := sealedBlock(t, "builder", 0, "")
	require.True(t, c.Add(first))

	bad := sealedBlock(t, "builder", 1, "not-the-leaf")
	require.False(t, c.Add(bad), "a block is admitted only if prev_hash == chain.leaf")
	require.Equal(t, first.Hash, c.Peek().Leaf, "leaf must not change on a rejected admission")
}

func TestChainAcceptsCorrectPrevHash(t *testing.T) {
	c := NewChain()
	first := sealedBlock(t, "builder", 0, "")
	require.True(t, c.Add(first))

	second := sealedBlock(t, "builder", 1, first.Hash)
	require.True(t, c.Add(second))
	require.Equal(t, second.Hash, c.Peek().Leaf)
	require.EqualValues(t, 2, c.Peek().Sequence)
}
