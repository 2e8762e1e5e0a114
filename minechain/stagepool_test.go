package minechain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStageSelfVotesOnce(t *testing.T) {
	sp := NewStagePool()
	b := sealedBlock(t, "builder", 0, "")

	sp.Stage(b)
	sp.Stage(b) // a second stage of the same hash must not reset votes

	sb, ok := sp.RegisterVote(b.Hash)
	require.True(t, ok)
	require.EqualValues(t, 2, sb.Votes, "votes >= 1 on insert (self-vote), then +1 from RegisterVote")
}

func TestRegisterVoteUnknownHash(t *testing.T) {
	sp := NewStagePool()
	_, ok := sp.RegisterVote("does-not-exist")
	require.False(t, ok)
}

func TestRemoveDropsStagedBlock(t *testing.T) {
	sp := NewStagePool()
	b := sealedBlock(t, "builder", 0, "")
	sp.Stage(b)
	require.Equal(t, 1, sp.Len())

	sp.Remove(b.Hash)
	require.Equal(t, 0, sp.Len())
}
