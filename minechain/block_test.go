package minechain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abharun/mini-chain/common"
)

func TestRecomputeHashDeterministic(t *testing.T) {
	b := NewBlock("builder-pub", 0, "")
	b.AddTransaction(NewTransaction("addr-a", 20, "", ""))
	b.AddTransaction(NewTransaction("addr-b", 20, "", ""))

	h1 := RecomputeHash(b, 7)
	h2 := RecomputeHash(b, 7)
	require.Equal(t, h1, h2, "recompute_hash must be byte-identical for identical inputs")

	h3 := RecomputeHash(b, 8)
	require.NotEqual(t, h1, h3, "changing the nonce must change the hash")
}

func TestAddTransactionPrepends(t *testing.T) {
	b := NewBlock("builder-pub", 0, "")
	first := NewTransaction("addr-a", 20, "", "")
	second := NewTransaction("addr-b", 20, "", "")

	b.AddTransaction(first)
	b.AddTransaction(second)

	require.Equal(t, 2, b.TxCount)
	require.Equal(t, second.Hash, b.Transactions[0].Hash, "transactions are inserted at the front in pickup order")
	require.Equal(t, first.Hash, b.Transactions[1].Hash)
}

func TestSatisfiesDifficulty(t *testing.T) {
	b := NewBlock("builder-pub", 0, "")
	var nonce uint64
	for {
		h := RecomputeHash(b, nonce)
		if common.SatisfiesDifficulty(h, 2) {
			b.Nonce = nonce
			b.Hash = h
			break
		}
		nonce++
	}
	require.True(t, b.SatisfiesDifficulty(2), "a sealed block must satisfy the configured difficulty")
	require.False(t, b.SatisfiesDifficulty(64), "an arbitrarily high difficulty should not be satisfied by a real hash")
}
