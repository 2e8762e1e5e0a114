package minechain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abharun/mini-chain/common"
)

// Block is an ordered batch of transactions sealed by proof-of-work.
// Builder/Sequence/PrevHash are set by the Proposer; Nonce/Hash are set by
// the Miner. A Block is immutable once the Miner emits it.
type Block struct {
	Builder      string
	Sequence     uint64
	Timestamp    time.Time
	TxCount      int
	Transactions []Transaction
	Nonce        uint64
	PrevHash     string
	Hash         string
}

// NewBlock creates an empty candidate block. Timestamp is fixed at
// creation time and must be reused verbatim by RecomputeHash.
func NewBlock(builder string, sequence uint64, prevHash string) *Block {
	return &Block{
		Builder:   builder,
		Sequence:  sequence,
		Timestamp: time.Now(),
		PrevHash:  prevHash,
	}
}

// AddTransaction prepends tx to the block's transaction list, so the
// transactions end up ordered most-recently-added-first.
func (b *Block) AddTransaction(tx Transaction) {
	b.Transactions = append([]Transaction{tx}, b.Transactions...)
	b.TxCount++
}

// RecomputeHash reproduces the Miner's trial hash for a given nonce. Both
// the Miner (searching for a nonce) and the Verifier (checking one) must
// call this with the same inputs and get byte-identical output.
func RecomputeHash(b *Block, nonce uint64) string {
	var sb strings.Builder
	sb.WriteString(b.Builder)
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatUint(b.Sequence, 10))
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatInt(b.Timestamp.UnixNano(), 10))
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(b.TxCount))
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatUint(nonce, 10))
	sb.WriteByte('|')
	sb.WriteString(b.PrevHash)
	for _, tx := range b.Transactions {
		sb.WriteByte('|')
		sb.WriteString(tx.debugForm())
	}
	return common.HashString(sb.String())
}

// SatisfiesDifficulty reports whether the block's sealed Hash meets the
// configured leading-zero target.
func (b *Block) SatisfiesDifficulty(difficulty int) bool {
	return common.SatisfiesDifficulty(b.Hash, difficulty)
}

func (b *Block) String() string {
	return fmt.Sprintf("Block{seq=%d hash=%s prev=%s txs=%d}", b.Sequence, b.Hash, b.PrevHash, b.TxCount)
}
