// Package minechain holds the core data model of the simulated chain:
// Transaction, Block, Chain, MemPool and StagePool.
package minechain

import (
	"fmt"
	"time"

	"github.com/abharun/mini-chain/common"
)

// TxPayload is a Transaction's opaque transfer instruction.
type TxPayload struct {
	ToAddr string
	Amount int
}

// Transaction is an immutable, client-emitted unit of work. Its hash is
// H(timestamp ‖ nonce ‖ payload ‖ signer ‖ signature), computed once at
// emission time, so every transaction has a distinct mempool key (see
// DESIGN.md for why a transaction's hash is not left unset until later).
type Transaction struct {
	Timestamp time.Time
	Nonce     int
	Payload   TxPayload
	Signer    string
	Signature string
	Hash      string
}

// NewTransaction builds and hashes a transaction in one step.
func NewTransaction(toAddr string, amount int, signer, signature string) Transaction {
	tx := Transaction{
		Timestamp: time.Now(),
		Nonce:     0,
		Payload:   TxPayload{ToAddr: toAddr, Amount: amount},
		Signer:    signer,
		Signature: signature,
	}
	tx.Hash = common.HashString(tx.debugForm())
	return tx
}

// debugForm is the wire-format string hashed to produce Transaction.Hash and
// folded into a Block's trial hash.
func (tx Transaction) debugForm() string {
	return fmt.Sprintf("%d|%d|%s|%d|%s|%s|%s",
		tx.Timestamp.UnixNano(), tx.Nonce, tx.Payload.ToAddr, tx.Payload.Amount,
		tx.Signer, tx.Signature, tx.Hash)
}
