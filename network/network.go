// Package network implements the broadcast fabric: three message classes
// (Transaction, mined Block, VoteTx), each with one inbound channel fanned
// out to every registered node's inbound channel for that class. Sender
// values are cheap clonable handles; each broadcaster goroutine loops
// recv-then-fan-out to every registered receiver for its class.
package network

import (
	"github.com/abharun/mini-chain/log"
	"github.com/abharun/mini-chain/minechain"
)

var logger = log.NewModuleLogger(log.Network)

// VoteTx is a verifier's verdict on a mined block.
type VoteTx struct {
	BlockHash string
	Verified  bool
}

// Inbound is the set of per-node channel endpoints the fabric fans
// messages into. A Node registers one of these via SetPipeline.
type Inbound struct {
	Tx    chan<- minechain.Transaction
	Block chan<- *minechain.Block
	Vote  chan<- VoteTx
}

// Network owns the three inbound-from-producers channels and the
// per-class lists of registered node endpoints. Channels are
// multi-producer/multi-consumer. Transactions and votes are carried by
// value; a mined block is carried as a *Block pointer that every receiver
// shares.
type Network struct {
	txIn    chan minechain.Transaction
	blockIn chan *minechain.Block
	voteIn  chan VoteTx

	txOut    []chan<- minechain.Transaction
	blockOut []chan<- *minechain.Block
	voteOut  []chan<- VoteTx
}

// channelCapacity stands in for an unbounded channel: Go has no native
// unbounded channel, so a generously sized buffer approximates one. Under
// sustained overload this reintroduces backpressure the design otherwise
// avoids; see DESIGN.md for the tradeoff.
const channelCapacity = 4096

// New returns a fabric with no registered nodes. Call SetPipeline before
// Run.
func New() *Network {
	return &Network{
		txIn:    make(chan minechain.Transaction, channelCapacity),
		blockIn: make(chan *minechain.Block, channelCapacity),
		voteIn:  make(chan VoteTx, channelCapacity),
	}
}

// TxSender returns a cloneable producer handle for transactions. Clients
// send on it.
func (n *Network) TxSender() chan<- minechain.Transaction { return n.txIn }

// BlockSender returns the producer handle for mined blocks.
func (n *Network) BlockSender() chan<- *minechain.Block { return n.blockIn }

// VoteSender returns the producer handle for votes.
func (n *Network) VoteSender() chan<- VoteTx { return n.voteIn }

// SetPipeline snapshots every node's inbound endpoints into the fabric's
// three parallel fan-out lists. Must be called exactly once, after all
// nodes exist and before Run.
func (n *Network) SetPipeline(inbounds []Inbound) {
	n.txOut = make([]chan<- minechain.Transaction, len(inbounds))
	n.blockOut = make([]chan<- *minechain.Block, len(inbounds))
	n.voteOut = make([]chan<- VoteTx, len(inbounds))
	for i, in := range inbounds {
		n.txOut[i] = in.Tx
		n.blockOut[i] = in.Block
		n.voteOut[i] = in.Vote
	}
	logger.Info("pipeline registered", "nodes", len(inbounds))
}

// Run starts the three cooperative broadcaster loops. Broadcast is
// unordered across receivers (fan-out sends happen sequentially in list
// order, no atomicity) but ordered within a single receiver.
func (n *Network) Run() {
	logger.Info("broadcast fabric started", "nodes", len(n.txOut))
	go n.broadcastTx()
	go n.broadcastBlock()
	go n.broadcastVote()
}

func (n *Network) broadcastTx() {
	for tx := range n.txIn {
		for _, out := range n.txOut {
			out <- tx
		}
	}
}

func (n *Network) broadcastBlock() {
	for b := range n.blockIn {
		for _, out := range n.blockOut {
			out <- b
		}
	}
}

func (n *Network) broadcastVote() {
	for v := range n.voteIn {
		for _, out := range n.voteOut {
			out <- v
		}
	}
}
