// Package work implements a mini-chain Node's five concurrently scheduled
// tasks (TxReceiver, Proposer, Miner, Verifier, ChainManager) and the
// shared, lock-guarded state (mempool, stagepool, chain) they operate on.
// Each role runs as an independent goroutine around a minimal shared-state
// handle, rather than a single struct implementing five interfaces.
package work

import (
	"github.com/abharun/mini-chain/common"
	"github.com/abharun/mini-chain/config"
	"github.com/abharun/mini-chain/log"
	"github.com/abharun/mini-chain/minechain"
	"github.com/abharun/mini-chain/network"
)

// Node is the supervisor that owns one Address, the three lock-guarded
// state stores, the node's three network-facing inbound channels, and the
// internal proposed-block handoff between Proposer and Miner. It starts
// the task goroutines and keeps no handle to them; it does not itself
// implement TxReceiver/Proposer/Miner/Verifier/ChainManager.
type Node struct {
	Address common.Address
	cfg     config.ChainMetaData

	Mempool   *minechain.MemPool
	StagePool *minechain.StagePool
	Chain     *minechain.Chain

	txIn    chan minechain.Transaction
	blockIn chan *minechain.Block
	voteIn  chan network.VoteTx

	proposed chan *minechain.Block

	net *network.Network

	logger log.Logger
}

// NewNode constructs a Node with its own address and empty state stores,
// wired to the given fabric. Call Inbound() to register it with the
// fabric's SetPipeline before the fabric's Run, then call Run to start the
// node's five tasks.
func NewNode(cfg config.ChainMetaData, net *network.Network) *Node {
	return &Node{
		Address:   common.NewAddress(),
		cfg:       cfg,
		Mempool:   minechain.NewMemPool(),
		StagePool: minechain.NewStagePool(),
		Chain:     minechain.NewChain(),
		txIn:      make(chan minechain.Transaction, 4096),
		blockIn:   make(chan *minechain.Block, 4096),
		voteIn:    make(chan network.VoteTx, 4096),
		proposed:  make(chan *minechain.Block, 1),
		net:       net,
		logger:    log.NewModuleLogger(log.NodeModule),
	}
}

// Inbound returns this node's three fabric-facing endpoints, for
// registration via Network.SetPipeline.
func (n *Node) Inbound() network.Inbound {
	return network.Inbound{Tx: n.txIn, Block: n.blockIn, Vote: n.voteIn}
}

// Run spawns the node's five tasks: TxReceiver, Proposer, Miner, Verifier,
// ChainManager. All are detached and run until the process exits.
func (n *Node) Run() {
	n.logger.Info("node starting", "builder", n.Address.Public)
	go n.runTxReceiver()
	go n.runProposer()
	go n.runMiner()
	go n.runVerifier()
	go n.runChainManager()
}
