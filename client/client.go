// Package client implements the thin, deliberately out-of-core-scope
// Client actor: an actor whose only duty is to periodically emit
// transactions onto the network's inbound transaction channel.
package client

import (
	"time"

	"github.com/abharun/mini-chain/common"
	"github.com/abharun/mini-chain/config"
	"github.com/abharun/mini-chain/log"
	"github.com/abharun/mini-chain/minechain"
	"github.com/abharun/mini-chain/network"
)

var logger = log.NewModuleLogger(log.Client)

// Client owns one Address and a send handle to the fabric's transaction
// sender; it holds no other state.
type Client struct {
	Address common.Address

	sender chan<- minechain.Transaction
	slot   time.Duration
}

// New builds a client with a fresh address, bound to net's tx sender.
func New(cfg config.ChainMetaData, net *network.Network) *Client {
	return &Client{
		Address: common.NewAddress(),
		sender:  net.TxSender(),
		slot:    cfg.TxGenSlot,
	}
}

// Run periodically emits one Transaction{to: own.public, amount: 20}
// every TxGenSlot. Each transaction gets a real hash at emission, so the
// mempool never collides two transactions onto the same key.
func (c *Client) Run() {
	ticker := time.NewTicker(c.slot)
	defer ticker.Stop()
	for range ticker.C {
		tx := minechain.NewTransaction(c.Address.Public, 20, "", "")
		c.sender <- tx
		logger.Debug("client: emitted transaction", "hash", tx.Hash)
	}
}
