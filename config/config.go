// Package config holds mini-chain's process-wide, read-only-after-init
// configuration. A single ChainMetaData value is built once by the
// simulation driver and passed down to every Network/Node/Client
// constructor, rather than read from a global singleton.
package config

import "time"

// ChainMetaData is the immutable configuration shared by every actor in a
// simulation run. Duration fields are stored as time.Duration so call
// sites never need a magic unit.
type ChainMetaData struct {
	NodeCount   int
	ClientCount int

	TxGenSlot           time.Duration
	BlockGenSlot        time.Duration
	BlockGenPeriod      time.Duration
	BlockTxPickupPeriod time.Duration

	BlockSize       int
	BlockDifficulty int

	// MetricsEnabled gates the TxReceiver's updates of the metrics
	// package's mempool-size gauge. The metrics package's counters are
	// incremented whether or not it is set.
	MetricsEnabled bool
}

// Defaults returns the simulation's compile-time default configuration.
func Defaults() ChainMetaData {
	return ChainMetaData{
		NodeCount:           1,
		ClientCount:         5,
		TxGenSlot:           200 * time.Millisecond,
		BlockGenSlot:        2000 * time.Millisecond,
		BlockGenPeriod:      500 * time.Millisecond,
		BlockTxPickupPeriod: 400 * time.Millisecond,
		BlockSize:           20,
		BlockDifficulty:     2,
		MetricsEnabled:      false,
	}
}

// Validate enforces that every count/size/duration field is positive.
func (c ChainMetaData) Validate() error {
	switch {
	case c.NodeCount <= 0:
		return errInvalid("node_count")
	case c.ClientCount <= 0:
		return errInvalid("client_count")
	case c.TxGenSlot <= 0:
		return errInvalid("tx_gen_slot")
	case c.BlockGenSlot <= 0:
		return errInvalid("block_gen_slot")
	case c.BlockGenPeriod <= 0:
		return errInvalid("block_gen_period")
	case c.BlockTxPickupPeriod <= 0:
		return errInvalid("block_tx_pickup_period")
	case c.BlockSize <= 0:
		return errInvalid("block_size")
	case c.BlockDifficulty <= 0:
		return errInvalid("block_difficulty")
	}
	return nil
}
