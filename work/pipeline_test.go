package work

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abharun/mini-chain/client"
	"github.com/abharun/mini-chain/config"
	"github.com/abharun/mini-chain/network"
)

// TestSingleNodeHappyPath checks that with a single node the quorum
// threshold floor(2*0/3)=0 on the first block, so a lone self-vote
// commits it end to end through the full pipeline.
func TestSingleNodeHappyPath(t *testing.T) {
	cfg := config.Defaults()
	cfg.NodeCount = 1
	cfg.ClientCount = 1
	cfg.TxGenSlot = 20 * time.Millisecond
	cfg.BlockGenSlot = 50 * time.Millisecond
	cfg.BlockGenPeriod = 40 * time.Millisecond
	cfg.BlockTxPickupPeriod = 30 * time.Millisecond
	cfg.BlockDifficulty = 1
	cfg.BlockSize = 5
	require.NoError(t, cfg.Validate())

	net := network.New()
	node := NewNode(cfg, net)
	net.SetPipeline([]network.Inbound{node.Inbound()})
	net.Run()
	node.Run()

	c := client.New(cfg, net)
	go c.Run()

	deadline := time.After(2 * time.Second)
	for {
		if node.Chain.Peek().Sequence >= 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("chain did not commit a block in time")
		case <-time.After(10 * time.Millisecond):
		}
	}

	require.GreaterOrEqual(t, node.Chain.Peek().Sequence, uint64(1))
}
