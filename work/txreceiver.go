package work

import "github.com/abharun/mini-chain/metrics"

// runTxReceiver loops on the node's inbound transaction channel, inserting
// each arrival into the mempool as RECEIVED. Duplicate hashes overwrite,
// making re-delivery idempotent.
func (n *Node) runTxReceiver() {
	for tx := range n.txIn {
		n.Mempool.Insert(tx)
		if n.cfg.MetricsEnabled {
			metrics.MemPoolSize.Set(float64(n.Mempool.Len()))
		}
	}
}
