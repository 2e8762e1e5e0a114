// Package metrics wraps the Prometheus counters mini-chain exposes for its
// mining/consensus pipeline.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// BlocksMined counts blocks sealed by any node in this process.
	BlocksMined = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "minechain",
		Name:      "blocks_mined_total",
		Help:      "Number of blocks mined (proof-of-work satisfied) by the nodes in this process.",
	})
	// BlocksCommitted counts block admissions to any node's chain in this
	// process.
	BlocksCommitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "minechain",
		Name:      "blocks_committed_total",
		Help:      "Number of blocks admitted to a node's chain after quorum, summed over the nodes in this process.",
	})
	// VotesRejected counts verifier votes marked unverified.
	VotesRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "minechain",
		Name:      "votes_rejected_total",
		Help:      "Number of mined blocks rejected by the verifiers of the nodes in this process.",
	})
	// ProposerTimeouts counts candidate blocks dropped on build-budget timeout.
	ProposerTimeouts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "minechain",
		Name:      "proposer_timeouts_total",
		Help:      "Number of proposer build cycles aborted on timeout.",
	})
	// MemPoolSize is a gauge set by each node's TxReceiver to that node's
	// mempool size; with several nodes it holds the last value set.
	MemPoolSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "minechain",
		Name:      "mempool_size",
		Help:      "Number of entries in the mempool of the node that last reported.",
	})
)

func init() {
	prometheus.MustRegister(BlocksMined, BlocksCommitted, VotesRejected, ProposerTimeouts, MemPoolSize)
}
