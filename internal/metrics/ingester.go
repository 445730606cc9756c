// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nyks_indexer",
		Subsystem: "ingester",
		Name:      "fetch_block_total",
		Help:      "Count of block fetch attempts.",
	}, []string{"network", "status"})

	ingesterFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nyks_indexer",
		Subsystem: "ingester",
		Name:      "fetch_block_duration_seconds",
		Help:      "Duration of fetching a block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nyks_indexer",
		Subsystem: "ingester",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of decoding and persisting one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network"})

	ingesterBlockTxs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nyks_indexer",
		Subsystem: "ingester",
		Name:      "block_transactions",
		Help:      "Number of transactions per processed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})

	ingesterSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nyks_indexer",
		Subsystem: "ingester",
		Name:      "skipped_heights_total",
		Help:      "Count of heights advanced without processing a block.",
	}, []string{"network", "reason"})

	ingesterHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "nyks_indexer",
		Subsystem: "ingester",
		Name:      "height",
		Help:      "Local cursor and remote head heights.",
	}, []string{"network", "kind"})
)

// Ingester tracks metrics for the ingestion loop.
type Ingester struct {
	network model.Network
}

// NewIngester constructs an Ingester with defaults.
func NewIngester(network model.Network) *Ingester {
	if network == "" {
		network = "unknown"
	}
	return &Ingester{network: network}
}

// ObserveFetch records a block fetch outcome and duration.
func (m Ingester) ObserveFetch(err error, started time.Time) {
	status := statusOf(err)
	ingesterFetchTotal.WithLabelValues(string(m.network), status).Inc()
	ingesterFetchDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveBlock records processing of one block.
func (m Ingester) ObserveBlock(txs int, started time.Time) {
	ingesterProcessBlockDuration.WithLabelValues(string(m.network)).
		Observe(time.Since(started).Seconds())
	ingesterBlockTxs.WithLabelValues(string(m.network)).
		Observe(float64(txs))
}

// ObserveSkip counts a height advanced without a block, e.g. "not_produced" or "retries_exhausted".
func (m Ingester) ObserveSkip(reason string) {
	ingesterSkippedTotal.WithLabelValues(string(m.network), reason).Inc()
}

// SetHeights publishes the local cursor and the remote head.
func (m Ingester) SetHeights(local, head uint64) {
	ingesterHeight.WithLabelValues(string(m.network), "local").Set(float64(local))
	ingesterHeight.WithLabelValues(string(m.network), "head").Set(float64(head))
}
