package metrics

import (
	"time"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nyks_indexer",
		Subsystem: "chain_client",
		Name:      "operations_total",
		Help:      "Count of chain REST operations.",
	}, []string{"operation", "network", "status"})
	chainClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nyks_indexer",
		Subsystem: "chain_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chain REST operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ChainClient tracks metrics for calls to the chain REST endpoint.
type ChainClient struct {
	network model.Network
}

// NewChainClient constructs a metrics collector for chain calls.
func NewChainClient(network model.Network) *ChainClient {
	if network == "" {
		network = "unknown"
	}
	return &ChainClient{network: network}
}

// Observe records a single call outcome and duration.
func (m ChainClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	chainClientRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	chainClientRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
