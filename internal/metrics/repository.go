package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nyks_indexer",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of storage operations.",
	}, []string{"operation", "backend", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nyks_indexer",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of storage operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "backend", "status"})
)

// Repository tracks metrics for one storage backend (postgres, clickhouse, file, redis).
type Repository struct {
	backend string
}

// NewRepository creates a Repository metrics collector.
func NewRepository(backend string) *Repository {
	if backend == "" {
		backend = "unknown"
	}
	return &Repository{backend: backend}
}

// Observe records duration and status of a storage operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	repositoryRequestsTotal.WithLabelValues(operation, m.backend, status).Inc()
	repositoryRequestDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}
