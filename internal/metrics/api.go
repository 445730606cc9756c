package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nyks_indexer",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Count of REST requests by route and status code.",
	}, []string{"route", "code"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nyks_indexer",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Duration of REST requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

// API tracks the read-only REST surface.
type API struct{}

func NewAPI() *API {
	return &API{}
}

// Observe records one request.
func (API) Observe(route string, code int, started time.Time) {
	apiRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	apiRequestDuration.WithLabelValues(route).Observe(time.Since(started).Seconds())
}
