package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	factsMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nyks_indexer",
		Subsystem: "facts",
		Name:      "messages_total",
		Help:      "Count of messages handled by type.",
	}, []string{"type", "status"})

	factsRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nyks_indexer",
		Subsystem: "facts",
		Name:      "records_total",
		Help:      "Count of fact writes by kind.",
	}, []string{"kind", "status"})
)

// Facts tracks fact extraction.
type Facts struct{}

func NewFacts() *Facts {
	return &Facts{}
}

// ObserveMessage counts a handled message. Status is "success", "error" or "skipped".
func (Facts) ObserveMessage(typeURL, status string) {
	factsMessagesTotal.WithLabelValues(typeURL, status).Inc()
}

// ObserveRecord counts a single fact write.
func (Facts) ObserveRecord(kind string, err error) {
	factsRecordsTotal.WithLabelValues(kind, statusOf(err)).Inc()
}
