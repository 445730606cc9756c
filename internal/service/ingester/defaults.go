package ingester

import "time"

const (
	maxFetchAttempts = 3

	idleSleepDuration  = 30 * time.Second
	retrySleepDuration = time.Second

	skipNotProduced      = "not_produced"
	skipRetriesExhausted = "retries_exhausted"
)
