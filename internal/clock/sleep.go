// Package clock holds the context aware waits used by the ingestion loop.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or until ctx is done. A non positive d only
// reports the context state.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	return SleepOrSignal(ctx, d, nil)
}

// SleepOrSignal is SleepWithContext that also returns early, without error,
// when signal fires. A nil signal never fires.
func SleepOrSignal(ctx context.Context, d time.Duration, signal <-chan struct{}) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-signal:
		return nil
	case <-timer.C:
		return nil
	}
}
