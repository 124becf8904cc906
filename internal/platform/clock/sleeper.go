package clock

import (
	"context"
	"time"
)

// ContextSleeper sleeps using timers and returns early when context is done.
type ContextSleeper struct{}

// Sleep blocks for d or until ctx is done, in which case ctx error is returned.
func (ContextSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
