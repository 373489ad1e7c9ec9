package maps

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrSDKUnavailable is returned when a provider never answers its readiness
// probe within the retry budget.
var ErrSDKUnavailable = errors.New("map SDK unavailable")

// RetryPolicy is an explicit attach-with-retry policy: a bounded attempt
// count, a fixed interval, and an explicit give-up error. Each adapter owns
// its own policy so providers can tune it independently.
type RetryPolicy struct {
	Attempts int
	Interval time.Duration
}

// DefaultReadinessPolicy polls every 100ms for up to 200 attempts (20s).
var DefaultReadinessPolicy = RetryPolicy{Attempts: 200, Interval: 100 * time.Millisecond}

// Do runs the probe until it succeeds, the attempts are spent, or the
// context is cancelled.
func (p RetryPolicy) Do(ctx context.Context, probe func(context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < p.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lastErr = probe(ctx); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Interval):
		}
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrSDKUnavailable, p.Attempts, lastErr)
}
