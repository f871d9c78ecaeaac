// Package retry provides a bounded retry policy with exponential backoff.
// It is wired explicitly by callers; the zero value performs exactly one
// attempt so fire-and-forget call sites keep their behavior.
package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Policy controls how many times an operation runs and how long to wait
// between attempts.
type Policy struct {
	MaxAttempts int           // total attempts; values below 1 mean one attempt
	BaseDelay   time.Duration // first backoff step; defaults to 1s when unset
	MaxDelay    time.Duration // backoff cap; 0 means uncapped
	Jitter      float64       // fraction of the delay added at random, 0..1
}

// Do runs fn until it succeeds, attempts run out, or ctx is done. The last
// error is wrapped in the exhaustion error so callers can errors.Is it.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := fn(); err != nil {
			lastErr = err
			if i == attempts-1 {
				break
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.delay(i)):
				continue
			}
		}
		return nil
	}
	if attempts == 1 {
		return lastErr
	}
	return fmt.Errorf("all %d attempts exhausted: %w", attempts, lastErr)
}

func (p Policy) delay(attempt int) time.Duration {
	base := p.BaseDelay
	if base <= 0 {
		base = time.Second
	}
	d := base * time.Duration(1<<uint(attempt))
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	if p.Jitter > 0 {
		d += time.Duration(p.Jitter * rand.Float64() * float64(d))
	}
	return d
}
