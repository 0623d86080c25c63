// Package retry provides a bounded retry-with-backoff wrapper for best-effort
// read operations. Writes must not go through it: retrying an insert whose
// acknowledgment was lost risks duplicates.
package retry

import (
	"context"
	"time"
)

// Policy describes a bounded retry loop with doubling backoff.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultReadPolicy is the policy used for availability-path store reads.
var DefaultReadPolicy = Policy{MaxAttempts: 3, Delay: 100 * time.Millisecond}

// Do invokes fn up to p.MaxAttempts times, sleeping p.Delay, 2*p.Delay, ...
// between attempts. It returns nil on the first success and the last error
// once attempts are exhausted. Context cancellation stops the loop early.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	delay := p.Delay

	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}
	}

	return lastErr
}

// Do runs fn under DefaultReadPolicy.
func Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return DefaultReadPolicy.Do(ctx, fn)
}
