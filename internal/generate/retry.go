package generate

import (
	"context"
	"math/rand/v2"
	"time"
)

// MaxAttempts is the default attempt bound per chunk.
const MaxAttempts = 3

// RetryPolicy is a bounded retry over an operation. Any failure is
// retried: the generation call treats network, service and parse errors
// alike, and gives up on the chunk after the final attempt.
type RetryPolicy struct {
	MaxAttempts int
	// Backoff returns the wait before retrying attempt n (0-indexed).
	// nil retries immediately.
	Backoff func(attempt int) time.Duration
}

// DefaultPolicy matches the reference behavior: 3 attempts with jittered
// exponential backoff between them.
func DefaultPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: MaxAttempts,
		Backoff:     JitterBackoff,
	}
}

// Do runs fn until it succeeds, attempts are exhausted, or ctx is done.
// Returns the last error when all attempts fail.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == attempts-1 || p.Backoff == nil {
			continue
		}
		select {
		case <-time.After(p.Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}

// JitterBackoff returns a duration for attempt n (0-indexed) with jitter.
func JitterBackoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}
