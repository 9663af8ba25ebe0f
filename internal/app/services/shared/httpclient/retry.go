package httpclient

import (
	"context"
	"time"

	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/exceptions"
)

type Backoff interface {
	// Next returns the delay before retry n, where n starts at 1.
	Next(retry int) time.Duration
}

// LinearBackoff waits Step*n before retry n.
type LinearBackoff struct {
	Step time.Duration
}

func (b LinearBackoff) Next(retry int) time.Duration {
	if retry < 1 {
		retry = 1
	}
	if b.Step <= 0 {
		return 0
	}
	return b.Step * time.Duration(retry)
}

// RetryPolicy bounds the attempt loop. MaxRetries counts retries, not attempts,
// so a call makes at most MaxRetries+1 attempts. The zero RetryPolicy stands for
// DefaultRetryPolicy; use NoRetry for single attempts.
type RetryPolicy struct {
	MaxRetries  int
	Backoff     Backoff
	ShouldRetry func(err error) bool
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:  constvars.DefaultRetryAttempts,
		Backoff:     LinearBackoff{Step: constvars.DefaultRetryDelayInMilliseconds * time.Millisecond},
		ShouldRetry: exceptions.IsRetryable,
	}
}

// NoRetry makes every call a single attempt.
func NoRetry() RetryPolicy {
	return RetryPolicy{MaxRetries: 0, Backoff: LinearBackoff{}, ShouldRetry: exceptions.IsRetryable}
}

func (p RetryPolicy) isZero() bool {
	return p.MaxRetries == 0 && p.Backoff == nil && p.ShouldRetry == nil
}

func (p RetryPolicy) allows(retries int, err error) bool {
	if err == nil || retries >= p.MaxRetries {
		return false
	}
	shouldRetry := p.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = exceptions.IsRetryable
	}
	return shouldRetry(err)
}

func (p RetryPolicy) delay(retry int) time.Duration {
	if p.Backoff == nil {
		return 0
	}
	return p.Backoff.Next(retry)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
