package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Class tells the policy whether a failed attempt is worth repeating.
type Class int

const (
	ClassRetryable Class = iota
	ClassTerminal
)

type Classifier func(err error) Class

type Policy struct {
	MaxAttempts uint64
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// Do runs op, repeating retryable failures with exponential backoff and
// jitter. Terminal failures return immediately without consuming the retry
// budget; on exhaustion the last error is returned.
func (p Policy) Do(ctx context.Context, classify Classifier, op func(ctx context.Context) error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.BaseDelay
	bo.MaxInterval = p.MaxDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0.25
	bo.MaxElapsedTime = 0

	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}

	wrapped := func() error {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if classify(err) == ClassTerminal {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(wrapped, backoff.WithContext(backoff.WithMaxRetries(bo, attempts-1), ctx))
}
