package providers

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds how often and how patiently an operation is repeated.
// The delay before attempt n grows by Multiplier and is clamped to
// [WaitMin, WaitMax].
type RetryPolicy struct {
	MaxAttempts int
	WaitMin     time.Duration
	WaitMax     time.Duration
	Multiplier  float64
}

// DefaultRetryPolicy allows three attempts with a 1s to 10s backoff window
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		WaitMin:     time.Second,
		WaitMax:     10 * time.Second,
		Multiplier:  2,
	}
}

// Permanent marks an error that must not be retried
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p RetryPolicy) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.WaitMin
	b.MaxInterval = p.WaitMax
	b.Multiplier = p.Multiplier
	if b.Multiplier < 1 {
		b.Multiplier = 1
	}
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(p.attempts()-1)), ctx)
}

// Do runs op until it succeeds, returns a Permanent error, or the attempts are
// exhausted. It reports the number of attempts made and the last error of op.
// notify, when set, is called before every wait.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context, attempt int) error, notify func(attempt int, err error, wait time.Duration)) (int, error) {
	attempt := 0
	operation := func() error {
		attempt++
		return op(ctx, attempt)
	}

	var onRetry backoff.Notify
	if notify != nil {
		onRetry = func(err error, wait time.Duration) {
			notify(attempt, err, wait)
		}
	}

	err := backoff.RetryNotify(operation, p.newBackOff(ctx), onRetry)
	return attempt, err
}
