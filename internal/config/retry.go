package config

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Permanent marks err as not worth retrying. Retry returns the wrapped error
// immediately without waiting.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var permanent *backoff.PermanentError
	return errors.As(err, &permanent)
}

// Retry runs op until it succeeds, returns a permanent error, or
// cfg.MaxAttempts attempts have failed, waiting cfg.RetryDelay between
// attempts. onFailure, if non-nil, is called after every transient failure
// with the 1-based attempt number. The number of attempts made is returned
// alongside the result.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func(ctx context.Context) (T, error), onFailure func(attempt int, err error)) (T, int, error) {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(cfg.RetryDelay), uint64(maxAttempts-1)),
		ctx,
	)

	attempts := 0
	result, err := backoff.RetryWithData[T](func() (T, error) {
		attempts++
		value, err := op(ctx)
		if err != nil && onFailure != nil && !IsPermanent(err) {
			onFailure(attempts, err)
		}
		return value, err
	}, policy)

	return result, attempts, err
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
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
