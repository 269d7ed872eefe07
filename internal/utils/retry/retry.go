// Package retry provides a bounded "attempt N times, treat exhaustion as failure" helper.
package retry

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
)

// ErrRetryExhausted is returned (wrapping the last error) when every attempt failed
// with a retryable error.
var ErrRetryExhausted = errors.New("retry budget exhausted")

// Bounded runs op at most attempts times without delay between attempts.
// Errors for which retryable returns false stop the loop and are returned unchanged,
// as is ctx.Err() if the context ends first.
func Bounded(ctx context.Context, attempts int, op func() error, retryable func(error) bool) error {
	if attempts < 1 {
		attempts = 1
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(attempts-1)),
		ctx,
	)

	err := backoff.Retry(func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		err := op()
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)

	if err != nil && retryable(err) {
		return fmt.Errorf("%w after %d attempts: %w", ErrRetryExhausted, attempts, err)
	}
	return err
}
