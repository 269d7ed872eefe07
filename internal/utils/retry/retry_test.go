package retry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/meow_bank/internal/utils/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func isTransient(err error) bool { return errors.Is(err, errTransient) }

func TestBounded_SucceedsWithinBudget(t *testing.T) {
	calls := 0
	err := retry.Bounded(context.Background(), 10, func() error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	}, isTransient)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestBounded_ExhaustsBudget(t *testing.T) {
	calls := 0
	err := retry.Bounded(context.Background(), 10, func() error {
		calls++
		return errTransient
	}, isTransient)

	require.Error(t, err)
	assert.ErrorIs(t, err, retry.ErrRetryExhausted)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 10, calls)
}

func TestBounded_StopsOnPermanentError(t *testing.T) {
	permanent := errors.New("boom")
	calls := 0
	err := retry.Bounded(context.Background(), 10, func() error {
		calls++
		return permanent
	}, isTransient)

	assert.Equal(t, permanent, err)
	assert.NotErrorIs(t, err, retry.ErrRetryExhausted)
	assert.Equal(t, 1, calls)
}

func TestBounded_NonPositiveAttemptsRunsOnce(t *testing.T) {
	calls := 0
	err := retry.Bounded(context.Background(), 0, func() error {
		calls++
		return errTransient
	}, isTransient)

	assert.ErrorIs(t, err, retry.ErrRetryExhausted)
	assert.Equal(t, 1, calls)
}

func TestBounded_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := retry.Bounded(ctx, 5, func() error {
		calls++
		return errTransient
	}, isTransient)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}
