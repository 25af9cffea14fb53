package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend down")

func newTestBreaker() (*CircuitBreaker, *time.Time) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker("test", Config{FailureThreshold: 2, OpenTimeout: time.Second, SuccessThreshold: 1})
	cb.now = func() time.Time { return now }
	return cb, &now
}

func TestCircuitBreaker(t *testing.T) {
	ctx := context.Background()
	fail := func() error { return errBackend }
	ok := func() error { return nil }

	t.Run("opens after threshold", func(t *testing.T) {
		cb, _ := newTestBreaker()

		require.ErrorIs(t, cb.Execute(ctx, fail), errBackend)
		assert.Equal(t, StateClosed, cb.State())
		require.ErrorIs(t, cb.Execute(ctx, fail), errBackend)
		assert.Equal(t, StateOpen, cb.State())

		called := false
		err := cb.Execute(ctx, func() error { called = true; return nil })
		require.ErrorIs(t, err, ErrCircuitOpen)
		assert.False(t, called)
	})

	t.Run("success resets failure count", func(t *testing.T) {
		cb, _ := newTestBreaker()

		_ = cb.Execute(ctx, fail)
		require.NoError(t, cb.Execute(ctx, ok))
		_ = cb.Execute(ctx, fail)

		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("probe closes after timeout", func(t *testing.T) {
		cb, now := newTestBreaker()
		_ = cb.Execute(ctx, fail)
		_ = cb.Execute(ctx, fail)

		*now = now.Add(2 * time.Second)
		require.NoError(t, cb.Execute(ctx, ok))

		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("failed probe reopens", func(t *testing.T) {
		cb, now := newTestBreaker()
		_ = cb.Execute(ctx, fail)
		_ = cb.Execute(ctx, fail)

		*now = now.Add(2 * time.Second)
		require.ErrorIs(t, cb.Execute(ctx, fail), errBackend)

		assert.Equal(t, StateOpen, cb.State())
		require.ErrorIs(t, cb.Execute(ctx, ok), ErrCircuitOpen)
	})
}
