package workflow

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRunner() *Runner {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRunner(RetryPolicy{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, logger)
}

func TestRunnerSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := testRunner().Run(context.Background(), "fetch", func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRunnerRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := testRunner().Run(context.Background(), "fetch", func(context.Context) error {
		calls++
		if calls < 3 {
			return &RetryableError{Err: errors.New("flaky")}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRunnerExhaustsAttempts(t *testing.T) {
	calls := 0
	underlying := errors.New("still flaky")
	err := testRunner().Run(context.Background(), "fetch", func(context.Context) error {
		calls++
		return &RetryableError{Err: underlying}
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestRunnerFatalStopsImmediately(t *testing.T) {
	calls := 0
	err := testRunner().Run(context.Background(), "fetch", func(context.Context) error {
		calls++
		return &FatalError{Err: errors.New("unsupported tld")}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, IsFatal(err))
}

func TestRunnerRetryAfterOverridesBackoff(t *testing.T) {
	calls := 0
	start := time.Now()
	err := testRunner().Run(context.Background(), "fetch", func(context.Context) error {
		calls++
		if calls == 1 {
			return &RetryableError{Err: errors.New("throttled"), RetryAfter: 30 * time.Millisecond}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRunnerHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	runner := NewRunner(RetryPolicy{MaxAttempts: 3, InitialBackoff: time.Minute}, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- runner.Run(ctx, "fetch", func(context.Context) error {
			return &RetryableError{Err: errors.New("flaky")}
		})
	}()
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("runner did not return after cancellation")
	}
}

func TestCalculateBackoff(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	runner := NewRunner(RetryPolicy{
		MaxAttempts:    5,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     300 * time.Millisecond,
	}, logger)

	assert.Equal(t, 100*time.Millisecond, runner.calculateBackoff(1))
	assert.Equal(t, 200*time.Millisecond, runner.calculateBackoff(2))
	// Doubling is capped at MaxBackoff.
	assert.Equal(t, 300*time.Millisecond, runner.calculateBackoff(3))
	assert.Equal(t, 300*time.Millisecond, runner.calculateBackoff(4))
}
