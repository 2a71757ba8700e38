// Package workflow orchestrates the fetch-and-normalize pipeline: the
// on-demand report assembly and the recurring monitoring pass. Steps are
// retried with exponential backoff; failure classification decides whether a
// retry is worth attempting at all.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// RetryableError marks a step failure worth retrying. RetryAfter, when set,
// overrides the computed backoff (e.g. honoring an upstream Retry-After).
type RetryableError struct {
	Err        error
	RetryAfter time.Duration
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// FatalError marks a step failure that no amount of retrying will fix.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }
func (e *FatalError) Unwrap() error { return e.Err }

func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

// RetryPolicy bounds a step's retry loop.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts == 0 {
		p.MaxAttempts = 3
	}
	if p.InitialBackoff == 0 {
		p.InitialBackoff = 500 * time.Millisecond
	}
	if p.MaxBackoff == 0 {
		p.MaxBackoff = 10 * time.Second
	}
	return p
}

// Runner executes steps under the retry policy.
type Runner struct {
	policy RetryPolicy
	logger *slog.Logger
}

func NewRunner(policy RetryPolicy, logger *slog.Logger) *Runner {
	return &Runner{
		policy: policy.withDefaults(),
		logger: logger.With("component", "workflow"),
	}
}

// Run executes fn, retrying retryable failures up to the attempt budget. A
// FatalError stops the loop immediately and is returned as is.
func (r *Runner) Run(ctx context.Context, step string, fn func(ctx context.Context) error) error {
	var err error

	for attempt := 1; attempt <= r.policy.MaxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if IsFatal(err) {
			return err
		}

		if attempt == r.policy.MaxAttempts {
			break
		}

		backoff := r.calculateBackoff(attempt)
		var re *RetryableError
		if errors.As(err, &re) && re.RetryAfter > 0 {
			backoff = re.RetryAfter
		}

		r.logger.Warn("step failed, retrying",
			"step", step,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("%s after %d attempts: %w", step, r.policy.MaxAttempts, err)
}

func (r *Runner) calculateBackoff(attempt int) time.Duration {
	backoff := r.policy.InitialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > r.policy.MaxBackoff {
		backoff = r.policy.MaxBackoff
	}
	return backoff
}
