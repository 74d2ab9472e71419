package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/pkordes/article-sections/internal/domain"
)

// RetryPolicy bounds how often a unit of work is restarted after losing a
// write race (domain.ErrConflict).
type RetryPolicy struct {
	// MaxAttempts is the total number of tries, including the first. Values
	// below 1 are treated as 1.
	MaxAttempts int

	// InitialInterval is the wait before the second attempt. It grows
	// exponentially with jitter up to MaxInterval.
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     5,
		InitialInterval: 20 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
	}
}

// retryOnConflict runs fn until it succeeds, fails with a non-conflict error,
// the context is done, or the attempt budget is spent. Exhausting the budget
// is reported as domain.ErrStoreUnavailable so callers never see ErrConflict.
func retryOnConflict(ctx context.Context, policy RetryPolicy, logger *slog.Logger, op string, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = policy.InitialInterval
	b.MaxInterval = policy.MaxInterval
	b.MaxElapsedTime = 0

	attempts := max(policy.MaxAttempts, 1)
	var bo backoff.BackOff = backoff.WithMaxRetries(b, uint64(attempts-1))
	bo = backoff.WithContext(bo, ctx)

	tries := 0
	err := backoff.RetryNotify(func() error {
		tries++
		err := fn()
		if err == nil || errors.Is(err, domain.ErrConflict) {
			return err
		}
		return backoff.Permanent(err)
	}, bo, func(err error, wait time.Duration) {
		logger.WarnContext(ctx, "write conflict, retrying",
			"op", op,
			"attempt", tries,
			"wait_ms", wait.Milliseconds(),
			"error", err,
		)
	})
	if errors.Is(err, domain.ErrConflict) {
		return fmt.Errorf("%w: %s: gave up after %d attempts: %v", domain.ErrStoreUnavailable, op, tries, err)
	}
	return err
}
