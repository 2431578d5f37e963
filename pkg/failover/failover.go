// Package failover wraps remote calls with bounded retries against a
// primary target and, once the primary budget is spent, against a
// fallback target. Transient errors are retried after a backoff sleep;
// permanent errors abandon the current target immediately.
package failover

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Target identifies one side of a primary/fallback pair, typically a
// model or endpoint name.
type Target struct {
	Name    string
	Primary bool
}

// Operation is a remote call executed against a single target.
type Operation[T any] func(ctx context.Context, target Target) (T, error)

// Config bounds the total work done by Execute: at most
// PrimaryAttempts + FallbackAttempts calls, with a Backoff sleep between
// retries of the same target.
type Config struct {
	PrimaryAttempts  int
	FallbackAttempts int
	Backoff          time.Duration
	// RetryIf decides whether an error is transient. Defaults to IsTransient.
	RetryIf func(error) bool
}

var transientTokens = []string{
	"503", "429", "500", "overloaded", "unavailable", "timeout", "deadline exceeded",
}

// IsTransient reports whether an error looks like a temporary provider
// condition worth retrying against the same target.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, token := range transientTokens {
		if strings.Contains(msg, token) {
			return true
		}
	}
	return false
}

// Execute runs op against primary, then fallback, within the attempt
// budgets of cfg. The first success wins. A transient error consumes one
// attempt and sleeps cfg.Backoff before the next; a permanent error ends
// the current target's phase at once. When both targets are exhausted the
// last observed error is returned, wrapped.
func Execute[T any](ctx context.Context, cfg Config, primary, fallback Target, op Operation[T]) (T, error) {
	var zero T
	var lastErr error

	if cfg.PrimaryAttempts <= 0 {
		cfg.PrimaryAttempts = 1
	}
	if cfg.FallbackAttempts <= 0 {
		cfg.FallbackAttempts = 1
	}
	retryIf := cfg.RetryIf
	if retryIf == nil {
		retryIf = IsTransient
	}

	phases := []struct {
		target   Target
		attempts int
	}{
		{primary, cfg.PrimaryAttempts},
		{fallback, cfg.FallbackAttempts},
	}

	for _, phase := range phases {
		for attempt := 1; attempt <= phase.attempts; attempt++ {
			if err := ctx.Err(); err != nil {
				return zero, err
			}

			result, err := op(ctx, phase.target)
			if err == nil {
				return result, nil
			}
			lastErr = err

			if !retryIf(err) || attempt == phase.attempts {
				break
			}
			if err := sleep(ctx, cfg.Backoff); err != nil {
				return zero, err
			}
		}
	}

	return zero, fmt.Errorf("all targets exhausted: %w", lastErr)
}

// sleep waits for d or until the context is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
