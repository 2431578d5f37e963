package failover

import (
	"context"
	"errors"
	"testing"
	"time"
)

var (
	errTransient = errors.New("503 service unavailable")
	errPermanent = errors.New("invalid api key")
)

func TestExecuteFallbackSucceeds(t *testing.T) {
	ctx := context.Background()
	cfg := Config{PrimaryAttempts: 3, FallbackAttempts: 5, Backoff: time.Millisecond}

	calls := 0
	fallbackCalls := 0
	result, err := Execute(ctx, cfg,
		Target{Name: "primary", Primary: true}, Target{Name: "fallback"},
		func(ctx context.Context, target Target) (string, error) {
			calls++
			if target.Primary {
				return "", errTransient
			}
			fallbackCalls++
			if fallbackCalls < 2 {
				return "", errTransient
			}
			return "ok", nil
		})

	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q, want %q", result, "ok")
	}
	// all primary attempts plus two fallback attempts
	if calls != 5 {
		t.Errorf("calls = %d, want 5", calls)
	}
}

func TestExecutePermanentErrorSkipsRetries(t *testing.T) {
	ctx := context.Background()
	cfg := Config{PrimaryAttempts: 3, FallbackAttempts: 5, Backoff: 10 * time.Millisecond}

	calls := 0
	start := time.Now()
	_, err := Execute(ctx, cfg,
		Target{Name: "primary", Primary: true}, Target{Name: "fallback"},
		func(ctx context.Context, target Target) (int, error) {
			calls++
			return 0, errPermanent
		})
	elapsed := time.Since(start)

	if !errors.Is(err, errPermanent) {
		t.Fatalf("Execute() error = %v, want wrapped %v", err, errPermanent)
	}
	// one attempt per target, no backoff sleeps
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if elapsed > 8*cfg.Backoff {
		t.Errorf("elapsed = %s, want well under %s", elapsed, 8*cfg.Backoff)
	}
}

func TestExecuteReturnsLastError(t *testing.T) {
	ctx := context.Background()
	cfg := Config{PrimaryAttempts: 2, FallbackAttempts: 2, Backoff: time.Millisecond}

	lastErr := errors.New("429 too many requests")
	calls := 0
	_, err := Execute(ctx, cfg,
		Target{Name: "primary", Primary: true}, Target{Name: "fallback"},
		func(ctx context.Context, target Target) (string, error) {
			calls++
			if calls < 4 {
				return "", errTransient
			}
			return "", lastErr
		})

	if !errors.Is(err, lastErr) {
		t.Errorf("Execute() error = %v, want wrapped %v", err, lastErr)
	}
	if calls != 4 {
		t.Errorf("calls = %d, want 4", calls)
	}
}

func TestExecuteFirstSuccessWins(t *testing.T) {
	ctx := context.Background()
	cfg := Config{PrimaryAttempts: 3, FallbackAttempts: 5}

	calls := 0
	result, err := Execute(ctx, cfg,
		Target{Name: "primary", Primary: true}, Target{Name: "fallback"},
		func(ctx context.Context, target Target) (string, error) {
			calls++
			return target.Name, nil
		})

	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result != "primary" || calls != 1 {
		t.Errorf("result = %q after %d calls, want %q after 1", result, calls, "primary")
	}
}

func TestExecuteContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := Config{PrimaryAttempts: 3, FallbackAttempts: 3, Backoff: time.Hour}

	calls := 0
	_, err := Execute(ctx, cfg,
		Target{Name: "primary", Primary: true}, Target{Name: "fallback"},
		func(ctx context.Context, target Target) (string, error) {
			calls++
			cancel()
			return "", errTransient
		})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (backoff sleep must honor cancellation)", calls)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"503", errors.New("got 503 from upstream"), true},
		{"429", errors.New("HTTP 429"), true},
		{"500", errors.New("500 internal error"), true},
		{"overloaded", errors.New("model is Overloaded"), true},
		{"unavailable", errors.New("service unavailable"), true},
		{"timeout", errors.New("request timeout"), true},
		{"deadline", errors.New("context deadline exceeded"), true},
		{"auth failure", errors.New("401 unauthorized"), false},
		{"bad request", errors.New("malformed payload"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
