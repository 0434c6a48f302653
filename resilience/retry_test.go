package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		BackoffFactor:  2.0,
	}
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), fastRetryConfig(3), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if got != "ok" || calls != 3 {
		t.Errorf("Retry() = %q after %d calls, want ok after 3", got, calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	wantErr := errors.New("persistent")
	_, err := Retry(context.Background(), fastRetryConfig(3), func() (string, error) {
		calls++
		return "", wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Retry() error = %v, want last error", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestRetryStopsOnNonRetryable(t *testing.T) {
	cfg := fastRetryConfig(5)
	fatal := errors.New("fatal")
	cfg.RetryIf = func(err error) bool { return !errors.Is(err, fatal) }

	calls := 0
	_, err := Retry(context.Background(), cfg, func() (int, error) {
		calls++
		return 0, fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("Retry() error = %v, want fatal", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestRetryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Retry(ctx, fastRetryConfig(3), func() (int, error) {
		return 0, errors.New("never reached after cancel")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Retry() error = %v, want context.Canceled", err)
	}
}

func TestRetryOnRetryCallback(t *testing.T) {
	cfg := fastRetryConfig(3)
	var attempts []int
	cfg.OnRetry = func(attempt int, err error, backoff time.Duration) {
		attempts = append(attempts, attempt)
	}

	_ = RetryFunc(context.Background(), cfg, func() error {
		return errors.New("always")
	})
	if len(attempts) != 2 {
		t.Fatalf("OnRetry called %d times, want 2", len(attempts))
	}
}
