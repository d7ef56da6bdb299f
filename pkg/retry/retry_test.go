package retry

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestWithBackoff_Success(t *testing.T) {
	config := Config{MaxRetries: 3, BaseDelay: 1 * time.Millisecond}
	attempts := 0

	operation := func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("connection reset")
		}
		return nil
	}

	if err := WithBackoff(context.Background(), config, operation); err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("Expected 3 attempts, got %d", attempts)
	}
}

func TestWithBackoff_FailureAfterMaxRetries(t *testing.T) {
	config := Config{MaxRetries: 2, BaseDelay: 1 * time.Millisecond}
	attempts := 0

	err := WithBackoff(context.Background(), config, func(ctx context.Context) error {
		attempts++
		return errors.New("persistent error")
	})
	if err == nil {
		t.Fatal("Expected failure, got success")
	}
	if attempts != 3 {
		t.Fatalf("Expected 3 attempts, got %d", attempts)
	}
	if !strings.HasPrefix(err.Error(), "operation failed after 3 attempts") {
		t.Fatalf("Expected retry failure error, got: %v", err)
	}
}

func TestWithBackoff_NonRetryableStatus(t *testing.T) {
	config := Config{MaxRetries: 3, BaseDelay: 1 * time.Millisecond}
	attempts := 0

	err := WithBackoff(context.Background(), config, func(ctx context.Context) error {
		attempts++
		return &StatusError{URL: "http://example.invalid/x", StatusCode: http.StatusNotFound}
	})
	if err == nil {
		t.Fatal("Expected failure")
	}
	if attempts != 1 {
		t.Fatalf("404 should not be retried, got %d attempts", attempts)
	}

	var status *StatusError
	if !errors.As(err, &status) || status.StatusCode != http.StatusNotFound {
		t.Fatalf("expected wrapped StatusError, got %v", err)
	}
}

func TestWithBackoff_Permanent(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), Config{MaxRetries: 5, BaseDelay: time.Millisecond}, func(ctx context.Context) error {
		attempts++
		return Permanent(errors.New("bad payload"))
	})
	if err == nil || attempts != 1 {
		t.Fatalf("attempts = %d, err = %v", attempts, err)
	}
}

func TestWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithBackoff(ctx, Config{MaxRetries: 3, BaseDelay: time.Hour}, func(ctx context.Context) error {
		return errors.New("timeout")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHTTPStatusRetryable(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusTooManyRequests, true},
		{http.StatusNotFound, false},
		{http.StatusForbidden, false},
	}
	for _, tt := range tests {
		if got := HTTPStatusRetryable(tt.code); got != tt.want {
			t.Errorf("HTTPStatusRetryable(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestWithBackoff_NegativeRetriesStillAttempts(t *testing.T) {
	config := Config{MaxRetries: -2, BaseDelay: time.Millisecond}
	attempts := 0

	err := WithBackoff(context.Background(), config, func(ctx context.Context) error {
		attempts++
		return errors.New("connection refused")
	})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if attempts != 1 {
		t.Fatalf("Expected 1 attempt, got %d", attempts)
	}
}
