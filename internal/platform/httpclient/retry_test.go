package httpclient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"testing"
	"time"
)

var storeRetry = retryConfig{
	maxAttempts:     3,
	initialInterval: 100 * time.Millisecond,
	maxInterval:     500 * time.Millisecond,
	multiplier:      2.0,
}

// within reports whether d is base ± jitter.
func within(d, base time.Duration) bool {
	lo := time.Duration(float64(base) * (1 - jitterFraction))
	hi := time.Duration(float64(base) * (1 + jitterFraction))
	return d >= lo && d <= hi
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 500 * time.Millisecond}, // capped
		{20, 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			t.Parallel()
			for range 200 {
				if d := backoff(tt.attempt, storeRetry); !within(d, tt.base) {
					t.Fatalf("backoff(%d) = %v, want %v ±%.0f%%", tt.attempt, d, tt.base, jitterFraction*100)
				}
			}
		})
	}
}

func TestRetryConfig_Delay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		retryAfter time.Duration
		check      func(time.Duration) bool
	}{
		{"no hint uses backoff", 0, func(d time.Duration) bool { return within(d, 100*time.Millisecond) }},
		{"longer hint wins", 400 * time.Millisecond, func(d time.Duration) bool { return d == 400*time.Millisecond }},
		{"hint capped at max interval", time.Minute, func(d time.Duration) bool { return d == storeRetry.maxInterval }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if d := storeRetry.delay(1, tt.retryAfter); !tt.check(d) {
				t.Errorf("delay(1, %v) = %v", tt.retryAfter, d)
			}
		})
	}
}

func TestRetryConfig_Attempts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, 3},
		{http.MethodHead, 3},
		{http.MethodPut, 3},
		{http.MethodPatch, 3},
		{http.MethodDelete, 3},
		{http.MethodPost, 1},
	}

	for _, tt := range tests {
		if got := storeRetry.attempts(tt.method); got != tt.want {
			t.Errorf("attempts(%s) = %d, want %d", tt.method, got, tt.want)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"wrapped deadline", fmt.Errorf("get team: %w", context.DeadlineExceeded), false},
		{"dial refused", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
		{"unknown", errors.New("unexpected EOF"), true},
	}

	for _, tt := range tests {
		if got := isRetryable(tt.err); got != tt.want {
			t.Errorf("%s: isRetryable() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	retryable := map[int]bool{
		http.StatusOK:                  false,
		http.StatusCreated:             false,
		http.StatusNoContent:           false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusConflict:            false,
		http.StatusUnprocessableEntity: false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	}
	for code, want := range retryable {
		if got := isRetryableStatus(code); got != want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	tests := map[string]time.Duration{
		"":                              0,
		"2":                             2 * time.Second,
		" 1 ":                           time.Second,
		"-3":                            0,
		"soon":                          0,
		"Wed, 21 Oct 2026 07:28:00 GMT": 0,
	}
	for in, want := range tests {
		if got := parseRetryAfter(in); got != want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSecureRandFloat64(t *testing.T) {
	t.Parallel()

	lo, hi := math.Inf(1), math.Inf(-1)
	for range 1000 {
		v := secureRandFloat64()
		if v < 0 || v >= 1 {
			t.Fatalf("secureRandFloat64() = %v, want [0, 1)", v)
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	if hi-lo < 0.5 {
		t.Errorf("1000 samples spread over only [%v, %v]", lo, hi)
	}
}
