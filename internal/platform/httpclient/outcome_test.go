package httpclient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/sony/gobreaker/v2"
)

func TestOutcome(t *testing.T) {
	t.Parallel()

	status := func(code int) *http.Response { return &http.Response{StatusCode: code} }

	tests := []struct {
		name string
		resp *http.Response
		err  error
		want string
	}{
		{"ok", status(http.StatusOK), nil, outcomeSuccess},
		{"created", status(http.StatusCreated), nil, outcomeSuccess},
		{"not found is an answer", status(http.StatusNotFound), nil, outcomeRejected},
		{"conflict is an answer", status(http.StatusConflict), nil, outcomeRejected},
		{"retries exhausted", status(http.StatusServiceUnavailable), errors.New("HTTP 503 from team-store"), outcomeServerError},
		{"throttled", status(http.StatusTooManyRequests), errors.New("HTTP 429"), outcomeServerError},
		{"breaker open", nil, gobreaker.ErrOpenState, outcomeCircuitOpen},
		{"half-open overflow", nil, gobreaker.ErrTooManyRequests, outcomeCircuitOpen},
		{"caller canceled", nil, fmt.Errorf("waiting: %w", context.Canceled), outcomeCanceled},
		{"deadline", nil, context.DeadlineExceeded, outcomeCanceled},
		{"connection refused", nil, errors.New("dial tcp: connection refused"), outcomeTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := outcome(tt.resp, tt.err); got != tt.want {
				t.Errorf("outcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToUint32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want uint32
	}{
		{-1, 0},
		{0, 0},
		{3, 3},
		{math.MaxInt, math.MaxUint32},
	}
	for _, tt := range tests {
		if got := toUint32(tt.in); got != tt.want {
			t.Errorf("toUint32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
