package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/platform/httpclient"
)

// withIDs runs RequestID then CorrelationID, as the router does.
func withIDs(h http.HandlerFunc) http.Handler {
	return middleware.RequestID()(middleware.CorrelationID()(h))
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		correlation string // sent header; "" means absent
		want        string // "" means "same as the request ID"
	}{
		{name: "caller value kept", correlation: "corr-abc", want: "corr-abc"},
		{name: "absent falls back"},
		{name: "embedded space falls back", correlation: "corr id"},
		{name: "oversized falls back", correlation: strings.Repeat("c", 300)},
		{name: "non-ascii falls back", correlation: "corr-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var inCtx string
			h := withIDs(func(_ http.ResponseWriter, r *http.Request) {
				inCtx = middleware.CorrelationIDFromContext(r.Context())
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", http.NoBody)
			if tt.correlation != "" {
				req.Header.Set("X-Correlation-ID", tt.correlation)
			}
			h.ServeHTTP(rec, req)

			want := tt.want
			if want == "" {
				want = rec.Header().Get("X-Request-ID")
				if want == "" {
					t.Fatal("X-Request-ID response header is empty")
				}
			}
			if inCtx != want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", inCtx, want)
			}
			if got := rec.Header().Get("X-Correlation-ID"); got != want {
				t.Errorf("response X-Correlation-ID = %q, want %q", got, want)
			}
		})
	}
}

func TestCorrelationIDFromContext(t *testing.T) {
	t.Parallel()

	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("empty context gave %q", id)
	}
	ctx := middleware.WithCorrelationID(context.Background(), "corr-1")
	if id := middleware.CorrelationIDFromContext(ctx); id != "corr-1" {
		t.Errorf("CorrelationIDFromContext = %q, want corr-1", id)
	}
}

func TestIDs_ReachStoreCalls(t *testing.T) {
	t.Parallel()

	seen := make(chan http.Header, 1)
	store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(store.Close)

	client := httpclient.New(&config.ClientConfig{
		BaseURL:        store.URL,
		Timeout:        time.Second,
		Retry:          config.RetryConfig{MaxAttempts: 1},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	}, "team-store", nil, discardLogger())

	h := withIDs(func(w http.ResponseWriter, r *http.Request) {
		out, _ := http.NewRequestWithContext(r.Context(), http.MethodGet, store.URL+"/api/v1/teams/1", http.NoBody)
		resp, err := client.Do(r.Context(), out)
		if err != nil {
			t.Errorf("store call: %v", err)
			return
		}
		_ = resp.Body.Close()
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/1", http.NoBody)
	req.Header.Set("X-Request-ID", "req-42")
	req.Header.Set("X-Correlation-ID", "corr-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var got http.Header
	select {
	case got = <-seen:
	case <-time.After(2 * time.Second):
		t.Fatal("store was never called")
	}
	if got.Get("X-Request-ID") != "req-42" || got.Get("X-Correlation-ID") != "corr-42" {
		t.Errorf("store saw request id %q and correlation id %q, want req-42 and corr-42",
			got.Get("X-Request-ID"), got.Get("X-Correlation-ID"))
	}
}
