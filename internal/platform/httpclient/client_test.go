package httpclient_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/platform/httpclient"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

type call struct {
	method string
	body   string
	header http.Header
}

// fakeStore answers with script[i] on call i and repeats the last status
// once the script runs out. Every response body is "status <code>".
type fakeStore struct {
	*httptest.Server
	retryAfter string

	mu     sync.Mutex
	script []int
	calls  []call
}

func newFakeStore(t *testing.T, script ...int) *fakeStore {
	t.Helper()
	fs := &fakeStore{script: script}
	fs.Server = httptest.NewServer(http.HandlerFunc(fs.serve))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeStore) serve(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)

	fs.mu.Lock()
	n := len(fs.calls)
	fs.calls = append(fs.calls, call{method: r.Method, body: string(b), header: r.Header.Clone()})
	status := fs.script[min(n, len(fs.script)-1)]
	fs.mu.Unlock()

	if status >= http.StatusBadRequest && fs.retryAfter != "" {
		w.Header().Set("Retry-After", fs.retryAfter)
	}
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, "status %d", status)
}

// setScript replaces the script and resets nothing else.
func (fs *fakeStore) setScript(script ...int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.script = script
}

func (fs *fakeStore) recorded() []call {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]call(nil), fs.calls...)
}

func storeConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// send issues method path against c and returns the status (0 without a
// response), the body and the error. The body is always closed.
func send(ctx context.Context, t *testing.T, c *httpclient.Client, method, path, body string) (int, string, error) {
	t.Helper()
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+path, rd)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	resp, err := c.Do(ctx, req)
	if resp == nil {
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b), err
}

func TestDo_Attempts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		script     []int
		wantStatus int
		wantErr    bool
		wantCalls  int
	}{
		{name: "first try", method: http.MethodGet, script: []int{200}, wantStatus: 200, wantCalls: 1},
		{name: "5xx then ok", method: http.MethodGet, script: []int{500, 500, 200}, wantStatus: 200, wantCalls: 3},
		{name: "429 then ok", method: http.MethodGet, script: []int{429, 200}, wantStatus: 200, wantCalls: 2},
		{name: "404 is an answer", method: http.MethodGet, script: []int{404}, wantStatus: 404, wantCalls: 1},
		{name: "409 is an answer", method: http.MethodPatch, script: []int{409}, wantStatus: 409, wantCalls: 1},
		{name: "exhausted keeps last response", method: http.MethodGet, script: []int{503}, wantStatus: 503, wantErr: true, wantCalls: 3},
		{name: "delete retried", method: http.MethodDelete, script: []int{502, 204}, wantStatus: 204, wantCalls: 2},
		{name: "post sent once", method: http.MethodPost, script: []int{502}, wantStatus: 502, wantErr: true, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeStore(t, tt.script...)
			client := httpclient.New(storeConfig(store.URL), "team-store", nil, discardLogger())

			status, body, err := send(context.Background(), t, client, tt.method, "/api/v1/teams/4", "")
			if (err != nil) != tt.wantErr {
				t.Errorf("Do() error = %v, wantErr %v", err, tt.wantErr)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if want := fmt.Sprintf("status %d", tt.wantStatus); body != want {
				t.Errorf("body = %q, want %q", body, want)
			}
			if got := len(store.recorded()); got != tt.wantCalls {
				t.Errorf("store saw %d calls, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestDo_ReplaysBody(t *testing.T) {
	t.Parallel()

	store := newFakeStore(t, 500, 200)
	client := httpclient.New(storeConfig(store.URL), "task-store", nil, discardLogger())

	const patch = `{"title":"ship it"}`
	if _, _, err := send(context.Background(), t, client, http.MethodPatch, "/api/v1/tasks/3", patch); err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	calls := store.recorded()
	if len(calls) != 2 {
		t.Fatalf("store saw %d calls, want 2", len(calls))
	}
	for i, c := range calls {
		if c.body != patch {
			t.Errorf("attempt %d body = %q, want %q", i+1, c.body, patch)
		}
	}
}

func TestDo_RetryAfterCappedAtMaxInterval(t *testing.T) {
	t.Parallel()

	store := newFakeStore(t, 503, 200)
	store.retryAfter = "5"
	client := httpclient.New(storeConfig(store.URL), "task-store", nil, discardLogger())

	start := time.Now()
	if _, _, err := send(context.Background(), t, client, http.MethodGet, "/api/v1/tasks", ""); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond || elapsed > 2*time.Second {
		t.Errorf("elapsed = %v, want about the 100ms max interval", elapsed)
	}
}

func TestDo_PropagatesIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctx      func() context.Context
		wantReq  string
		wantCorr string
	}{
		{
			name: "both set",
			ctx: func() context.Context {
				ctx := httpclient.WithRequestID(context.Background(), "req-123")
				return httpclient.WithCorrelationID(ctx, "corr-456")
			},
			wantReq: "req-123", wantCorr: "corr-456",
		},
		{
			name:    "request only",
			ctx:     func() context.Context { return httpclient.WithRequestID(context.Background(), "req-9") },
			wantReq: "req-9",
		},
		{
			name: "none",
			ctx:  context.Background,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeStore(t, 200)
			client := httpclient.New(storeConfig(store.URL), "account-store", nil, discardLogger())
			if _, _, err := send(tt.ctx(), t, client, http.MethodGet, "/api/v1/users/1", ""); err != nil {
				t.Fatalf("Do() error = %v", err)
			}

			h := store.recorded()[0].header
			if got := h.Get("X-Request-ID"); got != tt.wantReq {
				t.Errorf("X-Request-ID = %q, want %q", got, tt.wantReq)
			}
			if got := h.Get("X-Correlation-ID"); got != tt.wantCorr {
				t.Errorf("X-Correlation-ID = %q, want %q", got, tt.wantCorr)
			}
		})
	}
}

func TestDo_RateLimitHonoursContext(t *testing.T) {
	t.Parallel()

	store := newFakeStore(t, 200)
	cfg := storeConfig(store.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	client := httpclient.New(cfg, "account-store", nil, discardLogger())

	if _, _, err := send(context.Background(), t, client, http.MethodGet, "/api/v1/users", ""); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, _, err := send(ctx, t, client, http.MethodGet, "/api/v1/users", ""); err == nil {
		t.Fatal("second Do() error = nil, want the limiter to give up at the deadline")
	}
	if got := len(store.recorded()); got != 1 {
		t.Errorf("store saw %d calls, want 1", got)
	}
}

// TestBreaker_Lifecycle walks one store through closed, open, half-open and
// back to closed, checking what Do and HealthCheck report at each step.
func TestBreaker_Lifecycle(t *testing.T) {
	t.Parallel()

	store := newFakeStore(t, 500)
	cfg := storeConfig(store.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "team-store", nil, discardLogger())
	ctx := context.Background()

	if err := client.HealthCheck(ctx); err != nil {
		t.Fatalf("fresh HealthCheck() = %v, want nil", err)
	}

	if _, _, err := send(ctx, t, client, http.MethodGet, "/api/v1/teams/9", ""); err == nil {
		t.Fatal("Do() against a failing store returned nil error")
	}

	// Open: rejected without reaching the store, and reported as failing.
	before := len(store.recorded())
	if _, _, err := send(ctx, t, client, http.MethodGet, "/api/v1/teams/9", ""); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Do() while open = %v, want gobreaker.ErrOpenState", err)
	}
	if len(store.recorded()) != before {
		t.Error("store was called while the breaker was open")
	}
	err := client.HealthCheck(ctx)
	if err == nil || errors.Is(err, ports.ErrDegraded) || !strings.Contains(err.Error(), "failing") {
		t.Errorf("HealthCheck() while open = %v, want a hard failure", err)
	}

	// Half-open after the timeout: degraded, not failing.
	time.Sleep(150 * time.Millisecond)
	if err := client.HealthCheck(ctx); !errors.Is(err, ports.ErrDegraded) {
		t.Errorf("HealthCheck() while half-open = %v, want ports.ErrDegraded", err)
	}

	// A good probe closes it again.
	store.setScript(200)
	if status, _, err := send(ctx, t, client, http.MethodGet, "/api/v1/teams/9", ""); err != nil || status != http.StatusOK {
		t.Fatalf("probe = %d, %v; want 200, nil", status, err)
	}
	if err := client.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() after recovery = %v, want nil", err)
	}
}

func TestBreaker_IgnoresCallerCancellation(t *testing.T) {
	t.Parallel()

	store := newFakeStore(t, 200)
	cfg := storeConfig(store.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	client := httpclient.New(cfg, "task-store", nil, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := send(ctx, t, client, http.MethodGet, "/api/v1/tasks?leader_id=2", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("Do() with canceled context = %v, want context.Canceled", err)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil: a canceled caller must not trip the breaker", err)
	}
}

func TestDo_RecordsOutcomes(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := telemetry.NewMetrics(mp, "teamtasks-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	store := newFakeStore(t, 200, 404, 500)
	cfg := storeConfig(store.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "team-store", metrics, discardLogger())

	ctx := context.Background()
	for range 4 { // 200, 404, 500, then rejected by the open breaker
		_, _, _ = send(ctx, t, client, http.MethodGet, "/api/v1/teams/1", "")
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.client.request.total" {
				continue
			}
			for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
				v, _ := dp.Attributes.Value(telemetry.AttrResult)
				got[v.AsString()] += dp.Value
			}
		}
	}

	want := map[string]int64{"success": 1, "rejected": 1, "server_error": 1, "circuit_open": 1}
	for outcome, n := range want {
		if got[outcome] != n {
			t.Errorf("%s = %d, want %d (all: %v)", outcome, got[outcome], n, got)
		}
	}
}

func TestClient_Accessors(t *testing.T) {
	t.Parallel()

	client := httpclient.New(storeConfig("http://accounts.internal:8081"), "account-store", nil, discardLogger())
	if got := client.Name(); got != "account-store" {
		t.Errorf("Name() = %q, want account-store", got)
	}
	if got := client.BaseURL(); got != "http://accounts.internal:8081" {
		t.Errorf("BaseURL() = %q", got)
	}
}
