package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
)

// Tests that install a tracer are not parallel: the provider is global.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter
}

// tracedRouter mounts one route behind RequestID and OpenTelemetry.
func tracedRouter(metrics *telemetry.Metrics, method, pattern string, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.OpenTelemetry(metrics))
	r.MethodFunc(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value)
	for _, a := range s.Attributes() {
		m[a.Key] = a.Value
	}
	return m
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		pattern   string
		path      string
		status    int
		wantName  string
		wantError bool
	}{
		{
			name: "named by route", method: http.MethodGet,
			pattern: "/api/v1/teams/{id}", path: "/api/v1/teams/42", status: http.StatusOK,
			wantName: "HTTP GET /api/v1/teams/{id}",
		},
		{
			name: "client error is not a span error", method: http.MethodPost,
			pattern: "/api/v1/tasks/{id}/comments", path: "/api/v1/tasks/42/comments", status: http.StatusNotFound,
			wantName: "HTTP POST /api/v1/tasks/{id}/comments",
		},
		{
			name: "5xx marks the span", method: http.MethodGet,
			pattern: "/api/v1/admin/invariants", path: "/api/v1/admin/invariants", status: http.StatusInternalServerError,
			wantName: "HTTP GET /api/v1/admin/invariants", wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := setupTracer(t)

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			req.Header.Set("X-Request-ID", "req-otel-1")
			tracedRouter(nil, tt.method, tt.pattern, tt.status).ServeHTTP(httptest.NewRecorder(), req)

			spans := exporter.GetSpans().Snapshots()
			if len(spans) != 1 {
				t.Fatalf("got %d spans, want 1", len(spans))
			}
			s := spans[0]
			if s.Name() != tt.wantName {
				t.Errorf("span name = %q, want %q", s.Name(), tt.wantName)
			}
			attrs := spanAttrs(s)
			if got := attrs["http.route"].AsString(); got != tt.pattern {
				t.Errorf("http.route = %q, want %q", got, tt.pattern)
			}
			if got := attrs["http.status_code"].AsInt64(); got != int64(tt.status) {
				t.Errorf("http.status_code = %d, want %d", got, tt.status)
			}
			if got := attrs["request_id"].AsString(); got != "req-otel-1" {
				t.Errorf("request_id = %q, want req-otel-1", got)
			}
			if isErr := s.Status().Code == codes.Error; isErr != tt.wantError {
				t.Errorf("span error = %v, want %v", isErr, tt.wantError)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesCallerTrace(t *testing.T) {
	exporter := setupTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", http.NoBody)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	tracedRouter(nil, http.MethodGet, "/api/v1/teams", http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != traceID {
		t.Errorf("trace id = %s, want %s", got, traceID)
	}
}

func TestOpenTelemetry_Metrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := telemetry.NewMetrics(mp, "teamtasks-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	for _, status := range []int{http.StatusOK, http.StatusConflict, http.StatusConflict, http.StatusServiceUnavailable} {
		h := tracedRouter(metrics, http.MethodPost, "/api/v1/teams", status)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/teams", http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	byResult := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("request total is %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(telemetry.AttrResult)
				byResult[v.AsString()] += dp.Value
			}
		}
	}

	want := map[string]int64{"success": 1, "client_error": 2, "server_error": 1}
	for result, n := range want {
		if byResult[result] != n {
			t.Errorf("requests with result %s = %d, want %d (all: %v)", result, byResult[result], n, byResult)
		}
	}
}
