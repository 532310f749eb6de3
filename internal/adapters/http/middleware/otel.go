package middleware

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/teamtasks/internal/adapters/http"

// OpenTelemetry opens a server span per request, continuing any W3C trace
// context the caller sent, and records the request metrics. After routing
// the span is renamed to the matched pattern ("HTTP GET /api/v1/teams/{id}")
// so names and metric labels stay bounded. metrics may be nil.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.GetTracerProvider().Tracer(tracerName)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()
			if id := RequestIDFromContext(ctx); id != "" {
				span.SetAttributes(attribute.String("request_id", id))
			}

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			route, status := routePattern(r), rw.statusCode
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.status_code", status),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			if metrics != nil {
				attrs := metric.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					telemetry.AttrHTTPRoute.String(route),
					telemetry.AttrHTTPStatus.Int(status),
					telemetry.AttrResult.String(statusClass(status)),
				)
				recordServer(ctx, metrics, time.Since(start), attrs)
			}
		})
	}
}

func recordServer(ctx context.Context, m *telemetry.Metrics, elapsed time.Duration, attrs metric.MeasurementOption) {
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// statusClass separates refusals the caller caused from failures of ours.
func statusClass(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status >= http.StatusBadRequest:
		return "client_error"
	default:
		return "success"
	}
}
