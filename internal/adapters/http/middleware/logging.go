package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/teamtasks/internal/platform/logging"
)

// accessLog collects attributes that inner middleware learn after Logging
// has started, such as the authenticated caller.
type accessLog struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

type accessLogKey struct{}

// Annotate adds attributes to the "request completed" entry of the current
// request. It is a no-op outside the Logging middleware.
func Annotate(ctx context.Context, attrs ...slog.Attr) {
	al, ok := ctx.Value(accessLogKey{}).(*accessLog)
	if !ok {
		return
	}
	al.mu.Lock()
	al.attrs = append(al.attrs, attrs...)
	al.mu.Unlock()
}

// Logging returns middleware that logs request start and completion events.
// It stores a child logger carrying the request and correlation IDs via
// logging.WithLogger for downstream use. Completion is logged at WARN for
// client errors and ERROR for server errors, with the matched route pattern
// so that path parameters do not fan out log queries.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)
			al := &accessLog{}
			ctx = context.WithValue(ctx, accessLogKey{}, al)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			al.mu.Lock()
			attrs = append(attrs, al.attrs...)
			al.mu.Unlock()

			child.LogAttrs(ctx, levelForStatus(rw.statusCode), "request completed", attrs...)
		})
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// routePattern returns the chi pattern that matched r, or the raw path when
// the request did not go through a chi router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
