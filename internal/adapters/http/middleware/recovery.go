package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
)

// errPanic is what the client sees. The panic value stays in the log.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a 500 problem document with kind
// "internal" and closes the connection, since the panicking handler may have
// left the request body half read. Nothing is written when the response had
// already started. http.ErrAbortHandler passes through untouched.
//
// Recovery runs outside RequestID, so the request ID is read back from the
// response header RequestID set.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}
				logPanic(logger, r, rw, v)

				if rw.headerWritten {
					return
				}
				rw.Header().Set("Connection", "close")
				dto.WriteErrorResponse(rw, r, errPanic)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

func logPanic(logger *slog.Logger, r *http.Request, rw *responseWriter, v any) {
	attrs := []any{
		slog.String("panic", fmt.Sprint(v)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("response_started", rw.headerWritten),
		slog.String("stack", string(debug.Stack())),
	}
	if id := rw.Header().Get(headerRequestID); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	logger.ErrorContext(r.Context(), "handler panicked", attrs...)
}
