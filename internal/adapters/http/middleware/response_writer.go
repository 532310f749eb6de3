// Package middleware holds the inbound HTTP pipeline. The orchestrator runs
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Authenticate → Timeout → Handler
//
// with Timeout skipped for attachment transfers. Each middleware is a
// func(http.Handler) http.Handler.
package middleware

import (
	"io"
	"net/http"
)

// responseWriter records the status and byte count for recovery, otel and
// logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader keeps the first status only.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// ReadFrom lets io.Copy of an attachment reach the underlying writer's
// ReaderFrom (sendfile for on-disk blobs) while still counting bytes.
func (rw *responseWriter) ReadFrom(src io.Reader) (int64, error) {
	rw.headerWritten = true
	var (
		n   int64
		err error
	)
	if rf, ok := rw.ResponseWriter.(io.ReaderFrom); ok {
		n, err = rf.ReadFrom(src)
	} else {
		n, err = io.Copy(writerOnly{rw.ResponseWriter}, src)
	}
	rw.written += n
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// writerOnly hides ReadFrom so io.Copy does not recurse.
type writerOnly struct{ io.Writer }
