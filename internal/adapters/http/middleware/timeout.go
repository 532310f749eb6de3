package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

var errDeadline = fmt.Errorf("%w: request deadline exceeded", domain.ErrUnavailable)

// Timeout bounds a request to d. The handler's context carries the
// deadline, so store calls and saga steps in flight are cancelled with it.
// A handler that overruns gets a 504 problem document of kind unavailable,
// and whatever it had buffered is dropped. A handler panic is re-raised on
// the serving goroutine so Recovery sees it.
//
// Responses are buffered in full; do not wrap streaming routes.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)
			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				bw.copyTo(w)
			case <-ctx.Done():
				bw.abandon()
				writeTimeout(w, r)
			}
		})
	}
}

func writeTimeout(w http.ResponseWriter, r *http.Request) {
	resp := dto.NewErrorResponse(r, errDeadline)
	resp.Status = http.StatusGatewayTimeout
	resp.Title = http.StatusText(http.StatusGatewayTimeout)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusGatewayTimeout)
	_ = json.NewEncoder(w).Encode(resp)
}

// bufferedWriter holds a handler's response until Timeout decides whether it
// is delivered. After abandon, writes fail with http.ErrHandlerTimeout.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(b)
}

func (bw *bufferedWriter) abandon() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.abandoned = true
}

// copyTo runs after the handler returned, so the header map is no longer
// touched concurrently.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	_, _ = bw.body.WriteTo(w)
}
