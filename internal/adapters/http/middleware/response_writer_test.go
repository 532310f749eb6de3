package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResponseWriter_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(rw *responseWriter)
		want  int
	}{
		{name: "default", write: func(*responseWriter) {}, want: http.StatusOK},
		{name: "explicit", write: func(rw *responseWriter) { rw.WriteHeader(http.StatusConflict) }, want: http.StatusConflict},
		{
			name: "first status wins",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusCreated)
				rw.WriteHeader(http.StatusInternalServerError)
			},
			want: http.StatusCreated,
		},
		{
			name: "implicit on write",
			write: func(rw *responseWriter) {
				_, _ = rw.Write([]byte("{}"))
				rw.WriteHeader(http.StatusNotFound)
			},
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			if rw.statusCode != tt.want {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.want)
			}
			if rec.Code != tt.want {
				t.Errorf("recorded code = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())
	_, _ = rw.Write([]byte("abc"))
	_, _ = rw.Write([]byte("de"))

	if rw.written != 5 {
		t.Errorf("written = %d, want 5", rw.written)
	}
}

// readerFromRecorder marks whether the fast path was taken.
type readerFromRecorder struct {
	*httptest.ResponseRecorder
	used bool
}

func (r *readerFromRecorder) ReadFrom(src io.Reader) (int64, error) {
	r.used = true
	return io.Copy(r.ResponseRecorder, src)
}

func TestResponseWriter_ReadFrom(t *testing.T) {
	t.Parallel()

	t.Run("delegates to underlying ReaderFrom", func(t *testing.T) {
		t.Parallel()
		inner := &readerFromRecorder{ResponseRecorder: httptest.NewRecorder()}
		rw := newResponseWriter(inner)

		// Hide strings.Reader's WriteTo so io.Copy picks ReadFrom.
		src := struct{ io.Reader }{strings.NewReader("attachment bytes")}
		n, err := io.Copy(rw, src)
		if err != nil {
			t.Fatalf("io.Copy() error = %v", err)
		}
		if !inner.used {
			t.Error("underlying ReadFrom was not used")
		}
		if n != 16 || rw.written != 16 {
			t.Errorf("copied %d, written %d, want 16", n, rw.written)
		}
	})

	t.Run("falls back to plain copy", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		rw := newResponseWriter(rec)

		if _, err := rw.ReadFrom(strings.NewReader("hello")); err != nil {
			t.Fatalf("ReadFrom() error = %v", err)
		}
		if rec.Body.String() != "hello" || rw.written != 5 {
			t.Errorf("body = %q, written = %d", rec.Body.String(), rw.written)
		}
		if !rw.headerWritten {
			t.Error("headerWritten = false after ReadFrom")
		}
	})
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if newResponseWriter(rec).Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
