package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		incoming  string
		wantReuse bool
	}{
		{name: "generates when absent", incoming: ""},
		{name: "reuses incoming header", incoming: "incoming-123", wantReuse: true},
		{name: "replaces oversized header", incoming: strings.Repeat("x", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotID = middleware.RequestIDFromContext(r.Context())
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", http.NoBody)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			handler.ServeHTTP(rec, req)

			if tt.wantReuse {
				if gotID != tt.incoming {
					t.Errorf("RequestIDFromContext = %q, want %q", gotID, tt.incoming)
				}
			} else if _, err := uuid.Parse(gotID); err != nil {
				t.Errorf("generated ID %q is not a UUID: %v", gotID, err)
			}
			if respID := rec.Header().Get("X-Request-ID"); respID != gotID {
				t.Errorf("response X-Request-ID = %q, want %q", respID, gotID)
			}
		})
	}
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ids[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 100 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", http.NoBody)
		handler.ServeHTTP(rec, req)
	}

	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestRequestIDFromContext_NotFound(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty string", id)
	}
}
