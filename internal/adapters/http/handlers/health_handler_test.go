package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
	"github.com/jsamuelsen11/teamtasks/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	halfOpen := fmt.Errorf("team-store: %w (circuit breaker half-open)", ports.ErrDegraded)

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"account-store": nil, "team-store": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]string{"account-store": "ok", "team-store": "ok"},
		},
		{
			name:       "store down",
			results:    map[string]error{"account-store": errors.New("connection refused"), "blob-store": nil},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]string{"account-store": "connection refused", "blob-store": "ok"},
		},
		{
			name:       "breaker probing",
			results:    map[string]error{"team-store": halfOpen, "task-store": nil},
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
			wantChecks: map[string]string{"team-store": halfOpen.Error(), "task-store": "ok"},
		},
		{
			name:       "down outranks degraded",
			results:    map[string]error{"team-store": halfOpen, "task-store": errors.New("open")},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			resp := decodeJSON[struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			for name, want := range tt.wantChecks {
				if resp.Checks[name] != want {
					t.Errorf("checks[%s] = %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}
