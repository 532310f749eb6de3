package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves liveness and readiness.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Any hard failure answers 503. When
// only degraded checks fail the service stays ready and says so.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	status, code := statusReady, http.StatusOK
	for name, err := range results {
		switch {
		case err == nil:
			checks[name] = statusOK
		case errors.Is(err, ports.ErrDegraded):
			checks[name] = err.Error()
			if status == statusReady {
				status = statusDegraded
			}
		default:
			checks[name] = err.Error()
			status, code = statusNotReady, http.StatusServiceUnavailable
		}
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
