package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// AdminHandler exposes the invariant audit and role reconciliation.
type AdminHandler struct {
	svc ports.MaintenanceService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc ports.MaintenanceService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Audit handles GET /api/v1/admin/invariants.
func (h *AdminHandler) Audit(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	report, err := h.svc.Audit(r.Context(), p)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAuditResponse(report))
}

// Reconcile handles POST /api/v1/admin/reconcile?dry_run=. A missing dry_run
// applies the repairs.
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	dryRun, err := queryBool(r, "dry_run")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	report, err := h.svc.Reconcile(r.Context(), p, dryRun != nil && *dryRun)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReconcileResponse(report))
}
