package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// UserHandler handles HTTP requests for account lifecycle operations.
type UserHandler struct {
	svc  ports.UserService
	read ports.ReadProjector
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc ports.UserService, read ports.ReadProjector) *UserHandler {
	return &UserHandler{svc: svc, read: read}
}

// ListUsers handles GET /api/v1/users?role=&active=.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	active, err := queryBool(r, "active")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter := account.Filter{Role: account.Role(r.URL.Query().Get("role")), Active: active}
	users, err := h.svc.ListUsers(r.Context(), p, filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// EligibleUsers handles GET /api/v1/users/eligible.
func (h *UserHandler) EligibleUsers(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	users, err := h.read.EligibleUsers(r.Context(), p)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// GetUser handles GET /api/v1/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, h.svc.GetUser)
}

// ActivateUser handles POST /api/v1/users/{id}/activate.
func (h *UserHandler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, h.svc.ActivateUser)
}

// DeactivateUser handles POST /api/v1/users/{id}/deactivate.
func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, h.svc.DeactivateUser)
}

// PromoteUser handles POST /api/v1/users/{id}/promote.
func (h *UserHandler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, h.svc.PromoteMember)
}

// DemoteUser handles POST /api/v1/users/{id}/demote.
func (h *UserHandler) DemoteUser(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, h.svc.DemoteMember)
}

type userOp func(ctx context.Context, p identity.Principal, id int64) (*account.User, error)

// userAction runs a single-user operation addressed by the {id} path
// parameter and writes the resulting user.
func (h *UserHandler) userAction(w http.ResponseWriter, r *http.Request, op userOp) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	u, err := op(r.Context(), p, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}
