// Package handlers provides HTTP request handlers for the orchestrator's API
// endpoints. Handlers decode and validate input, read the caller from the
// request context and delegate to the application services.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// TeamHandler handles HTTP requests for teams and their membership.
type TeamHandler struct {
	svc  ports.TeamService
	read ports.ReadProjector
}

// NewTeamHandler creates a new TeamHandler. Reads go through the projector,
// writes through the team service.
func NewTeamHandler(svc ports.TeamService, read ports.ReadProjector) *TeamHandler {
	return &TeamHandler{svc: svc, read: read}
}

// ListTeams handles GET /api/v1/teams.
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	teams, err := h.read.MyTeams(r.Context(), p)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTeamListResponse(teams))
}

// CreateTeam handles POST /api/v1/teams.
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTeamWithLeader(r.Context(), p, ports.CreateTeamRequest{
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    req.LeaderID,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTeamResponse(created))
}

// GetTeam handles GET /api/v1/teams/{id}.
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.read.GetTeam(r.Context(), p, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTeamResponse(t))
}

// UpdateTeam handles PATCH /api/v1/teams/{id}.
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTeamRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.EditTeam(r.Context(), p, id, req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTeamResponse(updated))
}

// DeleteTeam handles DELETE /api/v1/teams/{id}. The body reports whether the
// former leader was demoted.
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.DeleteTeam(r.Context(), p, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDeleteTeamResponse(res))
}

// TransferLeadership handles PUT /api/v1/teams/{id}/leader.
func (h *TeamHandler) TransferLeadership(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TransferLeadershipRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.TransferLeadership(r.Context(), p, id, req.LeaderID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTransferResponse(res))
}

// AddMember handles POST /api/v1/teams/{id}/members.
func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.AddMember(r.Context(), p, id, req.UserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTeamResponse(t))
}

// RemoveMember handles DELETE /api/v1/teams/{id}/members/{userId}.
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	userID, err := parseID(r, "userId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.RemoveMember(r.Context(), p, id, userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTeamResponse(t))
}
