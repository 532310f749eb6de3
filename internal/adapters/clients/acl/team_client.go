package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/acl/teams"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
	"github.com/jsamuelsen11/teamtasks/internal/platform/httpclient"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TeamStore     = (*TeamClient)(nil)
	_ ports.HealthChecker = (*TeamClient)(nil)
)

// TeamClient is the outbound adapter for the Team Store. It implements
// [ports.TeamStore]. The store enforces unique names and single membership
// and answers 409 when either would break; [TranslateHTTPError] turns that
// into domain.ErrConflict.
type TeamClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewTeamClient creates a TeamClient for the Team Store behind client.
func NewTeamClient(client *httpclient.Client, logger *slog.Logger) *TeamClient {
	return &TeamClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetTeam fetches GET /api/v1/teams/{id}.
func (c *TeamClient) GetTeam(ctx context.Context, id int64) (*team.Team, error) {
	var dto teams.TeamDTO
	if err := c.req.Do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/teams/%d", id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	result := teams.ToDomainTeam(&dto)
	return &result, nil
}

// ListTeams fetches GET /api/v1/teams filtered by member, leader, or name.
func (c *TeamClient) ListTeams(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	v := url.Values{}
	if filter.MemberID > 0 {
		v.Set("member_id", strconv.FormatInt(filter.MemberID, 10))
	}
	if filter.LeaderID > 0 {
		v.Set("leader_id", strconv.FormatInt(filter.LeaderID, 10))
	}
	if filter.Name != "" {
		v.Set("name", filter.Name)
	}

	var dto teams.TeamListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, "/api/v1/teams"+encodeQuery(v), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return teams.ToDomainTeamList(dto), nil
}

// CreateTeam sends POST /api/v1/teams with the initial member set.
func (c *TeamClient) CreateTeam(ctx context.Context, t *team.Team) (*team.Team, error) {
	var dto teams.TeamDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/v1/teams", http.StatusCreated, teams.ToCreateTeamRequest(t), &dto); err != nil {
		return nil, err
	}
	result := teams.ToDomainTeam(&dto)
	return &result, nil
}

// UpdateTeam sends PATCH /api/v1/teams/{id}.
func (c *TeamClient) UpdateTeam(ctx context.Context, id int64, patch team.Patch) (*team.Team, error) {
	var dto teams.TeamDTO
	path := fmt.Sprintf("/api/v1/teams/%d", id)
	if err := c.req.Do(ctx, http.MethodPatch, path, http.StatusOK, teams.ToUpdateTeamRequest(patch), &dto); err != nil {
		return nil, err
	}
	result := teams.ToDomainTeam(&dto)
	return &result, nil
}

// DeleteTeam sends DELETE /api/v1/teams/{id}.
func (c *TeamClient) DeleteTeam(ctx context.Context, id int64) error {
	return c.req.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/teams/%d", id), http.StatusNoContent, nil, nil)
}

// AddMember sends POST /api/v1/teams/{id}/members.
func (c *TeamClient) AddMember(ctx context.Context, teamID, userID int64) (*team.Team, error) {
	var dto teams.TeamDTO
	path := fmt.Sprintf("/api/v1/teams/%d/members", teamID)
	if err := c.req.Do(ctx, http.MethodPost, path, http.StatusOK, teams.AddMemberRequestDTO{UserID: userID}, &dto); err != nil {
		return nil, err
	}
	result := teams.ToDomainTeam(&dto)
	return &result, nil
}

// RemoveMember sends DELETE /api/v1/teams/{id}/members/{userId}.
func (c *TeamClient) RemoveMember(ctx context.Context, teamID, userID int64) (*team.Team, error) {
	var dto teams.TeamDTO
	path := fmt.Sprintf("/api/v1/teams/%d/members/%d", teamID, userID)
	if err := c.req.Do(ctx, http.MethodDelete, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	result := teams.ToDomainTeam(&dto)
	return &result, nil
}

// Name implements [ports.HealthChecker].
func (c *TeamClient) Name() string { return c.req.Name() }

// HealthCheck reports the Team Store's circuit breaker state.
func (c *TeamClient) HealthCheck(ctx context.Context) error { return c.req.HealthCheck(ctx) }
