package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/acl/accounts"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/platform/httpclient"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.AccountStore  = (*AccountClient)(nil)
	_ ports.HealthChecker = (*AccountClient)(nil)
)

// AccountClient is the outbound adapter for the Account Store. It
// implements [ports.AccountStore]; role labels and the active flag are
// translated by [accounts].
//
// The underlying [httpclient.Client] provides circuit breaking, retry of
// idempotent calls, OpenTelemetry tracing, and health checking.
type AccountClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewAccountClient creates an AccountClient that sends requests through the
// given [httpclient.Client], whose BaseURL points at the Account Store root.
func NewAccountClient(client *httpclient.Client, logger *slog.Logger) *AccountClient {
	return &AccountClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetUser fetches GET /api/v1/users/{id}.
func (c *AccountClient) GetUser(ctx context.Context, id int64) (*account.User, error) {
	var dto accounts.UserDTO
	if err := c.req.Do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	u, err := accounts.ToDomainUser(&dto)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers fetches GET /api/v1/users, filtered by role and active flag.
func (c *AccountClient) ListUsers(ctx context.Context, filter account.Filter) ([]account.User, error) {
	v := url.Values{}
	if filter.Role != "" {
		v.Set("role", accounts.RoleLabel(filter.Role))
	}
	if filter.Active != nil {
		v.Set("active", strconv.FormatBool(*filter.Active))
	}

	var dto accounts.UserListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, "/api/v1/users"+encodeQuery(v), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return accounts.ToDomainUserList(dto)
}

// UpdateUser sends PATCH /api/v1/users/{id}. The store treats the patch as
// absolute values, so replaying it is safe.
func (c *AccountClient) UpdateUser(ctx context.Context, id int64, patch account.Patch) (*account.User, error) {
	var dto accounts.UserDTO
	path := fmt.Sprintf("/api/v1/users/%d", id)
	if err := c.req.Do(ctx, http.MethodPatch, path, http.StatusOK, accounts.ToUpdateUserRequest(patch), &dto); err != nil {
		return nil, err
	}
	u, err := accounts.ToDomainUser(&dto)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Name implements [ports.HealthChecker].
func (c *AccountClient) Name() string { return c.req.Name() }

// HealthCheck reports the Account Store's circuit breaker state.
func (c *AccountClient) HealthCheck(ctx context.Context) error { return c.req.HealthCheck(ctx) }

// encodeQuery renders v with a leading "?" or returns "" when v is empty.
func encodeQuery(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
