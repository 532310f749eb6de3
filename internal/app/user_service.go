package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService: the account lifecycle and the
// role label changes that must agree with team leadership.
type UserService struct {
	base
}

// NewUserService creates a UserService over the given stores.
func NewUserService(stores Stores, settings Settings, metrics *telemetry.Metrics, logger *slog.Logger) *UserService {
	return &UserService{base: newBase(stores, settings, metrics, logger)}
}

// ListUsers returns users matching the filter.
func (s *UserService) ListUsers(ctx context.Context, p identity.Principal, filter account.Filter) ([]account.User, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if filter.Role != "" && !filter.Role.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{"role": fmt.Sprintf("invalid: %q", filter.Role)}}
	}

	users, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) ([]account.User, error) {
		return s.stores.Accounts.ListUsers(ctx, filter)
	})
	if err != nil {
		s.logFailure(ctx, "ListUsers", err)
		return nil, err
	}
	return users, nil
}

// GetUser returns one user. Non-admins may only read their own record.
func (s *UserService) GetUser(ctx context.Context, p identity.Principal, id int64) (*account.User, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && p.UserID != id {
		return nil, fmt.Errorf("%w: users may only read their own account", domain.ErrForbidden)
	}
	return s.user(rc, id)
}

// ActivateUser marks the account active. Activating an active account
// succeeds without a write.
func (s *UserService) ActivateUser(ctx context.Context, p identity.Principal, id int64) (*account.User, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	u, err := s.user(rc, id)
	if err != nil {
		return nil, err
	}
	if u.Active {
		return u, nil
	}

	updated, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*account.User, error) {
		return s.stores.Accounts.UpdateUser(ctx, id, account.SetActive(true))
	})
	if err != nil {
		s.logFailure(ctx, "ActivateUser", err, slog.Int64("user_id", id))
		return nil, err
	}
	s.logger.InfoContext(ctx, "user activated", slog.Int64("user_id", id))
	return updated, nil
}

// DeactivateUser removes a plain member from their team first and marks the
// account inactive second, so a failure in between leaves an active account
// outside any team rather than an inactive member. If the deactivation
// fails the membership is restored. Team leaders are refused until their
// team is handed over or deleted.
func (s *UserService) DeactivateUser(ctx context.Context, p identity.Principal, id int64) (*account.User, error) {
	const op = "DeactivateUser"
	rc := s.newRequest(ctx)

	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if p.UserID == id {
		return nil, fmt.Errorf("%w: admins cannot deactivate themselves", domain.ErrConflict)
	}

	u, err := s.user(rc, id)
	if err != nil {
		return nil, err
	}
	current, err := s.teamOf(rc, id)
	if err != nil {
		return nil, err
	}
	led, err := s.teamsLedBy(rc, id)
	if err != nil {
		return nil, err
	}
	if len(led) > 0 {
		return nil, fmt.Errorf("user %d leads team %d; transfer leadership or delete the team first: %w",
			id, led[0].ID, domain.ErrConflict)
	}
	if !u.Active && current == nil {
		return u, nil
	}

	s.logger.InfoContext(ctx, "deactivating user", slog.Int64("user_id", id), slog.Bool("in_team", current != nil))

	if current != nil {
		remove := &removeMemberStep{teams: s.stores.Teams, timeout: s.settings.StepTimeout, teamID: current.ID, userID: id}
		if err := rc.AddAction(remove); err != nil {
			return nil, err
		}
	}
	deactivate := &setActiveStep{accounts: s.stores.Accounts, timeout: s.settings.StepTimeout, userID: id, active: false, was: u.Active}
	if err := rc.AddAction(deactivate); err != nil {
		return nil, err
	}

	if err := s.finishSaga(ctx, op, rc.Commit(ctx)); err != nil {
		s.logFailure(ctx, op, err, slog.Int64("user_id", id))
		return nil, err
	}

	rc.Invalidate(userKey(id))
	return s.user(rc, id)
}

// PromoteMember sets the team leader role. It is only allowed for an active
// Member who already leads exactly one team, which is the state a create
// interrupted between its two steps leaves behind.
func (s *UserService) PromoteMember(ctx context.Context, p identity.Principal, id int64) (*account.User, error) {
	const op = "PromoteMember"
	rc := s.newRequest(ctx)

	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	u, err := s.user(rc, id)
	if err != nil {
		return nil, err
	}
	if !u.Active {
		return nil, fmt.Errorf("user %d is inactive: %w", id, domain.ErrNotEligible)
	}
	if u.Role != account.RoleMember {
		return nil, fmt.Errorf("user %d already has role %s: %w", id, u.Role, domain.ErrConflict)
	}
	led, err := s.teamsLedBy(rc, id)
	if err != nil {
		return nil, err
	}
	if len(led) != 1 {
		return nil, fmt.Errorf("user %d leads %d teams; create a team with them as leader instead: %w",
			id, len(led), domain.ErrConflict)
	}

	return s.setRole(ctx, op, id, account.RoleTeamLeader)
}

// DemoteMember sets the member role on a team leader who leads no team.
func (s *UserService) DemoteMember(ctx context.Context, p identity.Principal, id int64) (*account.User, error) {
	const op = "DemoteMember"
	rc := s.newRequest(ctx)

	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	u, err := s.user(rc, id)
	if err != nil {
		return nil, err
	}
	if u.Role != account.RoleTeamLeader {
		return nil, fmt.Errorf("user %d has role %s, not %s: %w", id, u.Role, account.RoleTeamLeader, domain.ErrConflict)
	}
	led, err := s.teamsLedBy(rc, id)
	if err != nil {
		return nil, err
	}
	if len(led) > 0 {
		return nil, fmt.Errorf("user %d leads team %d; transfer leadership or delete the team first: %w",
			id, led[0].ID, domain.ErrConflict)
	}

	return s.setRole(ctx, op, id, account.RoleMember)
}

func (s *UserService) setRole(ctx context.Context, op string, id int64, role account.Role) (*account.User, error) {
	updated, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*account.User, error) {
		return s.stores.Accounts.UpdateUser(ctx, id, account.SetRole(role))
	})
	if err != nil {
		s.logFailure(ctx, op, err, slog.Int64("user_id", id))
		return nil, err
	}
	s.logger.InfoContext(ctx, "role changed",
		slog.String("operation", op),
		slog.Int64("user_id", id),
		slog.String("role", role.String()),
	)
	return updated, nil
}
