package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	appctx "github.com/jsamuelsen11/teamtasks/internal/app/context"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/invariant"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Compile-time check that TeamService implements ports.TeamService.
var _ ports.TeamService = (*TeamService)(nil)

// TeamService implements ports.TeamService. Operations that touch both the
// Team Store and the Account Store run as sagas: the team write comes first
// and the role write second, so a failure part way leaves a state that the
// saga can undo or that Maintenance.Reconcile can repair.
type TeamService struct {
	base
}

// NewTeamService creates a TeamService over the given stores.
func NewTeamService(stores Stores, settings Settings, metrics *telemetry.Metrics, logger *slog.Logger) *TeamService {
	return &TeamService{base: newBase(stores, settings, metrics, logger)}
}

// CreateTeamWithLeader creates the team with the candidate as its only
// member, then promotes the candidate. A failed promotion deletes the team
// again, so the call can be retried unchanged.
func (s *TeamService) CreateTeamWithLeader(ctx context.Context, p identity.Principal, req ports.CreateTeamRequest) (*team.Team, error) {
	const op = "CreateTeamWithLeader"
	rc := s.newRequest(ctx)

	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	draft := team.Team{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		LeaderID:    req.LeaderID,
		Members:     []int64{req.LeaderID},
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating team",
		slog.String("name", draft.Name),
		slog.Int64("leader_id", draft.LeaderID),
	)

	if err := s.checkEligible(rc, req.LeaderID); err != nil {
		s.logFailure(ctx, op, err, slog.Int64("leader_id", req.LeaderID))
		return nil, err
	}
	taken, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) ([]team.Team, error) {
		return s.stores.Teams.ListTeams(ctx, team.Filter{Name: draft.Name})
	})
	if err != nil {
		s.logFailure(ctx, op, err)
		return nil, err
	}
	if len(taken) > 0 {
		return nil, fmt.Errorf("team name %q: %w", draft.Name, domain.ErrAlreadyExists)
	}

	create := &createTeamStep{teams: s.stores.Teams, timeout: s.settings.StepTimeout, team: draft}
	promote := &setRoleStep{
		accounts: s.stores.Accounts,
		timeout:  s.settings.StepTimeout,
		userID:   req.LeaderID,
		from:     account.RoleMember,
		to:       account.RoleTeamLeader,
	}
	if err := addActions(rc, create, promote); err != nil {
		return nil, err
	}

	if err := s.finishSaga(ctx, op, rc.Commit(ctx), string(invariant.RoleMatchesLeadership)); err != nil {
		s.logFailure(ctx, op, err, slog.String("name", draft.Name))
		return nil, err
	}

	s.logger.InfoContext(ctx, "team created",
		slog.Int64("team_id", create.created.ID),
		slog.Int64("leader_id", req.LeaderID),
	)
	return create.created, nil
}

// DeleteTeam deletes the team first and demotes its former leader second.
// The delete is never undone: when the demotion fails the leader keeps a
// stale role until Maintenance.Reconcile repairs it, and the result says so.
func (s *TeamService) DeleteTeam(ctx context.Context, p identity.Principal, teamID int64) (*ports.DeleteTeamResult, error) {
	const op = "DeleteTeam"
	rc := s.newRequest(ctx)

	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	t, err := s.team(rc, teamID)
	if err != nil {
		s.logFailure(ctx, op, err, slog.Int64("team_id", teamID))
		return nil, err
	}

	s.logger.InfoContext(ctx, "deleting team", slog.Int64("team_id", teamID), slog.Int64("leader_id", t.LeaderID))

	if err := exec(ctx, s.settings.StepTimeout, func(ctx context.Context) error {
		return s.stores.Teams.DeleteTeam(ctx, teamID)
	}); err != nil && !s.teamGone(ctx, op, teamID, t.LeaderID, err) {
		s.logFailure(ctx, op, err, slog.Int64("team_id", teamID))
		return nil, err
	}
	rc.Invalidate(teamKey(teamID))

	demoted := s.demoteFormerLeader(rc, op, t.LeaderID)
	if demoted {
		s.metrics.RecordSaga(ctx, op, telemetry.OutcomeCommitted)
	}
	return &ports.DeleteTeamResult{
		TeamID:         teamID,
		FormerLeaderID: t.LeaderID,
		LeaderDemoted:  demoted,
	}, nil
}

// teamGone decides whether a failed team delete took effect anyway by
// reading the team back. When neither the delete nor the read answered, the
// former leader may be left leading nothing; that is logged for repair.
func (s *TeamService) teamGone(ctx context.Context, op string, teamID, leaderID int64, deleteErr error) bool {
	if !errors.Is(deleteErr, domain.ErrNotFound) && !domain.IsIndeterminate(deleteErr) {
		return false
	}
	_, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*team.Team, error) {
		return s.stores.Teams.GetTeam(ctx, teamID)
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.logger.InfoContext(ctx, "team delete failed but the team is gone, continuing",
			slog.Int64("team_id", teamID), slog.Any("error", deleteErr))
		return true
	case err == nil || !domain.IsIndeterminate(deleteErr):
		return false
	}

	s.metrics.RecordSaga(ctx, op, telemetry.OutcomeRepairPending)
	s.logger.ErrorContext(ctx, "team delete outcome unknown, reconcile may be required",
		slog.String("operation", op),
		slog.Int64("team_id", teamID),
		slog.Int64("user_id", leaderID),
		slog.String("invariant_at_risk", string(invariant.RoleMatchesLeadership)),
		slog.Any("error", deleteErr),
		slog.Any("read_error", err),
	)
	return false
}

// TransferLeadership points the team at a new leader and promotes them; a
// failed promotion moves the pointer back. The former leader is demoted
// once the new leader holds the role, the same way DeleteTeam demotes.
func (s *TeamService) TransferLeadership(ctx context.Context, p identity.Principal, teamID, newLeaderID int64) (*ports.TransferResult, error) {
	const op = "TransferLeadership"
	rc := s.newRequest(ctx)

	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	t, err := s.team(rc, teamID)
	if err != nil {
		return nil, err
	}
	if t.IsLeader(newLeaderID) {
		return nil, fmt.Errorf("user %d already leads team %d: %w", newLeaderID, teamID, domain.ErrConflict)
	}
	if !t.HasMember(newLeaderID) {
		return nil, fmt.Errorf("user %d is not a member of team %d: %w", newLeaderID, teamID, domain.ErrNotEligible)
	}
	candidate, err := s.user(rc, newLeaderID)
	if err != nil {
		return nil, err
	}
	if !candidate.Active || candidate.Role != account.RoleMember {
		return nil, fmt.Errorf("user %d (active=%t, role=%s): %w",
			newLeaderID, candidate.Active, candidate.Role, domain.ErrNotEligible)
	}

	s.logger.InfoContext(ctx, "transferring team leadership",
		slog.Int64("team_id", teamID),
		slog.Int64("from", t.LeaderID),
		slog.Int64("to", newLeaderID),
	)

	move := &setLeaderStep{
		teams:   s.stores.Teams,
		timeout: s.settings.StepTimeout,
		teamID:  teamID,
		from:    t.LeaderID,
		to:      newLeaderID,
	}
	promote := &setRoleStep{
		accounts: s.stores.Accounts,
		timeout:  s.settings.StepTimeout,
		userID:   newLeaderID,
		from:     account.RoleMember,
		to:       account.RoleTeamLeader,
	}
	if err := addActions(rc, move, promote); err != nil {
		return nil, err
	}
	if err := s.finishSaga(ctx, op, rc.Commit(ctx), string(invariant.RoleMatchesLeadership)); err != nil {
		s.logFailure(ctx, op, err, slog.Int64("team_id", teamID))
		return nil, err
	}
	rc.Invalidate(teamKey(teamID))

	return &ports.TransferResult{
		Team:                move.updated,
		FormerLeaderID:      t.LeaderID,
		FormerLeaderDemoted: s.demoteFormerLeader(rc, op, t.LeaderID),
	}, nil
}

// EditTeam changes the name or description. Leadership moves only through
// TransferLeadership.
func (s *TeamService) EditTeam(ctx context.Context, p identity.Principal, teamID int64, patch team.Patch) (*team.Team, error) {
	const op = "EditTeam"
	rc := s.newRequest(ctx)

	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if patch.LeaderID != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"leader_id": "change leadership through the leader endpoint",
		}}
	}
	if patch.IsEmpty() {
		return nil, &domain.ValidationError{Fields: map[string]string{"body": "nothing to change"}}
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	t, err := s.team(rc, teamID)
	if err != nil {
		return nil, err
	}
	if err := canManage(p, t); err != nil {
		return nil, err
	}

	updated, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*team.Team, error) {
		return s.stores.Teams.UpdateTeam(ctx, teamID, patch)
	})
	if err != nil {
		s.logFailure(ctx, op, err, slog.Int64("team_id", teamID))
		return nil, err
	}
	return updated, nil
}

// AddMember adds an active member who belongs to no team.
func (s *TeamService) AddMember(ctx context.Context, p identity.Principal, teamID, userID int64) (*team.Team, error) {
	const op = "AddMember"
	rc := s.newRequest(ctx)

	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	t, err := s.team(rc, teamID)
	if err != nil {
		return nil, err
	}
	if err := canManage(p, t); err != nil {
		return nil, err
	}
	if err := s.checkEligible(rc, userID); err != nil {
		s.logFailure(ctx, op, err, slog.Int64("team_id", teamID), slog.Int64("user_id", userID))
		return nil, err
	}

	updated, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*team.Team, error) {
		return s.stores.Teams.AddMember(ctx, teamID, userID)
	})
	if err != nil {
		s.logFailure(ctx, op, err, slog.Int64("team_id", teamID), slog.Int64("user_id", userID))
		return nil, err
	}

	s.logger.InfoContext(ctx, "member added", slog.Int64("team_id", teamID), slog.Int64("user_id", userID))
	return updated, nil
}

// RemoveMember removes a member other than the leader.
func (s *TeamService) RemoveMember(ctx context.Context, p identity.Principal, teamID, userID int64) (*team.Team, error) {
	const op = "RemoveMember"
	rc := s.newRequest(ctx)

	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	t, err := s.team(rc, teamID)
	if err != nil {
		return nil, err
	}
	if err := canManage(p, t); err != nil {
		return nil, err
	}
	if t.IsLeader(userID) {
		return nil, fmt.Errorf("user %d leads team %d and cannot be removed: %w", userID, teamID, domain.ErrConflict)
	}
	if !t.HasMember(userID) {
		return nil, fmt.Errorf("user %d is not in team %d: %w", userID, teamID, domain.ErrNotFound)
	}

	updated, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*team.Team, error) {
		return s.stores.Teams.RemoveMember(ctx, teamID, userID)
	})
	if err != nil {
		s.logFailure(ctx, op, err, slog.Int64("team_id", teamID), slog.Int64("user_id", userID))
		return nil, err
	}

	s.logger.InfoContext(ctx, "member removed", slog.Int64("team_id", teamID), slog.Int64("user_id", userID))
	return updated, nil
}

// checkEligible accepts an active Member who belongs to no team.
func (s *TeamService) checkEligible(rc *appctx.RequestContext, userID int64) error {
	u, err := s.user(rc, userID)
	if err != nil {
		return err
	}
	if !u.Active {
		return fmt.Errorf("user %d is inactive: %w", userID, domain.ErrNotEligible)
	}
	if u.Role != account.RoleMember {
		return fmt.Errorf("user %d has role %s: %w", userID, u.Role, domain.ErrNotEligible)
	}
	current, err := s.teamOf(rc, userID)
	if err != nil {
		return err
	}
	if current != nil {
		return fmt.Errorf("user %d already belongs to team %d: %w", userID, current.ID, domain.ErrNotEligible)
	}
	return nil
}

// demoteFormerLeader moves a leader who no longer leads any team back to
// Member. It never fails the operation: a failed demotion is logged with
// the invariant it leaves broken and counted for repair.
func (s *TeamService) demoteFormerLeader(rc *appctx.RequestContext, op string, userID int64) bool {
	ctx := rc.Context
	rc.Invalidate(userKey(userID))

	u, err := s.user(rc, userID)
	if err == nil && u.Role != account.RoleTeamLeader {
		s.logger.DebugContext(ctx, "former leader holds no leader role",
			slog.Int64("user_id", userID), slog.String("role", u.Role.String()))
		return false
	}
	if err == nil {
		var still []team.Team
		still, err = s.teamsLedBy(rc, userID)
		if err == nil && len(still) > 0 {
			s.logger.WarnContext(ctx, "former leader still leads another team, not demoting",
				slog.Int64("user_id", userID), slog.Int64("team_id", still[0].ID))
			return false
		}
	}
	if err == nil {
		err = exec(ctx, s.settings.StepTimeout, func(ctx context.Context) error {
			_, err := s.stores.Accounts.UpdateUser(ctx, userID, account.SetRole(account.RoleMember))
			return err
		})
	}

	if err != nil {
		s.metrics.RecordSaga(ctx, op, telemetry.OutcomeRepairPending)
		s.logger.ErrorContext(ctx, "former leader was not demoted, reconcile required",
			slog.String("operation", op),
			slog.Int64("user_id", userID),
			slog.String("invariant_at_risk", string(invariant.RoleMatchesLeadership)),
			slog.Any("error", err),
		)
		return false
	}

	s.logger.InfoContext(ctx, "former leader demoted", slog.String("operation", op), slog.Int64("user_id", userID))
	return true
}

// canManage allows admins and the team's own leader.
func canManage(p identity.Principal, t *team.Team) error {
	if p.IsAdmin() || (p.Role == account.RoleTeamLeader && t.IsLeader(p.UserID)) {
		return nil
	}
	return fmt.Errorf("%w: only an admin or the leader of team %d may do this", domain.ErrForbidden, t.ID)
}

func addActions(rc *appctx.RequestContext, actions ...domain.Action) error {
	for _, a := range actions {
		if err := rc.AddAction(a); err != nil {
			return fmt.Errorf("staging %q: %w", a.Description(), err)
		}
	}
	return nil
}
