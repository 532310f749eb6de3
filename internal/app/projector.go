package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	appctx "github.com/jsamuelsen11/teamtasks/internal/app/context"
	"github.com/jsamuelsen11/teamtasks/internal/app/fanout"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/authz"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Compile-time check that Projector implements ports.ReadProjector.
var _ ports.ReadProjector = (*Projector)(nil)

// Projector implements ports.ReadProjector. It only reads, and it keeps no
// cache between calls: derived views such as the set of users already in a
// team are recomputed from the stores every time.
type Projector struct {
	base
}

// NewProjector creates a Projector over the given stores.
func NewProjector(stores Stores, settings Settings, metrics *telemetry.Metrics, logger *slog.Logger) *Projector {
	return &Projector{base: newBase(stores, settings, metrics, logger)}
}

// MyTeams returns every team for admins, otherwise the caller's own team.
func (s *Projector) MyTeams(ctx context.Context, p identity.Principal) ([]team.Team, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}

	if p.IsAdmin() {
		return call(ctx, s.settings.StepTimeout, func(ctx context.Context) ([]team.Team, error) {
			return s.stores.Teams.ListTeams(ctx, team.Filter{})
		})
	}

	own, err := s.teamOf(rc, p.UserID)
	if err != nil {
		return nil, err
	}
	if own == nil {
		return []team.Team{}, nil
	}
	return []team.Team{*own}, nil
}

// GetTeam returns one team to an admin or to one of its members.
func (s *Projector) GetTeam(ctx context.Context, p identity.Principal, id int64) (*team.Team, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	t, err := s.team(rc, id)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !t.HasMember(p.UserID) {
		return nil, fmt.Errorf("%w: not a member of team %d", domain.ErrForbidden, id)
	}
	return t, nil
}

// VisibleTasks lists the tasks of exactly one scope. Callers other than
// admins may only look at their own tasks or their own team.
func (s *Projector) VisibleTasks(ctx context.Context, p identity.Principal, view task.View) ([]task.Task, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := view.Validate(); err != nil {
		return nil, err
	}

	var tasks []task.Task
	switch view.Scope {
	case task.ScopeLeader, task.ScopeAssignee:
		tasks, err = s.personalScope(rc, p, view)
	case task.ScopeTeam:
		tasks, err = s.teamScope(rc, p, view)
	}
	if err != nil {
		s.logFailure(ctx, "VisibleTasks", err, slog.String("scope", string(view.Scope)))
		return nil, err
	}

	out := make([]task.Task, 0, len(tasks))
	for i := range tasks {
		if view.Matches(&tasks[i]) {
			out = append(out, tasks[i])
		}
	}
	task.SortByDueDate(out)
	return out, nil
}

func (s *Projector) personalScope(rc *appctx.RequestContext, p identity.Principal, view task.View) ([]task.Task, error) {
	subject := view.SubjectID
	if subject == 0 {
		subject = p.UserID
	}
	if subject != p.UserID {
		if err := searchOverride(p); err != nil {
			return nil, err
		}
	}

	filter := task.Filter{LeaderID: subject}
	if view.Scope == task.ScopeAssignee {
		filter = task.Filter{AssignedToID: subject}
	}
	return call(rc, s.settings.StepTimeout, func(ctx context.Context) ([]task.Task, error) {
		return s.stores.Tasks.ListTasks(ctx, filter)
	})
}

// teamScope covers the tasks the team's leader owns and the tasks assigned
// to any member, read with bounded concurrency.
func (s *Projector) teamScope(rc *appctx.RequestContext, p identity.Principal, view task.View) ([]task.Task, error) {
	own, err := s.teamOf(rc, p.UserID)
	if err != nil {
		return nil, err
	}

	teamID := view.TeamID
	switch {
	case teamID == 0 && own == nil && p.IsAdmin():
		return nil, &domain.ValidationError{Fields: map[string]string{"team_id": domain.MsgRequired}}
	case teamID == 0 && own == nil:
		return []task.Task{}, nil
	case teamID == 0:
		teamID = own.ID
	case own == nil || own.ID != teamID:
		if err := searchOverride(p); err != nil {
			return nil, err
		}
	}

	t, err := s.team(rc, teamID)
	if err != nil {
		return nil, err
	}

	filters := make([]task.Filter, 0, len(t.Members)+1)
	filters = append(filters, task.Filter{LeaderID: t.LeaderID})
	for _, uid := range t.Members {
		filters = append(filters, task.Filter{AssignedToID: uid})
	}

	results := fanout.Run(rc, s.settings.TeamScanWorkers, filters, func(ctx context.Context, f task.Filter) ([]task.Task, error) {
		return call(ctx, s.settings.StepTimeout, func(ctx context.Context) ([]task.Task, error) {
			return s.stores.Tasks.ListTasks(ctx, f)
		})
	})
	batches, err := fanout.Values(results)
	if err != nil {
		return nil, fmt.Errorf("scanning team %d: %w", teamID, err)
	}

	seen := make(map[int64]bool)
	var out []task.Task
	for _, batch := range batches {
		for _, tk := range batch {
			if !seen[tk.ID] {
				seen[tk.ID] = true
				out = append(out, tk)
			}
		}
	}
	return out, nil
}

// EligibleUsers returns active members who belong to no team, computed from
// a fresh read of users and memberships.
func (s *Projector) EligibleUsers(ctx context.Context, p identity.Principal) ([]account.User, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && p.Role != account.RoleTeamLeader {
		return nil, fmt.Errorf("%w: admin or team leader role required", domain.ErrForbidden)
	}

	active := true
	var (
		users []account.User
		teams []team.Team
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = call(gctx, s.settings.StepTimeout, func(ctx context.Context) ([]account.User, error) {
			return s.stores.Accounts.ListUsers(ctx, account.Filter{Role: account.RoleMember, Active: &active})
		})
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = call(gctx, s.settings.StepTimeout, func(ctx context.Context) ([]team.Team, error) {
			return s.stores.Teams.ListTeams(ctx, team.Filter{})
		})
		return err
	})
	if err := g.Wait(); err != nil {
		s.logFailure(ctx, "EligibleUsers", err)
		return nil, err
	}

	busy := team.MemberIndex(teams)
	out := make([]account.User, 0, len(users))
	for _, u := range users {
		if _, inTeam := busy[u.ID]; !inTeam && u.Active && u.Role == account.RoleMember {
			out = append(out, u)
		}
	}
	return out, nil
}

// searchOverride allows reading someone else's tasks through the admin
// read-only search override.
func searchOverride(p identity.Principal) error {
	if d := authz.AuthorizeTaskAction(p, nil, authz.ActionSearch); !d.Allowed {
		return denied(authz.ActionSearch, d)
	}
	return nil
}
