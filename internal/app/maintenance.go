package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/teamtasks/internal/app/fanout"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/invariant"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Repair results recorded on the repair counter.
const (
	repairPlanned = "planned"
	repairApplied = "applied"
	repairFailed  = "failed"
)

// Compile-time check that Maintenance implements ports.MaintenanceService.
var _ ports.MaintenanceService = (*Maintenance)(nil)

// Maintenance implements ports.MaintenanceService. It is the out-of-band
// repair path for role drift left behind by a failed demotion or an
// uncompensated saga.
type Maintenance struct {
	base
	now func() time.Time
}

// NewMaintenance creates a Maintenance service over the given stores.
func NewMaintenance(stores Stores, settings Settings, metrics *telemetry.Metrics, logger *slog.Logger) *Maintenance {
	return &Maintenance{base: newBase(stores, settings, metrics, logger), now: time.Now}
}

// Audit reads every user and team and reports each broken cross-store rule.
func (s *Maintenance) Audit(ctx context.Context, p identity.Principal) (*ports.AuditReport, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	users, teams, err := s.snapshot(ctx)
	if err != nil {
		s.logFailure(ctx, "Audit", err)
		return nil, err
	}

	violations := invariant.Check(users, teams)
	if len(violations) > 0 {
		s.logger.WarnContext(ctx, "invariant violations found", slog.Int("count", len(violations)))
	}
	return &ports.AuditReport{
		CheckedAt:  s.now().UTC(),
		Users:      len(users),
		Teams:      len(teams),
		Violations: violations,
	}, nil
}

// Reconcile repairs role drift: team leaders who lead no team are demoted
// and members who lead exactly one team are promoted. Admins and
// membership violations are never touched; they stay in Remaining.
func (s *Maintenance) Reconcile(ctx context.Context, p identity.Principal, dryRun bool) (*ports.ReconcileReport, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	users, teams, err := s.snapshot(ctx)
	if err != nil {
		s.logFailure(ctx, "Reconcile", err)
		return nil, err
	}

	planned := planRepairs(users, teams)
	report := &ports.ReconcileReport{DryRun: dryRun, Repairs: slices.Clone(planned)}

	if !dryRun {
		results := fanout.Run(ctx, s.settings.TeamScanWorkers, planned, func(ctx context.Context, r ports.Repair) (ports.Repair, error) {
			err := exec(ctx, s.settings.StepTimeout, func(ctx context.Context) error {
				_, err := s.stores.Accounts.UpdateUser(ctx, r.UserID, account.SetRole(r.To))
				return err
			})
			if err != nil {
				r.Error = err.Error()
				return r, nil
			}
			r.Applied = true
			return r, nil
		})
		for i, res := range results {
			report.Repairs[i] = res.Value
			if res.Err != nil {
				report.Repairs[i] = planned[i]
				report.Repairs[i].Error = res.Err.Error()
			}
		}
	}

	byID := make(map[int64]int, len(users))
	for i := range users {
		byID[users[i].ID] = i
	}
	for _, r := range report.Repairs {
		result := repairPlanned
		switch {
		case r.Applied:
			result = repairApplied
			users[byID[r.UserID]].Role = r.To
		case r.Error != "":
			result = repairFailed
		}
		s.metrics.RecordRepair(ctx, string(invariant.RoleMatchesLeadership), result)
		s.logger.InfoContext(ctx, "role repair",
			slog.Int64("user_id", r.UserID),
			slog.String("from", r.From.String()),
			slog.String("to", r.To.String()),
			slog.String("result", result),
			slog.Bool("dry_run", dryRun),
		)
	}

	// In a dry run nothing was applied, so every violation remains.
	report.Remaining = invariant.Check(users, teams)
	return report, nil
}

// snapshot reads all users and teams concurrently.
func (s *Maintenance) snapshot(ctx context.Context) ([]account.User, []team.Team, error) {
	var (
		users []account.User
		teams []team.Team
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = call(gctx, s.settings.StepTimeout, func(ctx context.Context) ([]account.User, error) {
			return s.stores.Accounts.ListUsers(ctx, account.Filter{})
		})
		if err != nil {
			return fmt.Errorf("listing users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		teams, err = call(gctx, s.settings.StepTimeout, func(ctx context.Context) ([]team.Team, error) {
			return s.stores.Teams.ListTeams(ctx, team.Filter{})
		})
		if err != nil {
			return fmt.Errorf("listing teams: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return users, teams, nil
}

// planRepairs lists the role changes that restore role-matches-leadership
// for users whose fix is unambiguous.
func planRepairs(users []account.User, teams []team.Team) []ports.Repair {
	led := make(map[int64]int)
	for _, t := range teams {
		led[t.LeaderID]++
	}

	var out []ports.Repair
	for _, u := range users {
		switch {
		case u.Role == account.RoleTeamLeader && led[u.ID] == 0:
			out = append(out, ports.Repair{UserID: u.ID, From: u.Role, To: account.RoleMember})
		case u.Role == account.RoleMember && led[u.ID] == 1:
			out = append(out, ports.Repair{UserID: u.ID, From: u.Role, To: account.RoleTeamLeader})
		}
	}
	return out
}
