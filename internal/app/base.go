// Package app provides the application services of the consistency
// orchestrator. Services coordinate the Account, Team and Task stores
// through port interfaces; the stores know nothing about each other, so
// every cross-store rule is enforced here by ordering and compensation.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	appctx "github.com/jsamuelsen11/teamtasks/internal/app/context"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Default orchestration bounds, used when Settings leaves a field zero.
const (
	DefaultStepTimeout         = 3 * time.Second
	DefaultCompensationTimeout = 5 * time.Second
	DefaultTeamScanWorkers     = 4
)

// Stores groups the three record stores the orchestrator coordinates.
type Stores struct {
	Accounts ports.AccountStore
	Teams    ports.TeamStore
	Tasks    ports.TaskStore
}

// Settings bounds the orchestrator's store calls.
type Settings struct {
	// StepTimeout bounds every single store call. A call that runs out of
	// time is a failed step.
	StepTimeout time.Duration

	// CompensationTimeout bounds every rollback step.
	CompensationTimeout time.Duration

	// TeamScanWorkers caps concurrent store reads in team scans and audits.
	TeamScanWorkers int
}

func (s Settings) withDefaults() Settings {
	if s.StepTimeout <= 0 {
		s.StepTimeout = DefaultStepTimeout
	}
	if s.CompensationTimeout <= 0 {
		s.CompensationTimeout = DefaultCompensationTimeout
	}
	if s.TeamScanWorkers < 1 {
		s.TeamScanWorkers = DefaultTeamScanWorkers
	}
	return s
}

// base holds what every service needs. It carries no mutable state: each
// operation builds its own appctx.RequestContext.
type base struct {
	stores   Stores
	settings Settings
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

func newBase(stores Stores, settings Settings, metrics *telemetry.Metrics, logger *slog.Logger) base {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return base{
		stores:   stores,
		settings: settings.withDefaults(),
		metrics:  metrics,
		logger:   logger,
	}
}

// newRequest starts the operation-scoped context.
func (b *base) newRequest(ctx context.Context) *appctx.RequestContext {
	return appctx.New(ctx, appctx.WithCompensationTimeout(b.settings.CompensationTimeout))
}

// call runs one store call under the step timeout. Running out of time is
// reported as domain.ErrUnavailable unless the caller's own context ended.
func call[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	stepCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	v, err := fn(stepCtx)
	if err != nil && ctx.Err() == nil && errors.Is(stepCtx.Err(), context.DeadlineExceeded) &&
		!errors.Is(err, domain.ErrUnavailable) {
		err = fmt.Errorf("store call timed out after %s: %w: %w", timeout, domain.ErrUnavailable, err)
	}
	return v, err
}

// exec is call for store operations that return only an error.
func exec(ctx context.Context, timeout time.Duration, fn func(context.Context) error) error {
	_, err := call(ctx, timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// user reads a user through the request cache.
func (b *base) user(rc *appctx.RequestContext, id int64) (*account.User, error) {
	return appctx.GetOrFetch(rc, userKey(id), func(ctx context.Context) (*account.User, error) {
		return call(ctx, b.settings.StepTimeout, func(ctx context.Context) (*account.User, error) {
			return b.stores.Accounts.GetUser(ctx, id)
		})
	})
}

// team reads a team through the request cache.
func (b *base) team(rc *appctx.RequestContext, id int64) (*team.Team, error) {
	return appctx.GetOrFetch(rc, teamKey(id), func(ctx context.Context) (*team.Team, error) {
		return call(ctx, b.settings.StepTimeout, func(ctx context.Context) (*team.Team, error) {
			return b.stores.Teams.GetTeam(ctx, id)
		})
	})
}

// teamOf returns the team whose member set contains userID, or nil.
func (b *base) teamOf(rc *appctx.RequestContext, userID int64) (*team.Team, error) {
	return appctx.GetOrFetch(rc, "team-of:"+strconv.FormatInt(userID, 10), func(ctx context.Context) (*team.Team, error) {
		teams, err := call(ctx, b.settings.StepTimeout, func(ctx context.Context) ([]team.Team, error) {
			return b.stores.Teams.ListTeams(ctx, team.Filter{MemberID: userID})
		})
		if err != nil || len(teams) == 0 {
			return nil, err
		}
		return &teams[0], nil
	})
}

// teamsLedBy returns every team whose leader is userID.
func (b *base) teamsLedBy(rc *appctx.RequestContext, userID int64) ([]team.Team, error) {
	return appctx.GetOrFetch(rc, "led-by:"+strconv.FormatInt(userID, 10), func(ctx context.Context) ([]team.Team, error) {
		return call(ctx, b.settings.StepTimeout, func(ctx context.Context) ([]team.Team, error) {
			return b.stores.Teams.ListTeams(ctx, team.Filter{LeaderID: userID})
		})
	})
}

func userKey(id int64) string { return "user:" + strconv.FormatInt(id, 10) }
func teamKey(id int64) string { return "team:" + strconv.FormatInt(id, 10) }

// revalidate replaces the token's view of the caller with the live account
// record. A token's active flag and role are only a snapshot; the Account
// Store is authoritative.
func (b *base) revalidate(rc *appctx.RequestContext, p identity.Principal) (identity.Principal, error) {
	if p.System {
		return p, nil
	}
	if p.UserID <= 0 {
		return identity.Principal{}, fmt.Errorf("%w: no user in principal", domain.ErrUnauthenticated)
	}

	u, err := b.user(rc, p.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return identity.Principal{}, fmt.Errorf("%w: user %d no longer exists", domain.ErrUnauthenticated, p.UserID)
	case err != nil:
		return identity.Principal{}, err
	case !u.Active:
		return identity.Principal{}, domain.ErrInactivePrincipal
	}

	live := identity.FromUser(u)
	if live.Role != p.Role {
		b.logger.InfoContext(rc, "principal role changed since token was issued",
			slog.Int64("user_id", p.UserID),
			slog.String("token_role", p.Role.String()),
			slog.String("live_role", live.Role.String()),
		)
	}
	return live, nil
}

func requireAdmin(p identity.Principal) error {
	if !p.IsAdmin() {
		return fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return nil
}

// finishSaga stamps the operation on a saga failure, logs it and counts the
// outcome. Uncompensated failures are logged at ERROR with the invariants
// left at risk.
func (b *base) finishSaga(ctx context.Context, operation string, err error, atRisk ...string) error {
	var serr *domain.SagaError
	switch {
	case err == nil:
		b.metrics.RecordSaga(ctx, operation, telemetry.OutcomeCommitted)
		return nil
	case !errors.As(err, &serr):
		return err
	}

	serr.Operation = operation
	if serr.Compensated {
		b.metrics.RecordSaga(ctx, operation, telemetry.OutcomeCompensated)
		b.logger.WarnContext(ctx, "operation failed and was compensated",
			slog.String("operation", operation),
			slog.String("step", serr.Step),
			slog.Any("error", serr.Cause),
		)
		return serr
	}

	serr.AtRisk = atRisk
	b.metrics.RecordSaga(ctx, operation, telemetry.OutcomeUncompensated)
	b.logger.ErrorContext(ctx, "operation failed and compensation failed",
		slog.String("operation", operation),
		slog.String("step", serr.Step),
		slog.Any("invariants_at_risk", atRisk),
		slog.Bool("operator_action_required", true),
		slog.Any("error", serr.Cause),
		slog.Any("compensation_error", serr.CompensationErr),
	)
	return serr
}

// logFailure logs a failed operation at a level matching its kind. Expected
// rejections are not errors from the service's point of view.
func (b *base) logFailure(ctx context.Context, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	switch domain.KindOf(err) {
	case domain.KindUnauthenticated, domain.KindUnauthorized, domain.KindNotFound,
		domain.KindConflict, domain.KindValidationFailed:
		level = slog.LevelInfo
	case domain.KindPartialCompensated:
		level = slog.LevelWarn
	}
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("operation", operation), slog.Any("error", err))
	for _, a := range attrs {
		args = append(args, a)
	}
	b.logger.Log(ctx, level, "operation failed", args...)
}
