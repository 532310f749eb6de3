// Package clients builds the store adapters selected by configuration.
package clients

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/memstore"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/platform/httpclient"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Store modes accepted in stores.mode.
const (
	ModeHTTP   = "http"
	ModeMemory = "memory"
)

// SeedAdminUsername is the account created when stores run in memory, so a
// fresh demo has an active admin to mint a token for.
const SeedAdminUsername = "admin"

// Stores holds one adapter per record store plus their health checkers.
type Stores struct {
	Accounts ports.AccountStore
	Teams    ports.TeamStore
	Tasks    ports.TaskStore
	Checkers []ports.HealthChecker
}

// New builds the adapters for cfg.Mode. An empty mode means http.
func New(ctx context.Context, cfg config.StoresConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Stores, error) {
	switch cfg.Mode {
	case ModeHTTP, "":
		accounts := acl.NewAccountClient(httpclient.New(&cfg.Accounts, "account-store", metrics, logger), logger)
		teams := acl.NewTeamClient(httpclient.New(&cfg.Teams, "team-store", metrics, logger), logger)
		tasks := acl.NewTaskClient(httpclient.New(&cfg.Tasks, "task-store", metrics, logger), logger)
		return &Stores{
			Accounts: accounts,
			Teams:    teams,
			Tasks:    tasks,
			Checkers: []ports.HealthChecker{accounts, teams, tasks},
		}, nil

	case ModeMemory:
		accounts := memstore.NewAccounts()
		admin, err := accounts.Signup(ctx, account.User{Username: SeedAdminUsername})
		if err != nil {
			return nil, fmt.Errorf("seeding admin account: %w", err)
		}
		logger.Info("record stores running in memory",
			slog.Int64("admin_user_id", admin.ID),
		)
		teams := memstore.NewTeams()
		tasks := memstore.NewTasks()
		return &Stores{
			Accounts: accounts,
			Teams:    teams,
			Tasks:    tasks,
			Checkers: []ports.HealthChecker{accounts, teams, tasks},
		}, nil

	default:
		return nil, fmt.Errorf("unknown stores mode %q (want %q or %q)", cfg.Mode, ModeHTTP, ModeMemory)
	}
}
