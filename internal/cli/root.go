// Package cli implements trackerctl, the operator tool that audits and
// repairs cross-store consistency without going through the HTTP API.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients"
	"github.com/jsamuelsen11/teamtasks/internal/app"
	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/platform/logging"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Profile   string
	ConfigDir string
	Format    string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Env supplies the collaborators commands need. DefaultEnv wires the real
// ones; tests substitute their own.
type Env struct {
	LoadConfig  func(profile, dir string) (*config.Config, error)
	LoadSecrets func() (config.Secrets, error)
	Maintenance func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.MaintenanceService, error)
}

// DefaultEnv reads configuration from disk and reaches the stores the
// profile points at.
func DefaultEnv() Env {
	return Env{
		LoadConfig: func(profile, dir string) (*config.Config, error) {
			return config.Load(profile, config.WithConfigDir(dir))
		},
		LoadSecrets: config.LoadSecrets,
		Maintenance: func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.MaintenanceService, error) {
			stores, err := clients.New(ctx, cfg.Stores, nil, logger)
			if err != nil {
				return nil, err
			}
			return app.NewMaintenance(
				app.Stores{Accounts: stores.Accounts, Teams: stores.Teams, Tasks: stores.Tasks},
				app.Settings{
					StepTimeout:         cfg.Orchestrator.StepTimeout,
					CompensationTimeout: cfg.Orchestrator.CompensationTimeout,
					TeamScanWorkers:     cfg.Orchestrator.TeamScanWorkers,
				},
				nil, logger,
			), nil
		},
	}
}

// NewRootCommand creates the root command for trackerctl.
func NewRootCommand(env Env) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "trackerctl",
		Short: "Operate the team task tracker",
		Long: `trackerctl checks and repairs the rules that span the account, team
and task stores, and mints development tokens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	defaultProfile := os.Getenv(config.ProfileEnv)
	if defaultProfile == "" {
		defaultProfile = "local"
	}
	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", defaultProfile, "configuration profile (local|demo|prod), defaults to $"+config.ProfileEnv)
	cmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "configs", "directory holding the profile YAML files")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewAuditCommand(opts, env))
	cmd.AddCommand(NewReconcileCommand(opts, env))
	cmd.AddCommand(NewTokenCommand(opts, env))

	return cmd
}

// loadConfig resolves the profile and builds a logger that writes to errOut
// so diagnostics never mix with JSON output.
func loadConfig(opts *RootOptions, env Env, errOut io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := env.LoadConfig(opts.Profile, opts.ConfigDir)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "loading config", err)
	}
	return cfg, logging.New(cfg.Log.Level, "text", errOut), nil
}

func maintenance(ctx context.Context, opts *RootOptions, env Env, cmd *cobra.Command) (ports.MaintenanceService, error) {
	cfg, logger, err := loadConfig(opts, env, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	svc, err := env.Maintenance(ctx, cfg, logger)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "connecting to stores", err)
	}
	return svc, nil
}
