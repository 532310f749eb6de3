package main

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/blob"
	adapthttp "github.com/jsamuelsen11/teamtasks/internal/adapters/http"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/identity"
	"github.com/jsamuelsen11/teamtasks/internal/app"
	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/platform/health"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

func settingsFrom(cfg config.OrchestratorConfig) app.Settings {
	return app.Settings{
		StepTimeout:         cfg.StepTimeout,
		CompensationTimeout: cfg.CompensationTimeout,
		TeamScanWorkers:     cfg.TeamScanWorkers,
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, secrets config.Secrets, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*clients.Stores, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return clients.New(ctx, cfg.Stores, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (app.Stores, error) {
		s := do.MustInvoke[*clients.Stores](i)
		return app.Stores{Accounts: s.Accounts, Teams: s.Teams, Tasks: s.Tasks}, nil
	})

	do.Provide(injector, func(_ do.Injector) (*blob.Store, error) {
		return blob.NewDir(cfg.Blob.Root, cfg.Blob.MaxUploadBytes)
	})

	do.Provide(injector, func(_ do.Injector) (ports.IdentityVerifier, error) {
		return identity.NewVerifier(identity.Config{
			SigningKey: []byte(secrets.JWTSigningKey),
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
		})
	})

	do.Provide(injector, func(i do.Injector) (ports.TeamService, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTeamService(do.MustInvoke[app.Stores](i), settingsFrom(cfg.Orchestrator), metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewUserService(do.MustInvoke[app.Stores](i), settingsFrom(cfg.Orchestrator), metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		blobs := do.MustInvoke[*blob.Store](i)
		return app.NewTaskService(do.MustInvoke[app.Stores](i), blobs, settingsFrom(cfg.Orchestrator), metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ReadProjector, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewProjector(do.MustInvoke[app.Stores](i), settingsFrom(cfg.Orchestrator), metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MaintenanceService, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewMaintenance(do.MustInvoke[app.Stores](i), settingsFrom(cfg.Orchestrator), metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		for _, checker := range do.MustInvoke[*clients.Stores](i).Checkers {
			registry.Register(checker)
		}
		registry.Register(do.MustInvoke[*blob.Store](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		read := do.MustInvoke[ports.ReadProjector](i)
		tasks := do.MustInvoke[ports.TaskService](i)
		return adapthttp.Handlers{
			Teams:       handlers.NewTeamHandler(do.MustInvoke[ports.TeamService](i), read),
			Users:       handlers.NewUserHandler(do.MustInvoke[ports.UserService](i), read),
			Tasks:       handlers.NewTaskHandler(tasks, read),
			Attachments: handlers.NewAttachmentHandler(tasks),
			Admin:       handlers.NewAdminHandler(do.MustInvoke[ports.MaintenanceService](i)),
			Health:      handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		verifier := do.MustInvoke[ports.IdentityVerifier](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			adapthttp.RouteOptions{
				Authenticate:   middleware.Authenticate(verifier),
				RequestTimeout: cfg.Server.RequestTimeout,
			},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
