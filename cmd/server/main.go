// Command server runs the orchestrator: the public API in front of the
// account, team and task stores. The dependency graph is built with
// samber/do in wire.go; SIGINT or SIGTERM drains in-flight requests before
// telemetry is flushed.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/teamtasks/internal/adapters/http"
	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/platform/logging"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile, err := config.ProfileFromEnv()
	if err != nil {
		return err
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	secrets, err := config.LoadSecrets()
	if err != nil {
		return err
	}
	if err := secrets.RequireSigningKey(); err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(ctx, injector, cfg, secrets, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-server.Ready():
		logger.Info("orchestrator ready", slog.String("profile", profile))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	if err := <-serverErr; err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}
