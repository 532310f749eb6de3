// Package logging builds the service's slog loggers and carries them through
// request contexts. Every handler it builds redacts credentials and account
// e-mail addresses before anything is written.
//
// Orchestrator operations scope the context logger once and reuse it for
// every step they run:
//
//	ctx = logging.With(ctx, slog.String("operation", "DeleteTeam"), slog.Int64("team_id", id))
//	logging.FromContext(ctx).ErrorContext(ctx, "leader demotion failed", slog.Any("error", err))
//
// Error logs carry the operation, the entity IDs and the full chain via
// slog.Any("error", err). Behind the HTTP middleware the context logger
// already has request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is debug, info, warn or error in
// any case, and anything else means info; debug also records the source
// location. format "text" selects the text handler, anything else JSON.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the context logger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With scopes the context logger with args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
