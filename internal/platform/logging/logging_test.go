package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/teamtasks/internal/platform/logging"
)

func TestNew_LevelsAndFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		level      string
		format     string
		log        func(*slog.Logger)
		wantEmpty  bool
		wantSubstr []string
		notSubstr  []string
	}{
		{
			name: "json info", level: "info", format: "json",
			log:        func(l *slog.Logger) { l.Info("team created") },
			wantSubstr: []string{`"level":"INFO"`, `"msg":"team created"`},
			notSubstr:  []string{`"source"`},
		},
		{
			name: "text info", level: "info", format: "text",
			log:        func(l *slog.Logger) { l.Info("team created") },
			wantSubstr: []string{"level=INFO", `msg="team created"`},
		},
		{
			name: "debug adds source", level: "debug", format: "json",
			log:        func(l *slog.Logger) { l.Debug("scan started") },
			wantSubstr: []string{`"level":"DEBUG"`, `"source"`},
		},
		{
			name: "level is case insensitive", level: "DEBUG", format: "json",
			log:        func(l *slog.Logger) { l.Debug("scan started") },
			wantSubstr: []string{"scan started"},
		},
		{
			name: "info drops debug", level: "info", format: "json",
			log:       func(l *slog.Logger) { l.Debug("noise") },
			wantEmpty: true,
		},
		{
			name: "error drops warn", level: "error", format: "json",
			log:       func(l *slog.Logger) { l.Warn("breaker half-open") },
			wantEmpty: true,
		},
		{
			name: "unknown level means info", level: "verbose", format: "json",
			log: func(l *slog.Logger) {
				l.Debug("noise")
				l.Info("kept")
			},
			wantSubstr: []string{"kept"},
			notSubstr:  []string{"noise"},
		},
		{
			name: "unknown format means json", level: "info", format: "xml",
			log:        func(l *slog.Logger) { l.Info("hello") },
			wantSubstr: []string{`"level":"INFO"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, tt.format, &buf))
			out := buf.String()

			if tt.wantEmpty {
				if out != "" {
					t.Errorf("output = %q, want nothing", out)
				}
				return
			}
			for _, s := range tt.wantSubstr {
				if !strings.Contains(out, s) {
					t.Errorf("output = %q, want it to contain %s", out, s)
				}
			}
			for _, s := range tt.notSubstr {
				if strings.Contains(out, s) {
					t.Errorf("output = %q, want no %s", out, s)
				}
			}
		})
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization field", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"password field", slog.String("password", "hunter2"), "hunter2"},
		{"signing key field", slog.String("signing_key", "k3y-material-0123456789"), "k3y-material"},
		{"email field", slog.String("email", "ana@example.com"), "ana@example.com"},
		{"secret prefix", slog.String("secret_store_dsn", "file:records.db"), "records.db"},
		{"bearer inside another field", slog.String("raw_header", "Bearer eyJhbGciOiJIUzI1NiJ9"), "eyJhbGciOiJIUzI1NiJ9"},
		{"bare jwt", slog.String("note", "aaaaaaaaaaaa.bbbbbbbbbbbb.cccccccccccc"), "bbbbbbbbbbbb"},
		{"inline api key", slog.String("detail", "retry with api_key=abc123"), "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output leaks %q: %s", tt.secret, out)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output missing [REDACTED]: %s", out)
			}
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("member added",
		slog.Int64("user_id", 7),
		slog.Int64("team_id", 3),
		slog.String("path", "/api/v1/teams/3/members"),
	)

	out := buf.String()
	for _, want := range []string{`"user_id":7`, `"team_id":3`, "/api/v1/teams/3/members"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
	if strings.Contains(out, "[REDACTED]") {
		t.Errorf("ordinary fields redacted: %s", out)
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext on a bare context is not slog.Default()")
	}

	var first, second bytes.Buffer
	l1 := logging.New("info", "json", &first)
	l2 := logging.New("info", "json", &second)

	ctx := logging.WithLogger(context.Background(), l1)
	if logging.FromContext(ctx) != l1 {
		t.Error("FromContext did not return the stored logger")
	}
	ctx = logging.WithLogger(ctx, l2)
	if logging.FromContext(ctx) != l2 {
		t.Error("WithLogger did not replace the stored logger")
	}
}

func TestWith_ScopesOperationAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("info", "json", &buf))

	ctx = logging.With(ctx, slog.String("operation", "DeleteTeam"))
	logging.FromContext(ctx).InfoContext(ctx, "step done", slog.Int64("team_id", 3))

	out := buf.String()
	for _, want := range []string{`"operation":"DeleteTeam"`, `"team_id":3`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s, got %s", want, out)
		}
	}
}
