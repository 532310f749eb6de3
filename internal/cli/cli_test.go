package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	adapteridentity "github.com/jsamuelsen11/teamtasks/internal/adapters/identity"
	"github.com/jsamuelsen11/teamtasks/internal/cli"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/invariant"
	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
	"github.com/jsamuelsen11/teamtasks/mocks"
)

var (
	checkedAt  = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	signingKey = strings.Repeat("s", 40)
)

func testConfig() *config.Config {
	return &config.Config{
		Log:  config.LogConfig{Level: "error", Format: "text"},
		Auth: config.AuthConfig{Issuer: "teamtasks-test", Audience: "teamtasks"},
	}
}

// testEnv returns an Env backed by svc and a fixed config.
func testEnv(svc ports.MaintenanceService) cli.Env {
	return cli.Env{
		LoadConfig: func(string, string) (*config.Config, error) { return testConfig(), nil },
		LoadSecrets: func() (config.Secrets, error) {
			return config.Secrets{JWTSigningKey: signingKey}, nil
		},
		Maintenance: func(context.Context, *config.Config, *slog.Logger) (ports.MaintenanceService, error) {
			return svc, nil
		},
	}
}

func execute(t *testing.T, env cli.Env, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(env)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, testEnv(nil), "audit", "--format", "yaml")

	require.Error(t, err)
	assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRoot_ConfigError(t *testing.T) {
	t.Parallel()

	env := testEnv(nil)
	env.LoadConfig = func(string, string) (*config.Config, error) { return nil, errors.New("no such profile") }

	_, err := execute(t, env, "audit")

	require.Error(t, err)
	assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
}

func TestAudit(t *testing.T) {
	t.Parallel()

	healthy := &ports.AuditReport{CheckedAt: checkedAt, Users: 3, Teams: 1}
	drifted := &ports.AuditReport{
		CheckedAt: checkedAt, Users: 3, Teams: 1,
		Violations: []invariant.Violation{{
			Invariant: invariant.RoleMatchesLeadership, UserID: 7, Detail: "team leader leads no team",
		}},
	}

	tests := []struct {
		name       string
		report     *ports.AuditReport
		format     string
		wantCode   int
		wantOutput string
	}{
		{name: "healthy text", report: healthy, format: "text", wantCode: cli.ExitSuccess, wantOutput: "no violations"},
		{name: "violations text", report: drifted, format: "text", wantCode: cli.ExitFailure, wantOutput: "team leader leads no team"},
		{name: "violations json", report: drifted, format: "json", wantCode: cli.ExitFailure, wantOutput: `"healthy": false`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := mocks.NewMockMaintenanceService(t)
			svc.EXPECT().Audit(mock.Anything, identity.Operator()).Return(tt.report, nil)

			out, err := execute(t, testEnv(svc), "audit", "--format", tt.format)

			assert.Equal(t, tt.wantCode, cli.GetExitCode(err))
			assert.Contains(t, out, tt.wantOutput)
		})
	}
}

func TestAudit_JSONShape(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockMaintenanceService(t)
	svc.EXPECT().Audit(mock.Anything, identity.Operator()).
		Return(&ports.AuditReport{CheckedAt: checkedAt, Users: 2, Teams: 1}, nil)

	out, err := execute(t, testEnv(svc), "audit", "--format", "json")
	require.NoError(t, err)

	var resp dto.AuditResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Healthy)
	assert.Equal(t, 2, resp.Users)
}

func TestAudit_ServiceError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockMaintenanceService(t)
	svc.EXPECT().Audit(mock.Anything, identity.Operator()).Return(nil, errors.New("store unavailable"))

	_, err := execute(t, testEnv(svc), "audit")

	require.Error(t, err)
	assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		dryRun     bool
		report     *ports.ReconcileReport
		wantCode   int
		wantOutput string
	}{
		{
			name:   "dry run plans repairs",
			args:   []string{"reconcile", "--dry-run"},
			dryRun: true,
			report: &ports.ReconcileReport{
				DryRun:  true,
				Repairs: []ports.Repair{{UserID: 7, From: account.RoleTeamLeader, To: account.RoleMember}},
			},
			wantCode:   cli.ExitSuccess,
			wantOutput: "planned",
		},
		{
			name: "applied",
			args: []string{"reconcile"},
			report: &ports.ReconcileReport{
				Repairs: []ports.Repair{{UserID: 7, From: account.RoleTeamLeader, To: account.RoleMember, Applied: true}},
			},
			wantCode:   cli.ExitSuccess,
			wantOutput: "applied",
		},
		{
			name: "failed repair",
			args: []string{"reconcile"},
			report: &ports.ReconcileReport{
				Repairs: []ports.Repair{{UserID: 7, From: account.RoleTeamLeader, To: account.RoleMember, Error: "unavailable"}},
			},
			wantCode:   cli.ExitFailure,
			wantOutput: "failed: unavailable",
		},
		{
			name: "remaining violations",
			args: []string{"reconcile"},
			report: &ports.ReconcileReport{
				Remaining: []invariant.Violation{{Invariant: invariant.LeaderIsMember, TeamID: 3, UserID: 7}},
			},
			wantCode:   cli.ExitFailure,
			wantOutput: "remaining:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := mocks.NewMockMaintenanceService(t)
			svc.EXPECT().Reconcile(mock.Anything, identity.Operator(), tt.dryRun).Return(tt.report, nil)

			out, err := execute(t, testEnv(svc), tt.args...)

			assert.Equal(t, tt.wantCode, cli.GetExitCode(err))
			assert.Contains(t, out, tt.wantOutput)
		})
	}
}

func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()

	out, err := execute(t, testEnv(nil), "token", "--user-id", "7", "--role", "team_leader", "--ttl", "10m")
	require.NoError(t, err)

	verifier, err := adapteridentity.NewVerifier(adapteridentity.Config{
		SigningKey: []byte(signingKey),
		Issuer:     "teamtasks-test",
		Audience:   "teamtasks",
	})
	require.NoError(t, err)

	p, err := verifier.Verify(context.Background(), strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.UserID)
	assert.Equal(t, account.RoleTeamLeader, p.Role)
	assert.True(t, p.Active)
}

func TestToken_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		env  func(cli.Env) cli.Env
	}{
		{name: "missing user", args: []string{"token"}},
		{name: "zero user", args: []string{"token", "--user-id", "0"}},
		{name: "bad role", args: []string{"token", "--user-id", "1", "--role", "owner"}},
		{name: "bad ttl", args: []string{"token", "--user-id", "1", "--ttl", "-1m"}},
		{
			name: "short key",
			args: []string{"token", "--user-id", "1"},
			env: func(e cli.Env) cli.Env {
				e.LoadSecrets = func() (config.Secrets, error) { return config.Secrets{JWTSigningKey: "short"}, nil }
				return e
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := testEnv(nil)
			if tt.env != nil {
				env = tt.env(env)
			}

			_, err := execute(t, env, tt.args...)

			require.Error(t, err)
			assert.NotEqual(t, cli.ExitSuccess, cli.GetExitCode(err))
		})
	}
}

func TestGetExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.GetExitCode(nil))
	assert.Equal(t, cli.ExitFailure, cli.GetExitCode(errors.New("plain")))
	wrapped := cli.WrapExitError(cli.ExitCommandError, "loading", errors.New("boom"))
	assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(wrapped))
	assert.Equal(t, "loading: boom", wrapped.Error())
}
