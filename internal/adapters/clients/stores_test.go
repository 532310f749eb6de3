package clients

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
)

func TestNew(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	t.Run("http", func(t *testing.T) {
		t.Parallel()
		cfg := config.StoresConfig{
			Mode:     ModeHTTP,
			Accounts: config.ClientConfig{BaseURL: "http://accounts"},
			Teams:    config.ClientConfig{BaseURL: "http://teams"},
			Tasks:    config.ClientConfig{BaseURL: "http://tasks"},
		}
		s, err := New(context.Background(), cfg, nil, logger)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if _, ok := s.Accounts.(*acl.AccountClient); !ok {
			t.Errorf("Accounts = %T, want *acl.AccountClient", s.Accounts)
		}
		names := make([]string, 0, len(s.Checkers))
		for _, c := range s.Checkers {
			names = append(names, c.Name())
		}
		want := []string{"account-store", "team-store", "task-store"}
		if len(names) != len(want) {
			t.Fatalf("checkers = %v, want %v", names, want)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("checker[%d] = %q, want %q", i, names[i], want[i])
			}
		}
	})

	t.Run("memory seeds an admin", func(t *testing.T) {
		t.Parallel()
		s, err := New(context.Background(), config.StoresConfig{Mode: ModeMemory}, nil, logger)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		admins, err := s.Accounts.ListUsers(context.Background(), account.Filter{Role: account.RoleAdmin})
		if err != nil {
			t.Fatalf("ListUsers() error = %v", err)
		}
		if len(admins) != 1 || admins[0].Username != SeedAdminUsername || !admins[0].Active {
			t.Errorf("admins = %+v, want the seeded admin", admins)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		t.Parallel()
		if _, err := New(context.Background(), config.StoresConfig{Mode: "carrier-pigeon"}, nil, logger); err == nil {
			t.Fatal("New() error = nil, want unknown mode error")
		}
	})
}
