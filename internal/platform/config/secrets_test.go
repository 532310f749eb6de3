package config_test

import (
	"strings"
	"testing"

	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
)

func TestLoadSecrets(t *testing.T) {
	key := strings.Repeat("k", 40)
	t.Setenv("TEAMTASKS_JWT_SIGNING_KEY", key)

	s, err := config.LoadSecrets()
	if err != nil {
		t.Fatalf("LoadSecrets() error: %v", err)
	}
	if s.JWTSigningKey != key {
		t.Errorf("JWTSigningKey = %q, want %q", s.JWTSigningKey, key)
	}
	if err := s.RequireSigningKey(); err != nil {
		t.Errorf("RequireSigningKey() = %v, want nil", err)
	}
}

func TestSecrets_RequireSigningKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{name: "missing", key: ""},
		{name: "too short", key: "short-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := config.Secrets{JWTSigningKey: tt.key}
			if err := s.RequireSigningKey(); err == nil {
				t.Error("RequireSigningKey() = nil, want error")
			}
		})
	}
}
