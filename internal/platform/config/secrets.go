package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// minSigningKeyBytes is the shortest HMAC key accepted for token verification.
const minSigningKeyBytes = 32

// Secrets holds credentials that never appear in YAML files. They are read
// straight from the process environment.
type Secrets struct {
	JWTSigningKey string `env:"TEAMTASKS_JWT_SIGNING_KEY"`
}

// LoadSecrets parses Secrets from the environment.
func LoadSecrets() (Secrets, error) {
	s, err := env.ParseAs[Secrets]()
	if err != nil {
		return Secrets{}, fmt.Errorf("parsing secrets: %w", err)
	}
	return s, nil
}

// RequireSigningKey returns an error unless a usable JWT signing key is set.
func (s Secrets) RequireSigningKey() error {
	if s.JWTSigningKey == "" {
		return errors.New("TEAMTASKS_JWT_SIGNING_KEY must be set")
	}
	if len(s.JWTSigningKey) < minSigningKeyBytes {
		return fmt.Errorf("TEAMTASKS_JWT_SIGNING_KEY must be at least %d bytes", minSigningKeyBytes)
	}
	return nil
}
