package identity

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
)

// Issuer mints HS256 tokens the Verifier accepts. The orchestrator never
// issues tokens in production; trackerctl uses this for local development.
type Issuer struct {
	cfg Config
}

// NewIssuer returns an Issuer sharing the Verifier's settings.
func NewIssuer(cfg Config) (*Issuer, error) {
	if len(cfg.SigningKey) == 0 {
		return nil, errors.New("identity: signing key is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Issuer{cfg: cfg}, nil
}

// Mint returns a signed token for p valid for ttl.
func (i *Issuer) Mint(p identity.Principal, ttl time.Duration) (string, error) {
	now := i.cfg.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(p.UserID, 10),
		"role":     p.Role.String(),
		"isActive": p.Active,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	if i.cfg.Issuer != "" {
		claims["iss"] = i.cfg.Issuer
	}
	if i.cfg.Audience != "" {
		claims["aud"] = i.cfg.Audience
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.cfg.SigningKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
