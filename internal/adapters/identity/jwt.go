// Package identity verifies bearer tokens and resolves them to the canonical
// identity.Principal. Two claim encodings are accepted: short names ("sub",
// "nameid", "role", "isActive") and the long schema URIs some token issuers
// emit for the same facts.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

var _ ports.IdentityVerifier = (*Verifier)(nil)

// Long-form claim names.
const (
	claimNameIdentifierURI = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimRoleURI           = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

// defaultLeeway absorbs clock skew between issuer and verifier.
const defaultLeeway = 30 * time.Second

// Config holds verification settings.
type Config struct {
	SigningKey []byte
	Issuer     string
	Audience   string
	Now        func() time.Time
}

// Verifier validates HS256 tokens.
type Verifier struct {
	cfg Config
}

// NewVerifier returns a Verifier. The signing key must be non-empty.
func NewVerifier(cfg Config) (*Verifier, error) {
	if len(cfg.SigningKey) == 0 {
		return nil, errors.New("identity: signing key is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Verifier{cfg: cfg}, nil
}

// Verify implements [ports.IdentityVerifier]. Every failure wraps
// domain.ErrUnauthenticated; the cause is kept for logging only.
func (v *Verifier) Verify(_ context.Context, raw string) (identity.Principal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return identity.Principal{}, fmt.Errorf("%w: missing token", domain.ErrUnauthenticated)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(defaultLeeway),
		jwt.WithTimeFunc(v.cfg.Now),
	}
	if v.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.cfg.Issuer))
	}
	if v.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.cfg.Audience))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return v.cfg.SigningKey, nil
	}, opts...)
	if err != nil {
		return identity.Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	return principalFromClaims(claims)
}

func principalFromClaims(claims jwt.MapClaims) (identity.Principal, error) {
	subject := firstString(claims, "sub", "nameid", claimNameIdentifierURI)
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || userID <= 0 {
		return identity.Principal{}, fmt.Errorf("%w: subject %q is not a user id", domain.ErrUnauthenticated, subject)
	}

	roleClaim := firstString(claims, "role", claimRoleURI)
	role, err := account.ParseRole(roleClaim)
	if err != nil {
		return identity.Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	// The active flag is advisory: the orchestrator re-reads it from the
	// Account Store on every operation. Tokens without it are taken as active.
	active := true
	switch v := claims["isActive"].(type) {
	case bool:
		active = v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			active = b
		}
	}

	return identity.Principal{UserID: userID, Role: role, Active: active}, nil
}

// firstString returns the first non-empty claim among keys, accepting
// numeric claims as their decimal text.
func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		switch v := claims[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return ""
}
