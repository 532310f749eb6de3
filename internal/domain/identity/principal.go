// Package identity defines the canonical caller identity that every
// orchestrator operation receives.
package identity

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
)

// Principal is the verified caller. Token verifiers resolve whatever claim
// encoding they receive into this one shape, so nothing downstream inspects
// raw claims.
type Principal struct {
	UserID int64
	Role   account.Role
	Active bool

	// System marks an in-process operator principal (CLI, maintenance jobs).
	// It is never produced from a token and is not revalidated against the
	// Account Store.
	System bool
}

// Operator returns the principal used by in-process maintenance tooling.
func Operator() Principal {
	return Principal{Role: account.RoleAdmin, Active: true, System: true}
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == account.RoleAdmin
}

// String implements fmt.Stringer.
func (p Principal) String() string {
	if p.System {
		return "system"
	}
	return fmt.Sprintf("user %d (%s)", p.UserID, p.Role)
}

// FromUser builds the principal that corresponds to a live account record.
func FromUser(u *account.User) Principal {
	return Principal{UserID: u.ID, Role: u.Role, Active: u.Active}
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
