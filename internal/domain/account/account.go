// Package account holds the user record owned by the Account Store and the
// role labels that the orchestrator moves users between.
package account

import (
	"fmt"
	"strings"
)

// Role is a user's privilege label.
type Role string

const (
	RoleMember     Role = "member"
	RoleTeamLeader Role = "team_leader"
	RoleAdmin      Role = "admin"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleTeamLeader, RoleAdmin:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// ParseRole accepts the canonical names as well as the display labels used
// by older clients and tokens ("Team Leader", "Admin").
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	switch normalized {
	case "member":
		return RoleMember, nil
	case "team_leader", "teamleader", "leader":
		return RoleTeamLeader, nil
	case "admin", "administrator":
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User is an account record.
type User struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      Role
	Active    bool
}

// DisplayName returns "First Last", falling back to the username.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Patch is a partial update of the orchestrator-controlled fields of a user.
// Nil fields are left unchanged.
type Patch struct {
	Role   *Role
	Active *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Role == nil && p.Active == nil
}

// SetRole returns a patch that only changes the role.
func SetRole(r Role) Patch {
	return Patch{Role: &r}
}

// SetActive returns a patch that only changes the active flag.
func SetActive(active bool) Patch {
	return Patch{Active: &active}
}

// Filter holds optional filter criteria for listing users.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Role   Role
	Active *bool
}
