// Package team holds the team record owned by the Team Store and the pure
// membership rules that hold across it.
package team

import (
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

// Team is a named group of users with exactly one leader.
type Team struct {
	ID          int64
	Name        string
	Description string
	LeaderID    int64
	Members     []int64
	CreatedAt   time.Time
}

// Validate checks business rules for the Team entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Team) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if t.LeaderID <= 0 {
		fields["leader_id"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// HasMember reports whether userID is in the member set.
func (t *Team) HasMember(userID int64) bool {
	return slices.Contains(t.Members, userID)
}

// IsLeader reports whether userID leads the team.
func (t *Team) IsLeader(userID int64) bool {
	return t.LeaderID == userID
}

// Patch is a partial update of a team. Nil fields are left unchanged.
// Membership is changed through the member sub-resource, never through Patch.
type Patch struct {
	Name        *string
	Description *string
	LeaderID    *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.LeaderID == nil
}

// Validate rejects patches that would blank the team name.
func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	if p.LeaderID != nil && *p.LeaderID <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"leader_id": domain.MsgRequired}}
	}
	return nil
}

// Filter holds optional filter criteria for listing teams.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	MemberID int64
	LeaderID int64
	Name     string
}

// MemberIndex maps every user that belongs to a team to that team's id.
// A user listed in several teams keeps the lowest team id; Duplicates
// reports those users separately.
func MemberIndex(teams []Team) map[int64]int64 {
	idx := make(map[int64]int64)
	for _, t := range teams {
		for _, uid := range t.Members {
			if prev, ok := idx[uid]; !ok || t.ID < prev {
				idx[uid] = t.ID
			}
		}
	}
	return idx
}

// Duplicates returns the users that appear in more than one team, with the
// ids of every team they appear in.
func Duplicates(teams []Team) map[int64][]int64 {
	seen := make(map[int64][]int64)
	for _, t := range teams {
		for _, uid := range t.Members {
			seen[uid] = append(seen[uid], t.ID)
		}
	}
	for uid, ids := range seen {
		if len(ids) < 2 {
			delete(seen, uid)
		}
	}
	return seen
}
