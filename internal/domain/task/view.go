package task

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

// Scope selects which relationship a task listing is based on.
type Scope string

const (
	ScopeLeader   Scope = "leader"
	ScopeAssignee Scope = "assignee"
	ScopeTeam     Scope = "team"
)

// IsValid returns true if the scope is one of the defined constants.
func (s Scope) IsValid() bool {
	switch s {
	case ScopeLeader, ScopeAssignee, ScopeTeam:
		return true
	default:
		return false
	}
}

// View is a task listing request. Exactly one Scope is required. SubjectID
// (for leader/assignee scopes) and TeamID (for the team scope) default to
// the caller; only admins may name someone else.
type View struct {
	Scope     Scope
	SubjectID int64
	TeamID    int64
	Status    Status
	Priority  Priority
}

// Validate checks that exactly one known scope is selected and that the
// optional post-filters are well formed.
func (v View) Validate() error {
	if v.Scope == "" {
		return domain.ErrScopeRequired
	}
	fields := make(map[string]string)
	if !v.Scope.IsValid() {
		fields["scope"] = fmt.Sprintf("invalid: %q", v.Scope)
	}
	if v.Status != "" && !v.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", v.Status)
	}
	if v.Priority != "" && !v.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", v.Priority)
	}
	if v.TeamID != 0 && v.Scope != ScopeTeam {
		fields["team_id"] = "only allowed with the team scope"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Matches applies the optional status and priority post-filters.
func (v View) Matches(t *Task) bool {
	if v.Status != "" && t.Status != v.Status {
		return false
	}
	if v.Priority != "" && t.Priority != v.Priority {
		return false
	}
	return true
}

// SortByDueDate orders tasks by due date ascending, then id ascending.
func SortByDueDate(tasks []Task) {
	slices.SortFunc(tasks, func(a, b Task) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
