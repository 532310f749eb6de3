// Package task holds the task record owned by the Task Store, its status
// machine, and the query shapes the Read Projector accepts.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

// Task is a unit of work owned by a leader and optionally assigned to one user.
type Task struct {
	ID           int64
	Title        string
	Description  string
	LeaderID     int64
	AssignedToID *int64
	Status       Status
	Priority     Priority
	DueDate      time.Time
	CreatedAt    time.Time
	Comments     []Comment
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if t.LeaderID <= 0 {
		fields["leader_id"] = domain.MsgRequired
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}
	if t.DueDate.IsZero() {
		fields["due_date"] = domain.MsgRequired
	}
	if t.AssignedToID != nil && *t.AssignedToID <= 0 {
		fields["assigned_to_id"] = fmt.Sprintf("must be positive, got %d", *t.AssignedToID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsLeader reports whether userID owns the task.
func (t *Task) IsLeader(userID int64) bool {
	return t.LeaderID == userID
}

// IsAssignee reports whether userID is the task's assignee.
func (t *Task) IsAssignee(userID int64) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}

// Patch is a partial update of a task. Nil fields are left unchanged.
// ClearAssignee removes the assignee and takes precedence over AssignedToID.
type Patch struct {
	Title         *string
	Description   *string
	Status        *Status
	Priority      *Priority
	DueDate       *time.Time
	AssignedToID  *int64
	ClearAssignee bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.DueDate == nil && p.AssignedToID == nil && !p.ClearAssignee
}

// ChangesAssignee reports whether the patch touches the assignee.
func (p Patch) ChangesAssignee() bool {
	return p.AssignedToID != nil || p.ClearAssignee
}

// Apply returns a copy of t with the patch applied, validated as a whole.
func (p Patch) Apply(t Task) (Task, error) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	switch {
	case p.ClearAssignee:
		t.AssignedToID = nil
	case p.AssignedToID != nil:
		id := *p.AssignedToID
		t.AssignedToID = &id
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Filter holds store-level filter criteria for listing tasks.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	LeaderID     int64
	AssignedToID int64
}
