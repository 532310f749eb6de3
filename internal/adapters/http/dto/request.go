package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

// DateLayout is the wire format of task due dates.
const DateLayout = "2006-01-02"

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgPositiveID   = "must be a positive id"
)

// CreateTeamRequest represents the JSON body for creating a team together
// with its leader.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LeaderID    int64  `json:"leader_id"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTeamRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.LeaderID <= 0 {
		fields["leader_id"] = msgPositiveID
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTeamRequest represents the JSON body for editing a team.
// All fields are optional; nil means "do not change this field.".
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateTeamRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": msgMustNotEmpty}}
	}
	return nil
}

// Patch converts the request into a team patch.
func (r *UpdateTeamRequest) Patch() team.Patch {
	return team.Patch{Name: r.Name, Description: r.Description}
}

// TransferLeadershipRequest represents the JSON body of PUT /teams/{id}/leader.
type TransferLeadershipRequest struct {
	LeaderID int64 `json:"leader_id"`
}

// Validate checks that the new leader is named.
func (r *TransferLeadershipRequest) Validate() error {
	if r.LeaderID <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"leader_id": msgPositiveID}}
	}
	return nil
}

// AddMemberRequest represents the JSON body of POST /teams/{id}/members.
type AddMemberRequest struct {
	UserID int64 `json:"user_id"`
}

// Validate checks that the user is named.
func (r *AddMemberRequest) Validate() error {
	if r.UserID <= 0 {
		return &domain.ValidationError{Fields: map[string]string{"user_id": msgPositiveID}}
	}
	return nil
}

// CreateTaskRequest represents the JSON body for creating a task. The
// caller becomes the task's leader.
type CreateTaskRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	AssignedToID *int64 `json:"assigned_to_id,omitempty"`
	Status       string `json:"status,omitempty"`
	Priority     string `json:"priority,omitempty"`
	DueDate      string `json:"due_date"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(r.DueDate) == "" {
		fields["due_date"] = msgRequired
	} else if _, err := time.Parse(DateLayout, r.DueDate); err != nil {
		fields["due_date"] = fmt.Sprintf("must be %s, got %q", DateLayout, r.DueDate)
	}
	if r.Status != "" && !task.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	if r.Priority != "" && !task.Priority(r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", r.Priority)
	}
	if r.AssignedToID != nil && *r.AssignedToID <= 0 {
		fields["assigned_to_id"] = msgPositiveID
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Task converts a validated request into a task draft.
func (r *CreateTaskRequest) Task() *task.Task {
	due, _ := time.Parse(DateLayout, r.DueDate)
	return &task.Task{
		Title:        strings.TrimSpace(r.Title),
		Description:  r.Description,
		AssignedToID: r.AssignedToID,
		Status:       task.Status(r.Status),
		Priority:     task.Priority(r.Priority),
		DueDate:      due,
	}
}

// UpdateTaskRequest represents the JSON body for editing a task.
// All fields are optional; nil means "do not change this field.".
// ClearAssignee unassigns the task.
type UpdateTaskRequest struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Status        *string `json:"status,omitempty"`
	Priority      *string `json:"priority,omitempty"`
	DueDate       *string `json:"due_date,omitempty"`
	AssignedToID  *int64  `json:"assigned_to_id,omitempty"`
	ClearAssignee bool    `json:"clear_assignee,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.Status != nil && !task.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}
	if r.Priority != nil && !task.Priority(*r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *r.Priority)
	}
	if r.DueDate != nil {
		if _, err := time.Parse(DateLayout, *r.DueDate); err != nil {
			fields["due_date"] = fmt.Sprintf("must be %s, got %q", DateLayout, *r.DueDate)
		}
	}
	if r.AssignedToID != nil && *r.AssignedToID <= 0 {
		fields["assigned_to_id"] = msgPositiveID
	}
	if r.AssignedToID != nil && r.ClearAssignee {
		fields["clear_assignee"] = "cannot be combined with assigned_to_id"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch converts a validated request into a task patch.
func (r *UpdateTaskRequest) Patch() task.Patch {
	p := task.Patch{
		Title:         r.Title,
		Description:   r.Description,
		AssignedToID:  r.AssignedToID,
		ClearAssignee: r.ClearAssignee,
	}
	if r.Status != nil {
		s := task.Status(*r.Status)
		p.Status = &s
	}
	if r.Priority != nil {
		pr := task.Priority(*r.Priority)
		p.Priority = &pr
	}
	if r.DueDate != nil {
		due, _ := time.Parse(DateLayout, *r.DueDate)
		p.DueDate = &due
	}
	return p
}

// ChangeStatusRequest represents the JSON body of PUT /tasks/{id}/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that the status is one of the known values.
func (r *ChangeStatusRequest) Validate() error {
	if !task.Status(r.Status).IsValid() {
		return &domain.ValidationError{Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", r.Status)}}
	}
	return nil
}

// AddCommentRequest represents the JSON body of POST /tasks/{id}/comments.
type AddCommentRequest struct {
	Body string `json:"body"`
}

// Validate checks that the comment has text.
func (r *AddCommentRequest) Validate() error {
	if strings.TrimSpace(r.Body) == "" {
		return &domain.ValidationError{Fields: map[string]string{"body": msgRequired}}
	}
	return nil
}
