package dto

import (
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/invariant"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Active      bool   `json:"active"`
}

// UserListResponse wraps a list of users with a count.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

// ToUserResponse converts a domain user to an API response DTO.
func ToUserResponse(u *account.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName(),
		Role:        string(u.Role),
		Active:      u.Active,
	}
}

// ToUserListResponse converts a slice of domain users to a list response.
func ToUserListResponse(users []account.User) UserListResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	return UserListResponse{Users: items, Count: len(items)}
}

// TeamResponse represents a team in API responses.
type TeamResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LeaderID    int64     `json:"leader_id"`
	Members     []int64   `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeamListResponse wraps a list of teams with a count.
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
	Count int            `json:"count"`
}

// ToTeamResponse converts a domain team to an API response DTO. Members is
// never null on the wire.
func ToTeamResponse(t *team.Team) TeamResponse {
	members := t.Members
	if members == nil {
		members = []int64{}
	}
	return TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		LeaderID:    t.LeaderID,
		Members:     members,
		CreatedAt:   t.CreatedAt,
	}
}

// ToTeamListResponse converts a slice of domain teams to a list response.
func ToTeamListResponse(teams []team.Team) TeamListResponse {
	items := make([]TeamResponse, len(teams))
	for i := range teams {
		items[i] = ToTeamResponse(&teams[i])
	}
	return TeamListResponse{Teams: items, Count: len(items)}
}

// DeleteTeamResponse reports the outcome of a team deletion.
type DeleteTeamResponse struct {
	TeamID         int64 `json:"team_id"`
	FormerLeaderID int64 `json:"former_leader_id"`
	LeaderDemoted  bool  `json:"leader_demoted"`
}

// ToDeleteTeamResponse converts a delete result to its API response.
func ToDeleteTeamResponse(r *ports.DeleteTeamResult) DeleteTeamResponse {
	return DeleteTeamResponse{
		TeamID:         r.TeamID,
		FormerLeaderID: r.FormerLeaderID,
		LeaderDemoted:  r.LeaderDemoted,
	}
}

// TransferResponse reports the outcome of a leadership transfer.
type TransferResponse struct {
	Team                TeamResponse `json:"team"`
	FormerLeaderID      int64        `json:"former_leader_id"`
	FormerLeaderDemoted bool         `json:"former_leader_demoted"`
}

// ToTransferResponse converts a transfer result to its API response.
func ToTransferResponse(r *ports.TransferResult) TransferResponse {
	return TransferResponse{
		Team:                ToTeamResponse(r.Team),
		FormerLeaderID:      r.FormerLeaderID,
		FormerLeaderDemoted: r.FormerLeaderDemoted,
	}
}

// CommentResponse represents a task comment in API responses.
type CommentResponse struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"author_id"`
	AuthorRole string    `json:"author_role"`
	Body       string    `json:"body"`
	Line       string    `json:"line"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToCommentResponse converts a domain comment to an API response DTO.
func ToCommentResponse(c *task.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		AuthorID:   c.AuthorID,
		AuthorRole: string(c.AuthorRole),
		Body:       c.Body,
		Line:       c.String(),
		CreatedAt:  c.CreatedAt,
	}
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID           int64             `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	LeaderID     int64             `json:"leader_id"`
	AssignedToID *int64            `json:"assigned_to_id"`
	Status       string            `json:"status"`
	Priority     string            `json:"priority"`
	DueDate      string            `json:"due_date"`
	CreatedAt    time.Time         `json:"created_at"`
	Comments     []CommentResponse `json:"comments"`
}

// TaskListResponse wraps a list of tasks with a count.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain task to an API response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	comments := make([]CommentResponse, len(t.Comments))
	for i := range t.Comments {
		comments[i] = ToCommentResponse(&t.Comments[i])
	}
	return TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		LeaderID:     t.LeaderID,
		AssignedToID: t.AssignedToID,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		DueDate:      t.DueDate.Format(DateLayout),
		CreatedAt:    t.CreatedAt,
		Comments:     comments,
	}
}

// ToTaskListResponse converts a slice of domain tasks to a list response.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return TaskListResponse{Tasks: items, Count: len(items)}
}

// AttachmentResponse represents attachment metadata in API responses.
type AttachmentResponse struct {
	ID          int64     `json:"id"`
	TaskID      int64     `json:"task_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  int64     `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// AttachmentListResponse wraps a list of attachments with a count.
type AttachmentListResponse struct {
	Attachments []AttachmentResponse `json:"attachments"`
	Count       int                  `json:"count"`
}

// ToAttachmentResponse converts attachment metadata to an API response DTO.
// The object name stays internal.
func ToAttachmentResponse(a *task.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          a.ID,
		TaskID:      a.TaskID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        a.Size,
		UploadedBy:  a.UploadedBy,
		UploadedAt:  a.UploadedAt,
	}
}

// ToAttachmentListResponse converts a slice of attachments to a list response.
func ToAttachmentListResponse(atts []task.Attachment) AttachmentListResponse {
	items := make([]AttachmentResponse, len(atts))
	for i := range atts {
		items[i] = ToAttachmentResponse(&atts[i])
	}
	return AttachmentListResponse{Attachments: items, Count: len(items)}
}

// ViolationResponse represents one broken cross-store rule.
type ViolationResponse struct {
	Invariant string `json:"invariant"`
	TeamID    int64  `json:"team_id,omitempty"`
	UserID    int64  `json:"user_id,omitempty"`
	Detail    string `json:"detail"`
}

func toViolations(vs []invariant.Violation) []ViolationResponse {
	out := make([]ViolationResponse, len(vs))
	for i, v := range vs {
		out[i] = ViolationResponse{
			Invariant: string(v.Invariant),
			TeamID:    v.TeamID,
			UserID:    v.UserID,
			Detail:    v.Detail,
		}
	}
	return out
}

// AuditResponse is the body of GET /admin/invariants.
type AuditResponse struct {
	CheckedAt  time.Time           `json:"checked_at"`
	Users      int                 `json:"users"`
	Teams      int                 `json:"teams"`
	Healthy    bool                `json:"healthy"`
	Violations []ViolationResponse `json:"violations"`
}

// ToAuditResponse converts an audit report to its API response.
func ToAuditResponse(r *ports.AuditReport) AuditResponse {
	return AuditResponse{
		CheckedAt:  r.CheckedAt,
		Users:      r.Users,
		Teams:      r.Teams,
		Healthy:    len(r.Violations) == 0,
		Violations: toViolations(r.Violations),
	}
}

// RepairResponse represents one role repair.
type RepairResponse struct {
	UserID  int64  `json:"user_id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Applied bool   `json:"applied"`
	Error   string `json:"error,omitempty"`
}

// ReconcileResponse is the body of POST /admin/reconcile.
type ReconcileResponse struct {
	DryRun    bool                `json:"dry_run"`
	Repairs   []RepairResponse    `json:"repairs"`
	Remaining []ViolationResponse `json:"remaining"`
}

// ToReconcileResponse converts a reconcile report to its API response.
func ToReconcileResponse(r *ports.ReconcileReport) ReconcileResponse {
	repairs := make([]RepairResponse, len(r.Repairs))
	for i, rp := range r.Repairs {
		repairs[i] = RepairResponse{
			UserID:  rp.UserID,
			From:    string(rp.From),
			To:      string(rp.To),
			Applied: rp.Applied,
			Error:   rp.Error,
		}
	}
	return ReconcileResponse{
		DryRun:    r.DryRun,
		Repairs:   repairs,
		Remaining: toViolations(r.Remaining),
	}
}
