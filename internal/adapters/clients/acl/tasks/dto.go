// Package tasks holds the Task Store's wire types and the translators
// between them and the task domain. Status and priority travel as display
// labels ("To Do", "In Progress", "Done"; "Low", "Medium", "High").
package tasks

// TaskDTO matches the Task Store's Task schema.
type TaskDTO struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	LeaderID     int64        `json:"leader_id"`
	AssignedToID *int64       `json:"assigned_to_id"`
	Status       string       `json:"status"`
	Priority     string       `json:"priority"`
	DueDate      string       `json:"due_date"`
	CreatedAt    string       `json:"created_at"`
	Comments     []CommentDTO `json:"comments,omitempty"`
}

// TaskListResponseDTO matches the Task Store's list response.
type TaskListResponseDTO struct {
	Tasks []TaskDTO `json:"tasks"`
	Count int64     `json:"count"`
}

// CreateTaskRequestDTO is the body of POST /api/v1/tasks.
type CreateTaskRequestDTO struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	LeaderID     int64  `json:"leader_id"`
	AssignedToID *int64 `json:"assigned_to_id,omitempty"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	DueDate      string `json:"due_date"`
}

// UpdateTaskRequestDTO is the body of PATCH /api/v1/tasks/{id}.
// Nil means "do not change this field"; ClearAssignee removes the assignee.
type UpdateTaskRequestDTO struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Status        *string `json:"status,omitempty"`
	Priority      *string `json:"priority,omitempty"`
	DueDate       *string `json:"due_date,omitempty"`
	AssignedToID  *int64  `json:"assigned_to_id,omitempty"`
	ClearAssignee bool    `json:"clear_assignee,omitempty"`
}

// CommentDTO matches the Task Store's Comment schema.
type CommentDTO struct {
	ID         int64  `json:"id"`
	TaskID     int64  `json:"task_id"`
	AuthorID   int64  `json:"author_id"`
	AuthorRole string `json:"author_role"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at"`
}

// CreateCommentRequestDTO is the body of POST /api/v1/tasks/{id}/comments.
type CreateCommentRequestDTO struct {
	AuthorID   int64  `json:"author_id"`
	AuthorRole string `json:"author_role"`
	Body       string `json:"body"`
}

// AttachmentDTO matches the Task Store's attachment metadata schema.
type AttachmentDTO struct {
	ID          int64  `json:"id"`
	TaskID      int64  `json:"task_id"`
	ObjectName  string `json:"object_name"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	UploadedBy  int64  `json:"uploaded_by"`
	UploadedAt  string `json:"uploaded_at"`
}

// AttachmentListResponseDTO matches the Task Store's attachment list response.
type AttachmentListResponseDTO struct {
	Attachments []AttachmentDTO `json:"attachments"`
	Count       int64           `json:"count"`
}

// CreateAttachmentRequestDTO is the body of POST /api/v1/tasks/{id}/attachments.
type CreateAttachmentRequestDTO struct {
	ObjectName  string `json:"object_name"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	UploadedBy  int64  `json:"uploaded_by"`
}
