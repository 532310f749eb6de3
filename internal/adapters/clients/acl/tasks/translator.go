package tasks

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
)

// dateLayout is used for due dates; timestamps use RFC 3339.
const dateLayout = "2006-01-02"

var statusLabels = map[task.Status]string{
	task.StatusTodo:       "To Do",
	task.StatusInProgress: "In Progress",
	task.StatusDone:       "Done",
}

var priorityLabels = map[task.Priority]string{
	task.PriorityLow:    "Low",
	task.PriorityMedium: "Medium",
	task.PriorityHigh:   "High",
}

// StatusLabel renders a status the way the Task Store stores it.
func StatusLabel(s task.Status) string {
	return statusLabels[s]
}

// ParseStatus accepts either a store label or a canonical status.
func ParseStatus(s string) (task.Status, error) {
	for st, label := range statusLabels {
		if s == label || s == string(st) {
			return st, nil
		}
	}
	return "", &domain.ValidationError{Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", s)}}
}

// PriorityLabel renders a priority the way the Task Store stores it.
func PriorityLabel(p task.Priority) string {
	return priorityLabels[p]
}

// ParsePriority accepts either a store label or a canonical priority.
func ParsePriority(s string) (task.Priority, error) {
	for p, label := range priorityLabels {
		if s == label || s == string(p) {
			return p, nil
		}
	}
	return "", &domain.ValidationError{Fields: map[string]string{"priority": fmt.Sprintf("invalid: %q", s)}}
}

// ParseDueDate accepts a bare date or an RFC 3339 timestamp.
func ParseDueDate(s string) (time.Time, error) {
	if d, err := time.Parse(dateLayout, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Fields: map[string]string{"due_date": fmt.Sprintf("invalid: %q", s)}}
	}
	return d, nil
}

// FormatDueDate renders a due date as a bare date.
func FormatDueDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ToDomainTask converts a TaskDTO to a domain Task.
func ToDomainTask(dto *TaskDTO) (task.Task, error) {
	status, err := ParseStatus(dto.Status)
	if err != nil {
		return task.Task{}, fmt.Errorf("task %d: %w", dto.ID, err)
	}
	priority, err := ParsePriority(dto.Priority)
	if err != nil {
		return task.Task{}, fmt.Errorf("task %d: %w", dto.ID, err)
	}
	due, err := ParseDueDate(dto.DueDate)
	if err != nil {
		return task.Task{}, fmt.Errorf("task %d: %w", dto.ID, err)
	}
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)

	t := task.Task{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		LeaderID:    dto.LeaderID,
		Status:      status,
		Priority:    priority,
		DueDate:     due,
		CreatedAt:   createdAt,
	}
	if dto.AssignedToID != nil {
		id := *dto.AssignedToID
		t.AssignedToID = &id
	}
	for i := range dto.Comments {
		t.Comments = append(t.Comments, ToDomainComment(&dto.Comments[i]))
	}
	return t, nil
}

// ToDomainTaskList converts a list response to domain tasks.
func ToDomainTaskList(dto TaskListResponseDTO) ([]task.Task, error) {
	out := make([]task.Task, len(dto.Tasks))
	for i := range dto.Tasks {
		t, err := ToDomainTask(&dto.Tasks[i])
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// FromDomainTask converts a domain Task to its wire form.
func FromDomainTask(t *task.Task) TaskDTO {
	dto := TaskDTO{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		LeaderID:     t.LeaderID,
		AssignedToID: t.AssignedToID,
		Status:       StatusLabel(t.Status),
		Priority:     PriorityLabel(t.Priority),
		DueDate:      FormatDueDate(t.DueDate),
		CreatedAt:    t.CreatedAt.UTC().Format(time.RFC3339),
	}
	for i := range t.Comments {
		dto.Comments = append(dto.Comments, FromDomainComment(&t.Comments[i]))
	}
	return dto
}

// FromDomainTaskList builds a list response.
func FromDomainTaskList(ts []task.Task) TaskListResponseDTO {
	dtos := make([]TaskDTO, len(ts))
	for i := range ts {
		dtos[i] = FromDomainTask(&ts[i])
	}
	return TaskListResponseDTO{Tasks: dtos, Count: int64(len(dtos))}
}

// ToCreateTaskRequest converts a new domain Task to a create request.
func ToCreateTaskRequest(t *task.Task) CreateTaskRequestDTO {
	return CreateTaskRequestDTO{
		Title:        t.Title,
		Description:  t.Description,
		LeaderID:     t.LeaderID,
		AssignedToID: t.AssignedToID,
		Status:       StatusLabel(t.Status),
		Priority:     PriorityLabel(t.Priority),
		DueDate:      FormatDueDate(t.DueDate),
	}
}

// ToDomainNewTask converts a create request to a domain Task without an id.
func ToDomainNewTask(req CreateTaskRequestDTO) (task.Task, error) {
	dto := TaskDTO{
		Title:        req.Title,
		Description:  req.Description,
		LeaderID:     req.LeaderID,
		AssignedToID: req.AssignedToID,
		Status:       req.Status,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
	}
	if dto.Status == "" {
		dto.Status = string(task.StatusTodo)
	}
	if dto.Priority == "" {
		dto.Priority = string(task.PriorityMedium)
	}
	return ToDomainTask(&dto)
}

// ToUpdateTaskRequest converts a domain Patch to its wire form.
func ToUpdateTaskRequest(p task.Patch) UpdateTaskRequestDTO {
	req := UpdateTaskRequestDTO{
		Title:         p.Title,
		Description:   p.Description,
		AssignedToID:  p.AssignedToID,
		ClearAssignee: p.ClearAssignee,
	}
	if p.Status != nil {
		label := StatusLabel(*p.Status)
		req.Status = &label
	}
	if p.Priority != nil {
		label := PriorityLabel(*p.Priority)
		req.Priority = &label
	}
	if p.DueDate != nil {
		d := FormatDueDate(*p.DueDate)
		req.DueDate = &d
	}
	return req
}

// ToDomainPatch converts an update request to a domain Patch.
func ToDomainPatch(req UpdateTaskRequestDTO) (task.Patch, error) {
	p := task.Patch{
		Title:         req.Title,
		Description:   req.Description,
		AssignedToID:  req.AssignedToID,
		ClearAssignee: req.ClearAssignee,
	}
	if req.Status != nil {
		s, err := ParseStatus(*req.Status)
		if err != nil {
			return task.Patch{}, err
		}
		p.Status = &s
	}
	if req.Priority != nil {
		pr, err := ParsePriority(*req.Priority)
		if err != nil {
			return task.Patch{}, err
		}
		p.Priority = &pr
	}
	if req.DueDate != nil {
		d, err := ParseDueDate(*req.DueDate)
		if err != nil {
			return task.Patch{}, err
		}
		p.DueDate = &d
	}
	return p, nil
}

// ToDomainComment converts a CommentDTO to a domain Comment.
func ToDomainComment(dto *CommentDTO) task.Comment {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	return task.Comment{
		ID:         dto.ID,
		TaskID:     dto.TaskID,
		AuthorID:   dto.AuthorID,
		AuthorRole: task.AuthorRole(dto.AuthorRole),
		Body:       dto.Body,
		CreatedAt:  createdAt,
	}
}

// FromDomainComment converts a domain Comment to its wire form.
func FromDomainComment(c *task.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID,
		TaskID:     c.TaskID,
		AuthorID:   c.AuthorID,
		AuthorRole: string(c.AuthorRole),
		Body:       c.Body,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToCreateCommentRequest converts a new domain Comment to a create request.
func ToCreateCommentRequest(c *task.Comment) CreateCommentRequestDTO {
	return CreateCommentRequestDTO{
		AuthorID:   c.AuthorID,
		AuthorRole: string(c.AuthorRole),
		Body:       c.Body,
	}
}

// ToDomainAttachment converts an AttachmentDTO to domain metadata.
func ToDomainAttachment(dto *AttachmentDTO) task.Attachment {
	uploadedAt, _ := time.Parse(time.RFC3339, dto.UploadedAt)
	return task.Attachment{
		ID:          dto.ID,
		TaskID:      dto.TaskID,
		ObjectName:  dto.ObjectName,
		FileName:    dto.FileName,
		ContentType: dto.ContentType,
		Size:        dto.Size,
		UploadedBy:  dto.UploadedBy,
		UploadedAt:  uploadedAt,
	}
}

// ToDomainAttachmentList converts a list response to domain metadata.
func ToDomainAttachmentList(dto AttachmentListResponseDTO) []task.Attachment {
	out := make([]task.Attachment, len(dto.Attachments))
	for i := range dto.Attachments {
		out[i] = ToDomainAttachment(&dto.Attachments[i])
	}
	return out
}

// FromDomainAttachment converts domain metadata to its wire form.
func FromDomainAttachment(a *task.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:          a.ID,
		TaskID:      a.TaskID,
		ObjectName:  a.ObjectName,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        a.Size,
		UploadedBy:  a.UploadedBy,
		UploadedAt:  a.UploadedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainAttachmentList builds an attachment list response.
func FromDomainAttachmentList(as []task.Attachment) AttachmentListResponseDTO {
	dtos := make([]AttachmentDTO, len(as))
	for i := range as {
		dtos[i] = FromDomainAttachment(&as[i])
	}
	return AttachmentListResponseDTO{Attachments: dtos, Count: int64(len(dtos))}
}

// ToCreateAttachmentRequest converts new domain metadata to a create request.
func ToCreateAttachmentRequest(a *task.Attachment) CreateAttachmentRequestDTO {
	return CreateAttachmentRequestDTO{
		ObjectName:  a.ObjectName,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        a.Size,
		UploadedBy:  a.UploadedBy,
	}
}
