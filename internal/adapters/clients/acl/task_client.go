package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/acl/tasks"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/platform/httpclient"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskStore     = (*TaskClient)(nil)
	_ ports.HealthChecker = (*TaskClient)(nil)
)

// TaskClient is the outbound adapter for the Task Store, covering tasks,
// the comment log, and attachment metadata.
type TaskClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewTaskClient creates a TaskClient for the Task Store behind client.
func NewTaskClient(client *httpclient.Client, logger *slog.Logger) *TaskClient {
	return &TaskClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetTask fetches GET /api/v1/tasks/{id}; the response carries comments.
func (c *TaskClient) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	var dto tasks.TaskDTO
	if err := c.req.Do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d", id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return c.toDomain(&dto)
}

// ListTasks fetches GET /api/v1/tasks filtered by leader or assignee.
func (c *TaskClient) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	v := url.Values{}
	if filter.LeaderID > 0 {
		v.Set("leader_id", strconv.FormatInt(filter.LeaderID, 10))
	}
	if filter.AssignedToID > 0 {
		v.Set("assigned_to_id", strconv.FormatInt(filter.AssignedToID, 10))
	}

	var dto tasks.TaskListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, "/api/v1/tasks"+encodeQuery(v), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return tasks.ToDomainTaskList(dto)
}

// CreateTask sends POST /api/v1/tasks.
func (c *TaskClient) CreateTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	var dto tasks.TaskDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/v1/tasks", http.StatusCreated, tasks.ToCreateTaskRequest(t), &dto); err != nil {
		return nil, err
	}
	return c.toDomain(&dto)
}

// UpdateTask sends PATCH /api/v1/tasks/{id}.
func (c *TaskClient) UpdateTask(ctx context.Context, id int64, patch task.Patch) (*task.Task, error) {
	var dto tasks.TaskDTO
	path := fmt.Sprintf("/api/v1/tasks/%d", id)
	if err := c.req.Do(ctx, http.MethodPatch, path, http.StatusOK, tasks.ToUpdateTaskRequest(patch), &dto); err != nil {
		return nil, err
	}
	return c.toDomain(&dto)
}

// DeleteTask sends DELETE /api/v1/tasks/{id}.
func (c *TaskClient) DeleteTask(ctx context.Context, id int64) error {
	return c.req.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), http.StatusNoContent, nil, nil)
}

// AppendComment sends POST /api/v1/tasks/{id}/comments.
func (c *TaskClient) AppendComment(ctx context.Context, taskID int64, comment *task.Comment) (*task.Comment, error) {
	var dto tasks.CommentDTO
	path := fmt.Sprintf("/api/v1/tasks/%d/comments", taskID)
	if err := c.req.Do(ctx, http.MethodPost, path, http.StatusCreated, tasks.ToCreateCommentRequest(comment), &dto); err != nil {
		return nil, err
	}
	result := tasks.ToDomainComment(&dto)
	return &result, nil
}

// AddAttachment sends POST /api/v1/tasks/{id}/attachments.
func (c *TaskClient) AddAttachment(ctx context.Context, a *task.Attachment) (*task.Attachment, error) {
	var dto tasks.AttachmentDTO
	path := fmt.Sprintf("/api/v1/tasks/%d/attachments", a.TaskID)
	if err := c.req.Do(ctx, http.MethodPost, path, http.StatusCreated, tasks.ToCreateAttachmentRequest(a), &dto); err != nil {
		return nil, err
	}
	result := tasks.ToDomainAttachment(&dto)
	return &result, nil
}

// ListAttachments fetches GET /api/v1/tasks/{id}/attachments.
func (c *TaskClient) ListAttachments(ctx context.Context, taskID int64) ([]task.Attachment, error) {
	var dto tasks.AttachmentListResponseDTO
	path := fmt.Sprintf("/api/v1/tasks/%d/attachments", taskID)
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return tasks.ToDomainAttachmentList(dto), nil
}

// GetAttachment fetches GET /api/v1/attachments/{id}.
func (c *TaskClient) GetAttachment(ctx context.Context, id int64) (*task.Attachment, error) {
	var dto tasks.AttachmentDTO
	if err := c.req.Do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/attachments/%d", id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	result := tasks.ToDomainAttachment(&dto)
	return &result, nil
}

// Name implements [ports.HealthChecker].
func (c *TaskClient) Name() string { return c.req.Name() }

// HealthCheck reports the Task Store's circuit breaker state.
func (c *TaskClient) HealthCheck(ctx context.Context) error { return c.req.HealthCheck(ctx) }

func (c *TaskClient) toDomain(dto *tasks.TaskDTO) (*task.Task, error) {
	t, err := tasks.ToDomainTask(dto)
	if err != nil {
		c.logger.Error("task store returned an unreadable task",
			slog.Int64("task_id", dto.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("task store sent unreadable task %d: %w", dto.ID, domain.ErrUnavailable)
	}
	return &t, nil
}
