package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/teamtasks/internal/app/context"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/authz"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/invariant"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. Every operation loads the task
// and asks authz.AuthorizeTaskAction before touching it.
type TaskService struct {
	base
	blobs    ports.BlobStore
	newToken func() string
	now      func() time.Time
}

// NewTaskService creates a TaskService. Attachment bytes go to blobs;
// everything else goes to the Task Store.
func NewTaskService(stores Stores, blobs ports.BlobStore, settings Settings, metrics *telemetry.Metrics, logger *slog.Logger) *TaskService {
	return &TaskService{
		base:     newBase(stores, settings, metrics, logger),
		blobs:    blobs,
		newToken: uuid.NewString,
		now:      time.Now,
	}
}

// CreateTask creates a task owned by the caller, who must be a team leader
// or an admin. A team leader may only assign within their own team.
func (s *TaskService) CreateTask(ctx context.Context, p identity.Principal, t *task.Task) (*task.Task, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if p.System || (p.Role != account.RoleTeamLeader && p.Role != account.RoleAdmin) {
		return nil, fmt.Errorf("%w: only team leaders and admins create tasks", domain.ErrForbidden)
	}

	draft := *t
	draft.ID = 0
	draft.Comments = nil
	draft.LeaderID = p.UserID
	if draft.Status == "" {
		draft.Status = task.StatusTodo
	}
	if draft.Priority == "" {
		draft.Priority = task.PriorityMedium
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if draft.AssignedToID != nil {
		if err := s.checkAssignee(rc, p, *draft.AssignedToID); err != nil {
			return nil, err
		}
	}

	created, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*task.Task, error) {
		return s.stores.Tasks.CreateTask(ctx, &draft)
	})
	if err != nil {
		s.logFailure(ctx, "CreateTask", err)
		return nil, err
	}
	s.logger.InfoContext(ctx, "task created", slog.Int64("task_id", created.ID), slog.Int64("leader_id", p.UserID))
	return created, nil
}

// GetTask returns a task with its comments.
func (s *TaskService) GetTask(ctx context.Context, p identity.Principal, id int64) (*task.Task, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	return s.authorized(rc, p, id, authz.ActionView)
}

// EditTask applies a patch. Only the task's leader may edit, and changing
// the assignee is checked the same way as on create.
func (s *TaskService) EditTask(ctx context.Context, p identity.Principal, id int64, patch task.Patch) (*task.Task, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, &domain.ValidationError{Fields: map[string]string{"body": "nothing to change"}}
	}

	t, err := s.authorized(rc, p, id, authz.ActionEdit)
	if err != nil {
		return nil, err
	}
	if patch.Status != nil {
		if err := t.Status.Transition(*patch.Status); err != nil {
			return nil, err
		}
	}
	if patch.ChangesAssignee() {
		if d := authz.AuthorizeTaskAction(p, t, authz.ActionAssign); !d.Allowed {
			return nil, denied(authz.ActionAssign, d)
		}
		if patch.AssignedToID != nil && !patch.ClearAssignee {
			if err := s.checkAssignee(rc, p, *patch.AssignedToID); err != nil {
				return nil, err
			}
		}
	}

	return s.update(ctx, "EditTask", id, patch)
}

// DeleteTask deletes a task with its comments and attachment metadata.
func (s *TaskService) DeleteTask(ctx context.Context, p identity.Principal, id int64) error {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return err
	}
	if _, err := s.authorized(rc, p, id, authz.ActionDelete); err != nil {
		return err
	}

	if err := exec(ctx, s.settings.StepTimeout, func(ctx context.Context) error {
		return s.stores.Tasks.DeleteTask(ctx, id)
	}); err != nil {
		s.logFailure(ctx, "DeleteTask", err, slog.Int64("task_id", id))
		return err
	}
	s.logger.InfoContext(ctx, "task deleted", slog.Int64("task_id", id))
	return nil
}

// ChangeStatus moves the task to another status. Moving to the current
// status is rejected.
func (s *TaskService) ChangeStatus(ctx context.Context, p identity.Principal, id int64, status task.Status) (*task.Task, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	t, err := s.authorized(rc, p, id, authz.ActionChangeStatus)
	if err != nil {
		return nil, err
	}
	if err := t.Status.Transition(status); err != nil {
		return nil, err
	}
	return s.update(ctx, "ChangeStatus", id, task.Patch{Status: &status})
}

// AddComment appends to the task's comment log, labelled with the author's
// relation to the task.
func (s *TaskService) AddComment(ctx context.Context, p identity.Principal, id int64, body string) (*task.Comment, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	t, err := s.authorized(rc, p, id, authz.ActionComment)
	if err != nil {
		return nil, err
	}

	c := &task.Comment{
		TaskID:     id,
		AuthorID:   p.UserID,
		AuthorRole: task.AuthorAssignee,
		Body:       strings.TrimSpace(body),
		CreatedAt:  s.now().UTC(),
	}
	if t.IsLeader(p.UserID) {
		c.AuthorRole = task.AuthorLeader
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*task.Comment, error) {
		return s.stores.Tasks.AppendComment(ctx, id, c)
	})
	if err != nil {
		s.logFailure(ctx, "AddComment", err, slog.Int64("task_id", id))
		return nil, err
	}
	return created, nil
}

// UploadAttachment streams the upload into the Blob Store, then records its
// metadata. The transfer is bounded only by the caller's context and never
// takes part in compensation: if the metadata write fails the stored bytes
// are left behind and logged.
func (s *TaskService) UploadAttachment(ctx context.Context, p identity.Principal, taskID int64, upload ports.AttachmentUpload) (*task.Attachment, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(upload.FileName) == "" || upload.Body == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"file": domain.MsgRequired}}
	}
	if _, err := s.authorized(rc, p, taskID, authz.ActionAttach); err != nil {
		return nil, err
	}

	objectName := task.ObjectName(taskID, s.newToken(), upload.FileName)
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	size, err := s.blobs.Put(ctx, objectName, contentType, upload.Body)
	if err != nil {
		s.logFailure(ctx, "UploadAttachment", err, slog.Int64("task_id", taskID))
		return nil, err
	}

	meta := &task.Attachment{
		TaskID:      taskID,
		ObjectName:  objectName,
		FileName:    task.BaseFileName(upload.FileName),
		ContentType: contentType,
		Size:        size,
		UploadedBy:  p.UserID,
		UploadedAt:  s.now().UTC(),
	}
	created, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*task.Attachment, error) {
		return s.stores.Tasks.AddAttachment(ctx, meta)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "attachment stored without metadata",
			slog.Int64("task_id", taskID),
			slog.String("object", objectName),
			slog.Int64("size", size),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "attachment uploaded",
		slog.Int64("task_id", taskID),
		slog.Int64("attachment_id", created.ID),
		slog.Int64("size", size),
	)
	return created, nil
}

// ListAttachments returns the attachment metadata of a task.
func (s *TaskService) ListAttachments(ctx context.Context, p identity.Principal, taskID int64) ([]task.Attachment, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorized(rc, p, taskID, authz.ActionView); err != nil {
		return nil, err
	}
	return call(ctx, s.settings.StepTimeout, func(ctx context.Context) ([]task.Attachment, error) {
		return s.stores.Tasks.ListAttachments(ctx, taskID)
	})
}

// OpenAttachment returns the metadata and a reader over the stored bytes.
// Anyone who may view the task may download its attachments.
func (s *TaskService) OpenAttachment(ctx context.Context, p identity.Principal, attachmentID int64) (*task.Attachment, io.ReadCloser, error) {
	rc := s.newRequest(ctx)
	p, err := s.revalidate(rc, p)
	if err != nil {
		return nil, nil, err
	}

	a, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*task.Attachment, error) {
		return s.stores.Tasks.GetAttachment(ctx, attachmentID)
	})
	if err != nil {
		return nil, nil, err
	}
	if _, err := s.authorized(rc, p, a.TaskID, authz.ActionView); err != nil {
		return nil, nil, err
	}

	body, err := s.blobs.Open(ctx, a.ObjectName)
	if err != nil {
		s.logFailure(ctx, "OpenAttachment", err, slog.Int64("attachment_id", attachmentID))
		return nil, nil, err
	}
	return a, body, nil
}

// authorized loads a task and checks that p may perform action on it.
func (s *TaskService) authorized(rc *appctx.RequestContext, p identity.Principal, id int64, action authz.Action) (*task.Task, error) {
	t, err := call(rc, s.settings.StepTimeout, func(ctx context.Context) (*task.Task, error) {
		return s.stores.Tasks.GetTask(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if d := authz.AuthorizeTaskAction(p, t, action); !d.Allowed {
		s.logger.InfoContext(rc, "task action denied",
			slog.Int64("task_id", id),
			slog.String("action", string(action)),
			slog.String("reason", string(d.Reason)),
			slog.String("principal", p.String()),
		)
		return nil, denied(action, d)
	}
	return t, nil
}

// checkAssignee enforces that the assignee is an active user and, when the
// task's leader is a team leader, a member of that leader's team.
func (s *TaskService) checkAssignee(rc *appctx.RequestContext, leader identity.Principal, assigneeID int64) error {
	u, err := s.user(rc, assigneeID)
	if err != nil {
		return err
	}
	if !u.Active {
		return fmt.Errorf("assignee %d is inactive: %w", assigneeID, domain.ErrNotEligible)
	}
	if leader.Role != account.RoleTeamLeader || assigneeID == leader.UserID {
		return nil
	}

	led, err := s.teamsLedBy(rc, leader.UserID)
	if err != nil {
		return err
	}
	if len(led) == 0 || !led[0].HasMember(assigneeID) {
		return fmt.Errorf("assignee %d is not in the team of leader %d (%s): %w",
			assigneeID, leader.UserID, invariant.AssigneeInTeam, domain.ErrConflict)
	}
	return nil
}

func (s *TaskService) update(ctx context.Context, op string, id int64, patch task.Patch) (*task.Task, error) {
	updated, err := call(ctx, s.settings.StepTimeout, func(ctx context.Context) (*task.Task, error) {
		return s.stores.Tasks.UpdateTask(ctx, id, patch)
	})
	if err != nil {
		s.logFailure(ctx, op, err, slog.Int64("task_id", id))
		return nil, err
	}
	return updated, nil
}

func denied(action authz.Action, d authz.Decision) error {
	return fmt.Errorf("%w: %s denied (%s)", domain.ErrForbidden, action, d.Reason)
}
