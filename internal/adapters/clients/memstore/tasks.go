package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

var _ ports.TaskStore = (*Tasks)(nil)

// Tasks is an in-memory Task Store with its comment log and attachment
// metadata.
type Tasks struct {
	faults

	mu          sync.RWMutex
	tasks       map[int64]task.Task
	attachments map[int64]task.Attachment
	nextTask    int64
	nextComment int64
	nextAttach  int64
	now         func() time.Time
}

// NewTasks returns an empty Task Store.
func NewTasks() *Tasks {
	return &Tasks{
		tasks:       make(map[int64]task.Task),
		attachments: make(map[int64]task.Attachment),
		nextTask:    1,
		nextComment: 1,
		nextAttach:  1,
		now:         time.Now,
	}
}

// Put stores t as given, assigning an id when t.ID is zero.
func (s *Tasks) Put(t task.Task) task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == 0 {
		t.ID = s.nextTask
	}
	if t.ID >= s.nextTask {
		s.nextTask = t.ID + 1
	}
	t = cloneTask(t)
	s.tasks[t.ID] = t
	return cloneTask(t)
}

// GetTask implements [ports.TaskStore].
func (s *Tasks) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	if err := s.check(ctx, "GetTask"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	out := cloneTask(t)
	return &out, nil
}

// ListTasks implements [ports.TaskStore]. Results are ordered by id and
// carry no comments.
func (s *Tasks) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	if err := s.check(ctx, "ListTasks"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]task.Task, 0)
	for _, t := range s.tasks {
		if filter.LeaderID > 0 && t.LeaderID != filter.LeaderID {
			continue
		}
		if filter.AssignedToID > 0 && !t.IsAssignee(filter.AssignedToID) {
			continue
		}
		c := cloneTask(t)
		c.Comments = nil
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b task.Task) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// CreateTask implements [ports.TaskStore].
func (s *Tasks) CreateTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	if err := s.check(ctx, "CreateTask"); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	created := cloneTask(*t)
	created.ID = s.nextTask
	created.CreatedAt = s.now().UTC()
	created.Comments = nil
	s.nextTask++
	s.tasks[created.ID] = created
	out := cloneTask(created)
	if err := s.respond(ctx, "CreateTask"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask implements [ports.TaskStore].
func (s *Tasks) UpdateTask(ctx context.Context, id int64, patch task.Patch) (*task.Task, error) {
	if err := s.check(ctx, "UpdateTask"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	updated, err := patch.Apply(cloneTask(t))
	if err != nil {
		return nil, err
	}
	s.tasks[id] = updated
	out := cloneTask(updated)
	if err := s.respond(ctx, "UpdateTask"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask implements [ports.TaskStore]. Comments and attachment
// metadata go with the task.
func (s *Tasks) DeleteTask(ctx context.Context, id int64) error {
	if err := s.check(ctx, "DeleteTask"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	delete(s.tasks, id)
	for aid, a := range s.attachments {
		if a.TaskID == id {
			delete(s.attachments, aid)
		}
	}
	return nil
}

// AppendComment implements [ports.TaskStore].
func (s *Tasks) AppendComment(ctx context.Context, taskID int64, c *task.Comment) (*task.Comment, error) {
	if err := s.check(ctx, "AppendComment"); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", taskID, domain.ErrNotFound)
	}
	created := *c
	created.ID = s.nextComment
	created.TaskID = taskID
	created.CreatedAt = s.now().UTC()
	s.nextComment++
	t.Comments = append(slices.Clone(t.Comments), created)
	s.tasks[taskID] = t
	return &created, nil
}

// AddAttachment implements [ports.TaskStore].
func (s *Tasks) AddAttachment(ctx context.Context, a *task.Attachment) (*task.Attachment, error) {
	if err := s.check(ctx, "AddAttachment"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[a.TaskID]; !ok {
		return nil, fmt.Errorf("task %d: %w", a.TaskID, domain.ErrNotFound)
	}
	created := *a
	created.ID = s.nextAttach
	created.UploadedAt = s.now().UTC()
	s.nextAttach++
	s.attachments[created.ID] = created
	if err := s.respond(ctx, "AddAttachment"); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListAttachments implements [ports.TaskStore].
func (s *Tasks) ListAttachments(ctx context.Context, taskID int64) ([]task.Attachment, error) {
	if err := s.check(ctx, "ListAttachments"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.tasks[taskID]; !ok {
		return nil, fmt.Errorf("task %d: %w", taskID, domain.ErrNotFound)
	}
	out := make([]task.Attachment, 0)
	for _, a := range s.attachments {
		if a.TaskID == taskID {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b task.Attachment) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// GetAttachment implements [ports.TaskStore].
func (s *Tasks) GetAttachment(ctx context.Context, id int64) (*task.Attachment, error) {
	if err := s.check(ctx, "GetAttachment"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.attachments[id]
	if !ok {
		return nil, fmt.Errorf("attachment %d: %w", id, domain.ErrNotFound)
	}
	return &a, nil
}

// Name implements ports.HealthChecker.
func (s *Tasks) Name() string { return "task-store" }

// HealthCheck implements ports.HealthChecker; an in-process store is always up.
func (s *Tasks) HealthCheck(context.Context) error { return nil }

func cloneTask(t task.Task) task.Task {
	if t.AssignedToID != nil {
		id := *t.AssignedToID
		t.AssignedToID = &id
	}
	t.Comments = slices.Clone(t.Comments)
	return t
}
