package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
)

const (
	taskColumns       = `id, title, description, leader_id, assigned_to_id, status, priority, due_date, created_at`
	attachmentColumns = `id, task_id, object_name, file_name, content_type, size, uploaded_by, uploaded_at`
	dueDateLayout     = "2006-01-02"
)

// GetTask implements [ports.TaskStore]. The task carries its comment log.
func (s *Store) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	return getTask(ctx, s.db, id)
}

// ListTasks implements [ports.TaskStore]. Results are ordered by id and
// carry no comments.
func (s *Store) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	var (
		where []string
		args  []any
	)
	if filter.LeaderID > 0 {
		where = append(where, "leader_id = ?")
		args = append(args, filter.LeaderID)
	}
	if filter.AssignedToID > 0 {
		where = append(where, "assigned_to_id = ?")
		args = append(args, filter.AssignedToID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks`+whereClause(where)+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

// CreateTask implements [ports.TaskStore].
func (s *Store) CreateTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	created := *t
	created.Comments = nil
	created.CreatedAt = s.now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, leader_id, assigned_to_id, status, priority, due_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		created.Title, created.Description, created.LeaderID, nullableID(created.AssignedToID),
		string(created.Status), string(created.Priority),
		created.DueDate.UTC().Format(dueDateLayout), toMillis(created.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	if created.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask implements [ports.TaskStore]. The patched task is validated as
// a whole before it is written.
func (s *Store) UpdateTask(ctx context.Context, id int64, patch task.Patch) (*task.Task, error) {
	var updated task.Task
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := getTask(ctx, tx, id)
		if err != nil {
			return err
		}
		if updated, err = patch.Apply(*current); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE tasks SET title = ?, description = ?, assigned_to_id = ?, status = ?, priority = ?, due_date = ?
			 WHERE id = ?`,
			updated.Title, updated.Description, nullableID(updated.AssignedToID),
			string(updated.Status), string(updated.Priority), updated.DueDate.UTC().Format(dueDateLayout), id,
		)
		if err != nil {
			return fmt.Errorf("update task %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask implements [ports.TaskStore]. Comments and attachment
// metadata go with the task.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM task_comments WHERE task_id = ?`,
			`DELETE FROM task_attachments WHERE task_id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return fmt.Errorf("delete task %d: %w", id, err)
			}
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete task %d: %w", id, err)
		}
		return requireAffected(res, fmt.Sprintf("task %d", id))
	})
}

// AppendComment implements [ports.TaskStore].
func (s *Store) AppendComment(ctx context.Context, taskID int64, c *task.Comment) (*task.Comment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created := *c
	created.TaskID = taskID
	created.CreatedAt = s.now().UTC()
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := taskExists(ctx, tx, taskID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO task_comments (task_id, author_id, author_role, body, created_at) VALUES (?, ?, ?, ?, ?)`,
			taskID, created.AuthorID, string(created.AuthorRole), created.Body, toMillis(created.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
		created.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AddAttachment implements [ports.TaskStore].
func (s *Store) AddAttachment(ctx context.Context, a *task.Attachment) (*task.Attachment, error) {
	created := *a
	created.UploadedAt = s.now().UTC()
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := taskExists(ctx, tx, a.TaskID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO task_attachments (task_id, object_name, file_name, content_type, size, uploaded_by, uploaded_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			created.TaskID, created.ObjectName, created.FileName, created.ContentType,
			created.Size, created.UploadedBy, toMillis(created.UploadedAt),
		)
		if err != nil {
			return fmt.Errorf("insert attachment: %w", err)
		}
		created.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListAttachments implements [ports.TaskStore].
func (s *Store) ListAttachments(ctx context.Context, taskID int64) ([]task.Attachment, error) {
	if err := taskExists(ctx, s.db, taskID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+attachmentColumns+` FROM task_attachments WHERE task_id = ? ORDER BY id`, taskID)
	if err != nil {
		return nil, fmt.Errorf("list attachments of task %d: %w", taskID, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]task.Attachment, 0)
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attachments of task %d: %w", taskID, err)
	}
	return out, nil
}

// GetAttachment implements [ports.TaskStore].
func (s *Store) GetAttachment(ctx context.Context, id int64) (*task.Attachment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+attachmentColumns+` FROM task_attachments WHERE id = ?`, id)
	a, err := scanAttachment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("attachment %d: %w", id, domain.ErrNotFound)
	}
	return a, err
}

func getTask(ctx context.Context, q querier, id int64) (*task.Task, error) {
	row := q.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	rows, err := q.QueryContext(ctx,
		`SELECT id, task_id, author_id, author_role, body, created_at FROM task_comments WHERE task_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("list comments of task %d: %w", id, err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var (
			c         task.Comment
			role      string
			createdAt int64
		)
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &role, &c.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.AuthorRole = task.AuthorRole(role)
		c.CreatedAt = fromMillis(createdAt)
		t.Comments = append(t.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments of task %d: %w", id, err)
	}
	return t, nil
}

func taskExists(ctx context.Context, q querier, id int64) error {
	var n int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE id = ?`, id).Scan(&n); err != nil {
		return fmt.Errorf("check task %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		t                task.Task
		assignee         sql.NullInt64
		status, priority string
		dueDate          string
		createdAt        int64
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.LeaderID, &assignee,
		&status, &priority, &dueDate, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	due, err := time.Parse(dueDateLayout, dueDate)
	if err != nil {
		return nil, fmt.Errorf("task %d due date %q: %w", t.ID, dueDate, err)
	}
	if assignee.Valid {
		id := assignee.Int64
		t.AssignedToID = &id
	}
	t.Status = task.Status(status)
	t.Priority = task.Priority(priority)
	t.DueDate = due
	t.CreatedAt = fromMillis(createdAt)
	return &t, nil
}

func scanAttachment(row rowScanner) (*task.Attachment, error) {
	var (
		a          task.Attachment
		uploadedAt int64
	)
	err := row.Scan(&a.ID, &a.TaskID, &a.ObjectName, &a.FileName, &a.ContentType,
		&a.Size, &a.UploadedBy, &uploadedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan attachment: %w", err)
	}
	a.UploadedAt = fromMillis(uploadedAt)
	return &a, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
