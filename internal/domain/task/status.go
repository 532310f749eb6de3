package task

import (
	"fmt"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

// Status represents the progress state of a Task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Transition validates moving a task from s to next. Any move between the
// three states is allowed; moving to the current state is rejected.
func (s Status) Transition(next Status) error {
	if !next.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", next)}}
	}
	if s == next {
		return fmt.Errorf("%w: task is already %s", domain.ErrNoOpTransition, s)
	}
	return nil
}
