package task

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func validTask() Task {
	return Task{
		ID:       1,
		Title:    "Write report",
		LeaderID: 10,
		Status:   StatusTodo,
		Priority: PriorityMedium,
		DueDate:  time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestStatus_Transition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr error
	}{
		{name: "todo to in progress", from: StatusTodo, to: StatusInProgress},
		{name: "in progress to done", from: StatusInProgress, to: StatusDone},
		{name: "done back to todo", from: StatusDone, to: StatusTodo},
		{name: "same status is a no-op error", from: StatusDone, to: StatusDone, wantErr: domain.ErrNoOpTransition},
		{name: "unknown status", from: StatusTodo, to: "blocked", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.from.Transition(tt.to)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Transition() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Transition() = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
			}
		})
	}
}

func TestTask_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Task)
		field  string
	}{
		{name: "blank title", mutate: func(tk *Task) { tk.Title = "  " }, field: "title"},
		{name: "missing leader", mutate: func(tk *Task) { tk.LeaderID = 0 }, field: "leader_id"},
		{name: "bad status", mutate: func(tk *Task) { tk.Status = "blocked" }, field: "status"},
		{name: "bad priority", mutate: func(tk *Task) { tk.Priority = "urgent" }, field: "priority"},
		{name: "missing due date", mutate: func(tk *Task) { tk.DueDate = time.Time{} }, field: "due_date"},
		{name: "non-positive assignee", mutate: func(tk *Task) { tk.AssignedToID = int64Ptr(0) }, field: "assigned_to_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tk := validTask()
			tt.mutate(&tk)

			var verr *domain.ValidationError
			if err := tk.Validate(); !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("ValidationError.Fields missing key %q, got %v", tt.field, verr.Fields)
			}
		})
	}

	valid := validTask()
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on valid task = %v, want nil", err)
	}
}

func TestPatch_Apply(t *testing.T) {
	t.Parallel()

	tk := validTask()
	tk.AssignedToID = int64Ptr(20)

	title := "Write final report"
	got, err := Patch{Title: &title, ClearAssignee: true}.Apply(tk)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got.Title != title {
		t.Errorf("Title = %q, want %q", got.Title, title)
	}
	if got.AssignedToID != nil {
		t.Errorf("AssignedToID = %v, want nil", *got.AssignedToID)
	}
	if tk.AssignedToID == nil {
		t.Error("Apply() mutated the original task")
	}

	blank := ""
	if _, err := (Patch{Title: &blank}).Apply(tk); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Apply(blank title) = %v, want ErrValidation", err)
	}
}

func TestView_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		view    View
		wantErr error
	}{
		{name: "leader scope", view: View{Scope: ScopeLeader}},
		{name: "team scope with team id", view: View{Scope: ScopeTeam, TeamID: 3}},
		{name: "missing scope", view: View{}, wantErr: domain.ErrScopeRequired},
		{name: "unknown scope", view: View{Scope: "everything"}, wantErr: domain.ErrValidation},
		{name: "team id outside team scope", view: View{Scope: ScopeAssignee, TeamID: 3}, wantErr: domain.ErrValidation},
		{name: "bad status filter", view: View{Scope: ScopeLeader, Status: "blocked"}, wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.view.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSortByDueDate(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }
	tasks := []Task{
		{ID: 3, DueDate: day(5)},
		{ID: 2, DueDate: day(1)},
		{ID: 1, DueDate: day(5)},
	}

	SortByDueDate(tasks)

	want := []int64{2, 1, 3}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Errorf("tasks[%d].ID = %d, want %d", i, tasks[i].ID, id)
		}
	}
}

func TestObjectName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "plain file", file: "report.pdf", want: "7/abc_report.pdf"},
		{name: "path stripped", file: "../../etc/passwd", want: "7/abc_passwd"},
		{name: "windows path stripped", file: `C:\docs\plan.txt`, want: "7/abc_plan.txt"},
		{name: "empty name", file: "", want: "7/abc_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ObjectName(7, "abc", tt.file); got != tt.want {
				t.Errorf("ObjectName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBaseFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		want string
	}{
		{file: "report.pdf", want: "report.pdf"},
		{file: "my_report_v2.pdf", want: "my_report_v2.pdf"},
		{file: "../../etc/passwd", want: "passwd"},
		{file: `C:\docs\plan.txt`, want: "plan.txt"},
		{file: "dir/", want: "dir"},
		{file: "..", want: "file"},
		{file: "", want: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			if got := BaseFileName(tt.file); got != tt.want {
				t.Errorf("BaseFileName(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestComment_String(t *testing.T) {
	t.Parallel()

	c := Comment{
		AuthorID:   4,
		AuthorRole: AuthorLeader,
		Body:       "looks good",
		CreatedAt:  time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	want := "[2026-05-01 10:00] Team Leader (User 4): looks good"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
