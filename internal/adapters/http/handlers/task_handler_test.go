package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/mocks"
)

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockTaskService, *mocks.MockReadProjector) {
	t.Helper()
	svc := mocks.NewMockTaskService(t)
	read := mocks.NewMockReadProjector(t)
	return handlers.NewTaskHandler(svc, read), svc, read
}

func TestListTasks_ParsesView(t *testing.T) {
	t.Parallel()
	h, _, read := newTaskHandler(t)

	want := task.View{Scope: task.ScopeTeam, TeamID: 10, Status: task.StatusDone, Priority: task.PriorityHigh}
	read.EXPECT().VisibleTasks(mock.Anything, adminPrincipal, want).Return([]task.Task{validTask()}, nil)

	rec := httptest.NewRecorder()
	h.ListTasks(rec, newRequest(http.MethodGet, "/api/v1/tasks?scope=team&team_id=10&status=done&priority=high", nil, adminPrincipal))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Count != 1 || resp.Tasks[0].DueDate != "2026-11-02" {
		t.Errorf("response = %+v", resp)
	}
}

func TestListTasks_Errors(t *testing.T) {
	t.Parallel()

	t.Run("scope required", func(t *testing.T) {
		t.Parallel()
		h, _, read := newTaskHandler(t)
		read.EXPECT().VisibleTasks(mock.Anything, leaderPrincipal, task.View{}).Return(nil, domain.ErrScopeRequired)

		rec := httptest.NewRecorder()
		h.ListTasks(rec, newRequest(http.MethodGet, "/api/v1/tasks", nil, leaderPrincipal))

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("bad subject", func(t *testing.T) {
		t.Parallel()
		h, _, _ := newTaskHandler(t)

		rec := httptest.NewRecorder()
		h.ListTasks(rec, newRequest(http.MethodGet, "/api/v1/tasks?scope=leader&subject_id=x", nil, leaderPrincipal))

		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestCreateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc, _ := newTaskHandler(t)

	created := validTask()
	svc.EXPECT().CreateTask(mock.Anything, leaderPrincipal, mock.MatchedBy(func(tk *task.Task) bool {
		return tk.Title == "Write runbook" &&
			tk.DueDate.Equal(time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)) &&
			tk.AssignedToID != nil && *tk.AssignedToID == 5
	})).Return(&created, nil)

	assignee := int64(5)
	body := jsonBody(t, dto.CreateTaskRequest{Title: "Write runbook", DueDate: "2026-11-02", AssignedToID: &assignee})
	rec := httptest.NewRecorder()
	h.CreateTask(rec, newRequest(http.MethodPost, "/api/v1/tasks", body, leaderPrincipal))

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateTask_ValidationError(t *testing.T) {
	t.Parallel()
	h, _, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	h.CreateTask(rec, newRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBufferString(`{"title":"x"}`), leaderPrincipal))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.due_date" {
		t.Errorf("Errors = %+v, want body.due_date", resp.Errors)
	}
}

func TestGetTask_Forbidden(t *testing.T) {
	t.Parallel()
	h, svc, _ := newTaskHandler(t)

	svc.EXPECT().GetTask(mock.Anything, leaderPrincipal, int64(20)).Return(nil, domain.ErrForbidden)

	rec := httptest.NewRecorder()
	req := withChiParams(newRequest(http.MethodGet, "/api/v1/tasks/20", nil, leaderPrincipal), map[string]string{"id": "20"})
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

func TestUpdateTask_ClearAssignee(t *testing.T) {
	t.Parallel()
	h, svc, _ := newTaskHandler(t)

	updated := validTask()
	updated.AssignedToID = nil
	svc.EXPECT().EditTask(mock.Anything, leaderPrincipal, int64(20), mock.MatchedBy(func(p task.Patch) bool {
		return p.ClearAssignee && p.AssignedToID == nil
	})).Return(&updated, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		newRequest(http.MethodPatch, "/api/v1/tasks/20", bytes.NewBufferString(`{"clear_assignee":true}`), leaderPrincipal),
		map[string]string{"id": "20"},
	)
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.AssignedToID != nil {
		t.Errorf("AssignedToID = %v, want nil", *resp.AssignedToID)
	}
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	h, svc, _ := newTaskHandler(t)

	svc.EXPECT().DeleteTask(mock.Anything, leaderPrincipal, int64(20)).Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(newRequest(http.MethodDelete, "/api/v1/tasks/20", nil, leaderPrincipal), map[string]string{"id": "20"})
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestChangeStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.MockTaskService)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"status":"in_progress"}`,
			setup: func(svc *mocks.MockTaskService) {
				tk := validTask()
				tk.Status = task.StatusInProgress
				svc.EXPECT().ChangeStatus(mock.Anything, leaderPrincipal, int64(20), task.StatusInProgress).Return(&tk, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "no-op transition",
			body: `{"status":"todo"}`,
			setup: func(svc *mocks.MockTaskService) {
				svc.EXPECT().ChangeStatus(mock.Anything, leaderPrincipal, int64(20), task.StatusTodo).Return(nil, domain.ErrNoOpTransition)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown status",
			body:       `{"status":"blocked"}`,
			setup:      func(*mocks.MockTaskService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc, _ := newTaskHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := withChiParams(
				newRequest(http.MethodPut, "/api/v1/tasks/20/status", bytes.NewBufferString(tt.body), leaderPrincipal),
				map[string]string{"id": "20"},
			)
			h.ChangeStatus(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestAddComment(t *testing.T) {
	t.Parallel()
	h, svc, _ := newTaskHandler(t)

	c := task.Comment{ID: 1, TaskID: 20, AuthorID: 2, AuthorRole: task.AuthorLeader, Body: "looks good", CreatedAt: testTime}
	svc.EXPECT().AddComment(mock.Anything, leaderPrincipal, int64(20), "looks good").Return(&c, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		newRequest(http.MethodPost, "/api/v1/tasks/20/comments", jsonBody(t, dto.AddCommentRequest{Body: "looks good"}), leaderPrincipal),
		map[string]string{"id": "20"},
	)
	h.AddComment(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.CommentResponse](t, rec)
	if resp.AuthorRole != "leader" {
		t.Errorf("AuthorRole = %q, want leader", resp.AuthorRole)
	}
}
