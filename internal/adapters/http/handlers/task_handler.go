package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// TaskHandler handles HTTP requests for tasks, their status and comments.
type TaskHandler struct {
	svc  ports.TaskService
	read ports.ReadProjector
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc ports.TaskService, read ports.ReadProjector) *TaskHandler {
	return &TaskHandler{svc: svc, read: read}
}

// ListTasks handles GET /api/v1/tasks?scope=&subject_id=&team_id=&status=&priority=.
// Exactly one scope is required; the projector rejects a missing one.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	view, err := parseView(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.read.VisibleTasks(r.Context(), p, view)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

func parseView(r *http.Request) (task.View, error) {
	q := r.URL.Query()
	subject, err := queryInt64(r, "subject_id")
	if err != nil {
		return task.View{}, err
	}
	teamID, err := queryInt64(r, "team_id")
	if err != nil {
		return task.View{}, err
	}
	return task.View{
		Scope:     task.Scope(q.Get("scope")),
		SubjectID: subject,
		TeamID:    teamID,
		Status:    task.Status(q.Get("status")),
		Priority:  task.Priority(q.Get("priority")),
	}, nil
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), p, req.Task())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTask(r.Context(), p, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.EditTask(r.Context(), p, id, req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), p, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeStatus handles PUT /api/v1/tasks/{id}/status.
func (h *TaskHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ChangeStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.ChangeStatus(r.Context(), p, id, task.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// AddComment handles POST /api/v1/tasks/{id}/comments.
func (h *TaskHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.svc.AddComment(r.Context(), p, id, req.Body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCommentResponse(c))
}
