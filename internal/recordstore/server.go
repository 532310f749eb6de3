package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/acl/accounts"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/acl/tasks"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/acl/teams"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
	"github.com/jsamuelsen11/teamtasks/internal/platform/logging"
)

const maxBodySize = 1 << 20

// AccountRecords is an Account Store that also accepts signups.
type AccountRecords interface {
	ports.AccountStore
	Signup(ctx context.Context, u account.User) (*account.User, error)
}

// Stores are the record sets NewHandler serves.
type Stores struct {
	Accounts AccountRecords
	Teams    ports.TeamStore
	Tasks    ports.TaskStore
}

type server struct {
	Stores
}

// NewHandler returns the record store API. Errors are written as problem
// documents that the ACL clients translate back into domain errors.
func NewHandler(stores Stores, health *handlers.HealthHandler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	s := &server{Stores: stores}
	r := chi.NewRouter()
	for _, mw := range middlewares {
		r.Use(mw)
	}

	if health != nil {
		r.Get("/health/live", health.Liveness)
		r.Get("/health/ready", health.Readiness)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users", s.listUsers)
		r.Post("/users", s.signup)
		r.Get("/users/{id}", s.getUser)
		r.Patch("/users/{id}", s.updateUser)

		r.Get("/teams", s.listTeams)
		r.Post("/teams", s.createTeam)
		r.Get("/teams/{id}", s.getTeam)
		r.Patch("/teams/{id}", s.updateTeam)
		r.Delete("/teams/{id}", s.deleteTeam)
		r.Post("/teams/{id}/members", s.addMember)
		r.Delete("/teams/{id}/members/{userId}", s.removeMember)

		r.Get("/tasks", s.listTasks)
		r.Post("/tasks", s.createTask)
		r.Get("/tasks/{id}", s.getTask)
		r.Patch("/tasks/{id}", s.updateTask)
		r.Delete("/tasks/{id}", s.deleteTask)
		r.Post("/tasks/{id}/comments", s.appendComment)
		r.Get("/tasks/{id}/attachments", s.listAttachments)
		r.Post("/tasks/{id}/attachments", s.addAttachment)
		r.Get("/attachments/{id}", s.getAttachment)
	})
	return r
}

// --- users ---

func (s *server) listUsers(w http.ResponseWriter, r *http.Request) {
	var filter account.Filter
	if v := r.URL.Query().Get("role"); v != "" {
		role, err := account.ParseRole(v)
		if err != nil {
			s.fail(w, r, queryError("role", v))
			return
		}
		filter.Role = role
	}
	if v := r.URL.Query().Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			s.fail(w, r, queryError("active", v))
			return
		}
		filter.Active = &active
	}

	users, err := s.Accounts.ListUsers(r.Context(), filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts.FromDomainUserList(users))
}

func (s *server) signup(w http.ResponseWriter, r *http.Request) {
	var req accounts.SignupRequestDTO
	if !s.decode(w, r, &req) {
		return
	}
	u, err := s.Accounts.Signup(r.Context(), account.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, accounts.FromDomainUser(u))
}

func (s *server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	u, err := s.Accounts.GetUser(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts.FromDomainUser(u))
}

func (s *server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	var req accounts.UpdateUserRequestDTO
	if !s.decode(w, r, &req) {
		return
	}
	patch, err := accounts.ToDomainPatch(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	u, err := s.Accounts.UpdateUser(r.Context(), id, patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts.FromDomainUser(u))
}

// --- teams ---

func (s *server) listTeams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := team.Filter{Name: q.Get("name")}
	var err error
	if filter.MemberID, err = queryID(q.Get("member_id"), "member_id"); err != nil {
		s.fail(w, r, err)
		return
	}
	if filter.LeaderID, err = queryID(q.Get("leader_id"), "leader_id"); err != nil {
		s.fail(w, r, err)
		return
	}

	ts, err := s.Teams.ListTeams(r.Context(), filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams.FromDomainTeamList(ts))
}

func (s *server) createTeam(w http.ResponseWriter, r *http.Request) {
	var req teams.CreateTeamRequestDTO
	if !s.decode(w, r, &req) {
		return
	}
	t := teams.ToDomainNewTeam(req)
	created, err := s.Teams.CreateTeam(r.Context(), &t)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, teams.FromDomainTeam(created))
}

func (s *server) getTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	t, err := s.Teams.GetTeam(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams.FromDomainTeam(t))
}

func (s *server) updateTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	var req teams.UpdateTeamRequestDTO
	if !s.decode(w, r, &req) {
		return
	}
	t, err := s.Teams.UpdateTeam(r.Context(), id, teams.ToDomainPatch(req))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams.FromDomainTeam(t))
}

func (s *server) deleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Teams.DeleteTeam(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) addMember(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	var req teams.AddMemberRequestDTO
	if !s.decode(w, r, &req) {
		return
	}
	if req.UserID <= 0 {
		s.fail(w, r, &domain.ValidationError{Fields: map[string]string{"user_id": domain.MsgRequired}})
		return
	}
	t, err := s.Teams.AddMember(r.Context(), id, req.UserID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams.FromDomainTeam(t))
}

func (s *server) removeMember(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := s.pathID(w, r, "userId")
	if !ok {
		return
	}
	t, err := s.Teams.RemoveMember(r.Context(), id, userID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams.FromDomainTeam(t))
}

// --- tasks ---

func (s *server) listTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		filter task.Filter
		err    error
	)
	if filter.LeaderID, err = queryID(q.Get("leader_id"), "leader_id"); err != nil {
		s.fail(w, r, err)
		return
	}
	if filter.AssignedToID, err = queryID(q.Get("assigned_to_id"), "assigned_to_id"); err != nil {
		s.fail(w, r, err)
		return
	}

	ts, err := s.Tasks.ListTasks(r.Context(), filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks.FromDomainTaskList(ts))
}

func (s *server) createTask(w http.ResponseWriter, r *http.Request) {
	var req tasks.CreateTaskRequestDTO
	if !s.decode(w, r, &req) {
		return
	}
	t, err := tasks.ToDomainNewTask(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	created, err := s.Tasks.CreateTask(r.Context(), &t)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tasks.FromDomainTask(created))
}

func (s *server) getTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	t, err := s.Tasks.GetTask(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks.FromDomainTask(t))
}

func (s *server) updateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	var req tasks.UpdateTaskRequestDTO
	if !s.decode(w, r, &req) {
		return
	}
	patch, err := tasks.ToDomainPatch(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	t, err := s.Tasks.UpdateTask(r.Context(), id, patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks.FromDomainTask(t))
}

func (s *server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.Tasks.DeleteTask(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) appendComment(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	var req tasks.CreateCommentRequestDTO
	if !s.decode(w, r, &req) {
		return
	}
	c, err := s.Tasks.AppendComment(r.Context(), id, &task.Comment{
		AuthorID:   req.AuthorID,
		AuthorRole: task.AuthorRole(req.AuthorRole),
		Body:       req.Body,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tasks.FromDomainComment(c))
}

func (s *server) listAttachments(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	as, err := s.Tasks.ListAttachments(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks.FromDomainAttachmentList(as))
}

func (s *server) addAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	var req tasks.CreateAttachmentRequestDTO
	if !s.decode(w, r, &req) {
		return
	}
	if req.ObjectName == "" {
		s.fail(w, r, &domain.ValidationError{Fields: map[string]string{"object_name": domain.MsgRequired}})
		return
	}
	a, err := s.Tasks.AddAttachment(r.Context(), &task.Attachment{
		TaskID:      id,
		ObjectName:  req.ObjectName,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Size:        req.Size,
		UploadedBy:  req.UploadedBy,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tasks.FromDomainAttachment(a))
}

func (s *server) getAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	a, err := s.Tasks.GetAttachment(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks.FromDomainAttachment(a))
}

// --- plumbing ---

// fail writes err as a problem document. Errors outside the domain taxonomy
// are logged since the response hides them.
func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if domain.KindOf(err) == domain.KindInternal {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "record store request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	dto.WriteErrorResponse(w, r, err)
}

func (s *server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("request body is empty")
		}
		s.fail(w, r, &domain.ValidationError{Fields: map[string]string{"body": err.Error()}})
		return false
	}
	return true
}

func (s *server) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		s.fail(w, r, &domain.ValidationError{Fields: map[string]string{name: fmt.Sprintf("invalid id: %q", raw)}})
		return 0, false
	}
	return id, true
}

func queryID(raw, name string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, queryError(name, raw)
	}
	return id, nil
}

func queryError(name, raw string) error {
	return &domain.ValidationError{Fields: map[string]string{name: fmt.Sprintf("invalid: %q", raw)}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
