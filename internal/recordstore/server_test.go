package recordstore_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/acl/accounts"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/clients/memstore"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/platform/health"
	"github.com/jsamuelsen11/teamtasks/internal/platform/httpclient"
	"github.com/jsamuelsen11/teamtasks/internal/recordstore"
)

type harness struct {
	url      string
	accounts *acl.AccountClient
	teams    *acl.TeamClient
	tasks    *acl.TaskClient
}

func newHarness(t *testing.T, stores recordstore.Stores) *harness {
	t.Helper()
	ts := httptest.NewServer(recordstore.NewHandler(stores, handlers.NewHealthHandler(health.New())))
	t.Cleanup(ts.Close)

	logger := slog.New(slog.DiscardHandler)
	client := func(name string) *httpclient.Client {
		return httpclient.New(&config.ClientConfig{
			BaseURL: ts.URL,
			Timeout: 5 * time.Second,
			Retry:   config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures: 100, Timeout: time.Second, HalfOpenLimit: 1,
			},
		}, name, nil, logger)
	}
	return &harness{
		url:      ts.URL,
		accounts: acl.NewAccountClient(client("account-store"), logger),
		teams:    acl.NewTeamClient(client("team-store"), logger),
		tasks:    acl.NewTaskClient(client("task-store"), logger),
	}
}

func sqliteStores(t *testing.T) recordstore.Stores {
	t.Helper()
	s, err := recordstore.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return recordstore.Stores{Accounts: s, Teams: s, Tasks: s}
}

func memoryStores() recordstore.Stores {
	return recordstore.Stores{Accounts: memstore.NewAccounts(), Teams: memstore.NewTeams(), Tasks: memstore.NewTasks()}
}

func (h *harness) signup(t *testing.T, username string) accounts.UserDTO {
	t.Helper()
	body, err := json.Marshal(accounts.SignupRequestDTO{Username: username})
	if err != nil {
		t.Fatalf("marshal signup: %v", err)
	}
	resp, err := http.Post(h.url+"/api/v1/users", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /users: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /users status = %d, want 201", resp.StatusCode)
	}
	var u accounts.UserDTO
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		t.Fatalf("decode signup: %v", err)
	}
	return u
}

func backends() map[string]func(t *testing.T) recordstore.Stores {
	return map[string]func(t *testing.T) recordstore.Stores{
		"sqlite": sqliteStores,
		"memory": func(*testing.T) recordstore.Stores { return memoryStores() },
	}
}

func TestHandler_AccountsContract(t *testing.T) {
	t.Parallel()

	for name, stores := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t, stores(t))
			ctx := context.Background()

			root := h.signup(t, "root")
			if root.Role != "Admin" || !root.IsActive {
				t.Errorf("first signup = %+v, want active Admin", root)
			}
			ana := h.signup(t, "ana")

			u, err := h.accounts.UpdateUser(ctx, ana.ID, account.Patch{
				Role:   ptr(account.RoleTeamLeader),
				Active: ptr(true),
			})
			if err != nil {
				t.Fatalf("UpdateUser() error = %v", err)
			}
			if u.Role != account.RoleTeamLeader || !u.Active {
				t.Errorf("updated = %+v, want active team leader", u)
			}

			leaders, err := h.accounts.ListUsers(ctx, account.Filter{Role: account.RoleTeamLeader, Active: ptr(true)})
			if err != nil {
				t.Fatalf("ListUsers() error = %v", err)
			}
			if len(leaders) != 1 || leaders[0].ID != ana.ID {
				t.Errorf("leaders = %+v, want ana", leaders)
			}

			if _, err := h.accounts.GetUser(ctx, 99); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("GetUser(missing) = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestHandler_TeamsContract(t *testing.T) {
	t.Parallel()

	for name, stores := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t, stores(t))
			ctx := context.Background()

			created, err := h.teams.CreateTeam(ctx, &team.Team{Name: "Platform", Description: "core", LeaderID: 2, Members: []int64{2}})
			if err != nil {
				t.Fatalf("CreateTeam() error = %v", err)
			}
			if _, err := h.teams.CreateTeam(ctx, &team.Team{Name: "platform", LeaderID: 3, Members: []int64{3}}); !errors.Is(err, domain.ErrAlreadyExists) {
				t.Errorf("CreateTeam(duplicate) = %v, want ErrAlreadyExists", err)
			}

			if _, err := h.teams.AddMember(ctx, created.ID, 5); err != nil {
				t.Fatalf("AddMember() error = %v", err)
			}
			if _, err := h.teams.AddMember(ctx, created.ID, 5); !errors.Is(err, domain.ErrConflict) {
				t.Errorf("AddMember(again) = %v, want ErrConflict", err)
			}

			byMember, err := h.teams.ListTeams(ctx, team.Filter{MemberID: 5})
			if err != nil {
				t.Fatalf("ListTeams() error = %v", err)
			}
			if len(byMember) != 1 || !byMember[0].HasMember(5) {
				t.Errorf("ListTeams(member 5) = %+v", byMember)
			}

			leader := int64(5)
			updated, err := h.teams.UpdateTeam(ctx, created.ID, team.Patch{LeaderID: &leader})
			if err != nil {
				t.Fatalf("UpdateTeam() error = %v", err)
			}
			if updated.LeaderID != 5 {
				t.Errorf("LeaderID = %d, want 5", updated.LeaderID)
			}

			after, err := h.teams.RemoveMember(ctx, created.ID, 2)
			if err != nil {
				t.Fatalf("RemoveMember() error = %v", err)
			}
			if after.HasMember(2) {
				t.Errorf("members = %v, want 2 removed", after.Members)
			}

			if err := h.teams.DeleteTeam(ctx, created.ID); err != nil {
				t.Fatalf("DeleteTeam() error = %v", err)
			}
			if _, err := h.teams.GetTeam(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("GetTeam(deleted) = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestHandler_TasksContract(t *testing.T) {
	t.Parallel()

	for name, stores := range backends() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t, stores(t))
			ctx := context.Background()

			due := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
			created, err := h.tasks.CreateTask(ctx, &task.Task{
				Title: "Write runbook", LeaderID: 2, AssignedToID: ptr(int64(5)),
				Status: task.StatusTodo, Priority: task.PriorityHigh, DueDate: due,
			})
			if err != nil {
				t.Fatalf("CreateTask() error = %v", err)
			}

			c, err := h.tasks.AppendComment(ctx, created.ID, &task.Comment{AuthorID: 5, AuthorRole: task.AuthorAssignee, Body: "on it"})
			if err != nil {
				t.Fatalf("AppendComment() error = %v", err)
			}
			if c.TaskID != created.ID || c.AuthorRole != task.AuthorAssignee {
				t.Errorf("comment = %+v", c)
			}

			updated, err := h.tasks.UpdateTask(ctx, created.ID, task.Patch{ClearAssignee: true, Status: ptr(task.StatusDone)})
			if err != nil {
				t.Fatalf("UpdateTask() error = %v", err)
			}
			if updated.AssignedToID != nil || updated.Status != task.StatusDone {
				t.Errorf("updated = %+v, want unassigned and done", updated)
			}

			got, err := h.tasks.GetTask(ctx, created.ID)
			if err != nil {
				t.Fatalf("GetTask() error = %v", err)
			}
			if !got.DueDate.Equal(due) || len(got.Comments) != 1 {
				t.Errorf("task = %+v", got)
			}

			a, err := h.tasks.AddAttachment(ctx, &task.Attachment{TaskID: created.ID, ObjectName: "o", FileName: "notes.txt", Size: 5, UploadedBy: 2})
			if err != nil {
				t.Fatalf("AddAttachment() error = %v", err)
			}
			list, err := h.tasks.ListAttachments(ctx, created.ID)
			if err != nil {
				t.Fatalf("ListAttachments() error = %v", err)
			}
			if len(list) != 1 || list[0].ID != a.ID {
				t.Errorf("attachments = %+v", list)
			}

			byLeader, err := h.tasks.ListTasks(ctx, task.Filter{LeaderID: 2})
			if err != nil {
				t.Fatalf("ListTasks() error = %v", err)
			}
			if len(byLeader) != 1 {
				t.Errorf("ListTasks(leader 2) = %d tasks, want 1", len(byLeader))
			}

			if err := h.tasks.DeleteTask(ctx, created.ID); err != nil {
				t.Fatalf("DeleteTask() error = %v", err)
			}
			if _, err := h.tasks.GetAttachment(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("GetAttachment(after delete) = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestHandler_Validation(t *testing.T) {
	t.Parallel()
	h := newHarness(t, memoryStores())
	ctx := context.Background()

	_, err := h.tasks.CreateTask(ctx, &task.Task{LeaderID: 2, Status: task.StatusTodo, Priority: task.PriorityLow, DueDate: time.Now()})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CreateTask(no title) = %v, want *domain.ValidationError", err)
	}
	if _, ok := verr.Fields["title"]; !ok {
		t.Errorf("Fields = %v, want title", verr.Fields)
	}

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "bad id", method: http.MethodGet, path: "/api/v1/tasks/abc", want: http.StatusBadRequest},
		{name: "bad filter", method: http.MethodGet, path: "/api/v1/teams?member_id=-1", want: http.StatusBadRequest},
		{name: "bad role", method: http.MethodGet, path: "/api/v1/users?role=owner", want: http.StatusBadRequest},
		{name: "empty body", method: http.MethodPost, path: "/api/v1/teams", want: http.StatusBadRequest},
		{name: "ready", method: http.MethodGet, path: "/health/ready", want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(ctx, tt.method, h.url+tt.path, http.NoBody)
			if err != nil {
				t.Fatalf("NewRequest: %v", err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("Do: %v", err)
			}
			_ = resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
