package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/internal/domain/task"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

var (
	adminPrincipal  = identity.Principal{UserID: 1, Role: account.RoleAdmin, Active: true}
	leaderPrincipal = identity.Principal{UserID: 2, Role: account.RoleTeamLeader, Active: true}
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds a request made by p. A nil body sends no body.
func newRequest(method, target string, body io.Reader, p identity.Principal) *http.Request {
	r := httptest.NewRequest(method, target, body)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r.WithContext(identity.WithPrincipal(r.Context(), p))
}

func validTeam() team.Team {
	return team.Team{
		ID:          10,
		Name:        "Platform",
		Description: "Platform team",
		LeaderID:    2,
		Members:     []int64{2, 5},
		CreatedAt:   testTime,
	}
}

func validTask() task.Task {
	assignee := int64(5)
	return task.Task{
		ID:           20,
		Title:        "Write runbook",
		LeaderID:     2,
		AssignedToID: &assignee,
		Status:       task.StatusTodo,
		Priority:     task.PriorityMedium,
		DueDate:      time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		CreatedAt:    testTime,
	}
}

func validUser() account.User {
	return account.User{ID: 5, Username: "kim", Email: "kim@example.com", Role: account.RoleMember, Active: true}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
