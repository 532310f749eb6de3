package middleware_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/identity"
	"github.com/jsamuelsen11/teamtasks/mocks"
)

func TestAuthenticate_StoresPrincipal(t *testing.T) {
	t.Parallel()

	want := identity.Principal{UserID: 7, Role: account.RoleTeamLeader, Active: true}
	verifier := mocks.NewMockIdentityVerifier(t)
	verifier.EXPECT().Verify(mock.Anything, "good-token").Return(want, nil)

	var got identity.Principal
	var found bool
	handler := middleware.Authenticate(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = identity.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", http.NoBody)
	req.Header.Set("Authorization", "bearer good-token")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if !found || got != want {
		t.Errorf("principal = %+v (found %t), want %+v", got, found, want)
	}
}

func TestAuthenticate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		verify bool
	}{
		{name: "missing header"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer   "},
		{name: "invalid token", header: "Bearer forged", verify: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verifier := mocks.NewMockIdentityVerifier(t)
			if tt.verify {
				verifier.EXPECT().Verify(mock.Anything, "forged").
					Return(identity.Principal{}, fmt.Errorf("%w: signature is invalid", domain.ErrUnauthenticated))
			}
			handler := middleware.Authenticate(verifier)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Error("handler reached without a valid token")
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("WWW-Authenticate header missing")
			}
			if strings.Contains(rec.Body.String(), "signature") {
				t.Errorf("body leaks the verifier reason: %s", rec.Body.String())
			}
		})
	}
}

func TestAuthenticate_AnnotatesAccessLog(t *testing.T) {
	t.Parallel()

	verifier := mocks.NewMockIdentityVerifier(t)
	verifier.EXPECT().Verify(mock.Anything, "tok").
		Return(identity.Principal{UserID: 3, Role: account.RoleAdmin, Active: true}, nil)

	var buf bytes.Buffer
	handler := middleware.Logging(slog.New(slog.NewTextHandler(&buf, nil)))(
		middleware.Authenticate(verifier)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/invariants", http.NoBody)
	req.Header.Set("Authorization", "Bearer tok")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "user_id=3 role=admin") {
		t.Errorf("access log missing caller, got: %s", buf.String())
	}
}
