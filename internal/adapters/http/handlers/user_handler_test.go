package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/mocks"
)

func newUserHandler(t *testing.T) (*handlers.UserHandler, *mocks.MockUserService, *mocks.MockReadProjector) {
	t.Helper()
	svc := mocks.NewMockUserService(t)
	read := mocks.NewMockReadProjector(t)
	return handlers.NewUserHandler(svc, read), svc, read
}

func TestListUsers_Filters(t *testing.T) {
	t.Parallel()
	h, svc, _ := newUserHandler(t)

	svc.EXPECT().ListUsers(mock.Anything, adminPrincipal, mock.MatchedBy(func(f account.Filter) bool {
		return f.Role == account.RoleMember && f.Active != nil && !*f.Active
	})).Return([]account.User{validUser()}, nil)

	rec := httptest.NewRecorder()
	h.ListUsers(rec, newRequest(http.MethodGet, "/api/v1/users?role=member&active=false", nil, adminPrincipal))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListUsers_BadActive(t *testing.T) {
	t.Parallel()
	h, _, _ := newUserHandler(t)

	rec := httptest.NewRecorder()
	h.ListUsers(rec, newRequest(http.MethodGet, "/api/v1/users?active=maybe", nil, adminPrincipal))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestEligibleUsers(t *testing.T) {
	t.Parallel()
	h, _, read := newUserHandler(t)

	read.EXPECT().EligibleUsers(mock.Anything, leaderPrincipal).Return([]account.User{validUser()}, nil)

	rec := httptest.NewRecorder()
	h.EligibleUsers(rec, newRequest(http.MethodGet, "/api/v1/users/eligible", nil, leaderPrincipal))

	requireStatus(t, rec, http.StatusOK)
}

func TestUserActions(t *testing.T) {
	t.Parallel()

	u := validUser()
	tests := []struct {
		name       string
		setup      func(svc *mocks.MockUserService)
		call       func(h *handlers.UserHandler) http.HandlerFunc
		wantStatus int
	}{
		{
			name: "get",
			setup: func(svc *mocks.MockUserService) {
				svc.EXPECT().GetUser(mock.Anything, adminPrincipal, int64(5)).Return(&u, nil)
			},
			call:       func(h *handlers.UserHandler) http.HandlerFunc { return h.GetUser },
			wantStatus: http.StatusOK,
		},
		{
			name: "activate",
			setup: func(svc *mocks.MockUserService) {
				svc.EXPECT().ActivateUser(mock.Anything, adminPrincipal, int64(5)).Return(&u, nil)
			},
			call:       func(h *handlers.UserHandler) http.HandlerFunc { return h.ActivateUser },
			wantStatus: http.StatusOK,
		},
		{
			name: "deactivate a leader conflicts",
			setup: func(svc *mocks.MockUserService) {
				svc.EXPECT().DeactivateUser(mock.Anything, adminPrincipal, int64(5)).Return(nil, domain.ErrConflict)
			},
			call:       func(h *handlers.UserHandler) http.HandlerFunc { return h.DeactivateUser },
			wantStatus: http.StatusConflict,
		},
		{
			name: "promote",
			setup: func(svc *mocks.MockUserService) {
				svc.EXPECT().PromoteMember(mock.Anything, adminPrincipal, int64(5)).Return(&u, nil)
			},
			call:       func(h *handlers.UserHandler) http.HandlerFunc { return h.PromoteUser },
			wantStatus: http.StatusOK,
		},
		{
			name: "demote not eligible",
			setup: func(svc *mocks.MockUserService) {
				svc.EXPECT().DemoteMember(mock.Anything, adminPrincipal, int64(5)).Return(nil, domain.ErrNotEligible)
			},
			call:       func(h *handlers.UserHandler) http.HandlerFunc { return h.DemoteUser },
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc, _ := newUserHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := withChiParams(newRequest(http.MethodPost, "/api/v1/users/5", nil, adminPrincipal), map[string]string{"id": "5"})
			tt.call(h)(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestUserActions_BadID(t *testing.T) {
	t.Parallel()
	h, _, _ := newUserHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(newRequest(http.MethodPost, "/api/v1/users/0/activate", nil, adminPrincipal), map[string]string{"id": "0"})
	h.ActivateUser(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
