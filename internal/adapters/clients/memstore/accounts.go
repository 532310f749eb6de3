package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

var _ ports.AccountStore = (*Accounts)(nil)

// Accounts is an in-memory Account Store.
type Accounts struct {
	faults

	mu     sync.RWMutex
	users  map[int64]account.User
	nextID int64
}

// NewAccounts returns an empty Account Store.
func NewAccounts() *Accounts {
	return &Accounts{users: make(map[int64]account.User), nextID: 1}
}

// Put stores u as given, assigning an id when u.ID is zero. It is the
// seeding path and bypasses signup defaults.
func (s *Accounts) Put(u account.User) account.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.nextID
	}
	if u.ID >= s.nextID {
		s.nextID = u.ID + 1
	}
	s.users[u.ID] = u
	return u
}

// Signup registers a new user. The first account becomes an active Admin;
// every later one starts as an inactive Member awaiting activation.
func (s *Accounts) Signup(ctx context.Context, u account.User) (*account.User, error) {
	if err := s.check(ctx, "Signup"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(u.Username) == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"username": domain.MsgRequired}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return nil, fmt.Errorf("username %q: %w", u.Username, domain.ErrAlreadyExists)
		}
	}

	u.ID = s.nextID
	s.nextID++
	u.Role, u.Active = account.RoleMember, false
	if len(s.users) == 0 {
		u.Role, u.Active = account.RoleAdmin, true
	}
	s.users[u.ID] = u
	return &u, nil
}

// GetUser implements [ports.AccountStore].
func (s *Accounts) GetUser(ctx context.Context, id int64) (*account.User, error) {
	if err := s.check(ctx, "GetUser"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

// ListUsers implements [ports.AccountStore]. Results are ordered by id.
func (s *Accounts) ListUsers(ctx context.Context, filter account.Filter) ([]account.User, error) {
	if err := s.check(ctx, "ListUsers"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]account.User, 0, len(s.users))
	for _, u := range s.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Active != nil && u.Active != *filter.Active {
			continue
		}
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b account.User) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// UpdateUser implements [ports.AccountStore].
func (s *Accounts) UpdateUser(ctx context.Context, id int64, patch account.Patch) (*account.User, error) {
	if err := s.check(ctx, "UpdateUser"); err != nil {
		return nil, err
	}
	if patch.Role != nil && !patch.Role.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{"role": fmt.Sprintf("invalid: %q", *patch.Role)}}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Active != nil {
		u.Active = *patch.Active
	}
	s.users[id] = u
	if err := s.respond(ctx, "UpdateUser"); err != nil {
		return nil, err
	}
	return &u, nil
}

// Name implements ports.HealthChecker.
func (s *Accounts) Name() string { return "account-store" }

// HealthCheck implements ports.HealthChecker; an in-process store is always up.
func (s *Accounts) HealthCheck(context.Context) error { return nil }
