package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

var _ ports.TeamStore = (*Teams)(nil)

// Teams is an in-memory Team Store. Like the real store it enforces unique
// names and at most one team per user, and knows nothing about roles.
type Teams struct {
	faults

	mu     sync.RWMutex
	teams  map[int64]team.Team
	nextID int64
	now    func() time.Time
}

// NewTeams returns an empty Team Store.
func NewTeams() *Teams {
	return &Teams{teams: make(map[int64]team.Team), nextID: 1, now: time.Now}
}

// Put stores t as given without any checks, assigning an id when t.ID is
// zero. Tests use it to seed states the store would otherwise refuse.
func (s *Teams) Put(t team.Team) team.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == 0 {
		t.ID = s.nextID
	}
	if t.ID >= s.nextID {
		s.nextID = t.ID + 1
	}
	t.Members = slices.Clone(t.Members)
	s.teams[t.ID] = t
	return cloneTeam(t)
}

// GetTeam implements [ports.TeamStore].
func (s *Teams) GetTeam(ctx context.Context, id int64) (*team.Team, error) {
	if err := s.check(ctx, "GetTeam"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return nil, fmt.Errorf("team %d: %w", id, domain.ErrNotFound)
	}
	out := cloneTeam(t)
	return &out, nil
}

// ListTeams implements [ports.TeamStore]. Results are ordered by id.
func (s *Teams) ListTeams(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	if err := s.check(ctx, "ListTeams"); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]team.Team, 0, len(s.teams))
	for _, t := range s.teams {
		if filter.MemberID > 0 && !t.HasMember(filter.MemberID) {
			continue
		}
		if filter.LeaderID > 0 && t.LeaderID != filter.LeaderID {
			continue
		}
		if filter.Name != "" && !strings.EqualFold(t.Name, filter.Name) {
			continue
		}
		out = append(out, cloneTeam(t))
	}
	slices.SortFunc(out, func(a, b team.Team) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// CreateTeam implements [ports.TeamStore].
func (s *Teams) CreateTeam(ctx context.Context, t *team.Team) (*team.Team, error) {
	if err := s.check(ctx, "CreateTeam"); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.nameTakenLocked(t.Name, 0); err != nil {
		return nil, err
	}
	for _, uid := range t.Members {
		if owner, ok := s.teamOfLocked(uid); ok {
			return nil, fmt.Errorf("user %d already belongs to team %d: %w", uid, owner, domain.ErrConflict)
		}
	}

	created := team.Team{
		ID:          s.nextID,
		Name:        strings.TrimSpace(t.Name),
		Description: t.Description,
		LeaderID:    t.LeaderID,
		Members:     slices.Clone(t.Members),
		CreatedAt:   s.now().UTC(),
	}
	s.nextID++
	s.teams[created.ID] = created
	out := cloneTeam(created)
	if err := s.respond(ctx, "CreateTeam"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTeam implements [ports.TeamStore].
func (s *Teams) UpdateTeam(ctx context.Context, id int64, patch team.Patch) (*team.Team, error) {
	if err := s.check(ctx, "UpdateTeam"); err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[id]
	if !ok {
		return nil, fmt.Errorf("team %d: %w", id, domain.ErrNotFound)
	}
	if patch.Name != nil {
		if err := s.nameTakenLocked(*patch.Name, id); err != nil {
			return nil, err
		}
		t.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.LeaderID != nil {
		t.LeaderID = *patch.LeaderID
	}
	s.teams[id] = t
	out := cloneTeam(t)
	if err := s.respond(ctx, "UpdateTeam"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTeam implements [ports.TeamStore].
func (s *Teams) DeleteTeam(ctx context.Context, id int64) error {
	if err := s.check(ctx, "DeleteTeam"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[id]; !ok {
		return fmt.Errorf("team %d: %w", id, domain.ErrNotFound)
	}
	delete(s.teams, id)
	return s.respond(ctx, "DeleteTeam")
}

// AddMember implements [ports.TeamStore].
func (s *Teams) AddMember(ctx context.Context, teamID, userID int64) (*team.Team, error) {
	if err := s.check(ctx, "AddMember"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("team %d: %w", teamID, domain.ErrNotFound)
	}
	if owner, ok := s.teamOfLocked(userID); ok {
		return nil, fmt.Errorf("user %d already belongs to team %d: %w", userID, owner, domain.ErrConflict)
	}
	t.Members = append(slices.Clone(t.Members), userID)
	s.teams[teamID] = t
	out := cloneTeam(t)
	if err := s.respond(ctx, "AddMember"); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveMember implements [ports.TeamStore].
func (s *Teams) RemoveMember(ctx context.Context, teamID, userID int64) (*team.Team, error) {
	if err := s.check(ctx, "RemoveMember"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("team %d: %w", teamID, domain.ErrNotFound)
	}
	i := slices.Index(t.Members, userID)
	if i < 0 {
		return nil, fmt.Errorf("user %d is not in team %d: %w", userID, teamID, domain.ErrNotFound)
	}
	t.Members = slices.Delete(slices.Clone(t.Members), i, i+1)
	s.teams[teamID] = t
	out := cloneTeam(t)
	if err := s.respond(ctx, "RemoveMember"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Name implements ports.HealthChecker.
func (s *Teams) Name() string { return "team-store" }

// HealthCheck implements ports.HealthChecker; an in-process store is always up.
func (s *Teams) HealthCheck(context.Context) error { return nil }

func (s *Teams) nameTakenLocked(name string, except int64) error {
	name = strings.TrimSpace(name)
	for id, t := range s.teams {
		if id != except && strings.EqualFold(t.Name, name) {
			return fmt.Errorf("team name %q: %w", name, domain.ErrAlreadyExists)
		}
	}
	return nil
}

func (s *Teams) teamOfLocked(userID int64) (int64, bool) {
	for id, t := range s.teams {
		if t.HasMember(userID) {
			return id, true
		}
	}
	return 0, false
}

func cloneTeam(t team.Team) team.Team {
	t.Members = slices.Clone(t.Members)
	return t
}
