package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
	"github.com/jsamuelsen11/teamtasks/internal/ports"
)

// Compile-time checks that the saga steps implement domain.Action.
var (
	_ domain.Action = (*createTeamStep)(nil)
	_ domain.Action = (*setRoleStep)(nil)
	_ domain.Action = (*removeMemberStep)(nil)
	_ domain.Action = (*setActiveStep)(nil)
	_ domain.Action = (*setLeaderStep)(nil)
)

// createTeamStep creates a team. Rolling back deletes it; a team that is
// already gone counts as rolled back. When the create failed without an
// answer, the team is looked up by name and leader.
type createTeamStep struct {
	teams   ports.TeamStore
	timeout time.Duration
	team    team.Team

	created *team.Team
}

func (s *createTeamStep) Execute(ctx context.Context) error {
	created, err := call(ctx, s.timeout, func(ctx context.Context) (*team.Team, error) {
		return s.teams.CreateTeam(ctx, &s.team)
	})
	if err != nil {
		return err
	}
	s.created = created
	return nil
}

func (s *createTeamStep) Rollback(ctx context.Context) error {
	if s.created != nil {
		return s.delete(ctx, s.created.ID)
	}
	found, err := s.teams.ListTeams(ctx, team.Filter{Name: s.team.Name, LeaderID: s.team.LeaderID})
	if err != nil {
		return err
	}
	var errs []error
	for i := range found {
		if err := s.delete(ctx, found[i].ID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *createTeamStep) delete(ctx context.Context, id int64) error {
	err := s.teams.DeleteTeam(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (s *createTeamStep) Description() string {
	return fmt.Sprintf("create team %q led by user %d", s.team.Name, s.team.LeaderID)
}

// setRoleStep changes a user's role label. Rolling back restores the role
// the user had before.
type setRoleStep struct {
	accounts ports.AccountStore
	timeout  time.Duration
	userID   int64
	from, to account.Role
}

func (s *setRoleStep) Execute(ctx context.Context) error {
	return exec(ctx, s.timeout, func(ctx context.Context) error {
		_, err := s.accounts.UpdateUser(ctx, s.userID, account.SetRole(s.to))
		return err
	})
}

func (s *setRoleStep) Rollback(ctx context.Context) error {
	_, err := s.accounts.UpdateUser(ctx, s.userID, account.SetRole(s.from))
	return err
}

func (s *setRoleStep) Description() string {
	return fmt.Sprintf("change role of user %d from %s to %s", s.userID, s.from, s.to)
}

// removeMemberStep removes a membership edge. Rolling back adds it again.
type removeMemberStep struct {
	teams   ports.TeamStore
	timeout time.Duration
	teamID  int64
	userID  int64
}

func (s *removeMemberStep) Execute(ctx context.Context) error {
	err := exec(ctx, s.timeout, func(ctx context.Context) error {
		_, err := s.teams.RemoveMember(ctx, s.teamID, s.userID)
		return err
	})
	// A retried DELETE may find the edge already gone.
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (s *removeMemberStep) Rollback(ctx context.Context) error {
	t, err := s.teams.GetTeam(ctx, s.teamID)
	if err != nil {
		return err
	}
	if t.HasMember(s.userID) {
		return nil
	}
	_, err = s.teams.AddMember(ctx, s.teamID, s.userID)
	return err
}

func (s *removeMemberStep) Description() string {
	return fmt.Sprintf("remove user %d from team %d", s.userID, s.teamID)
}

// setActiveStep sets a user's active flag. Rolling back restores was.
type setActiveStep struct {
	accounts ports.AccountStore
	timeout  time.Duration
	userID   int64
	active   bool
	was      bool
}

func (s *setActiveStep) Execute(ctx context.Context) error {
	return exec(ctx, s.timeout, func(ctx context.Context) error {
		_, err := s.accounts.UpdateUser(ctx, s.userID, account.SetActive(s.active))
		return err
	})
}

func (s *setActiveStep) Rollback(ctx context.Context) error {
	_, err := s.accounts.UpdateUser(ctx, s.userID, account.SetActive(s.was))
	return err
}

func (s *setActiveStep) Description() string {
	if s.active {
		return fmt.Sprintf("activate user %d", s.userID)
	}
	return fmt.Sprintf("deactivate user %d", s.userID)
}

// setLeaderStep moves a team's leader pointer. Rolling back points it at
// the previous leader again.
type setLeaderStep struct {
	teams    ports.TeamStore
	timeout  time.Duration
	teamID   int64
	from, to int64

	updated *team.Team
}

func (s *setLeaderStep) Execute(ctx context.Context) error {
	updated, err := call(ctx, s.timeout, func(ctx context.Context) (*team.Team, error) {
		return s.teams.UpdateTeam(ctx, s.teamID, team.Patch{LeaderID: &s.to})
	})
	if err != nil {
		return err
	}
	s.updated = updated
	return nil
}

func (s *setLeaderStep) Rollback(ctx context.Context) error {
	_, err := s.teams.UpdateTeam(ctx, s.teamID, team.Patch{LeaderID: &s.from})
	return err
}

func (s *setLeaderStep) Description() string {
	return fmt.Sprintf("move leadership of team %d from user %d to user %d", s.teamID, s.from, s.to)
}
