package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/team"
)

const teamColumns = `id, name, description, leader_id, created_at`

// GetTeam implements [ports.TeamStore].
func (s *Store) GetTeam(ctx context.Context, id int64) (*team.Team, error) {
	return getTeam(ctx, s.db, id)
}

// ListTeams implements [ports.TeamStore]. Results are ordered by id.
func (s *Store) ListTeams(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	var (
		where []string
		args  []any
	)
	if filter.MemberID > 0 {
		where = append(where, "id IN (SELECT team_id FROM team_members WHERE user_id = ?)")
		args = append(args, filter.MemberID)
	}
	if filter.LeaderID > 0 {
		where = append(where, "leader_id = ?")
		args = append(args, filter.LeaderID)
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		where = append(where, "name = ?")
		args = append(args, name)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+teamColumns+` FROM teams`+whereClause(where)+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	out := make([]team.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, *t)
	}
	err = rows.Err()
	_ = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	members, err := allMembers(ctx, s.db)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Members = members[out[i].ID]
	}
	return out, nil
}

// CreateTeam implements [ports.TeamStore]. Names are unique ignoring case
// and a user belongs to at most one team.
func (s *Store) CreateTeam(ctx context.Context, t *team.Team) (*team.Team, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	created := team.Team{
		Name:        strings.TrimSpace(t.Name),
		Description: t.Description,
		LeaderID:    t.LeaderID,
		CreatedAt:   s.now().UTC(),
	}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := nameAvailable(ctx, tx, created.Name, 0); err != nil {
			return err
		}
		for _, uid := range t.Members {
			if err := notInTeam(ctx, tx, uid); err != nil {
				return err
			}
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO teams (name, description, leader_id, created_at) VALUES (?, ?, ?, ?)`,
			created.Name, created.Description, created.LeaderID, toMillis(created.CreatedAt),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("team name %q: %w", created.Name, domain.ErrAlreadyExists)
			}
			return fmt.Errorf("insert team: %w", err)
		}
		if created.ID, err = res.LastInsertId(); err != nil {
			return err
		}
		for _, uid := range t.Members {
			if err := insertMember(ctx, tx, created.ID, uid); err != nil {
				return err
			}
			created.Members = append(created.Members, uid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTeam implements [ports.TeamStore].
func (s *Store) UpdateTeam(ctx context.Context, id int64, patch team.Patch) (*team.Team, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated *team.Team
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		t, err := getTeam(ctx, tx, id)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if err := nameAvailable(ctx, tx, name, id); err != nil {
				return err
			}
			t.Name = name
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.LeaderID != nil {
			t.LeaderID = *patch.LeaderID
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE teams SET name = ?, description = ?, leader_id = ? WHERE id = ?`,
			t.Name, t.Description, t.LeaderID, id,
		); err != nil {
			return fmt.Errorf("update team %d: %w", id, err)
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTeam implements [ports.TeamStore]. Membership edges go with the team.
func (s *Store) DeleteTeam(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = ?`, id); err != nil {
			return fmt.Errorf("delete members of team %d: %w", id, err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete team %d: %w", id, err)
		}
		return requireAffected(res, fmt.Sprintf("team %d", id))
	})
}

// AddMember implements [ports.TeamStore].
func (s *Store) AddMember(ctx context.Context, teamID, userID int64) (*team.Team, error) {
	var updated *team.Team
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := getTeam(ctx, tx, teamID); err != nil {
			return err
		}
		if err := notInTeam(ctx, tx, userID); err != nil {
			return err
		}
		if err := insertMember(ctx, tx, teamID, userID); err != nil {
			return err
		}
		var err error
		updated, err = getTeam(ctx, tx, teamID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveMember implements [ports.TeamStore].
func (s *Store) RemoveMember(ctx context.Context, teamID, userID int64) (*team.Team, error) {
	var updated *team.Team
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := getTeam(ctx, tx, teamID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`DELETE FROM team_members WHERE team_id = ? AND user_id = ?`, teamID, userID)
		if err != nil {
			return fmt.Errorf("remove member %d from team %d: %w", userID, teamID, err)
		}
		if err := requireAffected(res, fmt.Sprintf("user %d in team %d", userID, teamID)); err != nil {
			return err
		}
		updated, err = getTeam(ctx, tx, teamID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func getTeam(ctx context.Context, q querier, id int64) (*team.Team, error) {
	row := q.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = ?`, id)
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	rows, err := q.QueryContext(ctx, `SELECT user_id FROM team_members WHERE team_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("list members of team %d: %w", id, err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var uid int64
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		t.Members = append(t.Members, uid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members of team %d: %w", id, err)
	}
	return t, nil
}

func scanTeam(row rowScanner) (*team.Team, error) {
	var (
		t         team.Team
		createdAt int64
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.LeaderID, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan team: %w", err)
	}
	t.CreatedAt = fromMillis(createdAt)
	return &t, nil
}

// allMembers returns every team's member ids in insertion order.
func allMembers(ctx context.Context, q querier) (map[int64][]int64, error) {
	rows, err := q.QueryContext(ctx, `SELECT team_id, user_id FROM team_members ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[int64][]int64)
	for rows.Next() {
		var teamID, userID int64
		if err := rows.Scan(&teamID, &userID); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		out[teamID] = append(out[teamID], userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return out, nil
}

func nameAvailable(ctx context.Context, q querier, name string, except int64) error {
	var id int64
	err := q.QueryRowContext(ctx, `SELECT id FROM teams WHERE name = ? AND id != ?`, name, except).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil
	case err != nil:
		return fmt.Errorf("check team name: %w", err)
	default:
		return fmt.Errorf("team name %q: %w", name, domain.ErrAlreadyExists)
	}
}

func notInTeam(ctx context.Context, q querier, userID int64) error {
	var owner int64
	err := q.QueryRowContext(ctx, `SELECT team_id FROM team_members WHERE user_id = ?`, userID).Scan(&owner)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil
	case err != nil:
		return fmt.Errorf("check membership of user %d: %w", userID, err)
	default:
		return fmt.Errorf("user %d already belongs to team %d: %w", userID, owner, domain.ErrConflict)
	}
}

func insertMember(ctx context.Context, q querier, teamID, userID int64) error {
	_, err := q.ExecContext(ctx, `INSERT INTO team_members (team_id, user_id) VALUES (?, ?)`, teamID, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %d already belongs to a team: %w", userID, domain.ErrConflict)
		}
		return fmt.Errorf("insert member %d: %w", userID, err)
	}
	return nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}
