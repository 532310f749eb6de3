package recordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
	"github.com/jsamuelsen11/teamtasks/internal/domain/account"
)

const userColumns = `id, username, email, first_name, last_name, role, is_active`

// Signup registers a new user. The first account becomes an active Admin;
// every later one starts as an inactive Member awaiting activation.
func (s *Store) Signup(ctx context.Context, u account.User) (*account.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"username": domain.MsgRequired}}
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var count int64
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		u.Role, u.Active = account.RoleMember, false
		if count == 0 {
			u.Role, u.Active = account.RoleAdmin, true
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email, first_name, last_name, role, is_active)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			u.Username, u.Email, u.FirstName, u.LastName, string(u.Role), u.Active,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("username %q: %w", u.Username, domain.ErrAlreadyExists)
			}
			return fmt.Errorf("insert user: %w", err)
		}
		u.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser implements [ports.AccountStore].
func (s *Store) GetUser(ctx context.Context, id int64) (*account.User, error) {
	return getUser(ctx, s.db, id)
}

// ListUsers implements [ports.AccountStore]. Results are ordered by id.
func (s *Store) ListUsers(ctx context.Context, filter account.Filter) ([]account.User, error) {
	var (
		where []string
		args  []any
	)
	if filter.Role != "" {
		where = append(where, "role = ?")
		args = append(args, string(filter.Role))
	}
	if filter.Active != nil {
		where = append(where, "is_active = ?")
		args = append(args, *filter.Active)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users`+whereClause(where)+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]account.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// UpdateUser implements [ports.AccountStore]. A patch that matches the
// stored state succeeds without change.
func (s *Store) UpdateUser(ctx context.Context, id int64, patch account.Patch) (*account.User, error) {
	if patch.Role != nil && !patch.Role.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{"role": fmt.Sprintf("invalid: %q", *patch.Role)}}
	}

	var updated *account.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		u, err := getUser(ctx, tx, id)
		if err != nil {
			return err
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Active != nil {
			u.Active = *patch.Active
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET role = ?, is_active = ? WHERE id = ?`,
			string(u.Role), u.Active, id,
		); err != nil {
			return fmt.Errorf("update user %d: %w", id, err)
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func getUser(ctx context.Context, q querier, id int64) (*account.User, error) {
	row := q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return u, err
}

func scanUser(row rowScanner) (*account.User, error) {
	var (
		u    account.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &role, &u.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = account.Role(role)
	return &u, nil
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
