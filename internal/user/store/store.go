package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/fault"
	"github.com/acadfund/acadfund/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectUserColumns = `
	u.id, u.name, u.email, u.role, u.department_id, u.active, u.last_login,
	u.created_at, u.updated_at
`

func scanUser(s scanner) (*user.User, error) {
	var u user.User

	var roleStr string

	if err := s.Scan(
		&u.ID, &u.Name, &u.Email, &roleStr, &u.DepartmentID, &u.Active, &u.LastLogin,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	u.Role = actor.Role(roleStr)

	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users u WHERE u.id = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.NotFoundf("user %s", id)
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) ListUsers(ctx context.Context, filter user.ListFilter) ([]*user.User, int, error) {
	where := " WHERE 1=1"

	var args []any

	argIdx := 1

	if filter.Role != nil {
		where += fmt.Sprintf(" AND u.role = $%d", argIdx)

		args = append(args, *filter.Role)
		argIdx++
	}

	if filter.DepartmentID != nil {
		where += fmt.Sprintf(" AND u.department_id = $%d", argIdx)

		args = append(args, *filter.DepartmentID)
		argIdx++
	}

	if filter.Search != nil {
		where += fmt.Sprintf(" AND (u.name ILIKE $%d OR u.email ILIKE $%d)", argIdx, argIdx)

		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users u"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	query := `SELECT ` + selectUserColumns + ` FROM users u` + where +
		fmt.Sprintf(" ORDER BY u.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*user.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning user: %w", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating user rows: %w", err)
	}

	return users, total, nil
}

func (s *Store) UpdateRole(ctx context.Context, id uuid.UUID, role actor.Role) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`, role, id)
	if err != nil {
		return false, fmt.Errorf("updating role: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating role: %w", err)
	}

	return n > 0, nil
}

func (s *Store) UpdateDepartment(ctx context.Context, id, departmentID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET department_id = $1, updated_at = NOW() WHERE id = $2`, departmentID, id)
	if err != nil {
		return false, fmt.Errorf("updating department: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating department: %w", err)
	}

	return n > 0, nil
}

func (s *Store) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return false, fmt.Errorf("setting user active flag: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("setting user active flag: %w", err)
	}

	return n > 0, nil
}
