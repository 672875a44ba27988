package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/department"
	"github.com/acadfund/acadfund/internal/fault"
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

const selectDepartmentColumns = `
	d.id, d.name, d.code, d.budget, d.description, d.active, d.created_at, d.updated_at
`

func scanDepartment(s scanner) (*department.Department, error) {
	var d department.Department

	var desc sql.NullString

	if err := s.Scan(&d.ID, &d.Name, &d.Code, &d.Budget, &desc, &d.Active, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}

	d.Description = desc.String

	return &d, nil
}

func (s *Store) CreateDepartment(ctx context.Context, d *department.Department) error {
	query := `
		INSERT INTO departments (name, code, budget, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.Name,
		d.Code,
		d.Budget,
		d.Description,
		d.Active,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating department: %w", err)
	}

	return nil
}

func (s *Store) GetDepartment(ctx context.Context, id uuid.UUID) (*department.Department, error) {
	query := `SELECT ` + selectDepartmentColumns + ` FROM departments d WHERE d.id = $1`

	d, err := scanDepartment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.NotFoundf("department %s", id)
		}

		return nil, fmt.Errorf("getting department: %w", err)
	}

	return d, nil
}

func (s *Store) UpdateDepartment(ctx context.Context, d *department.Department) error {
	query := `
		UPDATE departments
		SET name = $1, code = $2, budget = $3, description = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query, d.Name, d.Code, d.Budget, d.Description, d.ID)
	if err != nil {
		return fmt.Errorf("updating department: %w", err)
	}

	return nil
}

func (s *Store) DeactivateDepartment(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE departments
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1 AND active
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("deactivating department: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deactivating department: %w", err)
	}

	return n > 0, nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]*department.Department, error) {
	query := `SELECT ` + selectDepartmentColumns + ` FROM departments d WHERE d.active ORDER BY d.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}
	defer rows.Close()

	var departments []*department.Department

	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning department: %w", err)
		}

		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating department rows: %w", err)
	}

	return departments, nil
}

func (s *Store) CodeExists(ctx context.Context, code string, exclude uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM departments WHERE code = $1 AND id <> $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, code, exclude).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking department code: %w", err)
	}

	return exists, nil
}
