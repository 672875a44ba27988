package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/catalog"
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

const selectKeywordColumns = `
	k.id, k.name, k.category, k.description, k.department_id,
	k.estimated_cost_min, k.estimated_cost_max, k.created_by, k.active,
	k.created_at, k.updated_at
`

func scanKeyword(s scanner) (*catalog.Keyword, error) {
	var k catalog.Keyword

	var categoryStr string

	var desc sql.NullString

	if err := s.Scan(
		&k.ID, &k.Name, &categoryStr, &desc, &k.DepartmentID,
		&k.EstimatedCostMin, &k.EstimatedCostMax, &k.CreatedBy, &k.Active,
		&k.CreatedAt, &k.UpdatedAt,
	); err != nil {
		return nil, err
	}

	k.Category = catalog.Category(categoryStr)
	k.Description = desc.String

	return &k, nil
}

func (s *Store) CreateKeyword(ctx context.Context, k *catalog.Keyword) error {
	query := `
		INSERT INTO item_keywords (name, category, description, department_id,
			estimated_cost_min, estimated_cost_max, created_by, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		k.Name,
		k.Category,
		k.Description,
		k.DepartmentID,
		k.EstimatedCostMin,
		k.EstimatedCostMax,
		k.CreatedBy,
		k.Active,
	).Scan(&k.ID, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating keyword: %w", err)
	}

	return nil
}

func (s *Store) GetKeyword(ctx context.Context, id uuid.UUID) (*catalog.Keyword, error) {
	query := `SELECT ` + selectKeywordColumns + ` FROM item_keywords k WHERE k.id = $1`

	k, err := scanKeyword(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.NotFoundf("item %s", id)
		}

		return nil, fmt.Errorf("getting keyword: %w", err)
	}

	return k, nil
}

func (s *Store) UpdateKeyword(ctx context.Context, k *catalog.Keyword) error {
	query := `
		UPDATE item_keywords
		SET name = $1, category = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query, k.Name, k.Category, k.Description, k.ID)
	if err != nil {
		return fmt.Errorf("updating keyword: %w", err)
	}

	return nil
}

func (s *Store) DeleteKeyword(ctx context.Context, id uuid.UUID) (bool, error) {
	// Proposal items keep their snapshot; the keyword row itself only
	// disappears from the catalog.
	query := `
		UPDATE item_keywords
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1 AND active
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("deleting keyword: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting keyword: %w", err)
	}

	return n > 0, nil
}

func (s *Store) ListKeywords(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Keyword, error) {
	query := `SELECT ` + selectKeywordColumns + ` FROM item_keywords k WHERE k.active`

	var args []any

	argIdx := 1

	if filter.DepartmentID != nil {
		query += fmt.Sprintf(" AND k.department_id = $%d", argIdx)

		args = append(args, *filter.DepartmentID)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND k.category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.Search != nil {
		query += fmt.Sprintf(" AND k.name ILIKE $%d", argIdx)

		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	query += " ORDER BY k.category ASC, k.name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing keywords: %w", err)
	}
	defer rows.Close()

	var keywords []*catalog.Keyword

	for rows.Next() {
		k, err := scanKeyword(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning keyword: %w", err)
		}

		keywords = append(keywords, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating keyword rows: %w", err)
	}

	return keywords, nil
}

func (s *Store) NameExists(ctx context.Context, departmentID uuid.UUID, name string, exclude uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM item_keywords
			WHERE department_id = $1 AND lower(name) = lower($2) AND id <> $3 AND active
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, departmentID, name, exclude).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking keyword name: %w", err)
	}

	return exists, nil
}
