package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/cycle"
	"github.com/acadfund/acadfund/internal/fault"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectCycleColumns = `
	c.id, c.name, c.academic_year, c.department_id, c.start_date, c.end_date,
	c.allocated_budget, c.spent_budget, c.status, c.description, c.created_by,
	c.created_at, c.updated_at
`

func scanCycle(s scanner) (*cycle.Cycle, error) {
	var c cycle.Cycle

	var statusStr string

	var desc sql.NullString

	if err := s.Scan(
		&c.ID, &c.Name, &c.AcademicYear, &c.DepartmentID, &c.StartDate, &c.EndDate,
		&c.AllocatedBudget, &c.SpentBudget, &statusStr, &desc, &c.CreatedBy,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = cycle.Status(statusStr)
	c.Description = desc.String

	return &c, nil
}

func (s *Store) GetCycle(ctx context.Context, id uuid.UUID) (*cycle.Cycle, error) {
	query := `SELECT ` + selectCycleColumns + ` FROM fund_cycles c WHERE c.id = $1`

	c, err := scanCycle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.NotFoundf("cycle %s", id)
		}

		return nil, fmt.Errorf("getting cycle: %w", err)
	}

	return c, nil
}

func (s *Store) ListCycles(ctx context.Context, filter cycle.ListFilter) ([]*cycle.Cycle, error) {
	query := `SELECT ` + selectCycleColumns + ` FROM fund_cycles c WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.DepartmentID != nil {
		query += fmt.Sprintf(" AND c.department_id = $%d", argIdx)

		args = append(args, *filter.DepartmentID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND c.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.AcademicYearPrefix != nil {
		query += fmt.Sprintf(" AND c.academic_year LIKE $%d", argIdx)

		args = append(args, *filter.AcademicYearPrefix+"%")
		argIdx++
	}

	query += " ORDER BY c.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cycles: %w", err)
	}
	defer rows.Close()

	var cycles []*cycle.Cycle

	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cycle: %w", err)
		}

		cycles = append(cycles, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cycle rows: %w", err)
	}

	return cycles, nil
}

// UpdateStatus flips the status only if the row still holds the expected
// prior status. The guard makes concurrent transitions lose cleanly instead
// of skipping states.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to cycle.Status) (bool, error) {
	query := `
		UPDATE fund_cycles
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, fmt.Errorf("updating cycle status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating cycle status: %w", err)
	}

	return n > 0, nil
}

func (s *Store) DeleteCycle(ctx context.Context, id uuid.UUID, from cycle.Status) (bool, error) {
	query := `DELETE FROM fund_cycles WHERE id = $1 AND status = $2`

	res, err := s.db.ExecContext(ctx, query, id, from)
	if err != nil {
		return false, fmt.Errorf("deleting cycle: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting cycle: %w", err)
	}

	return n > 0, nil
}

// windowLockKey derives the advisory lock key that serializes window writes
// for one department.
func windowLockKey(departmentID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("cycle-window"))
	h.Write([]byte{0})
	h.Write([]byte(departmentID.String()))

	return int64(h.Sum64())
}

type windowTx struct {
	tx *sql.Tx
}

// BeginWindow opens a transaction holding a per-department advisory lock so
// that overlap check and write happen without a racing create slipping in
// between.
func (s *Store) BeginWindow(ctx context.Context, departmentID uuid.UUID) (cycle.WindowTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning window tx: %w", err)
	}

	lockKey := windowLockKey(departmentID)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring window lock: %w", err)
	}

	return &windowTx{tx: dbTx}, nil
}

func (wtx *windowTx) Commit() error   { return wtx.tx.Commit() }
func (wtx *windowTx) Rollback() error { return wtx.tx.Rollback() }

func (wtx *windowTx) Overlaps(ctx context.Context, departmentID uuid.UUID, start, end time.Time, exclude uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM fund_cycles
			WHERE department_id = $1 AND id <> $2
			  AND start_date <= $3 AND end_date >= $4
		)
	`

	var exists bool
	if err := wtx.tx.QueryRowContext(ctx, query, departmentID, exclude, end, start).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking overlap: %w", err)
	}

	return exists, nil
}

func (wtx *windowTx) CreateCycle(ctx context.Context, c *cycle.Cycle) error {
	query := `
		INSERT INTO fund_cycles (name, academic_year, department_id, start_date, end_date,
			allocated_budget, spent_budget, status, description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := wtx.tx.QueryRowContext(ctx, query,
		c.Name,
		c.AcademicYear,
		c.DepartmentID,
		c.StartDate,
		c.EndDate,
		c.AllocatedBudget,
		c.SpentBudget,
		c.Status,
		c.Description,
		c.CreatedBy,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating cycle: %w", err)
	}

	return nil
}

// UpdateCycle rewrites the mutable fields of a draft cycle. The status guard
// keeps an activate that committed after our read from being clobbered.
func (wtx *windowTx) UpdateCycle(ctx context.Context, c *cycle.Cycle) (bool, error) {
	query := `
		UPDATE fund_cycles
		SET name = $1, academic_year = $2, start_date = $3, end_date = $4,
			allocated_budget = $5, description = $6, updated_at = NOW()
		WHERE id = $7 AND status = $8
	`

	res, err := wtx.tx.ExecContext(ctx, query,
		c.Name,
		c.AcademicYear,
		c.StartDate,
		c.EndDate,
		c.AllocatedBudget,
		c.Description,
		c.ID,
		cycle.StatusDraft,
	)
	if err != nil {
		return false, fmt.Errorf("updating cycle: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating cycle: %w", err)
	}

	return n > 0, nil
}
