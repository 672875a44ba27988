package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/fault"
	"github.com/acadfund/acadfund/internal/proposal"
	"github.com/acadfund/acadfund/internal/review"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetProposal(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	query := `
		SELECT p.id, p.reference, p.faculty_id, p.department_id, p.cycle_id,
			p.total_amount, p.status, p.priority, p.submitted_at, p.reviewed_at,
			p.reviewed_by, p.review_comments, p.created_at, p.updated_at
		FROM proposals p
		WHERE p.id = $1
	`

	var p proposal.Proposal

	var statusStr, priorityStr string

	var comments sql.NullString

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Reference, &p.FacultyID, &p.DepartmentID, &p.CycleID,
		&p.TotalAmount, &statusStr, &priorityStr, &p.SubmittedAt, &p.ReviewedAt,
		&p.ReviewedBy, &comments, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.NotFoundf("proposal %s", id)
		}

		return nil, fmt.Errorf("getting proposal: %w", err)
	}

	p.Status = proposal.Status(statusStr)
	p.Priority = proposal.Priority(priorityStr)
	p.ReviewComments = comments.String

	return &p, nil
}

type reviewTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (review.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning review tx: %w", err)
	}

	return &reviewTx{tx: dbTx}, nil
}

func (rtx *reviewTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *reviewTx) Rollback() error { return rtx.tx.Rollback() }

// DebitCycle increments the cycle's spent budget only if the result stays
// within the allocation and the cycle is still active. Check and write are
// one statement, so two racing approvals serialize on the row lock and the
// loser sees zero rows instead of overspending.
func (rtx *reviewTx) DebitCycle(ctx context.Context, cycleID uuid.UUID, amount int64) (bool, error) {
	query := `
		UPDATE fund_cycles
		SET spent_budget = spent_budget + $1, updated_at = NOW()
		WHERE id = $2 AND status = $3 AND spent_budget + $1 <= allocated_budget
	`

	res, err := rtx.tx.ExecContext(ctx, query, amount, cycleID, "active")
	if err != nil {
		return false, fmt.Errorf("debiting cycle: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("debiting cycle: %w", err)
	}

	return n > 0, nil
}

func (rtx *reviewTx) MarkReviewed(ctx context.Context, proposalID uuid.UUID, status proposal.Status, reviewer uuid.UUID, at time.Time, comments string) (bool, error) {
	query := `
		UPDATE proposals
		SET status = $1, reviewed_by = $2, reviewed_at = $3, review_comments = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6
	`

	res, err := rtx.tx.ExecContext(ctx, query, status, reviewer, at, comments, proposalID, proposal.StatusSubmitted)
	if err != nil {
		return false, fmt.Errorf("marking proposal reviewed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("marking proposal reviewed: %w", err)
	}

	return n > 0, nil
}
