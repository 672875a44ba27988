package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/fault"
	"github.com/acadfund/acadfund/internal/proposal"
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

const selectProposalColumns = `
	p.id, p.reference, p.faculty_id, p.department_id, p.cycle_id, p.total_amount,
	p.status, p.priority, p.submitted_at, p.reviewed_at, p.reviewed_by,
	p.review_comments, p.created_at, p.updated_at
`

func scanProposal(s scanner) (*proposal.Proposal, error) {
	var p proposal.Proposal

	var statusStr, priorityStr string

	var comments sql.NullString

	if err := s.Scan(
		&p.ID, &p.Reference, &p.FacultyID, &p.DepartmentID, &p.CycleID, &p.TotalAmount,
		&statusStr, &priorityStr, &p.SubmittedAt, &p.ReviewedAt, &p.ReviewedBy,
		&comments, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = proposal.Status(statusStr)
	p.Priority = proposal.Priority(priorityStr)
	p.ReviewComments = comments.String

	return &p, nil
}

func (s *Store) CreateProposal(ctx context.Context, p *proposal.Proposal) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	p.ID = uuid.New()
	p.Reference = "PROP-" + p.ID.String()

	query := `
		INSERT INTO proposals (id, reference, faculty_id, department_id, cycle_id,
			total_amount, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		p.ID,
		p.Reference,
		p.FacultyID,
		p.DepartmentID,
		p.CycleID,
		p.TotalAmount,
		p.Status,
		p.Priority,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating proposal: %w", err)
	}

	if err := insertItems(ctx, dbTx, p.ID, p.Items); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing proposal create: %w", err)
	}

	return nil
}

func (s *Store) GetProposal(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	query := `SELECT ` + selectProposalColumns + ` FROM proposals p WHERE p.id = $1`

	p, err := scanProposal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.NotFoundf("proposal %s", id)
		}

		return nil, fmt.Errorf("getting proposal: %w", err)
	}

	items, err := s.loadItems(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	p.Items = items

	return p, nil
}

func (s *Store) ListProposals(ctx context.Context, filter proposal.ListFilter) ([]*proposal.Proposal, error) {
	query := `SELECT ` + selectProposalColumns + ` FROM proposals p WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.FacultyID != nil {
		query += fmt.Sprintf(" AND p.faculty_id = $%d", argIdx)

		args = append(args, *filter.FacultyID)
		argIdx++
	}

	if filter.DepartmentID != nil {
		query += fmt.Sprintf(" AND p.department_id = $%d", argIdx)

		args = append(args, *filter.DepartmentID)
		argIdx++
	}

	if filter.CycleID != nil {
		query += fmt.Sprintf(" AND p.cycle_id = $%d", argIdx)

		args = append(args, *filter.CycleID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Priority != nil {
		query += fmt.Sprintf(" AND p.priority = $%d", argIdx)

		args = append(args, *filter.Priority)
		argIdx++
	}

	if filter.SubmittedFrom != nil {
		query += fmt.Sprintf(" AND p.submitted_at >= $%d", argIdx)

		args = append(args, *filter.SubmittedFrom)
		argIdx++
	}

	if filter.SubmittedTo != nil {
		query += fmt.Sprintf(" AND p.submitted_at <= $%d", argIdx)

		args = append(args, *filter.SubmittedTo)
		argIdx++
	}

	query += " ORDER BY p.created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing proposals: %w", err)
	}
	defer rows.Close()

	var proposals []*proposal.Proposal

	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning proposal: %w", err)
		}

		proposals = append(proposals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proposal rows: %w", err)
	}

	for _, p := range proposals {
		items, err := s.loadItems(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		p.Items = items
	}

	return proposals, nil
}

// UpdateProposal rewrites the mutable fields and the full item list of a
// draft. The status guard protects against a submit that committed between
// the caller's read and this write.
func (s *Store) UpdateProposal(ctx context.Context, p *proposal.Proposal) (bool, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE proposals
		SET cycle_id = $1, total_amount = $2, priority = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	res, err := dbTx.ExecContext(ctx, query,
		p.CycleID,
		p.TotalAmount,
		p.Priority,
		p.ID,
		proposal.StatusDraft,
	)
	if err != nil {
		return false, fmt.Errorf("updating proposal: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating proposal: %w", err)
	}

	if n == 0 {
		return false, nil
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM proposal_items WHERE proposal_id = $1`, p.ID); err != nil {
		return false, fmt.Errorf("clearing proposal items: %w", err)
	}

	if err := insertItems(ctx, dbTx, p.ID, p.Items); err != nil {
		return false, err
	}

	if err := dbTx.Commit(); err != nil {
		return false, fmt.Errorf("committing proposal update: %w", err)
	}

	return true, nil
}

func (s *Store) MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE proposals
		SET status = $1, submitted_at = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	res, err := s.db.ExecContext(ctx, query, proposal.StatusSubmitted, at, id, proposal.StatusDraft)
	if err != nil {
		return false, fmt.Errorf("submitting proposal: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("submitting proposal: %w", err)
	}

	return n > 0, nil
}

func (s *Store) DeleteProposal(ctx context.Context, id uuid.UUID) (bool, error) {
	// Items go with the row via ON DELETE CASCADE.
	query := `DELETE FROM proposals WHERE id = $1 AND status = $2`

	res, err := s.db.ExecContext(ctx, query, id, proposal.StatusDraft)
	if err != nil {
		return false, fmt.Errorf("deleting proposal: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting proposal: %w", err)
	}

	return n > 0, nil
}

func (s *Store) loadItems(ctx context.Context, proposalID uuid.UUID) ([]proposal.Item, error) {
	query := `
		SELECT i.keyword_id, i.quantity, i.unit_cost, i.total_cost, i.justification,
			k.name, k.category
		FROM proposal_items i
		JOIN item_keywords k ON i.keyword_id = k.id
		WHERE i.proposal_id = $1
		ORDER BY i.position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, proposalID)
	if err != nil {
		return nil, fmt.Errorf("loading proposal items: %w", err)
	}
	defer rows.Close()

	var items []proposal.Item

	for rows.Next() {
		var item proposal.Item

		var kw proposal.Keyword

		if err := rows.Scan(
			&item.KeywordID, &item.Quantity, &item.UnitCost, &item.TotalCost, &item.Justification,
			&kw.Name, &kw.Category,
		); err != nil {
			return nil, fmt.Errorf("scanning proposal item: %w", err)
		}

		kw.ID = item.KeywordID
		item.Keyword = &kw

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return items, nil
}

func insertItems(ctx context.Context, dbTx *sql.Tx, proposalID uuid.UUID, items []proposal.Item) error {
	query := `
		INSERT INTO proposal_items (proposal_id, position, keyword_id, quantity, unit_cost, total_cost, justification)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for i, item := range items {
		if _, err := dbTx.ExecContext(ctx, query,
			proposalID,
			i,
			item.KeywordID,
			item.Quantity,
			item.UnitCost,
			item.TotalCost,
			item.Justification,
		); err != nil {
			return fmt.Errorf("inserting proposal item: %w", err)
		}
	}

	return nil
}
