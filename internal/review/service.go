// Package review coordinates the approval of submitted proposals: the
// permission check, the proposal state transition and the cycle budget debit
// happen as one unit, so a failed debit never leaves a proposal approved and
// an approved proposal never leaves the cycle counter behind.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/fault"
	"github.com/acadfund/acadfund/internal/proposal"
)

// Decision is the reviewer's verdict on a submitted proposal.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

type Repository interface {
	GetProposal(ctx context.Context, id uuid.UUID) (*proposal.Proposal, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx is a single database transaction spanning the proposal row and its
// cycle's budget counter. DebitCycle must be implemented as a bounded
// increment: it succeeds only if the cycle's spent budget stays within its
// allocation, and the check and the write are one atomic operation.
type Tx interface {
	DebitCycle(ctx context.Context, cycleID uuid.UUID, amount int64) (bool, error)
	MarkReviewed(ctx context.Context, proposalID uuid.UUID, status proposal.Status, reviewer uuid.UUID, at time.Time, comments string) (bool, error)
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Review applies the coordinator's decision to a submitted proposal.
// Approval debits the proposal's cycle; if the remaining budget cannot cover
// the proposal's total, the whole operation fails with
// fault.ErrInsufficientBudget and the proposal stays submitted, reviewable
// again later. Rejection never touches the ledger.
func (s *Service) Review(ctx context.Context, caller actor.Actor, proposalID uuid.UUID, decision Decision, comments string) (*proposal.Proposal, error) {
	if !decision.Valid() {
		return nil, fault.Validationf("unknown decision %q", decision)
	}

	p, err := s.repo.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	if !caller.CanReview(p.DepartmentID) {
		return nil, fault.Authorizationf("can only review proposals of own department")
	}

	if p.Status != proposal.StatusSubmitted {
		return nil, fault.InvalidStatef("cannot review %s proposal", p.Status)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin review tx: %w", err)
	}
	defer tx.Rollback()

	status := proposal.StatusRejected

	if decision == DecisionApprove {
		debited, err := tx.DebitCycle(ctx, p.CycleID, p.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("debiting cycle: %w", err)
		}

		if !debited {
			return nil, fmt.Errorf("%w: cycle cannot cover %d", fault.ErrInsufficientBudget, p.TotalAmount)
		}

		status = proposal.StatusApproved
	}

	now := time.Now().UTC()

	marked, err := tx.MarkReviewed(ctx, p.ID, status, caller.ID, now, comments)
	if err != nil {
		return nil, fmt.Errorf("marking proposal reviewed: %w", err)
	}

	if !marked {
		// Someone else reviewed it between our read and this write; the
		// rollback also undoes any debit taken above.
		return nil, fault.InvalidStatef("proposal is no longer submitted")
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit review: %w", err)
	}

	p.Status = status
	p.ReviewedBy = &caller.ID
	p.ReviewedAt = &now
	p.ReviewComments = comments

	return p, nil
}
