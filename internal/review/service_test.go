package review_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/fault"
	"github.com/acadfund/acadfund/internal/proposal"
	"github.com/acadfund/acadfund/internal/review"
)

// fakeRepo is an in-memory Repository whose transactions hold a lock from
// Begin to Commit/Rollback, the way a row lock serializes the real store.
type fakeRepo struct {
	mu        sync.Mutex
	proposals map[uuid.UUID]*proposal.Proposal
	allocated map[uuid.UUID]int64
	spent     map[uuid.UUID]int64

	beginErr     error
	markErr      error
	markConflict bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		proposals: make(map[uuid.UUID]*proposal.Proposal),
		allocated: make(map[uuid.UUID]int64),
		spent:     make(map[uuid.UUID]int64),
	}
}

func (r *fakeRepo) addCycle(id uuid.UUID, allocated int64) {
	r.allocated[id] = allocated
	r.spent[id] = 0
}

func (r *fakeRepo) addProposal(p *proposal.Proposal) {
	cp := *p
	r.proposals[p.ID] = &cp
}

func (r *fakeRepo) GetProposal(_ context.Context, id uuid.UUID) (*proposal.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.proposals[id]
	if !ok {
		return nil, fault.NotFoundf("proposal %s", id)
	}

	cp := *p

	return &cp, nil
}

type fakeTx struct {
	repo *fakeRepo
	done bool

	debits  map[uuid.UUID]int64
	marked  map[uuid.UUID]proposal.Status
	markAt  time.Time
	markBy  uuid.UUID
	comment string
}

func (r *fakeRepo) Begin(context.Context) (review.Tx, error) {
	if r.beginErr != nil {
		return nil, r.beginErr
	}

	r.mu.Lock()

	return &fakeTx{
		repo:   r,
		debits: make(map[uuid.UUID]int64),
		marked: make(map[uuid.UUID]proposal.Status),
	}, nil
}

func (t *fakeTx) DebitCycle(_ context.Context, cycleID uuid.UUID, amount int64) (bool, error) {
	allocated, ok := t.repo.allocated[cycleID]
	if !ok {
		return false, nil
	}

	if t.repo.spent[cycleID]+t.debits[cycleID]+amount > allocated {
		return false, nil
	}

	t.debits[cycleID] += amount

	return true, nil
}

func (t *fakeTx) MarkReviewed(_ context.Context, proposalID uuid.UUID, status proposal.Status, reviewer uuid.UUID, at time.Time, comments string) (bool, error) {
	if t.repo.markErr != nil {
		return false, t.repo.markErr
	}

	p, ok := t.repo.proposals[proposalID]
	if !ok || p.Status != proposal.StatusSubmitted || t.repo.markConflict {
		return false, nil
	}

	t.marked[proposalID] = status
	t.markBy = reviewer
	t.markAt = at
	t.comment = comments

	return true, nil
}

func (t *fakeTx) Commit() error {
	if t.done {
		return errors.New("tx already finished")
	}

	t.done = true

	for cycleID, amount := range t.debits {
		t.repo.spent[cycleID] += amount
	}

	for proposalID, status := range t.marked {
		p := t.repo.proposals[proposalID]
		p.Status = status
		p.ReviewedBy = &t.markBy
		at := t.markAt
		p.ReviewedAt = &at
		p.ReviewComments = t.comment
	}

	t.repo.mu.Unlock()

	return nil
}

func (t *fakeTx) Rollback() error {
	if t.done {
		return nil
	}

	t.done = true
	t.repo.mu.Unlock()

	return nil
}

var reviewDeptID = uuid.MustParse("6f1d0a52-4c4e-4a7b-9f5e-0d8c3b1a2e91")

func deptCoordinator() actor.Actor {
	return actor.Actor{ID: uuid.New(), Role: actor.RoleCoordinator, DepartmentID: reviewDeptID}
}

func submittedProposal(cycleID uuid.UUID, amount int64) *proposal.Proposal {
	now := time.Now().UTC()

	return &proposal.Proposal{
		ID:           uuid.New(),
		Reference:    "PROP-" + uuid.NewString(),
		FacultyID:    uuid.New(),
		DepartmentID: reviewDeptID,
		CycleID:      cycleID,
		TotalAmount:  amount,
		Status:       proposal.StatusSubmitted,
		Priority:     proposal.PriorityMedium,
		SubmittedAt:  &now,
	}
}

func TestReview_ApproveDebitsCycle(t *testing.T) {
	repo := newFakeRepo()
	cycleID := uuid.New()
	repo.addCycle(cycleID, 1_000_000)

	p := submittedProposal(cycleID, 600_000)
	repo.addProposal(p)

	svc := review.NewService(repo)
	reviewer := deptCoordinator()

	got, err := svc.Review(context.Background(), reviewer, p.ID, review.DecisionApprove, "fits the plan")
	require.NoError(t, err)

	assert.Equal(t, proposal.StatusApproved, got.Status)
	assert.Equal(t, reviewer.ID, *got.ReviewedBy)
	assert.NotNil(t, got.ReviewedAt)
	assert.Equal(t, "fits the plan", got.ReviewComments)
	assert.Equal(t, int64(600_000), repo.spent[cycleID])

	stored, err := repo.GetProposal(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusApproved, stored.Status)
}

// First approval takes 600k of a 1M budget; the second asks for 500k and must
// fail without moving the counter or the proposal.
func TestReview_InsufficientBudgetLeavesProposalSubmitted(t *testing.T) {
	repo := newFakeRepo()
	cycleID := uuid.New()
	repo.addCycle(cycleID, 1_000_000)

	first := submittedProposal(cycleID, 600_000)
	second := submittedProposal(cycleID, 500_000)
	repo.addProposal(first)
	repo.addProposal(second)

	svc := review.NewService(repo)
	reviewer := deptCoordinator()

	_, err := svc.Review(context.Background(), reviewer, first.ID, review.DecisionApprove, "")
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), reviewer, second.ID, review.DecisionApprove, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrInsufficientBudget)

	assert.Equal(t, int64(600_000), repo.spent[cycleID])

	stored, err := repo.GetProposal(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusSubmitted, stored.Status)
}

func TestReview_RejectNeverTouchesLedger(t *testing.T) {
	repo := newFakeRepo()
	cycleID := uuid.New()
	repo.addCycle(cycleID, 1_000)

	// Total exceeds the budget; rejection must still work.
	p := submittedProposal(cycleID, 5_000)
	repo.addProposal(p)

	svc := review.NewService(repo)

	got, err := svc.Review(context.Background(), deptCoordinator(), p.ID, review.DecisionReject, "over budget")
	require.NoError(t, err)

	assert.Equal(t, proposal.StatusRejected, got.Status)
	assert.Zero(t, repo.spent[cycleID])
}

func TestReview_Authorization(t *testing.T) {
	repo := newFakeRepo()
	cycleID := uuid.New()
	repo.addCycle(cycleID, 1_000_000)

	p := submittedProposal(cycleID, 100)
	repo.addProposal(p)

	svc := review.NewService(repo)

	tests := []struct {
		name     string
		caller   actor.Actor
		wantKind error
	}{
		{"OtherDepartmentCoordinator", actor.Actor{ID: uuid.New(), Role: actor.RoleCoordinator, DepartmentID: uuid.New()}, fault.ErrAuthorization},
		{"Faculty", actor.Actor{ID: uuid.New(), Role: actor.RoleFaculty, DepartmentID: reviewDeptID}, fault.ErrAuthorization},
		{"SameDepartmentCoordinator", deptCoordinator(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Review(context.Background(), tt.caller, p.ID, review.DecisionReject, "")

			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReview_OnlySubmittedIsReviewable(t *testing.T) {
	for _, status := range []proposal.Status{proposal.StatusDraft, proposal.StatusApproved, proposal.StatusRejected} {
		repo := newFakeRepo()
		cycleID := uuid.New()
		repo.addCycle(cycleID, 1_000_000)

		p := submittedProposal(cycleID, 100)
		p.Status = status
		repo.addProposal(p)

		svc := review.NewService(repo)

		_, err := svc.Review(context.Background(), deptCoordinator(), p.ID, review.DecisionApprove, "")
		assert.ErrorIs(t, err, fault.ErrInvalidState, "status %s", status)
		assert.Zero(t, repo.spent[cycleID], "status %s", status)
	}
}

func TestReview_UnknownDecision(t *testing.T) {
	svc := review.NewService(newFakeRepo())

	_, err := svc.Review(context.Background(), deptCoordinator(), uuid.New(), review.Decision("defer"), "")
	assert.ErrorIs(t, err, fault.ErrValidation)
}

func TestReview_ProposalNotFound(t *testing.T) {
	svc := review.NewService(newFakeRepo())

	_, err := svc.Review(context.Background(), deptCoordinator(), uuid.New(), review.DecisionApprove, "")
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

// A failure after the debit must roll the debit back: the counter may never
// move for a proposal that did not reach approved.
func TestReview_MarkFailureRollsBackDebit(t *testing.T) {
	repo := newFakeRepo()
	cycleID := uuid.New()
	repo.addCycle(cycleID, 1_000_000)

	p := submittedProposal(cycleID, 400_000)
	repo.addProposal(p)
	repo.markErr = errors.New("store unavailable")

	svc := review.NewService(repo)

	_, err := svc.Review(context.Background(), deptCoordinator(), p.ID, review.DecisionApprove, "")
	require.Error(t, err)

	assert.Zero(t, repo.spent[cycleID])

	stored, err := repo.GetProposal(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusSubmitted, stored.Status)
}

func TestReview_ConcurrentReviewLosesCleanly(t *testing.T) {
	repo := newFakeRepo()
	cycleID := uuid.New()
	repo.addCycle(cycleID, 1_000_000)

	p := submittedProposal(cycleID, 400_000)
	repo.addProposal(p)
	repo.markConflict = true

	svc := review.NewService(repo)

	_, err := svc.Review(context.Background(), deptCoordinator(), p.ID, review.DecisionApprove, "")
	assert.ErrorIs(t, err, fault.ErrInvalidState)
	assert.Zero(t, repo.spent[cycleID])
}

// With budget B and K concurrent approvals each asking B/K + 1, at most K-1
// can succeed and the spent counter never exceeds B, whatever the
// interleaving.
func TestReview_ConcurrentApprovalsNeverOverspend(t *testing.T) {
	const (
		budget = int64(1_000_000)
		k      = 10
	)

	amount := budget/k + 1

	repo := newFakeRepo()
	cycleID := uuid.New()
	repo.addCycle(cycleID, budget)

	ids := make([]uuid.UUID, k)

	for i := range k {
		p := submittedProposal(cycleID, amount)
		repo.addProposal(p)
		ids[i] = p.ID
	}

	svc := review.NewService(repo)
	reviewer := deptCoordinator()

	var wg sync.WaitGroup

	results := make([]error, k)

	for i := range k {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, results[i] = svc.Review(context.Background(), reviewer, ids[i], review.DecisionApprove, "")
		}()
	}

	wg.Wait()

	var approved int

	for _, err := range results {
		if err == nil {
			approved++
			continue
		}

		assert.ErrorIs(t, err, fault.ErrInsufficientBudget)
	}

	assert.LessOrEqual(t, approved, k-1)
	assert.LessOrEqual(t, repo.spent[cycleID], budget)
	assert.Equal(t, int64(approved)*amount, repo.spent[cycleID])
}

func TestReview_BeginFailureLeavesProposalUntouched(t *testing.T) {
	repo := newFakeRepo()
	cycleID := uuid.New()
	repo.addCycle(cycleID, 1_000_000)

	p := submittedProposal(cycleID, 100)
	repo.addProposal(p)
	repo.beginErr = errors.New("connection refused")

	svc := review.NewService(repo)

	_, err := svc.Review(context.Background(), deptCoordinator(), p.ID, review.DecisionApprove, "")
	require.Error(t, err)

	stored, getErr := repo.GetProposal(context.Background(), p.ID)
	require.NoError(t, getErr)
	assert.Equal(t, proposal.StatusSubmitted, stored.Status)
	assert.Zero(t, repo.spent[cycleID])
}
