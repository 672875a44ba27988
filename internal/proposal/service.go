package proposal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/cycle"
	"github.com/acadfund/acadfund/internal/fault"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=proposal
type Repository interface {
	CreateProposal(ctx context.Context, p *Proposal) error
	GetProposal(ctx context.Context, id uuid.UUID) (*Proposal, error)
	UpdateProposal(ctx context.Context, p *Proposal) (bool, error)
	MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	DeleteProposal(ctx context.Context, id uuid.UUID) (bool, error)
	ListProposals(ctx context.Context, filter ListFilter) ([]*Proposal, error)
}

// CycleDirectory is the slice of the cycle service the proposal flow needs.
type CycleDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*cycle.Cycle, error)
}

type Service struct {
	repo   Repository
	cycles CycleDirectory
}

func NewService(repo Repository, cycles CycleDirectory) *Service {
	return &Service{repo: repo, cycles: cycles}
}

type CreateParams struct {
	CycleID  uuid.UUID
	Items    []Item
	Priority Priority
}

type UpdateParams struct {
	CycleID  *uuid.UUID
	Items    []Item
	Priority *Priority
}

type ListFilter struct {
	FacultyID     *uuid.UUID
	DepartmentID  *uuid.UUID
	CycleID       *uuid.UUID
	Status        *Status
	Priority      *Priority
	SubmittedFrom *time.Time
	SubmittedTo   *time.Time
	Limit         int
}

func (s *Service) Create(ctx context.Context, caller actor.Actor, params CreateParams) (*Proposal, error) {
	if !caller.CanSubmitProposals() {
		return nil, fault.Authorizationf("only faculty can create proposals")
	}

	if err := s.checkCycle(ctx, caller, params.CycleID); err != nil {
		return nil, err
	}

	items, total, err := validateItems(params.Items)
	if err != nil {
		return nil, err
	}

	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	if !priority.Valid() {
		return nil, fault.Validationf("unknown priority %q", priority)
	}

	p := &Proposal{
		FacultyID:    caller.ID,
		DepartmentID: caller.DepartmentID,
		CycleID:      params.CycleID,
		Items:        items,
		TotalAmount:  total,
		Status:       StatusDraft,
		Priority:     priority,
	}

	if err := s.repo.CreateProposal(ctx, p); err != nil {
		return nil, fmt.Errorf("creating proposal: %w", err)
	}

	return p, nil
}

func (s *Service) Update(ctx context.Context, caller actor.Actor, id uuid.UUID, params UpdateParams) (*Proposal, error) {
	p, err := s.repo.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.OwnedBy(caller.ID) {
		return nil, fault.Authorizationf("can only update own proposals")
	}

	if !p.Editable() {
		return nil, fault.InvalidStatef("can only edit draft proposals")
	}

	if params.CycleID != nil && *params.CycleID != p.CycleID {
		if err := s.checkCycle(ctx, caller, *params.CycleID); err != nil {
			return nil, err
		}

		p.CycleID = *params.CycleID
	}

	if params.Items != nil {
		items, total, err := validateItems(params.Items)
		if err != nil {
			return nil, err
		}

		p.Items = items
		p.TotalAmount = total
	}

	if params.Priority != nil {
		if !params.Priority.Valid() {
			return nil, fault.Validationf("unknown priority %q", *params.Priority)
		}

		p.Priority = *params.Priority
	}

	updated, err := s.repo.UpdateProposal(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("updating proposal: %w", err)
	}

	if !updated {
		return nil, fault.InvalidStatef("can only edit draft proposals")
	}

	return p, nil
}

func (s *Service) Submit(ctx context.Context, caller actor.Actor, id uuid.UUID) (*Proposal, error) {
	p, err := s.repo.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.OwnedBy(caller.ID) {
		return nil, fault.Authorizationf("can only submit own proposals")
	}

	now := time.Now().UTC()
	if err := p.Submit(now); err != nil {
		return nil, err
	}

	moved, err := s.repo.MarkSubmitted(ctx, id, now)
	if err != nil {
		return nil, fmt.Errorf("submitting proposal: %w", err)
	}

	if !moved {
		return nil, fault.InvalidStatef("proposal is no longer a draft")
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, caller actor.Actor, id uuid.UUID) error {
	p, err := s.repo.GetProposal(ctx, id)
	if err != nil {
		return err
	}

	if !p.OwnedBy(caller.ID) {
		return fault.Authorizationf("can only delete own proposals")
	}

	if !p.Editable() {
		return fault.InvalidStatef("can only delete draft proposals")
	}

	deleted, err := s.repo.DeleteProposal(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting proposal: %w", err)
	}

	if !deleted {
		return fault.InvalidStatef("can only delete draft proposals")
	}

	return nil
}

func (s *Service) Get(ctx context.Context, caller actor.Actor, id uuid.UUID) (*Proposal, error) {
	p, err := s.repo.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkVisibility(caller, p); err != nil {
		return nil, err
	}

	return p, nil
}

// List returns proposals the caller is allowed to see: faculty their own,
// coordinators their department's, admins everything.
func (s *Service) List(ctx context.Context, caller actor.Actor, filter ListFilter) ([]*Proposal, error) {
	switch caller.Role {
	case actor.RoleFaculty:
		filter.FacultyID = &caller.ID
	case actor.RoleCoordinator:
		filter.DepartmentID = &caller.DepartmentID
	}

	return s.repo.ListProposals(ctx, filter)
}

func (s *Service) checkCycle(ctx context.Context, caller actor.Actor, cycleID uuid.UUID) error {
	c, err := s.cycles.Get(ctx, cycleID)
	if err != nil {
		return err
	}

	if c.Status != cycle.StatusActive {
		return fault.Validationf("fund cycle is not active")
	}

	if c.DepartmentID != caller.DepartmentID {
		return fault.Validationf("fund cycle is not available for your department")
	}

	return nil
}

func (s *Service) checkVisibility(caller actor.Actor, p *Proposal) error {
	switch caller.Role {
	case actor.RoleAdmin:
		return nil
	case actor.RoleCoordinator:
		if p.DepartmentID == caller.DepartmentID {
			return nil
		}
	case actor.RoleFaculty:
		if p.OwnedBy(caller.ID) {
			return nil
		}
	}

	return fault.Authorizationf("no access to this proposal")
}
