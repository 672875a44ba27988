package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/fault"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=cycle
type Repository interface {
	GetCycle(ctx context.Context, id uuid.UUID) (*Cycle, error)
	ListCycles(ctx context.Context, filter ListFilter) ([]*Cycle, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (bool, error)
	DeleteCycle(ctx context.Context, id uuid.UUID, from Status) (bool, error)

	BeginWindow(ctx context.Context, departmentID uuid.UUID) (WindowTx, error)
}

// WindowTx serializes overlap checks against concurrent writes to the same
// department's cycle windows. Implementations hold a per-department lock for
// the duration of the transaction.
type WindowTx interface {
	Overlaps(ctx context.Context, departmentID uuid.UUID, start, end time.Time, exclude uuid.UUID) (bool, error)
	CreateCycle(ctx context.Context, c *Cycle) error
	UpdateCycle(ctx context.Context, c *Cycle) (bool, error)
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name            string
	AcademicYear    string
	DepartmentID    uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	AllocatedBudget int64
	Description     string
}

type UpdateParams struct {
	Name            *string
	AcademicYear    *string
	StartDate       *time.Time
	EndDate         *time.Time
	AllocatedBudget *int64
	Description     *string
}

type ListFilter struct {
	DepartmentID       *uuid.UUID
	Status             *Status
	AcademicYearPrefix *string
}

func (s *Service) Create(ctx context.Context, caller actor.Actor, params CreateParams) (*Cycle, error) {
	if !caller.CanManageCycles(params.DepartmentID) {
		return nil, fault.Authorizationf("cannot create cycles for this department")
	}

	if params.Name == "" {
		return nil, fault.Validationf("cycle name is required")
	}

	if params.AcademicYear == "" {
		return nil, fault.Validationf("academic year is required")
	}

	if err := validateWindow(params.StartDate, params.EndDate, params.AllocatedBudget); err != nil {
		return nil, err
	}

	c := &Cycle{
		Name:            params.Name,
		AcademicYear:    params.AcademicYear,
		DepartmentID:    params.DepartmentID,
		StartDate:       params.StartDate,
		EndDate:         params.EndDate,
		AllocatedBudget: params.AllocatedBudget,
		SpentBudget:     0,
		Status:          StatusDraft,
		Description:     params.Description,
		CreatedBy:       caller.ID,
	}

	wtx, err := s.repo.BeginWindow(ctx, params.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("begin window tx: %w", err)
	}
	defer wtx.Rollback()

	overlaps, err := wtx.Overlaps(ctx, params.DepartmentID, params.StartDate, params.EndDate, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("checking window overlap: %w", err)
	}

	if overlaps {
		return nil, fault.Validationf("cycle window overlaps an existing cycle in this department")
	}

	if err := wtx.CreateCycle(ctx, c); err != nil {
		return nil, fmt.Errorf("creating cycle: %w", err)
	}

	if err := wtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cycle create: %w", err)
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, caller actor.Actor, id uuid.UUID, params UpdateParams) (*Cycle, error) {
	c, err := s.repo.GetCycle(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.CanManageCycles(c.DepartmentID) {
		return nil, fault.Authorizationf("cannot edit cycles of this department")
	}

	if !c.Editable() {
		return nil, fault.InvalidStatef("only draft cycles can be edited")
	}

	if params.Name != nil {
		c.Name = *params.Name
	}

	if params.AcademicYear != nil {
		c.AcademicYear = *params.AcademicYear
	}

	if params.StartDate != nil {
		c.StartDate = *params.StartDate
	}

	if params.EndDate != nil {
		c.EndDate = *params.EndDate
	}

	if params.AllocatedBudget != nil {
		c.AllocatedBudget = *params.AllocatedBudget
	}

	if params.Description != nil {
		c.Description = *params.Description
	}

	if c.Name == "" {
		return nil, fault.Validationf("cycle name is required")
	}

	if err := validateWindow(c.StartDate, c.EndDate, c.AllocatedBudget); err != nil {
		return nil, err
	}

	wtx, err := s.repo.BeginWindow(ctx, c.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("begin window tx: %w", err)
	}
	defer wtx.Rollback()

	overlaps, err := wtx.Overlaps(ctx, c.DepartmentID, c.StartDate, c.EndDate, c.ID)
	if err != nil {
		return nil, fmt.Errorf("checking window overlap: %w", err)
	}

	if overlaps {
		return nil, fault.Validationf("cycle window overlaps an existing cycle in this department")
	}

	updated, err := wtx.UpdateCycle(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("updating cycle: %w", err)
	}

	if !updated {
		// The row left draft between our read and the guarded write.
		return nil, fault.InvalidStatef("only draft cycles can be edited")
	}

	if err := wtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cycle update: %w", err)
	}

	return c, nil
}

// Activate opens a draft cycle for proposal submission. Only the creating
// coordinator or an admin may do this.
func (s *Service) Activate(ctx context.Context, caller actor.Actor, id uuid.UUID) (*Cycle, error) {
	return s.transition(ctx, caller, id, func(c *Cycle) error { return c.Activate() }, StatusDraft)
}

// Close ends an active cycle, permanently freezing its spent budget.
func (s *Service) Close(ctx context.Context, caller actor.Actor, id uuid.UUID) (*Cycle, error) {
	return s.transition(ctx, caller, id, func(c *Cycle) error { return c.Close() }, StatusActive)
}

func (s *Service) transition(ctx context.Context, caller actor.Actor, id uuid.UUID, apply func(*Cycle) error, from Status) (*Cycle, error) {
	c, err := s.repo.GetCycle(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.CanManageCycles(c.DepartmentID) {
		return nil, fault.Authorizationf("cannot manage cycles of this department")
	}

	if err := apply(c); err != nil {
		return nil, err
	}

	moved, err := s.repo.UpdateStatus(ctx, id, from, c.Status)
	if err != nil {
		return nil, fmt.Errorf("updating cycle status: %w", err)
	}

	if !moved {
		return nil, fault.InvalidStatef("cycle is no longer %s", from)
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, caller actor.Actor, id uuid.UUID) error {
	c, err := s.repo.GetCycle(ctx, id)
	if err != nil {
		return err
	}

	if !caller.CanManageCycles(c.DepartmentID) {
		return fault.Authorizationf("cannot delete cycles of this department")
	}

	if !c.Editable() {
		return fault.InvalidStatef("only draft cycles can be deleted")
	}

	deleted, err := s.repo.DeleteCycle(ctx, id, StatusDraft)
	if err != nil {
		return fmt.Errorf("deleting cycle: %w", err)
	}

	if !deleted {
		return fault.InvalidStatef("only draft cycles can be deleted")
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Cycle, error) {
	return s.repo.GetCycle(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Cycle, error) {
	return s.repo.ListCycles(ctx, filter)
}
