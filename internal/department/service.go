package department

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/fault"
)

type Repository interface {
	CreateDepartment(ctx context.Context, d *Department) error
	GetDepartment(ctx context.Context, id uuid.UUID) (*Department, error)
	UpdateDepartment(ctx context.Context, d *Department) error
	DeactivateDepartment(ctx context.Context, id uuid.UUID) (bool, error)
	ListDepartments(ctx context.Context) ([]*Department, error)
	CodeExists(ctx context.Context, code string, exclude uuid.UUID) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Code        string
	Budget      int64
	Description string
}

type UpdateParams struct {
	Name        *string
	Code        *string
	Budget      *int64
	Description *string
}

func (s *Service) Create(ctx context.Context, caller actor.Actor, params CreateParams) (*Department, error) {
	if !caller.IsAdmin() {
		return nil, fault.Authorizationf("only admins can create departments")
	}

	if params.Name == "" || params.Code == "" {
		return nil, fault.Validationf("name and code are required")
	}

	if params.Budget < 0 {
		return nil, fault.Validationf("budget cannot be negative")
	}

	taken, err := s.repo.CodeExists(ctx, params.Code, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("checking department code: %w", err)
	}

	if taken {
		return nil, fault.Validationf("department code %q already exists", params.Code)
	}

	d := &Department{
		Name:        params.Name,
		Code:        params.Code,
		Budget:      params.Budget,
		Description: params.Description,
		Active:      true,
	}

	if err := s.repo.CreateDepartment(ctx, d); err != nil {
		return nil, fmt.Errorf("creating department: %w", err)
	}

	return d, nil
}

func (s *Service) Update(ctx context.Context, caller actor.Actor, id uuid.UUID, params UpdateParams) (*Department, error) {
	if !caller.IsAdmin() {
		return nil, fault.Authorizationf("only admins can edit departments")
	}

	d, err := s.repo.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		d.Name = *params.Name
	}

	if params.Code != nil {
		d.Code = *params.Code
	}

	if params.Budget != nil {
		d.Budget = *params.Budget
	}

	if params.Description != nil {
		d.Description = *params.Description
	}

	if d.Name == "" || d.Code == "" {
		return nil, fault.Validationf("name and code are required")
	}

	if d.Budget < 0 {
		return nil, fault.Validationf("budget cannot be negative")
	}

	taken, err := s.repo.CodeExists(ctx, d.Code, d.ID)
	if err != nil {
		return nil, fmt.Errorf("checking department code: %w", err)
	}

	if taken {
		return nil, fault.Validationf("department code %q already exists", d.Code)
	}

	if err := s.repo.UpdateDepartment(ctx, d); err != nil {
		return nil, fmt.Errorf("updating department: %w", err)
	}

	return d, nil
}

// Deactivate retires a department without deleting it.
func (s *Service) Deactivate(ctx context.Context, caller actor.Actor, id uuid.UUID) error {
	if !caller.IsAdmin() {
		return fault.Authorizationf("only admins can deactivate departments")
	}

	ok, err := s.repo.DeactivateDepartment(ctx, id)
	if err != nil {
		return fmt.Errorf("deactivating department: %w", err)
	}

	if !ok {
		return fault.NotFoundf("department %s", id)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Department, error) {
	return s.repo.GetDepartment(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Department, error) {
	return s.repo.ListDepartments(ctx)
}
