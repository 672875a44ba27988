package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/fault"
)

type Repository interface {
	CreateKeyword(ctx context.Context, k *Keyword) error
	GetKeyword(ctx context.Context, id uuid.UUID) (*Keyword, error)
	UpdateKeyword(ctx context.Context, k *Keyword) error
	DeleteKeyword(ctx context.Context, id uuid.UUID) (bool, error)
	ListKeywords(ctx context.Context, filter ListFilter) ([]*Keyword, error)
	NameExists(ctx context.Context, departmentID uuid.UUID, name string, exclude uuid.UUID) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name             string
	Category         Category
	Description      string
	DepartmentID     uuid.UUID
	EstimatedCostMin *int64
	EstimatedCostMax *int64
}

type UpdateParams struct {
	Name        *string
	Category    *Category
	Description *string
}

type ListFilter struct {
	DepartmentID *uuid.UUID
	Category     *Category
	Search       *string
}

func (s *Service) Create(ctx context.Context, caller actor.Actor, params CreateParams) (*Keyword, error) {
	if !caller.CanManageCatalog() {
		return nil, fault.Authorizationf("only admins can manage the item catalog")
	}

	if params.Name == "" {
		return nil, fault.Validationf("item name is required")
	}

	if params.DepartmentID == uuid.Nil {
		return nil, fault.Validationf("department is required")
	}

	if !params.Category.Valid() {
		return nil, fault.Validationf("unknown category %q", params.Category)
	}

	taken, err := s.repo.NameExists(ctx, params.DepartmentID, params.Name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("checking keyword name: %w", err)
	}

	if taken {
		return nil, fault.Validationf("item %q already exists in this department", params.Name)
	}

	k := &Keyword{
		Name:             params.Name,
		Category:         params.Category,
		Description:      params.Description,
		DepartmentID:     params.DepartmentID,
		EstimatedCostMin: params.EstimatedCostMin,
		EstimatedCostMax: params.EstimatedCostMax,
		CreatedBy:        caller.ID,
		Active:           true,
	}

	if err := s.repo.CreateKeyword(ctx, k); err != nil {
		return nil, fmt.Errorf("creating keyword: %w", err)
	}

	return k, nil
}

func (s *Service) Update(ctx context.Context, caller actor.Actor, id uuid.UUID, params UpdateParams) (*Keyword, error) {
	if !caller.CanManageCatalog() {
		return nil, fault.Authorizationf("only admins can manage the item catalog")
	}

	k, err := s.repo.GetKeyword(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		k.Name = *params.Name
	}

	if params.Category != nil {
		k.Category = *params.Category
	}

	if params.Description != nil {
		k.Description = *params.Description
	}

	if k.Name == "" {
		return nil, fault.Validationf("item name is required")
	}

	if !k.Category.Valid() {
		return nil, fault.Validationf("unknown category %q", k.Category)
	}

	taken, err := s.repo.NameExists(ctx, k.DepartmentID, k.Name, k.ID)
	if err != nil {
		return nil, fmt.Errorf("checking keyword name: %w", err)
	}

	if taken {
		return nil, fault.Validationf("item %q already exists in this department", k.Name)
	}

	if err := s.repo.UpdateKeyword(ctx, k); err != nil {
		return nil, fmt.Errorf("updating keyword: %w", err)
	}

	return k, nil
}

func (s *Service) Delete(ctx context.Context, caller actor.Actor, id uuid.UUID) error {
	if !caller.CanManageCatalog() {
		return fault.Authorizationf("only admins can manage the item catalog")
	}

	deleted, err := s.repo.DeleteKeyword(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting keyword: %w", err)
	}

	if !deleted {
		return fault.NotFoundf("item %s", id)
	}

	return nil
}

// List returns catalog entries visible to the caller: faculty and
// coordinators see their own department, admins see everything.
func (s *Service) List(ctx context.Context, caller actor.Actor, filter ListFilter) ([]*Keyword, error) {
	if !caller.SeesAllDepartments() {
		filter.DepartmentID = &caller.DepartmentID
	}

	return s.repo.ListKeywords(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Keyword, error) {
	return s.repo.GetKeyword(ctx, id)
}
