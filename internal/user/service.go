package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/fault"
)

type Repository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context, filter ListFilter) ([]*User, int, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role actor.Role) (bool, error)
	UpdateDepartment(ctx context.Context, id uuid.UUID, departmentID uuid.UUID) (bool, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	Role         *actor.Role
	DepartmentID *uuid.UUID
	Search       *string
	Page         int
	Limit        int
}

// Get returns a user record. Non-admins may only look at themselves;
// coordinators may also look at members of their department.
func (s *Service) Get(ctx context.Context, caller actor.Actor, id uuid.UUID) (*User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if caller.ID == id || caller.IsAdmin() {
		return u, nil
	}

	if caller.Role == actor.RoleCoordinator && u.DepartmentID == caller.DepartmentID {
		return u, nil
	}

	return nil, fault.Authorizationf("no access to this user")
}

func (s *Service) List(ctx context.Context, caller actor.Actor, filter ListFilter) ([]*User, int, error) {
	if !caller.CanManageUsers() {
		return nil, 0, fault.Authorizationf("only admins can list users")
	}

	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.Limit < 1 {
		filter.Limit = 10
	}

	return s.repo.ListUsers(ctx, filter)
}

func (s *Service) ChangeRole(ctx context.Context, caller actor.Actor, id uuid.UUID, role actor.Role) error {
	if !caller.CanManageUsers() {
		return fault.Authorizationf("only admins can change roles")
	}

	if !role.Valid() {
		return fault.Validationf("unknown role %q", role)
	}

	ok, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return fmt.Errorf("changing role: %w", err)
	}

	if !ok {
		return fault.NotFoundf("user %s", id)
	}

	return nil
}

func (s *Service) ChangeDepartment(ctx context.Context, caller actor.Actor, id, departmentID uuid.UUID) error {
	if !caller.CanManageUsers() {
		return fault.Authorizationf("only admins can change departments")
	}

	if departmentID == uuid.Nil {
		return fault.Validationf("department is required")
	}

	ok, err := s.repo.UpdateDepartment(ctx, id, departmentID)
	if err != nil {
		return fmt.Errorf("changing department: %w", err)
	}

	if !ok {
		return fault.NotFoundf("user %s", id)
	}

	return nil
}

func (s *Service) Deactivate(ctx context.Context, caller actor.Actor, id uuid.UUID) error {
	if !caller.CanManageUsers() {
		return fault.Authorizationf("only admins can deactivate users")
	}

	if caller.ID == id {
		return fault.Validationf("cannot deactivate yourself")
	}

	ok, err := s.repo.SetActive(ctx, id, false)
	if err != nil {
		return fmt.Errorf("deactivating user: %w", err)
	}

	if !ok {
		return fault.NotFoundf("user %s", id)
	}

	return nil
}
