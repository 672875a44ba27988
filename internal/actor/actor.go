package actor

import (
	"github.com/google/uuid"
)

// Role represents the single role held by an authenticated user.
type Role string

const (
	RoleFaculty     Role = "faculty"
	RoleCoordinator Role = "coordinator"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFaculty, RoleCoordinator, RoleAdmin:
		return true
	}

	return false
}

// Actor is the already-authenticated caller of a domain operation. The core
// never authenticates; it only authorizes against this record.
type Actor struct {
	ID           uuid.UUID
	Role         Role
	DepartmentID uuid.UUID
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanSubmitProposals reports whether the actor may create and own proposals.
func (a Actor) CanSubmitProposals() bool {
	return a.Role == RoleFaculty
}

// CanReview reports whether the actor may approve or reject proposals
// belonging to the given department.
func (a Actor) CanReview(departmentID uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}

	return a.Role == RoleCoordinator && a.DepartmentID == departmentID
}

// CanManageCycles reports whether the actor may create or edit fund cycles
// for the given department.
func (a Actor) CanManageCycles(departmentID uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}

	return a.Role == RoleCoordinator && a.DepartmentID == departmentID
}

// CanManageCatalog reports whether the actor may mutate the item keyword
// catalog. Faculty and coordinators only read it.
func (a Actor) CanManageCatalog() bool {
	return a.IsAdmin()
}

// CanManageUsers reports whether the actor may change roles, departments or
// active flags of other users.
func (a Actor) CanManageUsers() bool {
	return a.IsAdmin()
}

// SeesAllDepartments reports whether list queries should skip department
// scoping for this actor.
func (a Actor) SeesAllDepartments() bool {
	return a.IsAdmin()
}
