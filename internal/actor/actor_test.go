package actor_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/acadfund/acadfund/internal/actor"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, actor.RoleFaculty.Valid())
	assert.True(t, actor.RoleCoordinator.Valid())
	assert.True(t, actor.RoleAdmin.Valid())
	assert.False(t, actor.Role("dean").Valid())
	assert.False(t, actor.Role("").Valid())
}

func TestCapabilities(t *testing.T) {
	deptA := uuid.New()
	deptB := uuid.New()

	faculty := actor.Actor{ID: uuid.New(), Role: actor.RoleFaculty, DepartmentID: deptA}
	coordA := actor.Actor{ID: uuid.New(), Role: actor.RoleCoordinator, DepartmentID: deptA}
	admin := actor.Actor{ID: uuid.New(), Role: actor.RoleAdmin, DepartmentID: deptB}

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"FacultySubmits", faculty.CanSubmitProposals(), true},
		{"CoordinatorDoesNotSubmit", coordA.CanSubmitProposals(), false},
		{"AdminDoesNotSubmit", admin.CanSubmitProposals(), false},

		{"CoordinatorReviewsOwnDepartment", coordA.CanReview(deptA), true},
		{"CoordinatorCannotReviewOtherDepartment", coordA.CanReview(deptB), false},
		{"FacultyNeverReviews", faculty.CanReview(deptA), false},
		{"AdminReviewsAnywhere", admin.CanReview(deptA), true},

		{"CoordinatorManagesOwnCycles", coordA.CanManageCycles(deptA), true},
		{"CoordinatorCannotManageOtherCycles", coordA.CanManageCycles(deptB), false},
		{"AdminManagesAnyCycles", admin.CanManageCycles(deptA), true},

		{"OnlyAdminManagesCatalog", admin.CanManageCatalog(), true},
		{"CoordinatorCannotManageCatalog", coordA.CanManageCatalog(), false},
		{"OnlyAdminManagesUsers", admin.CanManageUsers(), true},
		{"FacultyCannotManageUsers", faculty.CanManageUsers(), false},

		{"AdminSeesAllDepartments", admin.SeesAllDepartments(), true},
		{"CoordinatorScopedToDepartment", coordA.SeesAllDepartments(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
