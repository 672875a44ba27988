package department_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/department"
	"github.com/acadfund/acadfund/internal/fault"
)

type fakeRepo struct {
	departments map[uuid.UUID]*department.Department
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{departments: make(map[uuid.UUID]*department.Department)}
}

func (f *fakeRepo) CreateDepartment(_ context.Context, d *department.Department) error {
	d.ID = uuid.New()
	f.departments[d.ID] = d

	return nil
}

func (f *fakeRepo) GetDepartment(_ context.Context, id uuid.UUID) (*department.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, fault.NotFoundf("department %s", id)
	}

	copied := *d

	return &copied, nil
}

func (f *fakeRepo) UpdateDepartment(_ context.Context, d *department.Department) error {
	f.departments[d.ID] = d
	return nil
}

func (f *fakeRepo) DeactivateDepartment(_ context.Context, id uuid.UUID) (bool, error) {
	d, ok := f.departments[id]
	if !ok {
		return false, nil
	}

	d.Active = false

	return true, nil
}

func (f *fakeRepo) ListDepartments(_ context.Context) ([]*department.Department, error) {
	var out []*department.Department

	for _, d := range f.departments {
		if d.Active {
			out = append(out, d)
		}
	}

	return out, nil
}

func (f *fakeRepo) CodeExists(_ context.Context, code string, exclude uuid.UUID) (bool, error) {
	for _, d := range f.departments {
		if d.Code == code && d.ID != exclude {
			return true, nil
		}
	}

	return false, nil
}

func admin() actor.Actor {
	return actor.Actor{ID: uuid.New(), Role: actor.RoleAdmin, DepartmentID: uuid.New()}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	svc := department.NewService(newFakeRepo())

	d, err := svc.Create(context.Background(), admin(), department.CreateParams{
		Name:   "Computer Science",
		Code:   "CS",
		Budget: 5_000_000,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.True(t, d.Active)
	assert.Equal(t, int64(5_000_000), d.Budget)
}

func TestCreateAuthorization(t *testing.T) {
	t.Parallel()

	svc := department.NewService(newFakeRepo())

	for _, role := range []actor.Role{actor.RoleFaculty, actor.RoleCoordinator} {
		caller := actor.Actor{ID: uuid.New(), Role: role, DepartmentID: uuid.New()}

		_, err := svc.Create(context.Background(), caller, department.CreateParams{Name: "X", Code: "X"})
		assert.ErrorIs(t, err, fault.ErrAuthorization, "role %s", role)
	}
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	svc := department.NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), admin(), department.CreateParams{Code: "CS"})
	assert.ErrorIs(t, err, fault.ErrValidation)

	_, err = svc.Create(context.Background(), admin(), department.CreateParams{Name: "CS", Code: "CS", Budget: -1})
	assert.ErrorIs(t, err, fault.ErrValidation)
}

func TestCreateDuplicateCode(t *testing.T) {
	t.Parallel()

	svc := department.NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), admin(), department.CreateParams{Name: "Computer Science", Code: "CS"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), admin(), department.CreateParams{Name: "Cognitive Science", Code: "CS"})
	assert.ErrorIs(t, err, fault.ErrValidation)
}

func TestUpdateKeepsOwnCode(t *testing.T) {
	t.Parallel()

	svc := department.NewService(newFakeRepo())

	d, err := svc.Create(context.Background(), admin(), department.CreateParams{Name: "Computer Science", Code: "CS"})
	require.NoError(t, err)

	// Renaming without changing the code must not trip the uniqueness check.
	updated, err := svc.Update(context.Background(), admin(), d.ID, department.UpdateParams{
		Name: new("Computing"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Computing", updated.Name)
	assert.Equal(t, "CS", updated.Code)
}

func TestUpdateRejectsTakenCode(t *testing.T) {
	t.Parallel()

	svc := department.NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), admin(), department.CreateParams{Name: "Computer Science", Code: "CS"})
	require.NoError(t, err)

	d, err := svc.Create(context.Background(), admin(), department.CreateParams{Name: "Mathematics", Code: "MATH"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), admin(), d.ID, department.UpdateParams{Code: new("CS")})
	assert.ErrorIs(t, err, fault.ErrValidation)
}

func TestDeactivate(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := department.NewService(repo)

	d, err := svc.Create(context.Background(), admin(), department.CreateParams{Name: "Computer Science", Code: "CS"})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), admin(), d.ID))
	assert.False(t, repo.departments[d.ID].Active)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeactivateNotFound(t *testing.T) {
	t.Parallel()

	svc := department.NewService(newFakeRepo())

	err := svc.Deactivate(context.Background(), admin(), uuid.New())
	assert.ErrorIs(t, err, fault.ErrNotFound)
}
