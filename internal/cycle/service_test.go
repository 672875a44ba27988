package cycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/acadfund/acadfund/internal/actor"
	"github.com/acadfund/acadfund/internal/cycle"
	"github.com/acadfund/acadfund/internal/fault"
)

var (
	deptID  = uuid.MustParse("6f1d0a52-4c4e-4a7b-9f5e-0d8c3b1a2e91")
	coordID = uuid.MustParse("a3b54c1d-8e2f-4f60-b1c7-5d9e8f0a1b2c")
)

func coordinator() actor.Actor {
	return actor.Actor{ID: coordID, Role: actor.RoleCoordinator, DepartmentID: deptID}
}

func admin() actor.Actor {
	return actor.Actor{ID: uuid.New(), Role: actor.RoleAdmin, DepartmentID: uuid.New()}
}

func validParams() cycle.CreateParams {
	return cycle.CreateParams{
		Name:            "Spring Equipment Round",
		AcademicYear:    "2026-27",
		DepartmentID:    deptID,
		StartDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		AllocatedBudget: 1_000_000,
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		caller    actor.Actor
		mutate    func(*cycle.CreateParams)
		setupMock func(m *cycle.MockRepository, wtx *cycle.MockWindowTx)
		wantKind  error
	}

	tests := []testCase{
		{
			name:   "Success",
			caller: coordinator(),
			setupMock: func(m *cycle.MockRepository, wtx *cycle.MockWindowTx) {
				m.EXPECT().BeginWindow(gomock.Any(), deptID).Return(wtx, nil)
				wtx.EXPECT().Overlaps(gomock.Any(), deptID, gomock.Any(), gomock.Any(), uuid.Nil).Return(false, nil)
				wtx.EXPECT().
					CreateCycle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *cycle.Cycle) error {
						c.ID = uuid.New()
						c.CreatedAt = time.Now()
						return nil
					})
				wtx.EXPECT().Commit().Return(nil)
				wtx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name:   "WrongDepartmentCoordinator",
			caller: actor.Actor{ID: uuid.New(), Role: actor.RoleCoordinator, DepartmentID: uuid.New()},
			wantKind: fault.ErrAuthorization,
		},
		{
			name:     "FacultyCannotCreate",
			caller:   actor.Actor{ID: uuid.New(), Role: actor.RoleFaculty, DepartmentID: deptID},
			wantKind: fault.ErrAuthorization,
		},
		{
			name:   "StartNotBeforeEnd",
			caller: coordinator(),
			mutate: func(p *cycle.CreateParams) {
				p.StartDate = p.EndDate
			},
			wantKind: fault.ErrValidation,
		},
		{
			name:   "NegativeBudget",
			caller: coordinator(),
			mutate: func(p *cycle.CreateParams) {
				p.AllocatedBudget = -1
			},
			wantKind: fault.ErrValidation,
		},
		{
			name:   "MissingName",
			caller: coordinator(),
			mutate: func(p *cycle.CreateParams) {
				p.Name = ""
			},
			wantKind: fault.ErrValidation,
		},
		{
			name:   "OverlappingWindow",
			caller: coordinator(),
			setupMock: func(m *cycle.MockRepository, wtx *cycle.MockWindowTx) {
				m.EXPECT().BeginWindow(gomock.Any(), deptID).Return(wtx, nil)
				wtx.EXPECT().Overlaps(gomock.Any(), deptID, gomock.Any(), gomock.Any(), uuid.Nil).Return(true, nil)
				wtx.EXPECT().Rollback().Return(nil)
			},
			wantKind: fault.ErrValidation,
		},
		{
			name:   "AdminCreatesForAnyDepartment",
			caller: admin(),
			setupMock: func(m *cycle.MockRepository, wtx *cycle.MockWindowTx) {
				m.EXPECT().BeginWindow(gomock.Any(), deptID).Return(wtx, nil)
				wtx.EXPECT().Overlaps(gomock.Any(), deptID, gomock.Any(), gomock.Any(), uuid.Nil).Return(false, nil)
				wtx.EXPECT().CreateCycle(gomock.Any(), gomock.Any()).Return(nil)
				wtx.EXPECT().Commit().Return(nil)
				wtx.EXPECT().Rollback().Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := cycle.NewMockRepository(ctrl)
			wtx := cycle.NewMockWindowTx(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, wtx)
			}

			params := validParams()
			if tt.mutate != nil {
				tt.mutate(&params)
			}

			svc := cycle.NewService(repo)
			got, err := svc.Create(context.Background(), tt.caller, params)

			if tt.wantKind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantKind)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, cycle.StatusDraft, got.Status)
			assert.Zero(t, got.SpentBudget)
		})
	}
}

func draftCycle() *cycle.Cycle {
	return &cycle.Cycle{
		ID:              uuid.New(),
		Name:            "Spring Equipment Round",
		AcademicYear:    "2026-27",
		DepartmentID:    deptID,
		StartDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		AllocatedBudget: 1_000_000,
		Status:          cycle.StatusDraft,
		CreatedBy:       coordID,
	}
}

func TestService_Activate(t *testing.T) {
	type testCase struct {
		name      string
		caller    actor.Actor
		status    cycle.Status
		guardFail bool
		wantKind  error
	}

	tests := []testCase{
		{name: "DraftActivates", caller: coordinator(), status: cycle.StatusDraft},
		{name: "ActiveFailsAgain", caller: coordinator(), status: cycle.StatusActive, wantKind: fault.ErrInvalidState},
		{name: "ClosedNeverReopens", caller: coordinator(), status: cycle.StatusClosed, wantKind: fault.ErrInvalidState},
		{name: "OtherDepartmentCoordinator", caller: actor.Actor{ID: uuid.New(), Role: actor.RoleCoordinator, DepartmentID: uuid.New()}, status: cycle.StatusDraft, wantKind: fault.ErrAuthorization},
		{name: "AdminMayActivate", caller: admin(), status: cycle.StatusDraft},
		{name: "LostRaceOnGuard", caller: coordinator(), status: cycle.StatusDraft, guardFail: true, wantKind: fault.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c := draftCycle()
			c.Status = tt.status

			repo := cycle.NewMockRepository(ctrl)
			repo.EXPECT().GetCycle(gomock.Any(), c.ID).Return(c, nil)

			if tt.wantKind == nil || tt.guardFail {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), c.ID, cycle.StatusDraft, cycle.StatusActive).
					Return(!tt.guardFail, nil)
			}

			svc := cycle.NewService(repo)
			got, err := svc.Activate(context.Background(), tt.caller, c.ID)

			if tt.wantKind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantKind)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, cycle.StatusActive, got.Status)
		})
	}
}

func TestService_Close(t *testing.T) {
	tests := []struct {
		name     string
		status   cycle.Status
		wantKind error
	}{
		{name: "ActiveCloses", status: cycle.StatusActive},
		{name: "DraftCannotSkipToClosed", status: cycle.StatusDraft, wantKind: fault.ErrInvalidState},
		{name: "ClosedStaysClosed", status: cycle.StatusClosed, wantKind: fault.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c := draftCycle()
			c.Status = tt.status

			repo := cycle.NewMockRepository(ctrl)
			repo.EXPECT().GetCycle(gomock.Any(), c.ID).Return(c, nil)

			if tt.wantKind == nil {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), c.ID, cycle.StatusActive, cycle.StatusClosed).
					Return(true, nil)
			}

			svc := cycle.NewService(repo)
			got, err := svc.Close(context.Background(), coordinator(), c.ID)

			if tt.wantKind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantKind)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, cycle.StatusClosed, got.Status)
		})
	}
}

func TestService_Update(t *testing.T) {
	t.Run("DraftOnly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := draftCycle()
		c.Status = cycle.StatusActive

		repo := cycle.NewMockRepository(ctrl)
		repo.EXPECT().GetCycle(gomock.Any(), c.ID).Return(c, nil)

		svc := cycle.NewService(repo)
		_, err := svc.Update(context.Background(), coordinator(), c.ID, cycle.UpdateParams{})
		assert.ErrorIs(t, err, fault.ErrInvalidState)
	})

	t.Run("RevalidatesDates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := draftCycle()

		repo := cycle.NewMockRepository(ctrl)
		repo.EXPECT().GetCycle(gomock.Any(), c.ID).Return(c, nil)

		badStart := c.EndDate.Add(24 * time.Hour)

		svc := cycle.NewService(repo)
		_, err := svc.Update(context.Background(), coordinator(), c.ID, cycle.UpdateParams{StartDate: &badStart})
		assert.ErrorIs(t, err, fault.ErrValidation)
	})

	t.Run("RechecksOverlap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := draftCycle()

		repo := cycle.NewMockRepository(ctrl)
		wtx := cycle.NewMockWindowTx(ctrl)
		repo.EXPECT().GetCycle(gomock.Any(), c.ID).Return(c, nil)
		repo.EXPECT().BeginWindow(gomock.Any(), deptID).Return(wtx, nil)
		wtx.EXPECT().Overlaps(gomock.Any(), deptID, gomock.Any(), gomock.Any(), c.ID).Return(true, nil)
		wtx.EXPECT().Rollback().Return(nil)

		newEnd := c.EndDate.AddDate(0, 3, 0)

		svc := cycle.NewService(repo)
		_, err := svc.Update(context.Background(), coordinator(), c.ID, cycle.UpdateParams{EndDate: &newEnd})
		assert.ErrorIs(t, err, fault.ErrValidation)
	})

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := draftCycle()

		repo := cycle.NewMockRepository(ctrl)
		wtx := cycle.NewMockWindowTx(ctrl)
		repo.EXPECT().GetCycle(gomock.Any(), c.ID).Return(c, nil)
		repo.EXPECT().BeginWindow(gomock.Any(), deptID).Return(wtx, nil)
		wtx.EXPECT().Overlaps(gomock.Any(), deptID, gomock.Any(), gomock.Any(), c.ID).Return(false, nil)
		wtx.EXPECT().UpdateCycle(gomock.Any(), c).Return(true, nil)
		wtx.EXPECT().Commit().Return(nil)
		wtx.EXPECT().Rollback().Return(nil)

		newBudget := int64(2_000_000)

		svc := cycle.NewService(repo)
		got, err := svc.Update(context.Background(), coordinator(), c.ID, cycle.UpdateParams{AllocatedBudget: &newBudget})
		require.NoError(t, err)
		assert.Equal(t, newBudget, got.AllocatedBudget)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("DraftOnly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := draftCycle()
		c.Status = cycle.StatusClosed

		repo := cycle.NewMockRepository(ctrl)
		repo.EXPECT().GetCycle(gomock.Any(), c.ID).Return(c, nil)

		svc := cycle.NewService(repo)
		err := svc.Delete(context.Background(), coordinator(), c.ID)
		assert.ErrorIs(t, err, fault.ErrInvalidState)
	})

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := draftCycle()

		repo := cycle.NewMockRepository(ctrl)
		repo.EXPECT().GetCycle(gomock.Any(), c.ID).Return(c, nil)
		repo.EXPECT().DeleteCycle(gomock.Any(), c.ID, cycle.StatusDraft).Return(true, nil)

		svc := cycle.NewService(repo)
		require.NoError(t, svc.Delete(context.Background(), coordinator(), c.ID))
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := uuid.New()

		repo := cycle.NewMockRepository(ctrl)
		repo.EXPECT().GetCycle(gomock.Any(), id).Return(nil, fault.NotFoundf("cycle %s", id))

		svc := cycle.NewService(repo)
		err := svc.Delete(context.Background(), coordinator(), id)
		assert.ErrorIs(t, err, fault.ErrNotFound)
	})
}

func TestService_CreateRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cycle.NewMockRepository(ctrl)
	repo.EXPECT().BeginWindow(gomock.Any(), deptID).Return(nil, errors.New("db down"))

	svc := cycle.NewService(repo)
	_, err := svc.Create(context.Background(), coordinator(), validParams())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, fault.ErrValidation)
}
