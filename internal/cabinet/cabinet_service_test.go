package cabinet_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-arquivo/internal/cabinet"
	cabineterrors "go-arquivo/internal/cabinet/errors"
	cabinetMock "go-arquivo/internal/cabinet/mock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *cabinetMock.MockRepository
	service cabinet.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Discard})
	assert.NoError(t, err)

	repo := cabinetMock.NewMockRepository(ctrl)
	svc := cabinet.NewService(gormDB, repo)

	return &serviceDeps{db: db, sqlMock: sqlMock, repo: repo, service: svc}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestCabinetService_CreateCabinet(t *testing.T) {
	ctx := context.Background()

	t.Run("creates cabinet with numbered drawers in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateCabinet(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cab *cabinet.FileCabinet, drawers []cabinet.Drawer) error {
				assert.Equal(t, "A1", cab.Number)
				assert.True(t, cab.Active)
				assert.Len(t, drawers, 3)
				for i, d := range drawers {
					assert.Equal(t, cab.ID, d.CabinetID)
					assert.Equal(t, i+1, d.Number)
					assert.Equal(t, 20, d.Capacity)
				}
				return nil
			})

		resp, err := deps.service.CreateCabinet(ctx, cabinet.CreateCabinetRequest{
			Number:      "A1",
			Location:    "Records room",
			DrawerCount: 3,
		})

		assert.NoError(t, err)
		assert.Equal(t, "A1", resp.Number)
		assert.Equal(t, 3, resp.DrawerCount)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("honors explicit drawer capacity", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateCabinet(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *cabinet.FileCabinet, drawers []cabinet.Drawer) error {
				assert.Equal(t, 50, drawers[0].Capacity)
				return nil
			})

		_, err := deps.service.CreateCabinet(ctx, cabinet.CreateCabinetRequest{
			Number:         "B2",
			DrawerCount:    1,
			DrawerCapacity: 50,
		})

		assert.NoError(t, err)
	})

	t.Run("duplicate cabinet number maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateCabinet(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_file_cabinets_number"})

		_, err := deps.service.CreateCabinet(ctx, cabinet.CreateCabinetRequest{
			Number:      "A1",
			DrawerCount: 1,
		})

		assert.ErrorIs(t, err, cabineterrors.ErrCabinetAlreadyExists)
	})
}

func TestCabinetService_CreateDrawer(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown cabinet", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindCabinetByID(gomock.Any(), gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.CreateDrawer(ctx, cabinet.CreateDrawerRequest{
			CabinetID: uuid.New().String(),
			Number:    4,
			Capacity:  20,
		})

		assert.ErrorIs(t, err, cabineterrors.ErrCabinetNotFound)
	})

	t.Run("duplicate drawer number maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		cabID := uuid.New()

		deps.repo.EXPECT().
			FindCabinetByID(gomock.Any(), cabID.String()).
			Return(&cabinet.FileCabinet{ID: cabID, Number: "A1"}, nil)
		deps.repo.EXPECT().
			CreateDrawer(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_drawer_number"})

		_, err := deps.service.CreateDrawer(ctx, cabinet.CreateDrawerRequest{
			CabinetID: cabID.String(),
			Number:    1,
			Capacity:  20,
		})

		assert.ErrorIs(t, err, cabineterrors.ErrDrawerAlreadyExists)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		cabID := uuid.New()

		deps.repo.EXPECT().
			FindCabinetByID(gomock.Any(), cabID.String()).
			Return(&cabinet.FileCabinet{ID: cabID, Number: "A1"}, nil)
		deps.repo.EXPECT().
			CreateDrawer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *cabinet.Drawer) error {
				assert.Equal(t, cabID, d.CabinetID)
				assert.Equal(t, 4, d.Number)
				return nil
			})

		resp, err := deps.service.CreateDrawer(ctx, cabinet.CreateDrawerRequest{
			CabinetID: cabID.String(),
			Number:    4,
			Capacity:  25,
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, resp.Number)
		assert.Equal(t, 25, resp.Capacity)
	})
}

func TestCabinetService_GetOccupationMap(t *testing.T) {
	deps := setupServiceTest(t)
	expectTx(t, deps.sqlMock, true)

	cabID := uuid.New()
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().
		ListOccupancyRows(gomock.Any()).
		Return([]cabinet.DrawerOccupancyRow{
			{
				CabinetID:     cabID,
				CabinetNumber: "A1",
				DrawerID:      uuid.New(),
				DrawerNumber:  1,
				Capacity:      2,
				Occupied:      2,
			},
		}, nil)

	m, err := deps.service.GetOccupationMap(context.Background())

	assert.NoError(t, err)
	assert.Len(t, m.Cabinets, 1)
	assert.Equal(t, cabinet.StatusCritical, m.Cabinets[0].Status)
	assert.Equal(t, 1, m.Totals.CriticalCabinets)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCabinetService_AssignPosition(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindEmployeeRef(gomock.Any(), gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.AssignPosition(ctx, cabinet.AssignPositionRequest{
			EmployeeID: uuid.New().String(),
			DrawerID:   uuid.New().String(),
			Position:   1,
		})

		assert.ErrorIs(t, err, cabineterrors.ErrEmployeeNotFound)
	})

	t.Run("terminated employee cannot take a slot", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		empID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindEmployeeRef(gomock.Any(), empID.String()).
			Return(&cabinet.EmployeeRef{ID: empID, FullName: "Maria Silva", Status: "TERMINATED"}, nil)

		_, err := deps.service.AssignPosition(ctx, cabinet.AssignPositionRequest{
			EmployeeID: empID.String(),
			DrawerID:   uuid.New().String(),
			Position:   1,
		})

		assert.ErrorIs(t, err, cabineterrors.ErrEmployeeTerminated)
	})

	t.Run("position beyond drawer capacity", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		empID := uuid.New()
		drawerID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindEmployeeRef(gomock.Any(), empID.String()).
			Return(&cabinet.EmployeeRef{ID: empID, FullName: "Maria Silva"}, nil)
		deps.repo.EXPECT().
			FindDrawerByID(gomock.Any(), drawerID.String()).
			Return(&cabinet.Drawer{ID: drawerID, Capacity: 20}, nil)

		_, err := deps.service.AssignPosition(ctx, cabinet.AssignPositionRequest{
			EmployeeID: empID.String(),
			DrawerID:   drawerID.String(),
			Position:   21,
		})

		assert.ErrorIs(t, err, cabineterrors.ErrPositionOutOfRange)
	})

	t.Run("first assignment creates the slot lazily", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		empID := uuid.New()
		drawerID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindEmployeeRef(gomock.Any(), empID.String()).
			Return(&cabinet.EmployeeRef{ID: empID, FullName: "Maria Silva"}, nil)
		deps.repo.EXPECT().
			FindDrawerByID(gomock.Any(), drawerID.String()).
			Return(&cabinet.Drawer{ID: drawerID, Capacity: 20}, nil)
		deps.repo.EXPECT().
			FindPositionForUpdate(gomock.Any(), drawerID, 5).
			Return(nil, gorm.ErrRecordNotFound)

		var createdID uuid.UUID
		deps.repo.EXPECT().
			CreatePosition(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pos *cabinet.DrawerPosition) error {
				assert.Equal(t, drawerID, pos.DrawerID)
				assert.Equal(t, 5, pos.Position)
				assert.True(t, pos.Occupied)
				assert.Equal(t, empID, *pos.EmployeeID)
				createdID = pos.ID
				return nil
			})
		deps.repo.EXPECT().
			SetEmployeeBackRef(gomock.Any(), empID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, posID *uuid.UUID) error {
				assert.Equal(t, createdID, *posID)
				return nil
			})

		resp, err := deps.service.AssignPosition(ctx, cabinet.AssignPositionRequest{
			EmployeeID: empID.String(),
			DrawerID:   drawerID.String(),
			Position:   5,
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.Position)
		assert.True(t, resp.Occupied)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("overwrite clears displaced occupant and previous slot", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		empID := uuid.New()
		otherID := uuid.New()
		drawerID := uuid.New()
		posID := uuid.New()
		prevPosID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindEmployeeRef(gomock.Any(), empID.String()).
			Return(&cabinet.EmployeeRef{ID: empID, FullName: "Maria Silva", DrawerPositionID: &prevPosID}, nil)
		deps.repo.EXPECT().
			FindDrawerByID(gomock.Any(), drawerID.String()).
			Return(&cabinet.Drawer{ID: drawerID, Capacity: 20}, nil)
		deps.repo.EXPECT().
			FindPositionForUpdate(gomock.Any(), drawerID, 3).
			Return(&cabinet.DrawerPosition{
				ID:         posID,
				DrawerID:   drawerID,
				Position:   3,
				EmployeeID: &otherID,
				Occupied:   true,
			}, nil)

		// Displaced occupant loses the back-reference first
		deps.repo.EXPECT().SetEmployeeBackRef(gomock.Any(), otherID, gomock.Nil()).Return(nil)
		deps.repo.EXPECT().
			UpdatePosition(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pos *cabinet.DrawerPosition) error {
				assert.Equal(t, empID, *pos.EmployeeID)
				assert.True(t, pos.Occupied)
				return nil
			})
		deps.repo.EXPECT().VacatePosition(gomock.Any(), prevPosID).Return(nil)
		deps.repo.EXPECT().
			SetEmployeeBackRef(gomock.Any(), empID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, id *uuid.UUID) error {
				assert.Equal(t, posID, *id)
				return nil
			})

		resp, err := deps.service.AssignPosition(ctx, cabinet.AssignPositionRequest{
			EmployeeID: empID.String(),
			DrawerID:   drawerID.String(),
			Position:   3,
		})

		assert.NoError(t, err)
		assert.Equal(t, empID.String(), resp.EmployeeID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reassigning the same slot does not vacate it", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		empID := uuid.New()
		drawerID := uuid.New()
		posID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindEmployeeRef(gomock.Any(), empID.String()).
			Return(&cabinet.EmployeeRef{ID: empID, DrawerPositionID: &posID}, nil)
		deps.repo.EXPECT().
			FindDrawerByID(gomock.Any(), drawerID.String()).
			Return(&cabinet.Drawer{ID: drawerID, Capacity: 20}, nil)
		deps.repo.EXPECT().
			FindPositionForUpdate(gomock.Any(), drawerID, 3).
			Return(&cabinet.DrawerPosition{
				ID:         posID,
				DrawerID:   drawerID,
				Position:   3,
				EmployeeID: &empID,
				Occupied:   true,
			}, nil)
		deps.repo.EXPECT().UpdatePosition(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().SetEmployeeBackRef(gomock.Any(), empID, gomock.Any()).Return(nil)

		_, err := deps.service.AssignPosition(ctx, cabinet.AssignPositionRequest{
			EmployeeID: empID.String(),
			DrawerID:   drawerID.String(),
			Position:   3,
		})

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestCabinetService_SuggestReorganization(t *testing.T) {
	deps := setupServiceTest(t)
	expectTx(t, deps.sqlMock, true)

	cabID := uuid.New()
	fullDrawer := uuid.New()
	emptyDrawer := uuid.New()

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().
		ListOccupancyRows(gomock.Any()).
		Return([]cabinet.DrawerOccupancyRow{
			{CabinetID: cabID, CabinetNumber: "A1", DrawerID: fullDrawer, DrawerNumber: 1, Capacity: 10, Occupied: 10},
			{CabinetID: cabID, CabinetNumber: "A1", DrawerID: emptyDrawer, DrawerNumber: 2, Capacity: 10, Occupied: 0},
		}, nil)
	deps.repo.EXPECT().
		ListAssignedEmployees(gomock.Any(), fullDrawer, 3).
		Return([]cabinet.AssignedEmployee{
			{EmployeeID: uuid.New(), FullName: "Maria Silva", Position: 1},
			{EmployeeID: uuid.New(), FullName: "Pedro Sousa", Position: 2},
		}, nil)

	plan, err := deps.service.SuggestReorganization(context.Background(), cabinet.ReorganizationRequest{
		CriticalThreshold: 90,
		MaxMoves:          10,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, plan.TotalMoves)
	assert.Equal(t, "A1-G1", plan.Suggestions[0].From)
	assert.Equal(t, "A1-G2", plan.Suggestions[0].To)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
