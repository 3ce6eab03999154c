package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cabinetMock "go-arquivo/internal/cabinet/mock"
	"go-arquivo/internal/employee"
	employeeerrors "go-arquivo/internal/employee/errors"
	employeeMock "go-arquivo/internal/employee/mock"
	"go-arquivo/internal/events"
	"go-arquivo/internal/messaging/kafka"
	kafkaMock "go-arquivo/internal/messaging/kafka/mock"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	repo     *employeeMock.MockRepository
	cabinets *cabinetMock.MockRepository
	outbox   *kafkaMock.MockOutboxRepository
	service  employee.Service
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

	repo := employeeMock.NewMockRepository(ctrl)
	cabinets := cabinetMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewService(gormDB, repo, cabinets, outbox)

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		repo:     repo,
		cabinets: cabinets,
		outbox:   outbox,
		service:  svc,
	}
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

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.Equal(t, "Maria Silva", empl.FullName)
				assert.Equal(t, "REG-0042", empl.Registration)
				assert.Equal(t, employee.StatusActive, empl.Status)
				assert.NotNil(t, empl.AdmissionDate)
				return nil
			})

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName:      "Maria Silva",
			Registration:  "REG-0042",
			AdmissionDate: "2023-02-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, employee.StatusActive, resp.Status)
		assert.Equal(t, "2023-02-01", resp.AdmissionDate)
	})

	t.Run("duplicate registration maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_employees_registration"})

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName:     "Maria Silva",
			Registration: "REG-0042",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrRegistrationAlreadyExists)
	})
}

func TestEmployeeService_List(t *testing.T) {
	deps := setupServiceTest(t)
	deptID := uuid.New()

	deps.repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter employee.ListFilter) ([]employee.EmployeeRow, int64, error) {
			assert.Equal(t, employee.StatusActive, filter.Status)
			assert.Equal(t, 20, filter.Limit)
			assert.Equal(t, 0, filter.Offset)
			return []employee.EmployeeRow{
				{
					ID:             uuid.New(),
					FullName:       "Maria Silva",
					Registration:   "REG-0042",
					Status:         employee.StatusActive,
					DepartmentID:   &deptID,
					DepartmentName: "Records",
					CabinetNumber:  "A1",
					DrawerNumber:   3,
					Position:       5,
				},
			}, 1, nil
		})

	resp, meta, err := deps.service.List(context.Background(), employee.ListEmployeesQuery{
		Status: employee.StatusActive,
	})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Records", resp[0].DepartmentName)
	assert.Equal(t, "A1-G3-P5", resp[0].Location)
	assert.Equal(t, int64(1), meta.Total)
	assert.Equal(t, 1, meta.Page)
}

func TestEmployeeService_GetDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindRowByID(gomock.Any(), gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetDetail(ctx, uuid.New().String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("includes documents and active loans", func(t *testing.T) {
		deps := setupServiceTest(t)
		empID := uuid.New()

		deps.repo.EXPECT().
			FindRowByID(gomock.Any(), empID.String()).
			Return(&employee.EmployeeRow{ID: empID, FullName: "Maria Silva", Status: employee.StatusActive}, nil)
		deps.repo.EXPECT().
			ListDocuments(gomock.Any(), empID.String()).
			Return([]employee.DocumentRow{{ID: uuid.New(), TypeName: "Employment contract"}}, nil)
		deps.repo.EXPECT().
			ListActiveLoans(gomock.Any(), empID.String()).
			Return([]employee.LoanRow{{ID: uuid.New(), Requester: "HR office", Status: "BORROWED"}}, nil)

		detail, err := deps.service.GetDetail(ctx, empID.String())

		assert.NoError(t, err)
		assert.Len(t, detail.Documents, 1)
		assert.Len(t, detail.ActiveLoans, 1)
		assert.Equal(t, "Employment contract", detail.Documents[0].TypeName)
	})
}

func TestEmployeeService_Terminate(t *testing.T) {
	ctx := context.Background()

	t.Run("frees the slot and queues the event in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		empID := uuid.New()
		posID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(gomock.Any(), empID.String()).
			Return(&employee.Employee{
				ID:               empID,
				FullName:         "Maria Silva",
				Registration:     "REG-0042",
				Status:           employee.StatusActive,
				DrawerPositionID: &posID,
			}, nil)
		deps.repo.EXPECT().
			FindRowByID(gomock.Any(), empID.String()).
			Return(&employee.EmployeeRow{
				ID:            empID,
				CabinetNumber: "A1",
				DrawerNumber:  3,
				Position:      5,
			}, nil)

		deps.cabinets.EXPECT().WithTx(gomock.Any()).Return(deps.cabinets)
		deps.cabinets.EXPECT().VacateByEmployee(gomock.Any(), empID).Return(nil)

		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.Equal(t, employee.StatusTerminated, empl.Status)
				assert.NotNil(t, empl.TerminationDate)
				assert.Nil(t, empl.DrawerPositionID)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, evt kafka.OutboxEvent) error {
				assert.Equal(t, events.TypeEmployeeTerminated, evt.EventType)
				assert.Equal(t, events.RecordLifecycleTopic, evt.Topic)
				assert.Equal(t, empID.String(), evt.AggregateID)
				assert.Equal(t, kafka.OutboxStatusPending, evt.Status)

				var payload events.EmployeeTerminatedEvent
				assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
				assert.Equal(t, "2024-06-30", payload.TerminationDate)
				assert.Equal(t, "A1-G3-P5", payload.FreedPosition)
				assert.NotEmpty(t, payload.EventID)
				return nil
			})

		resp, err := deps.service.Terminate(ctx, empID.String(), employee.TerminateEmployeeRequest{
			TerminationDate: "2024-06-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, employee.StatusTerminated, resp.Status)
		assert.Equal(t, "2024-06-30", resp.TerminationDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("terminating twice is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		empID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(gomock.Any(), empID.String()).
			Return(&employee.Employee{ID: empID, Status: employee.StatusTerminated}, nil)

		_, err := deps.service.Terminate(ctx, empID.String(), employee.TerminateEmployeeRequest{})

		assert.ErrorIs(t, err, employeeerrors.ErrAlreadyTerminated)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls everything back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		empID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDForUpdate(gomock.Any(), empID.String()).
			Return(&employee.Employee{ID: empID, FullName: "Maria Silva", Status: employee.StatusActive}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := deps.service.Terminate(ctx, empID.String(), employee.TerminateEmployeeRequest{})

		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
