package deadarchive_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-arquivo/internal/deadarchive"
	deadarchiveerrors "go-arquivo/internal/deadarchive/errors"
	deadarchiveMock "go-arquivo/internal/deadarchive/mock"
	"go-arquivo/internal/events"
	"go-arquivo/internal/messaging/kafka"
	kafkaMock "go-arquivo/internal/messaging/kafka/mock"
	"go-arquivo/internal/shared/contextutil"
)

type serviceDeps struct {
	db      *sql.DB
	gormDB  *gorm.DB
	sqlMock sqlmock.Sqlmock
	repo    *deadarchiveMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	service deadarchive.Service
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

	repo := deadarchiveMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	svc := deadarchive.NewService(gormDB, repo, outbox, nil)

	return &serviceDeps{db: db, gormDB: gormDB, sqlMock: sqlMock, repo: repo, outbox: outbox, service: svc}
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

func TestDeadArchiveService_CreateBox(t *testing.T) {
	deps := setupServiceTest(t)

	deps.repo.EXPECT().
		CreateBox(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, box *deadarchive.ArchiveBox) error {
			assert.Equal(t, "CX-2024-01", box.BoxNumber)
			assert.Equal(t, 2024, box.Year)
			assert.Equal(t, 0, box.CurrentCount)
			return nil
		})

	resp, err := deps.service.CreateBox(context.Background(), deadarchive.CreateBoxRequest{
		BoxNumber: "CX-2024-01",
		Year:      2024,
		Capacity:  40,
	})

	assert.NoError(t, err)
	assert.Equal(t, "CX-2024-01", resp.BoxNumber)
	assert.Equal(t, 0, resp.CurrentCount)
}

func TestDeadArchiveService_Transfer(t *testing.T) {
	ctx := contextutil.WithActor(context.Background(), "arquivo.admin")

	t.Run("inserts the item, bumps the counter and queues the event together", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		empID := uuid.New()
		boxID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindEmployee(gomock.Any(), empID.String()).
			Return(&deadarchive.ArchivedEmployee{ID: empID, FullName: "Maria Silva", Status: "TERMINATED"}, nil)
		deps.repo.EXPECT().
			FindBoxByIDForUpdate(gomock.Any(), boxID.String()).
			Return(&deadarchive.ArchiveBox{
				ID:           boxID,
				BoxNumber:    "CX-2024-01",
				Year:         2024,
				Capacity:     40,
				CurrentCount: 12,
			}, nil)
		deps.repo.EXPECT().
			CreateItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *deadarchive.ArchiveItem) error {
				assert.Equal(t, boxID, item.BoxID)
				assert.Equal(t, "Maria Silva", item.EmployeeName)
				assert.False(t, item.Disposed)
				// Default retention is five years from archiving
				assert.Equal(t, item.ArchivedAt.AddDate(5, 0, 0), item.DisposalEligibleDate)
				return nil
			})
		deps.repo.EXPECT().IncrementBoxCount(gomock.Any(), boxID).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, evt kafka.OutboxEvent) error {
				assert.Equal(t, events.TypeRecordArchived, evt.EventType)

				var payload events.RecordArchivedEvent
				assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
				assert.Equal(t, "CX-2024-01", payload.BoxNumber)
				assert.Equal(t, "Maria Silva", payload.EmployeeName)
				return nil
			})

		resp, err := deps.service.Transfer(ctx, deadarchive.TransferRequest{
			EmployeeID: empID.String(),
			BoxID:      boxID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "CX-2024-01", resp.BoxNumber)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("explicit eligibility date overrides the retention default", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		empID := uuid.New()
		boxID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindEmployee(gomock.Any(), empID.String()).
			Return(&deadarchive.ArchivedEmployee{ID: empID, FullName: "Maria Silva", Status: "TERMINATED"}, nil)
		deps.repo.EXPECT().
			FindBoxByIDForUpdate(gomock.Any(), boxID.String()).
			Return(&deadarchive.ArchiveBox{ID: boxID, BoxNumber: "CX-2024-01", Capacity: 40}, nil)
		deps.repo.EXPECT().
			CreateItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *deadarchive.ArchiveItem) error {
				assert.Equal(t, time.Date(2031, 3, 15, 0, 0, 0, 0, time.UTC), item.DisposalEligibleDate)
				return nil
			})
		deps.repo.EXPECT().IncrementBoxCount(gomock.Any(), boxID).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.Transfer(ctx, deadarchive.TransferRequest{
			EmployeeID:           empID.String(),
			BoxID:                boxID.String(),
			DisposalEligibleDate: "2031-03-15",
		})

		assert.NoError(t, err)
	})

	t.Run("active employee is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		empID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindEmployee(gomock.Any(), empID.String()).
			Return(&deadarchive.ArchivedEmployee{ID: empID, FullName: "Maria Silva", Status: "ACTIVE"}, nil)

		_, err := deps.service.Transfer(ctx, deadarchive.TransferRequest{
			EmployeeID: empID.String(),
			BoxID:      uuid.New().String(),
		})

		assert.ErrorIs(t, err, deadarchiveerrors.ErrEmployeeNotTerminated)
	})

	t.Run("full box is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		empID := uuid.New()
		boxID := uuid.New()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindEmployee(gomock.Any(), empID.String()).
			Return(&deadarchive.ArchivedEmployee{ID: empID, Status: "TERMINATED"}, nil)
		deps.repo.EXPECT().
			FindBoxByIDForUpdate(gomock.Any(), boxID.String()).
			Return(&deadarchive.ArchiveBox{ID: boxID, Capacity: 40, CurrentCount: 40}, nil)

		_, err := deps.service.Transfer(ctx, deadarchive.TransferRequest{
			EmployeeID: empID.String(),
			BoxID:      boxID.String(),
		})

		assert.ErrorIs(t, err, deadarchiveerrors.ErrBoxFull)
	})
}

func TestDeadArchiveService_RegisterDisposal(t *testing.T) {
	ctx := contextutil.WithActor(context.Background(), "arquivo.admin")
	eligible := time.Now().UTC().Add(-24 * time.Hour)

	t.Run("batch shares one term and date", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		itemA := uuid.New()
		itemB := uuid.New()
		ids := []string{itemA.String(), itemB.String()}

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindItemsForUpdate(gomock.Any(), ids).
			Return([]deadarchive.ArchiveItem{
				{ID: itemA, EmployeeName: "Maria Silva", DisposalEligibleDate: eligible},
				{ID: itemB, EmployeeName: "Pedro Sousa", DisposalEligibleDate: eligible},
			}, nil)
		deps.repo.EXPECT().
			MarkDisposed(gomock.Any(), ids, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []string, term string, _ time.Time) error {
				assert.Contains(t, term, "TERMO-")
				return nil
			})

		receipt, err := deps.service.RegisterDisposal(ctx, deadarchive.DisposalRequest{ItemIDs: ids})

		assert.NoError(t, err)
		assert.Contains(t, receipt.TermNumber, "TERMO-")
		assert.Equal(t, "arquivo.admin", receipt.DisposedBy)
		assert.Len(t, receipt.Items, 2)
		for _, item := range receipt.Items {
			assert.True(t, item.Disposed)
			assert.Equal(t, receipt.TermNumber, item.DisposalTerm)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("eligibility date does not gate disposal", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		itemA := uuid.New()
		itemB := uuid.New()
		ids := []string{itemA.String(), itemB.String()}
		notYet := time.Now().UTC().AddDate(2, 0, 0)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindItemsForUpdate(gomock.Any(), ids).
			Return([]deadarchive.ArchiveItem{
				{ID: itemA, DisposalEligibleDate: eligible},
				{ID: itemB, DisposalEligibleDate: notYet},
			}, nil)
		deps.repo.EXPECT().
			MarkDisposed(gomock.Any(), ids, gomock.Any(), gomock.Any()).
			Return(nil)

		receipt, err := deps.service.RegisterDisposal(ctx, deadarchive.DisposalRequest{ItemIDs: ids})

		assert.NoError(t, err)
		assert.Len(t, receipt.Items, 2)
		for _, item := range receipt.Items {
			assert.True(t, item.Disposed)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already disposed item rejects the batch", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		itemA := uuid.New()
		ids := []string{itemA.String()}

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindItemsForUpdate(gomock.Any(), ids).
			Return([]deadarchive.ArchiveItem{
				{ID: itemA, Disposed: true, DisposalEligibleDate: eligible},
			}, nil)

		_, err := deps.service.RegisterDisposal(ctx, deadarchive.DisposalRequest{ItemIDs: ids})

		assert.ErrorIs(t, err, deadarchiveerrors.ErrItemAlreadyDisposed)
	})

	t.Run("missing item rejects the batch", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		ids := []string{uuid.New().String(), uuid.New().String()}

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindItemsForUpdate(gomock.Any(), ids).
			Return([]deadarchive.ArchiveItem{
				{ID: uuid.MustParse(ids[0]), DisposalEligibleDate: eligible},
			}, nil)

		_, err := deps.service.RegisterDisposal(ctx, deadarchive.DisposalRequest{ItemIDs: ids})

		assert.ErrorIs(t, err, deadarchiveerrors.ErrItemNotFound)
	})
}

func TestDeadArchiveService_ListBoxes(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		rdb, redisMock := redismock.NewClientMock()
		svc := deadarchive.NewService(deps.gormDB, deps.repo, deps.outbox, rdb)

		cached := []deadarchive.BoxResponse{{BoxNumber: "CX-2024-01", Capacity: 40}}
		jsonResp, err := json.Marshal(cached)
		assert.NoError(t, err)
		redisMock.ExpectGet(deadarchive.BoxesKey).SetVal(string(jsonResp))

		deps.repo.EXPECT().ListBoxes(gomock.Any()).Times(0)

		resp, err := svc.ListBoxes(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		rdb, redisMock := redismock.NewClientMock()
		svc := deadarchive.NewService(deps.gormDB, deps.repo, deps.outbox, rdb)

		redisMock.ExpectGet(deadarchive.BoxesKey).RedisNil()
		deps.repo.EXPECT().
			ListBoxes(gomock.Any()).
			Return([]deadarchive.ArchiveBox{
				{ID: uuid.New(), BoxNumber: "CX-2024-01", Year: 2024, Capacity: 40, CurrentCount: 12},
			}, nil)
		redisMock.ExpectSet(deadarchive.BoxesKey, gomock.Any(), 30*time.Minute).SetVal("OK")

		resp, err := svc.ListBoxes(context.Background())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "CX-2024-01", resp[0].BoxNumber)
	})
}

func TestDeadArchiveService_ListDisposalCandidates(t *testing.T) {
	deps := setupServiceTest(t)

	deps.repo.EXPECT().
		ListDisposalCandidates(gomock.Any(), gomock.Any()).
		Return([]deadarchive.ItemRow{
			{
				ID:                   uuid.New(),
				BoxID:                uuid.New(),
				BoxNumber:            "CX-2019-03",
				EmployeeID:           uuid.New(),
				EmployeeName:         "Maria Silva",
				ArchivedAt:           time.Date(2019, 1, 10, 0, 0, 0, 0, time.UTC),
				DisposalEligibleDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			},
		}, nil)

	resp, err := deps.service.ListDisposalCandidates(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "CX-2019-03", resp[0].BoxNumber)
	assert.False(t, resp[0].Disposed)
}
