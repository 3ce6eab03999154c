package deadarchive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	deadarchiveerrors "go-arquivo/internal/deadarchive/errors"
	"go-arquivo/internal/events"
	"go-arquivo/internal/messaging/kafka"
	"go-arquivo/internal/shared/contextutil"
)

const (
	BoxesKey = "deadarchive:boxes"
	boxesTTL = 30 * time.Minute

	defaultRetentionYears = 5
	employeeTerminated    = "TERMINATED"
)

//go:generate mockgen -source=deadarchive_service.go -destination=mock/deadarchive_service_mock.go -package=mock
type Service interface {
	CreateBox(ctx context.Context, req CreateBoxRequest) (BoxResponse, error)
	ListBoxes(ctx context.Context) ([]BoxResponse, error)
	Transfer(ctx context.Context, req TransferRequest) (ItemResponse, error)
	ListDisposalCandidates(ctx context.Context) ([]ItemResponse, error)
	RegisterDisposal(ctx context.Context, req DisposalRequest) (DisposalTermResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
	now    func() time.Time
}

func NewService(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("deadarchive.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deadarchive.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) CreateBox(ctx context.Context, req CreateBoxRequest) (BoxResponse, error) {
	box := &ArchiveBox{
		ID:        uuid.New(),
		BoxNumber: req.BoxNumber,
		Year:      req.Year,
		Capacity:  req.Capacity,
		Location:  req.Location,
	}

	if err := s.repo.CreateBox(ctx, box); err != nil {
		s.logger.Error("create archive box failed", zap.Error(err))
		return BoxResponse{}, mapRepositoryError(err)
	}

	s.invalidateBoxes(ctx)

	s.logger.Info("archive box created",
		zap.String("box_id", box.ID.String()),
		zap.String("box_number", box.BoxNumber),
	)

	return mapBoxResponse(box), nil
}

// ListBoxes serves the box list used by transfer forms; cached in redis
// with singleflight collapsing concurrent misses.
func (s *service) ListBoxes(ctx context.Context) ([]BoxResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, BoxesKey).Result(); err == nil {
			var resp []BoxResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(BoxesKey, func() (interface{}, error) {
		boxes, err := s.repo.ListBoxes(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]BoxResponse, 0, len(boxes))
		for i := range boxes {
			resp = append(resp, mapBoxResponse(&boxes[i]))
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, BoxesKey, jsonData, boxesTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]BoxResponse), nil
}

// Transfer moves a terminated employee's record into a dead-archive
// box. The item insert, the box counter and the lifecycle event commit
// in one transaction.
func (s *service) Transfer(ctx context.Context, req TransferRequest) (ItemResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actor := contextutil.GetActor(ctx)

	retention := req.RetentionYears
	if retention <= 0 {
		retention = defaultRetentionYears
	}

	var item *ArchiveItem
	var boxNumber string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindEmployee(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return deadarchiveerrors.ErrEmployeeNotFound
			}
			return err
		}
		if empl.Status != employeeTerminated {
			return deadarchiveerrors.ErrEmployeeNotTerminated
		}

		box, err := qtx.FindBoxByIDForUpdate(ctx, req.BoxID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return deadarchiveerrors.ErrBoxNotFound
			}
			return err
		}
		if box.CurrentCount >= box.Capacity {
			return deadarchiveerrors.ErrBoxFull
		}
		boxNumber = box.BoxNumber

		archivedAt := s.now()
		eligibleAt := archivedAt.AddDate(retention, 0, 0)
		if req.DisposalEligibleDate != "" {
			parsed, err := time.Parse(dateLayout, req.DisposalEligibleDate)
			if err != nil {
				return deadarchiveerrors.ErrInvalidEligibilityDate
			}
			eligibleAt = parsed
		}
		item = &ArchiveItem{
			ID:                   uuid.New(),
			BoxID:                box.ID,
			EmployeeID:           empl.ID,
			EmployeeName:         empl.FullName,
			ArchivedAt:           archivedAt,
			DisposalEligibleDate: eligibleAt,
		}
		if err := qtx.CreateItem(ctx, item); err != nil {
			return err
		}
		if err := qtx.IncrementBoxCount(ctx, box.ID); err != nil {
			return err
		}

		event := events.RecordArchivedEvent{
			EventType:    events.TypeRecordArchived,
			EventID:      uuid.NewString(),
			RequestID:    rid,
			EmployeeID:   empl.ID.String(),
			EmployeeName: empl.FullName,
			BoxID:        box.ID.String(),
			BoxNumber:    box.BoxNumber,
			Actor:        actor,
			OccurredAt:   archivedAt,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "archive_item",
			AggregateID:   item.ID.String(),
			EventType:     event.EventType,
			Topic:         events.RecordLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("archive transfer failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return ItemResponse{}, mapRepositoryError(err)
	}

	s.invalidateBoxes(ctx)

	s.logger.Info("record archived",
		zap.String("request_id", rid),
		zap.String("item_id", item.ID.String()),
		zap.String("box_number", boxNumber),
	)

	resp := mapItemResponse(item)
	resp.BoxNumber = boxNumber
	return resp, nil
}

func (s *service) ListDisposalCandidates(ctx context.Context) ([]ItemResponse, error) {
	rows, err := s.repo.ListDisposalCandidates(ctx, s.now())
	if err != nil {
		s.logger.Error("list disposal candidates failed", zap.Error(err))
		return nil, err
	}

	out := make([]ItemResponse, 0, len(rows))
	for i := range rows {
		out = append(out, mapItemRow(&rows[i]))
	}
	return out, nil
}

// RegisterDisposal disposes a batch of items under one term. The batch
// is all-or-nothing: one ineligible item rejects the whole request and
// nothing is marked.
func (s *service) RegisterDisposal(ctx context.Context, req DisposalRequest) (DisposalTermResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actor := contextutil.GetActor(ctx)

	disposedAt := s.now()
	term := req.TermNumber
	if term == "" {
		term = fmt.Sprintf("TERMO-%d", disposedAt.Unix())
	}

	var receipt DisposalTermResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		items, err := qtx.FindItemsForUpdate(ctx, req.ItemIDs)
		if err != nil {
			return err
		}
		if len(items) != len(req.ItemIDs) {
			return deadarchiveerrors.ErrItemNotFound
		}

		// Eligibility only drives the candidates listing. The registrar
		// decides what goes on the term, including early disposals.
		for i := range items {
			if items[i].Disposed {
				return deadarchiveerrors.ErrItemAlreadyDisposed
			}
		}

		if err := qtx.MarkDisposed(ctx, req.ItemIDs, term, disposedAt); err != nil {
			return err
		}

		receipt = DisposalTermResponse{
			TermNumber:   term,
			DisposalDate: disposedAt.Format(dateLayout),
			DisposedBy:   actor,
			Items:        make([]ItemResponse, 0, len(items)),
		}
		for i := range items {
			items[i].Disposed = true
			items[i].DisposedAt = &disposedAt
			items[i].DisposalTerm = term
			receipt.Items = append(receipt.Items, mapItemResponse(&items[i]))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("register disposal failed",
			zap.String("request_id", rid),
			zap.Int("items", len(req.ItemIDs)),
			zap.Error(err),
		)
		return DisposalTermResponse{}, err
	}

	s.logger.Info("disposal registered",
		zap.String("request_id", rid),
		zap.String("term", term),
		zap.Int("items", len(req.ItemIDs)),
		zap.String("disposed_by", actor),
	)

	return receipt, nil
}

func (s *service) invalidateBoxes(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, BoxesKey).Err(); err != nil {
		s.logger.Error("failed to invalidate box cache", zap.Error(err), zap.String("key", BoxesKey))
	}
}

func mapBoxResponse(box *ArchiveBox) BoxResponse {
	return BoxResponse{
		ID:           box.ID.String(),
		BoxNumber:    box.BoxNumber,
		Year:         box.Year,
		Capacity:     box.Capacity,
		CurrentCount: box.CurrentCount,
		Location:     box.Location,
	}
}

func mapItemResponse(item *ArchiveItem) ItemResponse {
	resp := ItemResponse{
		ID:                   item.ID.String(),
		BoxID:                item.BoxID.String(),
		EmployeeID:           item.EmployeeID.String(),
		EmployeeName:         item.EmployeeName,
		ArchivedAt:           item.ArchivedAt.Format(dateLayout),
		DisposalEligibleDate: item.DisposalEligibleDate.Format(dateLayout),
		Disposed:             item.Disposed,
		DisposalTerm:         item.DisposalTerm,
	}
	if item.DisposedAt != nil {
		resp.DisposedAt = item.DisposedAt.Format(dateLayout)
	}
	return resp
}

func mapItemRow(row *ItemRow) ItemResponse {
	resp := ItemResponse{
		ID:                   row.ID.String(),
		BoxID:                row.BoxID.String(),
		BoxNumber:            row.BoxNumber,
		EmployeeID:           row.EmployeeID.String(),
		EmployeeName:         row.EmployeeName,
		ArchivedAt:           row.ArchivedAt.Format(dateLayout),
		DisposalEligibleDate: row.DisposalEligibleDate.Format(dateLayout),
		Disposed:             row.Disposed,
		DisposalTerm:         row.DisposalTerm,
	}
	if row.DisposedAt != nil {
		resp.DisposedAt = row.DisposedAt.Format(dateLayout)
	}
	return resp
}
