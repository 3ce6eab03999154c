package loan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-arquivo/internal/events"
	loanerrors "go-arquivo/internal/loan/errors"
	"go-arquivo/internal/messaging/kafka"
	"go-arquivo/internal/shared/contextutil"
)

//go:generate mockgen -source=loan_service.go -destination=mock/loan_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)
	Return(ctx context.Context, id string, req ReturnLoanRequest) (LoanResponse, error)
	List(ctx context.Context, status string) ([]LoanResponse, error)
	ListOverdue(ctx context.Context) ([]LoanResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("loan.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("loan.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, req CreateLoanRequest) (LoanResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actor := contextutil.GetActor(ctx)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LoanResponse{}, loanerrors.ErrEmployeeNotFound
	}

	loan := &Loan{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		Requester:     req.Requester,
		RequesterUnit: req.RequesterUnit,
		Purpose:       req.Purpose,
		Status:        StatusBorrowed,
		LoanDate:      s.now(),
		LoanedBy:      actor,
	}
	if req.DueDate != "" {
		due, err := time.Parse(dateLayout, req.DueDate)
		if err != nil {
			return LoanResponse{}, err
		}
		loan.DueDate = &due
	}

	if err := s.repo.Create(ctx, loan); err != nil {
		s.logger.Error("create loan failed", zap.String("request_id", rid), zap.Error(err))
		return LoanResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("loan created",
		zap.String("request_id", rid),
		zap.String("loan_id", loan.ID.String()),
		zap.String("requester", loan.Requester),
	)

	return s.mapLoanResponse(loan, ""), nil
}

// Return closes the loan. The status flip and the lifecycle event commit
// together; a second return of the same loan is rejected, not repeated.
func (s *service) Return(ctx context.Context, id string, req ReturnLoanRequest) (LoanResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actor := contextutil.GetActor(ctx)

	returnedAt := s.now()
	if req.ActualReturnDate != "" {
		parsed, err := time.Parse(dateLayout, req.ActualReturnDate)
		if err != nil {
			return LoanResponse{}, loanerrors.ErrInvalidReturnDate
		}
		returnedAt = parsed
	}

	var loan *Loan
	var employeeName string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		loan, err = qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanerrors.ErrLoanNotFound
			}
			return err
		}
		if loan.Returned() {
			return loanerrors.ErrAlreadyReturned
		}

		employeeName, err = qtx.EmployeeName(ctx, loan.EmployeeID)
		if err != nil {
			return err
		}

		loan.Status = StatusReturned
		loan.ReturnDate = &returnedAt
		loan.ReturnedBy = actor
		loan.ReturnNotes = req.ReturnNotes
		if err := qtx.Update(ctx, loan); err != nil {
			return err
		}

		event := events.LoanReturnedEvent{
			EventType:    events.TypeLoanReturned,
			EventID:      uuid.NewString(),
			RequestID:    rid,
			LoanID:       loan.ID.String(),
			EmployeeID:   loan.EmployeeID.String(),
			EmployeeName: employeeName,
			Requester:    loan.Requester,
			Actor:        actor,
			OccurredAt:   returnedAt,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "loan",
			AggregateID:   loan.ID.String(),
			EventType:     event.EventType,
			Topic:         events.RecordLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("return loan failed",
			zap.String("request_id", rid),
			zap.String("loan_id", id),
			zap.Error(err),
		)
		return LoanResponse{}, err
	}

	s.logger.Info("loan returned",
		zap.String("request_id", rid),
		zap.String("loan_id", id),
		zap.String("returned_by", actor),
	)

	return s.mapLoanResponse(loan, employeeName), nil
}

func (s *service) List(ctx context.Context, status string) ([]LoanResponse, error) {
	rows, err := s.repo.List(ctx, status)
	if err != nil {
		s.logger.Error("list loans failed", zap.Error(err))
		return nil, err
	}
	return s.mapLoanRows(rows), nil
}

func (s *service) ListOverdue(ctx context.Context) ([]LoanResponse, error) {
	rows, err := s.repo.ListOverdue(ctx, s.now())
	if err != nil {
		s.logger.Error("list overdue loans failed", zap.Error(err))
		return nil, err
	}
	return s.mapLoanRows(rows), nil
}

func (s *service) overdue(status string, dueDate *time.Time) bool {
	return status == StatusBorrowed && dueDate != nil && dueDate.Before(s.now())
}

func (s *service) mapLoanResponse(l *Loan, employeeName string) LoanResponse {
	resp := LoanResponse{
		ID:            l.ID.String(),
		EmployeeID:    l.EmployeeID.String(),
		EmployeeName:  employeeName,
		Requester:     l.Requester,
		RequesterUnit: l.RequesterUnit,
		Purpose:       l.Purpose,
		Status:        l.Status,
		LoanDate:      l.LoanDate.Format(dateLayout),
		LoanedBy:      l.LoanedBy,
		ReturnedBy:    l.ReturnedBy,
		ReturnNotes:   l.ReturnNotes,
		Overdue:       s.overdue(l.Status, l.DueDate),
	}
	if l.DueDate != nil {
		resp.DueDate = l.DueDate.Format(dateLayout)
	}
	if l.ReturnDate != nil {
		resp.ReturnDate = l.ReturnDate.Format(dateLayout)
	}
	return resp
}

func (s *service) mapLoanRows(rows []LoanRow) []LoanResponse {
	out := make([]LoanResponse, 0, len(rows))
	for _, row := range rows {
		resp := LoanResponse{
			ID:            row.ID.String(),
			EmployeeID:    row.EmployeeID.String(),
			EmployeeName:  row.EmployeeName,
			Requester:     row.Requester,
			RequesterUnit: row.RequesterUnit,
			Purpose:       row.Purpose,
			Status:        row.Status,
			LoanDate:      row.LoanDate.Format(dateLayout),
			LoanedBy:      row.LoanedBy,
			ReturnedBy:    row.ReturnedBy,
			ReturnNotes:   row.ReturnNotes,
			Overdue:       s.overdue(row.Status, row.DueDate),
		}
		if row.DueDate != nil {
			resp.DueDate = row.DueDate.Format(dateLayout)
		}
		if row.ReturnDate != nil {
			resp.ReturnDate = row.ReturnDate.Format(dateLayout)
		}
		out = append(out, resp)
	}
	return out
}
