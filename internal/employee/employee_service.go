package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-arquivo/internal/cabinet"
	employeeerrors "go-arquivo/internal/employee/errors"
	"go-arquivo/internal/events"
	"go-arquivo/internal/messaging/kafka"
	"go-arquivo/internal/shared/contextutil"
	"go-arquivo/internal/shared/response"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, q ListEmployeesQuery) ([]EmployeeResponse, response.PaginationMeta, error)
	GetDetail(ctx context.Context, id string) (EmployeeDetailResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Terminate(ctx context.Context, id string, req TerminateEmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	cabinets cabinet.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	cabinets cabinet.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		cabinets: cabinets,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("registration", req.Registration),
	)

	empl := &Employee{
		ID:           uuid.New(),
		FullName:     req.FullName,
		Registration: req.Registration,
		NationalID:   req.NationalID,
		Status:       StatusActive,
		Notes:        req.Notes,
	}
	if req.DepartmentID != "" {
		deptID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
		}
		empl.DepartmentID = &deptID
	}
	if req.AdmissionDate != "" {
		admission, err := time.Parse(dateLayout, req.AdmissionDate)
		if err != nil {
			return EmployeeResponse{}, err
		}
		empl.AdmissionDate = &admission
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapEmployeeResponse(empl), nil
}

func (s *service) List(ctx context.Context, q ListEmployeesQuery) ([]EmployeeResponse, response.PaginationMeta, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage < 1 {
		perPage = defaultPageSize
	}
	if perPage > maxPageSize {
		perPage = maxPageSize
	}

	rows, total, err := s.repo.List(ctx, ListFilter{
		Status:       q.Status,
		DepartmentID: q.DepartmentID,
		Search:       q.Search,
		Offset:       (page - 1) * perPage,
		Limit:        perPage,
	})
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	out := make([]EmployeeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, mapEmployeeRow(&rows[i]))
	}

	return out, response.NewPaginationMeta(total, page, perPage), nil
}

func (s *service) GetDetail(ctx context.Context, id string) (EmployeeDetailResponse, error) {
	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeDetailResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeDetailResponse{}, err
	}

	docs, err := s.repo.ListDocuments(ctx, id)
	if err != nil {
		return EmployeeDetailResponse{}, err
	}
	loans, err := s.repo.ListActiveLoans(ctx, id)
	if err != nil {
		return EmployeeDetailResponse{}, err
	}

	detail := EmployeeDetailResponse{
		EmployeeResponse: mapEmployeeRow(row),
		Documents:        make([]DocumentSummary, 0, len(docs)),
		ActiveLoans:      make([]LoanSummary, 0, len(loans)),
	}
	for _, d := range docs {
		detail.Documents = append(detail.Documents, DocumentSummary{
			ID:       d.ID.String(),
			TypeName: d.TypeName,
			FiledBy:  d.FiledBy,
			FiledAt:  d.FiledAt.Format(time.RFC3339),
		})
	}
	for _, l := range loans {
		summary := LoanSummary{
			ID:        l.ID.String(),
			Requester: l.Requester,
			Status:    l.Status,
			LoanDate:  l.LoanDate.Format(dateLayout),
		}
		if l.DueDate != nil {
			summary.DueDate = l.DueDate.Format(dateLayout)
		}
		detail.ActiveLoans = append(detail.ActiveLoans, summary)
	}

	return detail, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	if req.FullName != "" {
		empl.FullName = req.FullName
	}
	if req.NationalID != "" {
		empl.NationalID = req.NationalID
	}
	if req.DepartmentID != "" {
		deptID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
		}
		empl.DepartmentID = &deptID
	}
	if req.AdmissionDate != "" {
		admission, err := time.Parse(dateLayout, req.AdmissionDate)
		if err != nil {
			return EmployeeResponse{}, err
		}
		empl.AdmissionDate = &admission
	}
	if req.Notes != "" {
		empl.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee updated", zap.String("employee_id", id))
	return mapEmployeeResponse(empl), nil
}

// Terminate flips the employee to TERMINATED, frees the drawer slot and
// queues the lifecycle event. All of it commits in one transaction: a
// reader can never observe a terminated employee still holding a slot.
func (s *service) Terminate(ctx context.Context, id string, req TerminateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actor := contextutil.GetActor(ctx)

	terminationDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.TerminationDate != "" {
		parsed, err := time.Parse(dateLayout, req.TerminationDate)
		if err != nil {
			return EmployeeResponse{}, err
		}
		terminationDate = parsed
	}

	var empl *Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		empl, err = qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrEmployeeNotFound
			}
			return err
		}
		if empl.Terminated() {
			return employeeerrors.ErrAlreadyTerminated
		}

		freedPosition := ""
		if empl.DrawerPositionID != nil {
			if row, err := qtx.FindRowByID(ctx, id); err == nil && row.CabinetNumber != "" {
				freedPosition = cabinet.FormatSlot(row.CabinetNumber, row.DrawerNumber, row.Position)
			}
			if err := s.cabinets.WithTx(tx).VacateByEmployee(ctx, empl.ID); err != nil {
				return err
			}
		}

		empl.Status = StatusTerminated
		empl.TerminationDate = &terminationDate
		empl.DrawerPositionID = nil
		if err := qtx.Update(ctx, empl); err != nil {
			return err
		}

		event := events.EmployeeTerminatedEvent{
			EventType:       events.TypeEmployeeTerminated,
			EventID:         uuid.NewString(),
			RequestID:       rid,
			EmployeeID:      empl.ID.String(),
			EmployeeName:    empl.FullName,
			TerminationDate: terminationDate.Format(dateLayout),
			FreedPosition:   freedPosition,
			Actor:           actor,
			OccurredAt:      time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.RecordLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("terminate employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee terminated",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.String("termination_date", terminationDate.Format(dateLayout)),
	)

	return mapEmployeeResponse(empl), nil
}

func mapEmployeeResponse(e *Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID.String(),
		FullName:     e.FullName,
		Registration: e.Registration,
		NationalID:   e.NationalID,
		Status:       e.Status,
		Notes:        e.Notes,
	}
	if e.DepartmentID != nil {
		resp.DepartmentID = e.DepartmentID.String()
	}
	if e.AdmissionDate != nil {
		resp.AdmissionDate = e.AdmissionDate.Format(dateLayout)
	}
	if e.TerminationDate != nil {
		resp.TerminationDate = e.TerminationDate.Format(dateLayout)
	}
	return resp
}

func mapEmployeeRow(row *EmployeeRow) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             row.ID.String(),
		FullName:       row.FullName,
		Registration:   row.Registration,
		NationalID:     row.NationalID,
		Status:         row.Status,
		DepartmentName: row.DepartmentName,
		Notes:          row.Notes,
	}
	if row.DepartmentID != nil {
		resp.DepartmentID = row.DepartmentID.String()
	}
	if row.CabinetNumber != "" {
		resp.Location = cabinet.FormatSlot(row.CabinetNumber, row.DrawerNumber, row.Position)
	}
	if row.AdmissionDate != nil {
		resp.AdmissionDate = row.AdmissionDate.Format(dateLayout)
	}
	if row.TerminationDate != nil {
		resp.TerminationDate = row.TerminationDate.Format(dateLayout)
	}
	return resp
}
