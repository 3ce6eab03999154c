package cabinet

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	cabineterrors "go-arquivo/internal/cabinet/errors"
	"go-arquivo/internal/shared/contextutil"
)

const (
	defaultDrawerCapacity = 20
	employeeTerminated    = "TERMINATED"
)

//go:generate mockgen -source=cabinet_service.go -destination=mock/cabinet_service_mock.go -package=mock
type Service interface {
	CreateCabinet(ctx context.Context, req CreateCabinetRequest) (CabinetResponse, error)
	CreateDrawer(ctx context.Context, req CreateDrawerRequest) (DrawerResponse, error)
	ListCabinets(ctx context.Context) ([]CabinetOccupancy, error)
	GetOccupationMap(ctx context.Context) (OccupationMap, error)
	AssignPosition(ctx context.Context, req AssignPositionRequest) (PositionResponse, error)
	SuggestReorganization(ctx context.Context, req ReorganizationRequest) (ReorganizationPlan, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("cabinet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cabinet.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// CreateCabinet creates the cabinet and exactly DrawerCount drawer rows
// numbered 1..N in a single transaction.
func (s *service) CreateCabinet(ctx context.Context, req CreateCabinetRequest) (CabinetResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create cabinet requested",
		zap.String("request_id", rid),
		zap.String("number", req.Number),
		zap.Int("drawer_count", req.DrawerCount),
	)

	capacity := req.DrawerCapacity
	if capacity <= 0 {
		capacity = defaultDrawerCapacity
	}

	cab := &FileCabinet{
		ID:          uuid.New(),
		Number:      req.Number,
		Location:    req.Location,
		DrawerCount: req.DrawerCount,
		Active:      true,
	}

	drawers := make([]Drawer, req.DrawerCount)
	for i := range drawers {
		drawers[i] = Drawer{
			ID:        uuid.New(),
			CabinetID: cab.ID,
			Number:    i + 1,
			Capacity:  capacity,
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).CreateCabinet(ctx, cab, drawers)
	})
	if err != nil {
		s.logger.Error("create cabinet failed", zap.String("request_id", rid), zap.Error(err))
		return CabinetResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("cabinet created",
		zap.String("request_id", rid),
		zap.String("cabinet_id", cab.ID.String()),
		zap.Int("drawers", len(drawers)),
	)

	return mapCabinetResponse(*cab), nil
}

func (s *service) CreateDrawer(ctx context.Context, req CreateDrawerRequest) (DrawerResponse, error) {
	cab, err := s.repo.FindCabinetByID(ctx, req.CabinetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DrawerResponse{}, cabineterrors.ErrCabinetNotFound
		}
		return DrawerResponse{}, err
	}

	drawer := &Drawer{
		ID:        uuid.New(),
		CabinetID: cab.ID,
		Number:    req.Number,
		Capacity:  req.Capacity,
		Label:     req.Label,
	}

	if err := s.repo.CreateDrawer(ctx, drawer); err != nil {
		s.logger.Error("create drawer failed", zap.Error(err))
		return DrawerResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("drawer created",
		zap.String("cabinet_id", cab.ID.String()),
		zap.Int("number", drawer.Number),
	)

	return mapDrawerResponse(*drawer), nil
}

func (s *service) ListCabinets(ctx context.Context) ([]CabinetOccupancy, error) {
	m, err := s.GetOccupationMap(ctx)
	if err != nil {
		return nil, err
	}
	return m.Cabinets, nil
}

// GetOccupationMap recomputes the whole map from current state inside
// one read-only transaction, so a concurrent assignment can never
// produce a torn view. Nothing is cached.
func (s *service) GetOccupationMap(ctx context.Context) (OccupationMap, error) {
	var rows []DrawerOccupancyRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		rows, err = s.repo.WithTx(tx).ListOccupancyRows(ctx)
		return err
	}, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		s.logger.Error("load occupancy rows failed", zap.Error(err))
		return OccupationMap{}, err
	}

	return BuildOccupationMap(rows), nil
}

// AssignPosition puts the employee into the given drawer slot. The whole
// sequence runs in one transaction: the slot row, the displaced
// occupant's back-reference, the employee's previous slot and the
// employee's own back-reference all change together or not at all.
func (s *service) AssignPosition(ctx context.Context, req AssignPositionRequest) (PositionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign position requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("drawer_id", req.DrawerID),
		zap.Int("position", req.Position),
	)

	var result *DrawerPosition
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		employee, err := qtx.FindEmployeeRef(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return cabineterrors.ErrEmployeeNotFound
			}
			return err
		}
		// Terminated employees live in the dead archive; their folders
		// never go back into a drawer.
		if employee.Status == employeeTerminated {
			return cabineterrors.ErrEmployeeTerminated
		}

		drawer, err := qtx.FindDrawerByID(ctx, req.DrawerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return cabineterrors.ErrDrawerNotFound
			}
			return err
		}

		if req.Position > drawer.Capacity {
			return cabineterrors.ErrPositionOutOfRange
		}

		pos, err := qtx.FindPositionForUpdate(ctx, drawer.ID, req.Position)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Position rows are created lazily on first assignment
			pos = &DrawerPosition{
				ID:         uuid.New(),
				DrawerID:   drawer.ID,
				Position:   req.Position,
				EmployeeID: &employee.ID,
				Occupied:   true,
			}
			if err := qtx.CreatePosition(ctx, pos); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// Last writer wins, but the displaced occupant's
			// back-reference must not be left dangling
			if pos.EmployeeID != nil && *pos.EmployeeID != employee.ID {
				if err := qtx.SetEmployeeBackRef(ctx, *pos.EmployeeID, nil); err != nil {
					return err
				}
			}
			pos.EmployeeID = &employee.ID
			pos.Occupied = true
			if err := qtx.UpdatePosition(ctx, pos); err != nil {
				return err
			}
		}

		// An employee holds at most one position at a time
		if employee.DrawerPositionID != nil && *employee.DrawerPositionID != pos.ID {
			if err := qtx.VacatePosition(ctx, *employee.DrawerPositionID); err != nil {
				return err
			}
		}

		if err := qtx.SetEmployeeBackRef(ctx, employee.ID, &pos.ID); err != nil {
			return err
		}

		result = pos
		return nil
	})
	if err != nil {
		s.logger.Error("assign position failed", zap.String("request_id", rid), zap.Error(err))
		return PositionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("position assigned",
		zap.String("request_id", rid),
		zap.String("position_id", result.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapPositionResponse(*result), nil
}

// SuggestReorganization builds an advisory relocation plan; realizing a
// suggestion is the caller's job via AssignPosition.
func (s *service) SuggestReorganization(ctx context.Context, req ReorganizationRequest) (ReorganizationPlan, error) {
	var plan ReorganizationPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		rows, err := qtx.ListOccupancyRows(ctx)
		if err != nil {
			return err
		}

		plan, err = BuildReorganizationPlan(ctx, rows, req.CriticalThreshold, req.MaxMoves, qtx.ListAssignedEmployees)
		return err
	}, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		s.logger.Error("suggest reorganization failed", zap.Error(err))
		return ReorganizationPlan{}, err
	}

	s.logger.Info("reorganization plan built", zap.Int("total_moves", plan.TotalMoves))
	return plan, nil
}

func mapCabinetResponse(cab FileCabinet) CabinetResponse {
	return CabinetResponse{
		ID:          cab.ID.String(),
		Number:      cab.Number,
		Location:    cab.Location,
		DrawerCount: cab.DrawerCount,
		Active:      cab.Active,
	}
}

func mapDrawerResponse(d Drawer) DrawerResponse {
	return DrawerResponse{
		ID:        d.ID.String(),
		CabinetID: d.CabinetID.String(),
		Number:    d.Number,
		Capacity:  d.Capacity,
		Label:     d.Label,
	}
}

func mapPositionResponse(p DrawerPosition) PositionResponse {
	resp := PositionResponse{
		ID:       p.ID.String(),
		DrawerID: p.DrawerID.String(),
		Position: p.Position,
		Occupied: p.Occupied,
	}
	if p.EmployeeID != nil {
		resp.EmployeeID = p.EmployeeID.String()
	}
	return resp
}
