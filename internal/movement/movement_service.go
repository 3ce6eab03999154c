package movement

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrDuplicateReference marks a movement whose reference was already
// recorded; the lifecycle consumer treats it as an already-processed event.
var ErrDuplicateReference = errors.New("movement reference already recorded")

//go:generate mockgen -source=movement_service.go -destination=mock/movement_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, actor string, req RecordMovementRequest) (MovementResponse, error)
	ListRecent(ctx context.Context, limit int) ([]MovementResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("movement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("movement.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Record(ctx context.Context, actor string, req RecordMovementRequest) (MovementResponse, error) {
	m := &Movement{
		ID:        uuid.New(),
		ItemLabel: req.ItemLabel,
		FromUnit:  req.FromUnit,
		ToUnit:    req.ToUnit,
		Action:    strings.TrimSpace(req.Action),
		Note:      req.Note,
		Actor:     actor,
	}
	if ref := strings.TrimSpace(req.Reference); ref != "" {
		m.Reference = &ref
	}

	if err := s.repo.Create(ctx, m); err != nil {
		if isDuplicateReference(err) {
			return MovementResponse{}, ErrDuplicateReference
		}
		s.logger.Error("record movement failed", zap.Error(err))
		return MovementResponse{}, err
	}

	s.logger.Info("movement recorded",
		zap.String("movement_id", m.ID.String()),
		zap.String("action", m.Action),
		zap.String("actor", actor),
	)

	return mapToResponse(*m), nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]MovementResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	items, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("list movements failed", zap.Error(err))
		return nil, err
	}

	result := make([]MovementResponse, len(items))
	for i, m := range items {
		result[i] = mapToResponse(m)
	}
	return result, nil
}

func mapToResponse(m Movement) MovementResponse {
	resp := MovementResponse{
		ID:        m.ID.String(),
		ItemLabel: m.ItemLabel,
		FromUnit:  m.FromUnit,
		ToUnit:    m.ToUnit,
		Action:    m.Action,
		Note:      m.Note,
		Actor:     m.Actor,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	}
	if m.Reference != nil {
		resp.Reference = *m.Reference
	}
	return resp
}

func isDuplicateReference(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint")
}
