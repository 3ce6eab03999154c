package movement

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=movement_repo.go -destination=mock/movement_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, m *Movement) error
	FindByID(ctx context.Context, id string) (*Movement, error)
	ListRecent(ctx context.Context, limit int) ([]Movement, error)
	CountToday(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Movement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Movement, error) {
	var m Movement
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]Movement, error) {
	var result []Movement
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&result).Error
	return result, err
}

func (r *repository) CountToday(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Movement{}).
		Where("created_at >= CURRENT_DATE").
		Count(&total).Error
	return total, err
}
