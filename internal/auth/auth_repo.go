package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	FindByLogin(ctx context.Context, login string) (*User, error)
	FindByLoginPrefix(ctx context.Context, prefix string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateCredentials(ctx context.Context, id string, login, passwordHash string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByLogin(ctx context.Context, login string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).
		First(&user, "LOWER(login) = ?", login).Error
	return &user, err
}

// FindByLoginPrefix resolves logins stored as full e-mail addresses when
// the caller typed only the part before the @.
func (r *repository) FindByLoginPrefix(ctx context.Context, prefix string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).
		Where("LOWER(login) LIKE ?", prefix+"@%").
		First(&user).Error
	return &user, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return &user, err
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) UpdateCredentials(ctx context.Context, id string, login, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{"login": login, "password_hash": passwordHash}).Error
}
