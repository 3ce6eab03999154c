package bootstrap

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go-arquivo/internal/auth"
)

const defaultAdminName = "Administrador"

// SeedAdminUser creates the bootstrap login on first start. Idempotent:
// an existing admin row is left untouched, including a changed password.
func SeedAdminUser(ctx context.Context, db *gorm.DB) error {
	repo := auth.NewRepository(db)

	login := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_LOGIN")))
	if login == "" {
		login = "admin"
	}

	if _, err := repo.FindByLogin(ctx, login); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &auth.User{
		ID:           uuid.New(),
		Name:         defaultAdminName,
		Login:        login,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := repo.Create(ctx, user); err != nil {
		return err
	}

	zap.L().Named("bootstrap").Info("admin user seeded", zap.String("login", login))
	return nil
}
