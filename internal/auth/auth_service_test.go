package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go-arquivo/internal/auth"
	autherrors "go-arquivo/internal/auth/errors"
	authMock "go-arquivo/internal/auth/mock"
	"go-arquivo/internal/session"
)

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func adminUser(t *testing.T, login string) *auth.User {
	t.Helper()
	return &auth.User{
		ID:           uuid.New(),
		Name:         "Administrador",
		Login:        login,
		PasswordHash: hashPassword(t, "s3cret"),
		Role:         "admin",
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("normalizes login before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, session.NewMemoryStore(0))

		user := adminUser(t, "admin")
		repo.EXPECT().
			FindByLogin(gomock.Any(), "admin").
			Return(user, nil)

		resp, err := svc.Login(context.Background(), auth.LoginRequest{
			Login:    "  Admin ",
			Password: "s3cret",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin", resp.Profile.Login)
	})

	t.Run("falls back to the part before the at sign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, session.NewMemoryStore(0))

		user := adminUser(t, "admin")
		repo.EXPECT().
			FindByLogin(gomock.Any(), "admin@arquivo.local").
			Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().
			FindByLogin(gomock.Any(), "admin").
			Return(user, nil)

		resp, err := svc.Login(context.Background(), auth.LoginRequest{
			Login:    "admin@arquivo.local",
			Password: "s3cret",
		})

		assert.NoError(t, err)
		assert.Equal(t, "admin", resp.Profile.Login)
	})

	t.Run("falls back to logins stored as full e-mail addresses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, session.NewMemoryStore(0))

		user := adminUser(t, "admin@arquivo.local")
		repo.EXPECT().
			FindByLogin(gomock.Any(), "admin").
			Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().
			FindByLoginPrefix(gomock.Any(), "admin").
			Return(user, nil)

		resp, err := svc.Login(context.Background(), auth.LoginRequest{
			Login:    "admin",
			Password: "s3cret",
		})

		assert.NoError(t, err)
		assert.Equal(t, "admin@arquivo.local", resp.Profile.Login)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, session.NewMemoryStore(0))

		repo.EXPECT().
			FindByLogin(gomock.Any(), "admin").
			Return(adminUser(t, "admin"), nil)

		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Login:    "admin",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, session.NewMemoryStore(0))

		repo.EXPECT().
			FindByLogin(gomock.Any(), "ghost").
			Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().
			FindByLoginPrefix(gomock.Any(), "ghost").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Login:    "ghost",
			Password: "s3cret",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_MeAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	store := session.NewMemoryStore(0)
	svc := auth.NewService(repo, store)

	user := adminUser(t, "admin")
	repo.EXPECT().FindByLogin(gomock.Any(), "admin").Return(user, nil)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Login: "admin", Password: "s3cret"})
	assert.NoError(t, err)

	profile, err := svc.Me(context.Background(), resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), profile.ID)
	assert.Equal(t, "admin", profile.Role)

	svc.Logout(context.Background(), resp.Token)

	_, err = svc.Me(context.Background(), resp.Token)
	assert.ErrorIs(t, err, autherrors.ErrSessionExpired)
}
