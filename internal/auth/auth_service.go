package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "go-arquivo/internal/auth/errors"
	"go-arquivo/internal/session"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string)
	Me(ctx context.Context, token string) (ProfileResponse, error)
}

type service struct {
	repo     Repository
	sessions session.Store
	logger   *zap.Logger
}

func NewService(repo Repository, sessions session.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, sessions: sessions, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(req.Login))
	if normalized == "" {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	user, err := s.lookup(ctx, normalized)
	if err != nil {
		s.logger.Warn("login lookup failed", zap.String("login", normalized))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("login", normalized))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	sess := s.sessions.Create(user.ID.String(), user.Login, user.Name, user.Role)

	s.logger.Info("login success", zap.String("login", user.Login))

	return LoginResponse{
		Token: sess.Token,
		Profile: ProfileResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Login: user.Login,
			Role:  user.Role,
		},
	}, nil
}

// lookup mirrors the historical login resolution: exact match first, then
// the part before an @, then logins stored as full e-mail addresses.
func (s *service) lookup(ctx context.Context, normalized string) (*User, error) {
	user, err := s.repo.FindByLogin(ctx, normalized)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if base, _, found := strings.Cut(normalized, "@"); found && base != normalized {
		if user, err := s.repo.FindByLogin(ctx, base); err == nil {
			return user, nil
		}
	}

	if !strings.Contains(normalized, "@") {
		return s.repo.FindByLoginPrefix(ctx, normalized)
	}

	return nil, gorm.ErrRecordNotFound
}

func (s *service) Logout(ctx context.Context, token string) {
	s.sessions.Revoke(token)
	s.logger.Info("session revoked")
}

func (s *service) Me(ctx context.Context, token string) (ProfileResponse, error) {
	sess, err := s.sessions.Authorize(token)
	if err != nil {
		return ProfileResponse{}, autherrors.ErrSessionExpired
	}

	return ProfileResponse{
		ID:    sess.UserID,
		Name:  sess.Name,
		Login: sess.Login,
		Role:  sess.Role,
	}, nil
}
