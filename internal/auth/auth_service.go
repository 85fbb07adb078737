package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "go-ems/internal/auth/errors"
	"go-ems/internal/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, email, password string) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (UserResponse, error)
}

type service struct {
	repo   Repository
	tokens token.Service
	logger *zap.Logger
}

func NewService(repo Repository, tokens token.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, logger: l}
}

// normalizeEmail keeps identity emails case-insensitive and trimmed.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Register(ctx context.Context, email, password string) (AuthResponse, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return AuthResponse{}, autherrors.ErrMissingCredentials
	}
	email = normalizeEmail(email)

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		s.logger.Warn("register email already taken", zap.String("email", email))
		return AuthResponse{}, autherrors.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		// Store outage, not a taken email.
		s.logger.Error("register email lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// Only a unique index race (two registers with the same email) is a
		// client error; everything else surfaces as a 500.
		s.logger.Warn("register persist failed", zap.Error(err))
		return AuthResponse{}, mapCreateError(err)
	}

	tok, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		s.logger.Error("register token issue failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("register success", zap.String("user_id", user.ID.String()))

	return AuthResponse{
		Token: tok,
		User:  UserResponse{ID: user.ID.String(), Email: user.Email},
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return AuthResponse{}, autherrors.ErrMissingCredentials
	}
	email = normalizeEmail(email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login email lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		s.logger.Error("login token issue failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))

	return AuthResponse{
		Token: tok,
		User:  UserResponse{ID: user.ID.String(), Email: user.Email},
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, autherrors.ErrUserNotFound
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		s.logger.Error("get me lookup failed", zap.Error(err))
		return UserResponse{}, err
	}

	return UserResponse{ID: u.ID.String(), Email: u.Email}, nil
}
