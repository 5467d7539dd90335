package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/utils"
)

type UserService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		}
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

// AuthenticateUser returns apperrors.ErrUnauthorized for an unknown email and
// for a wrong password alike.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}
	return user, nil
}
