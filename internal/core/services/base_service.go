package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or returns the default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner checks that the requesting user is the owner of a collection.
func (s *BaseService) AuthorizeOwner(ctx context.Context, owner domain.OwnerID, requestingUserID string) error {
	if requestingUserID == "" || owner.String() != requestingUserID {
		s.LogDebug(ctx, "Access to another owner's collection denied",
			slog.String("owner_id", owner.String()),
			slog.String("user_id", requestingUserID))
		return fmt.Errorf("user %s may not access records of %s: %w", requestingUserID, owner, apperrors.ErrForbidden)
	}
	return nil
}

// hideForeign turns a record of another owner into a not-found, so the existence of
// other users' records stays hidden.
func hideForeign(owner domain.OwnerID, id domain.RecordID, requestingUserID string) error {
	if owner.String() != requestingUserID {
		return fmt.Errorf("record %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
