package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
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

// RequireRole refuses the call when the principal's role is below min.
func (s *BaseService) RequireRole(ctx context.Context, p domain.Principal, min domain.Role, action domain.Action, subject string) error {
	if p.Role.AtLeast(min) {
		return nil
	}
	err := &domain.WorkflowError{
		Message: fmt.Sprintf("Only %s can %s %s", min, action, subject),
		Kind:    apperrors.ErrForbidden,
	}
	s.LogDebug(ctx, "Role check failed",
		slog.String("user_id", p.UserID),
		slog.String("role", string(p.Role)),
		slog.String("required_role", string(min)),
		slog.String("action", string(action)))
	return err
}

func invalid(msg string) error {
	return domain.NewValidationError(msg)
}
