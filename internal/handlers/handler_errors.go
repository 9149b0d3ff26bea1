package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/ecomhub/finance_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error onto an HTTP status. Ledger API failures keep the upstream
// status so the dashboard sees the same code it would have seen calling the API directly.
func statusFor(err error) int {
	var remote *apperrors.RemoteError
	if errors.As(err, &remote) {
		if remote.StatusCode == 0 {
			return http.StatusBadGateway
		}
		return remote.StatusCode
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes the error body used by every route: {"error": msg}, plus "line" when
// a draft validation failure points at a specific line.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)

	body := gin.H{"error": err.Error()}
	if status >= http.StatusInternalServerError && !isRemote(err) {
		logger.Error(fallback, slog.String("error", err.Error()))
		body["error"] = fallback
	} else {
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	if vErr := dto.AsValidationError(err); vErr != nil && vErr.Line >= 0 {
		body["line"] = vErr.Line
	}
	c.JSON(status, body)
}

func isRemote(err error) bool {
	var remote *apperrors.RemoteError
	return errors.As(err, &remote)
}

// principalFrom returns the authenticated principal or writes a 401.
func principalFrom(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.GetPrincipalFromContext(c)
	if !ok || p.UserID == "" {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Principal{}, false
	}
	return p, true
}

// int64Param parses a positive numeric path parameter or writes a 400.
func int64Param(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": " + raw})
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body or writes a 400.
func bindJSON(c *gin.Context, req any, op string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for "+op, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// bindQuery binds query parameters or writes a 400.
func bindQuery(c *gin.Context, params any, op string) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query params for "+op, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	return true
}

// serveByID runs call for the :id path parameter and writes the result as 200.
func serveByID[T any](c *gin.Context, call func(ctx context.Context, p domain.Principal, id int64) (*T, error), fallback string) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	result, err := call(c.Request.Context(), p, id)
	if err != nil {
		respondWithError(c, err, fallback)
		return
	}
	c.JSON(http.StatusOK, result)
}

// deleteByID runs del for the :id path parameter and confirms with message.
func deleteByID(c *gin.Context, del func(ctx context.Context, p domain.Principal, id int64) error, message, fallback string) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := del(c.Request.Context(), p, id); err != nil {
		respondWithError(c, err, fallback)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info(message, slog.Int64("id", id))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
