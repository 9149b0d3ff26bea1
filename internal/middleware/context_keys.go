package middleware

import (
	"context"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	principalKey  = contextKey("principal")
	authMethodKey = "authMethod"
)

// WithPrincipal returns a copy of ctx carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx retrieves the authenticated principal from a standard context.
func PrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

// GetPrincipalFromContext retrieves the authenticated principal from the Gin context.
// It returns the principal and a boolean indicating if it was found.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	if val, exists := c.Get(string(principalKey)); exists {
		if p, ok := val.(domain.Principal); ok {
			return p, true
		}
	}
	// check in the request context as well
	return PrincipalFromCtx(c.Request.Context())
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	p, ok := GetPrincipalFromContext(c)
	if !ok || p.UserID == "" {
		return "", false
	}
	return p.UserID, true
}

// setPrincipal stores p in both contexts and enriches the request logger with it.
func setPrincipal(c *gin.Context, p domain.Principal, method string) {
	logger := GetLoggerFromCtx(c.Request.Context()).With(
		"user_id", p.UserID,
		"role", string(p.Role),
	)

	ctx := WithPrincipal(c.Request.Context(), p)
	ctx = WithLogger(ctx, logger)
	c.Request = c.Request.WithContext(ctx)

	c.Set(string(principalKey), p)
	c.Set(string(loggerKey), logger)
	c.Set(authMethodKey, method)
}
