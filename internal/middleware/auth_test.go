package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		p, ok := GetPrincipalFromContext(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		fromCtx, _ := PrincipalFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"user_id":   p.UserID,
			"role":      p.Role,
			"token":     p.AccessToken,
			"ctx_match": fromCtx == p,
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	adminToken, err := utils.GenerateJWT("42", "admin", testSecret, time.Hour, "test")
	require.NoError(t, err)
	noRoleToken, err := utils.GenerateJWT("43", "", testSecret, time.Hour, "test")
	require.NoError(t, err)
	expiredToken, err := utils.GenerateJWT("42", "admin", testSecret, -time.Hour, "test")
	require.NoError(t, err)
	wrongKeyToken, err := utils.GenerateJWT("42", "admin", "other", time.Hour, "test")
	require.NoError(t, err)
	badRoleToken, err := utils.GenerateJWT("42", "owner", testSecret, time.Hour, "test")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Authorization header required"}`},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Authorization header format must be Bearer {token}"}`},
		{name: "expired", header: "Bearer " + expiredToken, wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Token has expired"}`},
		{name: "wrong key", header: "Bearer " + wrongKeyToken, wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Invalid token"}`},
		{name: "unknown role", header: "Bearer " + badRoleToken, wantStatus: http.StatusForbidden, wantBody: `{"error":"Unknown role"}`},
		{
			name: "admin token", header: "bearer " + adminToken, wantStatus: http.StatusOK,
			wantBody: `{"user_id":"42","role":"admin","token":"` + adminToken + `","ctx_match":true}`,
		},
		{
			name: "missing role defaults to staff", header: "Bearer " + noRoleToken, wantStatus: http.StatusOK,
			wantBody: `{"user_id":"43","role":"staff","token":"` + noRoleToken + `","ctx_match":true}`,
		},
	}

	r := newAuthRouter(StructuredLoggingMiddleware(discardLogger()), AuthMiddleware(testSecret))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestServiceAPIKeyAuth(t *testing.T) {
	hash, err := utils.HashSecret("s3cret")
	require.NoError(t, err)

	r := newAuthRouter(
		ServiceAPIKeyAuth(hash, "ledger-token", domain.RoleAdmin),
		AuthMiddleware(testSecret),
	)

	t.Run("valid key skips jwt", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("x-api-key", "s3cret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"service","role":"admin","token":"ledger-token","ctx_match":true}`, w.Body.String())
	})

	t.Run("invalid key falls through to jwt", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("x-api-key", "wrong")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
