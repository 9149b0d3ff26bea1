package middleware

import (
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
)

// ServiceUserID identifies requests authenticated with the service API key.
const ServiceUserID = "service"

// ServiceAPIKeyAuth authenticates internal callers through the x-api-key header. A matching
// key (checked against a bcrypt hash) yields a service principal that talks to the Ledger API
// with ledgerToken. Requests without a valid key fall through to AuthMiddleware.
func ServiceAPIKeyAuth(keyHash, ledgerToken string, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" || keyHash == "" {
			c.Next()
			return
		}

		if !utils.CheckSecretHash(apiKey, keyHash) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Invalid service API key")
			c.Next() // let JWT auth decide
			return
		}

		if !role.IsValid() {
			role = domain.RoleStaff
		}
		setPrincipal(c, domain.Principal{
			UserID:      ServiceUserID,
			Role:        role,
			AccessToken: ledgerToken,
		}, "api_key")
		c.Next()
	}
}
