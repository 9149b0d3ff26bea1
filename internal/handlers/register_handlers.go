package handlers

import (
	"net/http"

	"github.com/ecomhub/finance_backoffice/cmd/docs"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
	"github.com/ecomhub/finance_backoffice/internal/middleware"
	"github.com/ecomhub/finance_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics middleware.EventSink,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, analytics)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	analytics middleware.EventSink,
) {
	// A valid service API key authenticates first; everything else needs a JWT.
	v1 := r.Group("/api/v1",
		middleware.ServiceAPIKeyAuth(cfg.ServiceAPIKeyHash, cfg.ServiceLedgerToken, domain.Role(cfg.ServiceRole)),
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.UsageAnalytics(analytics),
	)

	RegisterJournalDraftRoutes(v1, service.JournalComposer)
	RegisterJournalEntryRoutes(v1, service.JournalEntry)
	RegisterAccountRoutes(v1, service.Account)
	RegisterFiscalPeriodRoutes(v1, service.FiscalPeriod)
	RegisterExpenseCategoryRoutes(v1, service.ExpenseCategory)
	RegisterExpenseRoutes(v1, service.Expense)
	RegisterAdBudgetRoutes(v1, service.AdBudget)
	RegisterInvestorRoutes(v1, service.CapitalInvestor)
	RegisterReportingRoutes(v1, service.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
