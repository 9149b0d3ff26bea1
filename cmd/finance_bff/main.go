package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/ecomhub/finance_backoffice/internal/adapters/ledgerapi"
	portsrepo "github.com/ecomhub/finance_backoffice/internal/core/ports/repositories"
	"github.com/ecomhub/finance_backoffice/internal/core/services"
	"github.com/ecomhub/finance_backoffice/internal/handlers"
	"github.com/ecomhub/finance_backoffice/internal/middleware"
	"github.com/ecomhub/finance_backoffice/internal/platform/config"
	"github.com/ecomhub/finance_backoffice/internal/repositories/database/pgsql"
	"github.com/ecomhub/finance_backoffice/internal/repositories/memory"
	"github.com/ecomhub/finance_backoffice/internal/utils"
	"github.com/ecomhub/finance_backoffice/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// submissionAuditCapacity bounds the in-memory audit log used when no database is configured.
const submissionAuditCapacity = 5000

// @title Finance Backoffice API
// @version 1.0
// @description Backend-for-frontend of the finance dashboard. Proxies the Ledger API and hosts the journal entry composer.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	submissions, closeStore := submissionStore(cfg, logger)
	defer closeStore()

	analytics := utils.NewAnalyticsClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer analytics.Close()

	drafts := memory.NewDraftRepository(cfg.DraftCapacity, cfg.DraftTTL)
	ledgerClient := ledgerapi.NewClient(cfg.LedgerAPIBaseURL, cfg.LedgerAPITimeout)
	repos := ledgerapi.NewRepositoryProvider(ledgerClient, drafts, submissions)
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "x-api-key", "X-Request-ID")
	r.Use(cors.New(corsConfig))

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, analytics)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("ledger_api", cfg.LedgerAPIBaseURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// submissionStore picks the PostgreSQL audit log when PGSQL_URL is set, running migrations
// first, and the in-memory one otherwise.
func submissionStore(cfg *config.Config, logger *slog.Logger) (portsrepo.SubmissionAuditRepository, func()) {
	if cfg.DatabaseURL == "" {
		logger.Info("No database configured, keeping submission audit in memory")
		return memory.NewSubmissionAuditRepository(submissionAuditCapacity), func() {}
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		database.ClosePgxPool(dbPool)
		os.Exit(1)
	}

	return pgsql.NewSubmissionAuditRepository(dbPool), func() { database.ClosePgxPool(dbPool) }
}

func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
