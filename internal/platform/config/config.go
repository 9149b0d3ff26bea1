package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultLedgerAPIBaseURL = "https://ecomhub-core-production.up.railway.app"
	defaultJWTSecret        = "a-very-secret-key-should-be-longer-and-random"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string
	EnableDBCheck bool
	// MigrationsPath is a golang-migrate source URL, e.g. file://migrations.
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	// Ledger API
	LedgerAPIBaseURL string
	LedgerAPITimeout time.Duration

	// Composer draft sessions
	DraftTTL      time.Duration
	DraftCapacity int

	// RateLimit uses the ulule/limiter format, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string

	// Service-to-service access through the x-api-key header.
	ServiceAPIKeyHash  string
	ServiceLedgerToken string
	ServiceRole        string

	// Product analytics; an empty key disables it.
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "ecomhub-core")
	viper.SetDefault("LEDGER_API_BASE_URL", defaultLedgerAPIBaseURL)
	viper.SetDefault("LEDGER_API_TIMEOUT", "15s")
	viper.SetDefault("DRAFT_TTL", "2h")
	viper.SetDefault("DRAFT_CAPACITY", 1000)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SERVICE_API_KEY_HASH", "")
	viper.SetDefault("SERVICE_LEDGER_TOKEN", "")
	viper.SetDefault("SERVICE_ROLE", "staff")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Submission audit is kept in memory.")
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.LedgerAPIBaseURL = strings.TrimRight(viper.GetString("LEDGER_API_BASE_URL"), "/")
	if cfg.LedgerAPIBaseURL == "" {
		cfg.LedgerAPIBaseURL = defaultLedgerAPIBaseURL
	}

	cfg.LedgerAPITimeout = durationOrDefault("LEDGER_API_TIMEOUT", 15*time.Second)
	cfg.DraftTTL = durationOrDefault("DRAFT_TTL", 2*time.Hour)

	cfg.DraftCapacity = viper.GetInt("DRAFT_CAPACITY")
	if cfg.DraftCapacity <= 0 {
		cfg.DraftCapacity = 1000
		log.Printf("Warning: Invalid value for DRAFT_CAPACITY. Defaulting to %d.\n", cfg.DraftCapacity)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.ServiceAPIKeyHash = viper.GetString("SERVICE_API_KEY_HASH")
	cfg.ServiceLedgerToken = viper.GetString("SERVICE_LEDGER_TOKEN")
	cfg.ServiceRole = viper.GetString("SERVICE_ROLE")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
