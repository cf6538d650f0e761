package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string

	// SellerIdentity stands in for the authenticated caller on create.
	SellerIdentity string

	// Lifecycle events; an empty NatsURL disables publishing.
	NatsURL           string
	NatsSubjectPrefix string

	RateLimit          string
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	PosthogEndpoint    string
	ShutdownTimeout    time.Duration
}

// ErrMissingDatabaseURL is returned when PGSQL_URL is not set.
var ErrMissingDatabaseURL = errors.New("PGSQL_URL environment variable not set")

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SELLER_IDENTITY", "Hemant")
	v.SetDefault("NATS_URL", "")
	v.SetDefault("NATS_SUBJECT_PREFIX", "auctions")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("SHUTDOWN_TIMEOUT", "30s")

	// Environment variables override defaults (and anything godotenv exported from .env).
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:     v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		SellerIdentity:    v.GetString("SELLER_IDENTITY"),
		NatsURL:           v.GetString("NATS_URL"),
		NatsSubjectPrefix: v.GetString("NATS_SUBJECT_PREFIX"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		PosthogAPIKey:     v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:   v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.SellerIdentity == "" {
		cfg.SellerIdentity = "Hemant"
		log.Printf("Warning: SELLER_IDENTITY is empty. Defaulting to %s\n", cfg.SellerIdentity)
	}

	if cfg.NatsSubjectPrefix == "" {
		cfg.NatsSubjectPrefix = "auctions"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdown, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdown <= 0 {
		shutdown = 30 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdown)
	}
	cfg.ShutdownTimeout = shutdown

	return cfg, nil
}
