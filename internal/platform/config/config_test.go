package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://u:p@localhost:5432/auctions?sslmode=disable")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Hemant", cfg.SellerIdentity)
	assert.Equal(t, "auctions", cfg.NatsSubjectPrefix)
	assert.Empty(t, cfg.NatsURL)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.RunMigrations)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://u:p@db:5432/auctions")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("SELLER_IDENTITY", "alice")
	t.Setenv("NATS_URL", "nats://nats:4222")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "alice", cfg.SellerIdentity)
	assert.Equal(t, "nats://nats:4222", cfg.NatsURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_InvalidShutdownFallsBack(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://u:p@db:5432/auctions")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("PGSQL_URL", "")

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}
