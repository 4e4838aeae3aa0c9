package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"DB_PORT", "DB_TIMEZONE", "PORT", "LOG_LEVEL", "ENVIRONMENT",
		"ALLOWED_ORIGINS", "SEED_ON_STARTUP",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:3000")
	assert.False(t, cfg.SeedOnStartup)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_ON_STARTUP", "TRUE")

	cfg := LoadConfig()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.SeedOnStartup)
}
