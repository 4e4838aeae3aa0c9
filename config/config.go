package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all process-wide settings. It is loaded once at startup
// and passed to the components that need it; nothing reads the environment
// after LoadConfig returns.
type AppConfig struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBTimezone string

	Port           string
	LogLevel       string
	Environment    string
	AllowedOrigins string

	SeedOnStartup bool
}

// LoadConfig reads .env (when present) and the environment into an AppConfig.
// Missing optional values fall back to development defaults.
func LoadConfig() *AppConfig {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	return &AppConfig{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("POSTGRES_USER", "postgres"),
		DBPassword: getEnv("POSTGRES_PASSWORD", "postgres"),
		DBName:     getEnv("POSTGRES_DB", "complaint_intake"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBTimezone: getEnv("DB_TIMEZONE", "UTC"),

		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Environment:    getEnv("ENVIRONMENT", "production"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost,http://localhost:3000"),

		SeedOnStartup: strings.EqualFold(getEnv("SEED_ON_STARTUP", "false"), "true"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
