package cmd

import (
	"os"
	"strconv"
)

// Config carries the runtime settings the composition root needs. Values
// come from the environment, optionally seeded from a .env file.
type Config struct {
	HTTPHost string
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBMaxConns int

	AppName     string
	AppVersion  string
	Environment string
}

// LoadConfig reads the configuration from the environment with the
// historical defaults. Validation of required values happens in main so the
// failure path can log fatally.
func LoadConfig() Config {
	return Config{
		HTTPHost: envOrDefault("HTTP_HOST", "0.0.0.0"),
		HTTPPort: envOrDefault("HTTP_PORT", "3000"),

		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOrDefault("DB_NAME", "kioskhub"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
		DBMaxConns: envIntOrDefault("DB_MAX_CONNS", 10),

		AppName:     envOrDefault("APP_NAME", "kioskhub"),
		AppVersion:  envOrDefault("APP_VERSION", "dev"),
		Environment: envOrDefault("APP_ENV", "development"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
