// Package config loads application settings from the environment and
// opens the database connection.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Port        int
	DatabaseDSN string
	CORSOrigin  string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables, falling back to
// development defaults.
func Load() *Config {
	return &Config{
		Port:        getEnvInt("PORT", 8080),
		DatabaseDSN: getEnvString("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=invoicing port=5432 sslmode=disable"),
		CORSOrigin:  getEnvString("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:    getEnvString("LOG_LEVEL", "info"),
		LogFormat:   getEnvString("LOG_FORMAT", "console"),
	}
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
