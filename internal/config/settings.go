package config

import (
	"github.com/HexaCluster/pg-summarize/pkg/logger"
)

const (
	SettingsBackendPostgres = "postgres"
	SettingsBackendRedis    = "redis"
	SettingsBackendEnv      = "env"
)

// GetSettingsBackend returns which store the pg_summarizer settings are
// read from: postgres, redis or env.
func GetSettingsBackend() string {
	value := GetEnvOrDefault("SETTINGS_BACKEND", SettingsBackendEnv)
	logger.Info(logger.CONFIG, "Settings backend: %s", value)
	return value
}

// GetDatabaseURL returns the connection string for the postgres settings backend
func GetDatabaseURL() string {
	value := GetEnvOrDefault("DATABASE_URL", "")
	if value == "" {
		logger.Warn(logger.CONFIG, "Failed to retrieve database URL - environment variable not set")
	}
	return value
}
