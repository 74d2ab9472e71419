// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultMaxBodyBytes caps request bodies at 1 MiB.
	DefaultMaxBodyBytes int64 = 1 << 20

	// DefaultResolveMaxAttempts is how many times a write that lost a race is tried.
	DefaultResolveMaxAttempts = 5
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes limits request body size. Defaults to DefaultMaxBodyBytes.
	MaxBodyBytes int64

	// ResolveMaxAttempts bounds retries of a write that lost a race against
	// a concurrent writer. Defaults to DefaultResolveMaxAttempts.
	ResolveMaxAttempts int

	// MigrateOnStart applies pending migrations before serving. Defaults to true.
	MigrateOnStart bool
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is read first when present; variables
// already set in the environment take precedence over it.
// Returns an error listing any required variables that are not set or any
// values that cannot be parsed.
func Load() (Config, error) {
	_ = godotenv.Load()

	var invalid []string

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var err error
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", DefaultMaxBodyBytes); err != nil {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	if cfg.ResolveMaxAttempts, err = getInt("RESOLVE_MAX_ATTEMPTS", DefaultResolveMaxAttempts); err != nil || cfg.ResolveMaxAttempts < 1 {
		invalid = append(invalid, "RESOLVE_MAX_ATTEMPTS")
	}
	if cfg.MigrateOnStart, err = getBool("MIGRATE_ON_START", true); err != nil {
		invalid = append(invalid, "MIGRATE_ON_START")
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
