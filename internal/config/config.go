package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultMaxProgressionLength = 64
)

// Config holds the application configuration
// Note: the service is stateless, there is no database or auth secret to configure
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	CloudWatchEnabled bool   // Force CloudWatch metrics outside production

	// Analysis defaults
	DefaultKey           string // Key used when a request does not name one
	MaxProgressionLength int    // Longest progression accepted over HTTP

	// CORS
	CORSAllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Environment:          getEnv("ENVIRONMENT", "development"),
		Port:                 getEnv("PORT", "8080"),
		SentryDSN:            getEnv("SENTRY_DSN", ""),
		CloudWatchEnabled:    getEnv("CLOUDWATCH_ENABLED", "false") == "true",
		DefaultKey:           getEnv("DEFAULT_KEY", "C"),
		MaxProgressionLength: getEnvInt("MAX_PROGRESSION_LENGTH", defaultMaxProgressionLength),
		CORSAllowedOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
