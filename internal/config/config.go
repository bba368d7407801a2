// Package config loads the service configuration from the environment.
// Locale and platform are configuration inputs here so the core pipeline
// never inspects the host OS itself.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
)

type Config struct {
	ServiceName string
	Environment string
	HTTPAddr    string
	DatabaseDSN string

	// DefaultLocale feeds the language fallback of the generator, e.g.
	// "de_CH.UTF-8". Taken from QRBILL_DEFAULT_LOCALE, then LANG.
	DefaultLocale string

	// Platform overrides the detected OS family for path normalization.
	Platform string

	RateLimit       int
	RateLimitWindow time.Duration
}

// Load reads the configuration from the environment, with defaults fit
// for local development.
func Load() Config {
	cfg := Config{
		ServiceName:     envOr("QRBILL_SERVICE_NAME", "qrbill"),
		Environment:     envOr("QRBILL_ENVIRONMENT", "development"),
		HTTPAddr:        envOr("QRBILL_HTTP_ADDR", ":8080"),
		DatabaseDSN:     envOr("QRBILL_DB_DSN", "file:qrbill.db?_pragma=busy_timeout(5000)"),
		DefaultLocale:   envOr("QRBILL_DEFAULT_LOCALE", os.Getenv("LANG")),
		Platform:        os.Getenv("QRBILL_PLATFORM"),
		RateLimit:       envIntOr("QRBILL_RATE_LIMIT", 60),
		RateLimitWindow: time.Minute,
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.HTTPAddr = ":" + port
	}
	return cfg
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

var Module = fx.Module("config",
	fx.Provide(Load),
)

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
