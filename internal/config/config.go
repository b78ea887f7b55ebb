// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// HTTP
	Addr           string
	AllowedOrigins []string

	// Sessions
	TickInterval time.Duration

	// Champion data (Data Dragon layout)
	DataDir string

	// Logging
	LogLevel  string
	LogFormat string // "console" | "json"
}

// Load reads configuration from environment variables, after loading .env
// when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	tick, err := time.ParseDuration(getEnvOrDefault("TICK_INTERVAL", "100ms"))
	if err != nil {
		return nil, fmt.Errorf("TICK_INTERVAL: %w", err)
	}

	return &Config{
		Addr:           getEnvOrDefault("ADDR", ":8080"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		TickInterval:   tick,
		DataDir:        getEnvOrDefault("DATA_DIR", "data"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "console"),
	}, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Addr == "" {
		err = multierr.Append(err, errors.New("ADDR is empty"))
	}
	if c.TickInterval < time.Millisecond || c.TickInterval > time.Second {
		err = multierr.Append(err, fmt.Errorf("TICK_INTERVAL %s out of range [1ms, 1s]", c.TickInterval))
	}
	if c.DataDir == "" {
		err = multierr.Append(err, errors.New("DATA_DIR is empty"))
	}
	if _, lerr := zapcore.ParseLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("LOG_LEVEL: %w", lerr))
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("LOG_FORMAT %q must be console or json", c.LogFormat))
	}

	return err
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
