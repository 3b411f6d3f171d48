// pkg/config/env_config.go
package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/opd-ai/go-linalg/pkg/logging"
	"github.com/opd-ai/go-linalg/pkg/rounding"
)

// Environment variables read by LoadConfigFromEnv
const (
	EnvTolerance = "LINALG_TOLERANCE"
	EnvPrecision = "LINALG_PRECISION"
	EnvLogLevel  = logging.LevelEnvVar
)

// ValidationError reports an invalid configuration field
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Message)
}

// LoadConfigFromEnv builds a configuration from the defaults overridden by
// LINALG_* environment variables, then validates it.
func LoadConfigFromEnv() (*Config, error) {
	config := DefaultConfig()
	if err := ApplyEnvironmentOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnvironmentOverrides overwrites the fields of config that have a
// matching environment variable set.
func ApplyEnvironmentOverrides(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}
	config.Tolerance = getEnvAsFloatOrDefault(EnvTolerance, config.Tolerance)
	config.Precision = getEnvAsIntOrDefault(EnvPrecision, config.Precision)
	config.LogLevel = getEnvOrDefault(EnvLogLevel, config.LogLevel)
	return config.Validate()
}

// Validate checks every field of the configuration
func (c *Config) Validate() error {
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return &ValidationError{Field: "Tolerance", Value: c.Tolerance, Message: "must be a finite non-negative number"}
	}
	if !rounding.Point(c.Precision).Valid() {
		return &ValidationError{Field: "Precision", Value: c.Precision, Message: "must be between 0 and 10"}
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return &ValidationError{Field: "LogLevel", Value: c.LogLevel, Message: "must be DEBUG, INFO, WARN or ERROR"}
	}
	return nil
}

// NewLogger creates a JSON logger writing to w at the configured level
func (c *Config) NewLogger(w io.Writer) *logging.Logger {
	level, _ := logging.ParseLevel(c.LogLevel)
	return logging.NewLoggerWithWriter(w, level)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}
