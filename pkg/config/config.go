// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-linalg/pkg/logging"
	"github.com/opd-ai/go-linalg/pkg/rounding"
)

// Config holds library-wide defaults for callers of the vector operations
type Config struct {
	// Tolerance is the default absolute tolerance for approximate comparisons.
	Tolerance float64 `json:"tolerance"`
	// Precision is the default number of decimal places used when rounding results.
	Precision int `json:"precision"`
	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `json:"logLevel"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Tolerance: 1e-9,
		Precision: 6,
		LogLevel:  "INFO",
	}
}

// LoadConfig loads a configuration from a JSON file. Fields missing from
// the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, logging.WrapError(err, "failed to read config file %s", path)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, logging.WrapError(err, "failed to parse config file %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *Config, path string) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return logging.WrapError(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return logging.WrapError(err, "failed to write config file %s", path)
	}

	return nil
}

// RoundingPoint returns Precision as a rounding.Point
func (c *Config) RoundingPoint() rounding.Point {
	return rounding.Point(c.Precision)
}
