// pkg/config/env_config_test.go
package config

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		t.Setenv(EnvTolerance, "")
		t.Setenv(EnvPrecision, "")
		t.Setenv(EnvLogLevel, "")

		config, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}
		if *config != *DefaultConfig() {
			t.Errorf("Expected defaults, got %+v", config)
		}
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv(EnvTolerance, "0.001")
		t.Setenv(EnvPrecision, "4")
		t.Setenv(EnvLogLevel, "debug")

		config, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}
		if config.Tolerance != 0.001 {
			t.Errorf("Expected Tolerance 0.001, got %g", config.Tolerance)
		}
		if config.Precision != 4 {
			t.Errorf("Expected Precision 4, got %d", config.Precision)
		}
		if config.LogLevel != "debug" {
			t.Errorf("Expected LogLevel 'debug', got '%s'", config.LogLevel)
		}
	})

	t.Run("UnparseableValuesFallBack", func(t *testing.T) {
		t.Setenv(EnvTolerance, "small")
		t.Setenv(EnvPrecision, "many")
		t.Setenv(EnvLogLevel, "")

		config, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}
		if config.Tolerance != 1e-9 || config.Precision != 6 {
			t.Errorf("Expected defaults for unparseable values, got %+v", config)
		}
	})

	t.Run("InvalidOverride", func(t *testing.T) {
		t.Setenv(EnvPrecision, "42")

		if _, err := LoadConfigFromEnv(); err == nil {
			t.Error("Expected validation error for precision 42")
		}
	})
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
		errorField  string
	}{
		{
			name:        "ValidConfig",
			mutate:      func(c *Config) {},
			expectError: false,
		},
		{
			name:        "ZeroTolerance",
			mutate:      func(c *Config) { c.Tolerance = 0 },
			expectError: false,
		},
		{
			name:        "NegativeTolerance",
			mutate:      func(c *Config) { c.Tolerance = -1e-9 },
			expectError: true,
			errorField:  "Tolerance",
		},
		{
			name:        "PrecisionTooLow",
			mutate:      func(c *Config) { c.Precision = -1 },
			expectError: true,
			errorField:  "Precision",
		},
		{
			name:        "PrecisionTooHigh",
			mutate:      func(c *Config) { c.Precision = 11 },
			expectError: true,
			errorField:  "Precision",
		},
		{
			name:        "EmptyLogLevel",
			mutate:      func(c *Config) { c.LogLevel = "" },
			expectError: true,
			errorField:  "LogLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected validation error, but got none")
				} else if validationErr, ok := err.(*ValidationError); ok {
					if validationErr.Field != tt.errorField {
						t.Errorf("Expected error for field '%s', got error for field '%s'", tt.errorField, validationErr.Field)
					}
				} else {
					t.Errorf("Expected ValidationError, got %T: %v", err, err)
				}
			} else if err != nil {
				t.Errorf("Expected no validation error, but got: %v", err)
			}
		})
	}
}

func TestApplyEnvironmentOverridesNil(t *testing.T) {
	if err := ApplyEnvironmentOverrides(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestConfigNewLogger(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.LogLevel = "WARN"

	logger := config.NewLogger(&buf)
	logger.Info(context.Background(), "suppressed")
	logger.Warn(context.Background(), "kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("INFO record written at WARN level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("WARN record missing: %s", out)
	}
}

func TestGetEnvHelperFunctions(t *testing.T) {
	t.Setenv("LINALG_TEST_STRING", "test_value")
	if result := getEnvOrDefault("LINALG_TEST_STRING", "default"); result != "test_value" {
		t.Errorf("getEnvOrDefault: expected 'test_value', got '%s'", result)
	}
	if result := getEnvOrDefault("LINALG_TEST_NONEXISTENT", "default"); result != "default" {
		t.Errorf("getEnvOrDefault: expected 'default', got '%s'", result)
	}

	t.Setenv("LINALG_TEST_INT", "42")
	if result := getEnvAsIntOrDefault("LINALG_TEST_INT", 10); result != 42 {
		t.Errorf("getEnvAsIntOrDefault: expected 42, got %d", result)
	}
	t.Setenv("LINALG_TEST_INT", "invalid")
	if result := getEnvAsIntOrDefault("LINALG_TEST_INT", 10); result != 10 {
		t.Errorf("getEnvAsIntOrDefault with invalid value: expected 10, got %d", result)
	}

	t.Setenv("LINALG_TEST_FLOAT", "3.14")
	if result := getEnvAsFloatOrDefault("LINALG_TEST_FLOAT", 1.0); result != 3.14 {
		t.Errorf("getEnvAsFloatOrDefault: expected 3.14, got %f", result)
	}
	t.Setenv("LINALG_TEST_FLOAT", "invalid")
	if result := getEnvAsFloatOrDefault("LINALG_TEST_FLOAT", 1.0); result != 1.0 {
		t.Errorf("getEnvAsFloatOrDefault with invalid value: expected 1.0, got %f", result)
	}
}
