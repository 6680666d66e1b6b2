package config

import (
	"os"
	"strconv"

	"goeda/internal/errors"
)

// Config represents the complete application configuration. Every field has
// a default that reproduces the fixed report layout, so the program needs no
// environment at all.
type Config struct {
	Data    DataConfig
	Charts  ChartConfig
	Logging LoggingConfig
}

// DataConfig holds dataset input settings
type DataConfig struct {
	InputFile string
}

// ChartConfig holds chart output settings
type ChartConfig struct {
	OutputDir string
	DPI       int
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Data:    DataConfig{InputFile: "train.csv"},
		Charts:  ChartConfig{OutputDir: ".", DPI: 100},
		Logging: LoggingConfig{Level: "INFO"},
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	def := Default()
	config := &Config{
		Data: DataConfig{
			InputFile: getEnvOrDefault("EDA_INPUT_FILE", def.Data.InputFile),
		},
		Charts: ChartConfig{
			OutputDir: getEnvOrDefault("EDA_OUTPUT_DIR", def.Charts.OutputDir),
			DPI:       getEnvIntOrDefault("EDA_CHART_DPI", def.Charts.DPI),
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", def.Logging.Level),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.InputFile == "" {
		return errors.ConfigInvalid("input file is required")
	}
	if config.Charts.OutputDir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if config.Charts.DPI <= 0 {
		return errors.ConfigInvalid("chart DPI must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
