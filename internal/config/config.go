// Package config loads luckydraw settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "luckydraw.yaml"

// Config holds all luckydraw configuration.
type Config struct {
	// Input is the workbook path.
	Input string `yaml:"input"`
	// Output is the JSON file written after extraction.
	Output string `yaml:"output"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: "extracted_data.json",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config at path. A missing file yields the defaults.
// Environment variables (and a .env file in the working directory) override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// .env is optional; existing environment variables win over it.
	_ = godotenv.Load()
	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides replaces file values with the LUCKYDRAW_* variables that are set.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LUCKYDRAW_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("LUCKYDRAW_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("LUCKYDRAW_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LUCKYDRAW_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}
