package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the bootstrap config is looked up when --config is not given
const DefaultPath = "/etc/regauth/config.yaml"

// Config represents the application configuration
type Config struct {
	Profile  string `yaml:"profile,omitempty"`
	Region   string `yaml:"region,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Load reads the configuration at path.
// A missing file is not an error and yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
