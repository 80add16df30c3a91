/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Hex styles for printing wire bytes
const (
	HexSpaced  = "spaced"  // 30 26 B2 75 ...
	HexCompact = "compact" // 3026B275...
)

// Config represents the asf CLI configuration
type Config struct {
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// Output controls how results are printed
type Output struct {
	Format       string `yaml:"format"`
	HexStyle     string `yaml:"hex_style"`
	UnknownLabel string `yaml:"unknown_label"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: Output{
			Format:       FormatText,
			HexStyle:     HexSpaced,
			UnknownLabel: "Unknown",
		},
		Logging: Logging{
			Level: "warn",
		},
	}
}

// Validate checks that every field holds a supported value
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unsupported output format %q", c.Output.Format)
	}

	switch c.Output.HexStyle {
	case HexSpaced, HexCompact:
	default:
		return fmt.Errorf("unsupported hex style %q", c.Output.HexStyle)
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

// LoadConfig loads configuration from the specified path.
// Fields missing from the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./asf.yaml"
	}

	// For Linux/macOS, use ~/.config/asf/config.yaml
	configDir := filepath.Join(homeDir, ".config", "asf")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
