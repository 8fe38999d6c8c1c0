package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Editor        string         `toml:"editor"`
	EditorCommand string         `toml:"editor_command"`
	ContextRadius int            `toml:"context_radius"`
	Search        SearchDefaults `toml:"search"`
}

// SearchDefaults are search flags applied to every run unless overridden
// on the command line.
type SearchDefaults struct {
	IgnoreCase   bool `toml:"ignore_case"`
	SmartCase    bool `toml:"smart_case"`
	SearchHidden bool `toml:"hidden"`
	FollowLinks  bool `toml:"follow"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "igrep", "config.toml")
}

// Load loads the configuration from the default location. A missing file
// is not an error; defaults apply.
func Load() (*Config, error) {
	return LoadFromPath(DefaultPath())
}

// LoadFromPath loads configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ContextRadius < 0 {
		cfg.ContextRadius = 0
	}
	return cfg, nil
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		ContextRadius: 5,
	}
}
