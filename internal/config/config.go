// Package config loads the markwright settings from a YAML file in
// the XDG config directory, with viper supplying the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Theme   string        `mapstructure:"theme"`
	Preview PreviewConfig `mapstructure:"preview"`
	Format  FormatConfig  `mapstructure:"format"`
	History HistoryConfig `mapstructure:"history"`
}

// PreviewConfig configures generated HTML pages
type PreviewConfig struct {
	CSS   string `mapstructure:"css"`   // Extra stylesheet appended to every page
	Title string `mapstructure:"title"` // Default page title
}

// FormatConfig configures the fmt command
type FormatConfig struct {
	Write bool `mapstructure:"write"` // Rewrite files in place by default
}

// HistoryConfig configures recent-document tracking
type HistoryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`       // Master switch
	MaxEntries   int    `mapstructure:"max_entries"`   // Keep at most N recent documents
	MaxSnapshots int    `mapstructure:"max_snapshots"` // Keep at most N snapshots per document
	Path         string `mapstructure:"path"`          // Database path override
}

func Load() (*Config, error) {
	configPath, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("theme", "auto")
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.max_entries", 10)
	viper.SetDefault("history.max_snapshots", 100)

	// Read config file (optional - won't error if missing)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Preview.CSS = expandPath(expandEnv(cfg.Preview.CSS))
	cfg.History.Path = expandPath(expandEnv(cfg.History.Path))

	return &cfg, nil
}

// ApplyOverrides applies command-line overrides to the config.
// If theme is non-empty, it overrides the configured theme.
func (c *Config) ApplyOverrides(theme string) {
	if theme != "" {
		c.Theme = theme
	}
}

// expandEnv expands ${VAR} or $VAR in a string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}
	return s
}

// expandPath expands a leading ~ to the home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// GetConfigDir returns the XDG config directory for markwright.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "markwright"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "markwright"), nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Exists returns true if a config file exists
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Save writes a commented starter config to disk
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := fmt.Sprintf(`# markwright configuration
# Run 'markwright config edit' to modify

# Color theme: light, dark, or auto (follow the terminal background)
theme: %s

preview:
  # Extra CSS appended to generated HTML pages
  # css: ~/.config/markwright/preview.css

format:
  # Rewrite files in place by default (same as --write)
  write: %t

history:
  enabled: %t
  max_entries: %d
`, cfg.Theme, cfg.Format.Write, cfg.History.Enabled, cfg.History.MaxEntries)

	return os.WriteFile(path, []byte(content), 0644)
}
