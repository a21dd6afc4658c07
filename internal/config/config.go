// Package config loads and persists utilboard settings from
// .utilboard/config.yaml, with environment overrides for scripted use.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all utilboard configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// DatasetConfig locates the workforce export and controls live reloads.
type DatasetConfig struct {
	// Path to the workforce export file.
	Path string `yaml:"path"`

	// Watch reloads the dashboard when the export changes on disk.
	Watch bool `yaml:"watch"`

	// Settle is how long file events must stay quiet before a reload runs,
	// as a duration string ("250ms").
	Settle string `yaml:"settle"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme string `yaml:"theme"` // light, dark, auto
}

// LoggingConfig configures the category file loggers.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	Dir        string          `yaml:"dir,omitempty"`
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:   "workforce.json",
			Watch:  true,
			Settle: "250ms",
		},
		UI: UIConfig{
			Theme: "auto",
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// DefaultPath returns the default config location, .utilboard/config.yaml
// under the current directory.
func DefaultPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".utilboard", "config.yaml")
	}
	return filepath.Join(cwd, ".utilboard", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file is not an error;
// it yields the defaults. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("UTILBOARD_DATA"); path != "" {
		c.Dataset.Path = path
	}
	if theme := os.Getenv("UTILBOARD_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if watch := os.Getenv("UTILBOARD_WATCH"); watch != "" {
		if v, err := strconv.ParseBool(watch); err == nil {
			c.Dataset.Watch = v
		}
	}
	if debug := os.Getenv("UTILBOARD_DEBUG"); debug != "" {
		if v, err := strconv.ParseBool(debug); err == nil {
			c.Logging.DebugMode = v
		}
	}
}

// GetSettle returns the watcher settle window as a duration.
func (c *Config) GetSettle() time.Duration {
	d, err := time.ParseDuration(c.Dataset.Settle)
	if err != nil {
		return 250 * time.Millisecond
	}
	return d
}

// ValidThemes lists the supported UI themes.
var ValidThemes = []string{"auto", "light", "dark"}

// ValidLevels lists the supported log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset path not configured (set dataset.path or UTILBOARD_DATA)")
	}

	if c.Dataset.Settle != "" {
		if _, err := time.ParseDuration(c.Dataset.Settle); err != nil {
			return fmt.Errorf("invalid dataset settle duration: %q", c.Dataset.Settle)
		}
	}

	validTheme := false
	for _, th := range ValidThemes {
		if c.UI.Theme == th {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}

	if c.Logging.Level != "" {
		validLevel := false
		for _, lvl := range ValidLevels {
			if c.Logging.Level == lvl {
				validLevel = true
				break
			}
		}
		if !validLevel {
			return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
		}
	}

	return nil
}
