package config

import (
	"fmt"
	"os"
	"path/filepath"

	"pillar/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
type Config struct {
	General struct {
		StartDir   string `yaml:"start_dir"`   // Directory the first tab opens in ("" = cwd)
		ShowHidden bool   `yaml:"show_hidden"` // Include dotfiles in listings
		ShowIcons  bool   `yaml:"show_icons"`  // Prefix entries with a kind icon
		MaxColumns int    `yaml:"max_columns"` // Rightmost panes the renderer shows
	} `yaml:"general"`
	Search struct {
		TimeoutSeconds int `yaml:"timeout_seconds"` // Idle seconds before the quick-search query resets
	} `yaml:"search"`
	Preview struct {
		Enabled  bool  `yaml:"enabled"`   // Show the file preview pane
		MaxBytes int64 `yaml:"max_bytes"` // Content read cap for previews
	} `yaml:"preview"`
	Watch struct {
		Enabled bool `yaml:"enabled"` // Invalidate cached listings on filesystem events
	} `yaml:"watch"`
	IgnorePatterns []string `yaml:"ignore_patterns"` // Glob patterns hidden from listings
	Theme          struct {
		Primary string `yaml:"primary"` // Active column border / highlight color
		Muted   string `yaml:"muted"`   // Inactive chrome color
		Error   string `yaml:"error"`   // Unreadable marker color
	} `yaml:"theme"`
}

// defaultConfig returns the built-in defaults, matching the behavior of the
// browser when no config file exists.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.General.ShowIcons = true
	cfg.General.MaxColumns = 4
	cfg.Search.TimeoutSeconds = 1
	cfg.Preview.Enabled = true
	cfg.Preview.MaxBytes = 4096
	cfg.Theme.Primary = "#4FB7B7"
	cfg.Theme.Muted = "#959595"
	cfg.Theme.Error = "#FF5555"
	return cfg
}

// New returns a configuration populated with defaults.
func New() *Config {
	return defaultConfig()
}

// DefaultPath returns the default config file location
// (~/.config/pillar/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pillar", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Decoding into the pre-populated defaults only overwrites fields the
	// file actually sets, so an omitted section keeps its default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, err)
	}
	if cfg.General.MaxColumns < 1 {
		cfg.General.MaxColumns = 1
	}
	if cfg.Search.TimeoutSeconds < 0 {
		cfg.Search.TimeoutSeconds = 0
	}
	if cfg.Preview.MaxBytes <= 0 {
		cfg.Preview.MaxBytes = 4096
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration values that would otherwise fail deep
// inside the browser, so bad configs are rejected at load time.
func (c *Config) Validate() error {
	for _, pattern := range c.IgnorePatterns {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid ignore pattern", pattern, err)
		}
	}
	return nil
}

// CompiledIgnore compiles the ignore patterns. Patterns were validated at
// load time; anything invalid that slipped through is skipped.
func (c *Config) CompiledIgnore() []glob.Glob {
	globs := make([]glob.Glob, 0, len(c.IgnorePatterns))
	for _, pattern := range c.IgnorePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
