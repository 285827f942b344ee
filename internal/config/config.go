package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultLongPressMS    = 1000
	defaultMoveTolerance  = 5
	defaultMaxSuggestions = 50
)

// Config holds CLI configuration stored at ~/.tagdeck/config.
type Config struct {
	BaseURL        string `yaml:"base_url"`
	Username       string `yaml:"username,omitempty"`
	Password       string `yaml:"password,omitempty"`
	LogFile        string `yaml:"log_file,omitempty"`
	MetricsFile    string `yaml:"metrics_file,omitempty"`
	LongPressMS    int    `yaml:"long_press_ms,omitempty"`
	MoveTolerance  int    `yaml:"move_tolerance,omitempty"`
	MaxSuggestions int    `yaml:"max_suggestions,omitempty"`
	LenientSearch  bool   `yaml:"lenient_search,omitempty"`
}

// Dir returns the directory holding the config and log files.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tagdeck")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Load reads and parses the config file. Returns error if missing or insecure.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("config missing base_url")
	}

	return &cfg, nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LongPress returns the hold time for a long interaction.
func (c *Config) LongPress() time.Duration {
	if c == nil || c.LongPressMS <= 0 {
		return defaultLongPressMS * time.Millisecond
	}
	return time.Duration(c.LongPressMS) * time.Millisecond
}

// Tolerance returns how far the pointer may move during a long press.
func (c *Config) Tolerance() int {
	if c == nil || c.MoveTolerance <= 0 {
		return defaultMoveTolerance
	}
	return c.MoveTolerance
}

// SuggestionLimit returns the maximum number of candidates shown.
func (c *Config) SuggestionLimit() int {
	if c == nil || c.MaxSuggestions <= 0 {
		return defaultMaxSuggestions
	}
	return c.MaxSuggestions
}

// LogPath returns where the TUI writes its log.
func (c *Config) LogPath() string {
	if c == nil || c.LogFile == "" {
		return filepath.Join(Dir(), "tagdeck.log")
	}
	return c.LogFile
}
