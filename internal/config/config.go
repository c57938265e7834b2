// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/notifica/notifica/internal/backend"
)

// Default configuration values.
const (
	DefaultAppName = "notifica"
	DefaultTimeout = "0s" // backend default
	DefaultUrgency = "normal"
)

// Config represents the notifica configuration.
type Config struct {
	Notification NotificationConfig `toml:"notification"`
}

// NotificationConfig holds default values applied to every notification
// sent by the CLI unless overridden with flags.
type NotificationConfig struct {
	AppName string `toml:"app_name"`
	Icon    string `toml:"icon"`
	Timeout string `toml:"timeout"` // Go duration string, "0s" = backend default
	Urgency string `toml:"urgency"` // low, normal, critical
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Notification: NotificationConfig{
			AppName: DefaultAppName,
			Icon:    "",
			Timeout: DefaultTimeout,
			Urgency: DefaultUrgency,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "notifica", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Parse TOML
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// TimeoutDuration parses the configured timeout.
func (c NotificationConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// ParseUrgency maps an urgency name onto its freedesktop level.
func ParseUrgency(s string) (backend.Urgency, error) {
	switch s {
	case "low":
		return backend.UrgencyLow, nil
	case "", "normal":
		return backend.UrgencyNormal, nil
	case "critical":
		return backend.UrgencyCritical, nil
	default:
		return backend.UrgencyNormal, fmt.Errorf("invalid urgency %q (want low, normal, or critical)", s)
	}
}
