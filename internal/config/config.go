// Package config loads client configuration from the config file and the
// environment. Environment variables override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/studiocentos/bookctl/internal/constants"
	"github.com/studiocentos/bookctl/internal/locale"
)

type Config struct {
	BackendURL string        `yaml:"backend_url" env:"BOOKCTL_BACKEND_URL" env-default:"https://api.studiocentos.it"`
	Timeout    time.Duration `yaml:"timeout" env:"BOOKCTL_TIMEOUT" env-default:"10s"`
	Locale     string        `yaml:"locale" env:"BOOKCTL_LOCALE" env-default:"it"`
	Timezone   string        `yaml:"timezone" env:"BOOKCTL_TIMEZONE" env-default:"Europe/Rome"`
	WeekWindow int           `yaml:"week_window" env:"BOOKCTL_WEEK_WINDOW" env-default:"4"`
	Debug      bool          `yaml:"debug" env:"BOOKCTL_DEBUG" env-default:"false"`
}

// Load reads the config file at path when it exists, otherwise falls back
// to environment variables and defaults alone. A missing file is not an
// error; an unreadable one is.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend_url cannot be empty")
	}
	if !locale.Supported(c.Locale) {
		return fmt.Errorf("unsupported locale %q (supported: it, en, es)", c.Locale)
	}
	if c.WeekWindow < 1 {
		return fmt.Errorf("week_window must be at least 1, got %d", c.WeekWindow)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// ApplyOverrides layers locally stored settings over the file values.
// Environment variables still win: they are re-read after the overlay.
func (c *Config) ApplyOverrides(loc, timezone, backendURL string) error {
	if loc != "" {
		c.Locale = loc
	}
	if timezone != "" {
		c.Timezone = timezone
	}
	if backendURL != "" {
		c.BackendURL = backendURL
	}
	if err := cleanenv.ReadEnv(c); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return c.validate()
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultDir returns the expanded default config directory.
func DefaultDir() string {
	return ExpandPath(constants.DefaultConfigDir)
}

// DefaultFile returns the expanded default config file path.
func DefaultFile() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}
