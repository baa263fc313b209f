package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level written to the output: debug, info, warn or error.
	Level string `yaml:"level" env:"LOG_LEVEL"`

	// Format is either "json" (default) or "text".
	Format string `yaml:"format" env:"LOG_FORMAT"`

	// SentryDSN enables Sentry reporting when set.
	SentryDSN string `yaml:"sentry_dsn" env:"SENTRY_DSN"`

	// SentryEnvironment is reported with every Sentry event (default: production).
	SentryEnvironment string `yaml:"sentry_environment" env:"SENTRY_ENVIRONMENT"`

	// SentryLevel is the lowest level forwarded to Sentry as a log: warn or error.
	// Errors always create Sentry issues.
	SentryLevel string `yaml:"sentry_level" env:"SENTRY_LEVEL"`
}

func (c *Config) applyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.SentryEnvironment == "" {
		c.SentryEnvironment = "production"
	}
	if c.SentryLevel == "" {
		c.SentryLevel = "warn"
	}
}

// Validate reports whether the level and format values are recognized.
func (c Config) Validate() error {
	c.applyDefaults()
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	if _, err := ParseLevel(c.SentryLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case FormatJSON, FormatText:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return lvl, nil
}
