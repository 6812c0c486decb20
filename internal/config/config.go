// Package config loads console settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"gymconsole/internal/core"
	"gymconsole/internal/role"
)

// LoggerConfig controls the zap logger.
type LoggerConfig struct {
	Level string `env:"GYM_LOG_LEVEL" envDefault:"info"`
}

// Config holds all console configuration parsed from environment variables.
type Config struct {
	Log LoggerConfig

	SeedEnabled      bool   `env:"GYM_SEED_ENABLED" envDefault:"true"`
	DefaultRole      string `env:"GYM_DEFAULT_ROLE" envDefault:"trainer"`
	UpdateMissing    string `env:"GYM_UPDATE_MISSING" envDefault:"ignore"`
	Timezone         string `env:"GYM_TIMEZONE" envDefault:"Asia/Seoul"`
	MetricsNamespace string `env:"GYM_METRICS_NAMESPACE" envDefault:"gymconsole"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown roles, policies and time zones.
func (c Config) Validate() error {
	var errs []error
	if !role.Role(strings.ToLower(strings.TrimSpace(c.DefaultRole))).Known() {
		errs = append(errs, fmt.Errorf("GYM_DEFAULT_ROLE: unknown role %q", c.DefaultRole))
	}
	if _, err := core.ParseMissingPolicy(c.UpdateMissing); err != nil {
		errs = append(errs, fmt.Errorf("GYM_UPDATE_MISSING: %w", err))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("GYM_TIMEZONE: %w", err))
	}
	if c.MetricsNamespace == "" {
		errs = append(errs, errors.New("GYM_METRICS_NAMESPACE must not be empty"))
	}
	return errors.Join(errs...)
}

// Role returns the configured default role.
func (c Config) Role() role.Role {
	return role.Parse(c.DefaultRole)
}

// MissingPolicy returns the configured missing-record policy.
func (c Config) MissingPolicy() core.MissingPolicy {
	p, err := core.ParseMissingPolicy(c.UpdateMissing)
	if err != nil {
		return core.MissingIgnore
	}
	return p
}

// Location returns the configured time zone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
