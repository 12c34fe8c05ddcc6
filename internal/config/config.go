// SPDX-License-Identifier: MIT
// Package config loads the mlr command-line settings from the environment.
// Command-line flags override these values; see internal/cli.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Output formats understood by the CLI renderer.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// DefaultMaxOrder bounds the determinant family in the CLI. Cofactor
// expansion is factorial in n, so 10 keeps a single call well under a second.
const DefaultMaxOrder = 10

// ErrInvalidConfig is returned when a parsed value is out of its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config controls the mlr CLI.
type Config struct {
	MaxOrder int    `env:"MLR_MAX_ORDER" envDefault:"10"`
	LogLevel string `env:"MLR_LOG_LEVEL" envDefault:"info"`
	Output   string `env:"MLR_OUTPUT"    envDefault:"text"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Load parses Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every field holds a usable value.
// The log level is checked by the logger that consumes it.
func (c Config) Validate() error {
	if c.MaxOrder < 1 {
		return fmt.Errorf("max order %d must be >= 1: %w", c.MaxOrder, ErrInvalidConfig)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("output %q must be %q or %q: %w", c.Output, OutputText, OutputYAML, ErrInvalidConfig)
	}

	return nil
}
