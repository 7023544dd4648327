// Package config loads the bpsync tool configuration from environment
// variables, optionally seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/basispoort/basispoort-sync-client/rest"
)

// Validation errors returned by [Load] when required settings are missing or
// out of range.
var (
	// ErrMissingIdentityCert indicates that no client identity certificate
	// file was configured.
	ErrMissingIdentityCert = errors.New("identity certificate file is not set")
	// ErrInvalidTimeout indicates a zero or negative timeout setting.
	ErrInvalidTimeout = errors.New("timeouts must be positive")
)

// Config holds everything bpsync needs to talk to Basispoort.
type Config struct {
	// IdentityCertFile points to the PEM file holding the vendor's client
	// certificate and private key.
	IdentityCertFile string `env:"IDENTITY_CERT_FILE"`
	// Environment selects the Basispoort deployment to talk to.
	Environment rest.Environment `env:"BASISPOORT_ENVIRONMENT" envDefault:"test"`

	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// HostedLikaIdentityCode is the license provider identity, required
	// only for Hosted Lika operations.
	HostedLikaIdentityCode string `env:"HOSTED_LIKA_IDENTITY_CODE"`

	LogLevel zerolog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the process environment. A .env file in
// the working directory, when present, supplies defaults for variables that
// are not already set.
func Load() (*Config, error) {
	// Missing .env is the common case outside development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.IdentityCertFile == "" {
		return ErrMissingIdentityCert
	}
	if c.ConnectTimeout <= 0 || c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
