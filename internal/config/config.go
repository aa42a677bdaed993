package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"go.uber.org/multierr"
)

// Config is read from the environment (TRIVIA_* vars, optionally via a
// .env file loaded by the entrypoint).
type Config struct {
	Addr            string
	ProviderURL     string
	ProviderTimeout time.Duration
	ShutdownTimeout time.Duration
}

func FromEnv() (Config, error) {
	cfg := Config{
		Addr:            getenv("TRIVIA_ADDR", ":8080"),
		ProviderURL:     getenv("TRIVIA_PROVIDER_URL", "https://jservice.io"),
		ProviderTimeout: 15 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}

	var err error
	if err = parseDuration("TRIVIA_PROVIDER_TIMEOUT", &cfg.ProviderTimeout); err != nil {
		return Config{}, err
	}
	if err = parseDuration("TRIVIA_SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once rather than the first one found.
func (c Config) Validate() error {
	var errs error

	if c.Addr == "" {
		errs = multierr.Append(errs, errors.New("listen address must not be empty"))
	}
	if u, err := url.Parse(c.ProviderURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = multierr.Append(errs, fmt.Errorf("provider url %q must be a valid http(s) url", c.ProviderURL))
	}
	if c.ProviderTimeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("provider timeout must be positive, got %s", c.ProviderTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}

	return errs
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
