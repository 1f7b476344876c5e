// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

// Package config defines the client configuration and its layered loading
// (struct defaults, optional YAML file, environment variables).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is the root configuration for a Present API client.
type Config struct {
	API       APIConfig       `koanf:"api"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Session   SessionConfig   `koanf:"session"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// APIConfig configures the HTTP surface of the client.
type APIConfig struct {
	// BaseURL is the versioned API root every relative path resolves against.
	BaseURL string `koanf:"base_url"`

	// Version is sent on every request in the Present-Version header.
	Version string `koanf:"version"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `koanf:"timeout"`

	// UserAgent identifies this client on outgoing requests.
	UserAgent string `koanf:"user_agent"`
}

// RateLimitConfig configures the client-side dispatch rate limiter.
type RateLimitConfig struct {
	Enabled bool `koanf:"enabled"`

	// RequestsPerSecond is the sustained dispatch rate.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// Burst is the maximum burst size.
	Burst int `koanf:"burst"`
}

// BreakerConfig configures the circuit breaker wrapped around the transport.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of probe requests allowed in half-open state.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval resets failure counts in closed state.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `koanf:"timeout"`

	// MinRequests is the minimum sample size before the breaker may trip.
	MinRequests uint32 `koanf:"min_requests"`

	// FailureRatio is the failure rate at which the breaker trips.
	FailureRatio float64 `koanf:"failure_ratio"`
}

// SessionConfig configures session persistence.
type SessionConfig struct {
	// Store selects the persistence backend: "memory", "file" or "badger".
	Store string `koanf:"store"`

	// Dir is the user-scoped directory holding the persisted session.
	// Empty selects <user config dir>/present.
	Dir string `koanf:"dir"`
}

// LoggingConfig configures SDK logging.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Default returns a Config with all default values applied.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "https://api.present.tv/v1",
			Version:   "2014-06-15",
			Timeout:   30 * time.Second,
			UserAgent: "PresentAPIClient-Go",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      2 * time.Minute,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
		Session: SessionConfig{
			Store: "file",
			Dir:   "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for values the client cannot run with.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.Version == "" {
		return fmt.Errorf("api.version must not be empty")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %v", c.API.Timeout)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit.requests_per_second must be positive, got %v", c.RateLimit.RequestsPerSecond)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be positive, got %d", c.RateLimit.Burst)
		}
	}

	if c.Breaker.Enabled {
		if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
			return fmt.Errorf("breaker.failure_ratio must be in (0,1], got %v", c.Breaker.FailureRatio)
		}
	}

	switch c.Session.Store {
	case "memory", "file", "badger":
	default:
		return fmt.Errorf("session.store must be one of memory, file, badger; got %q", c.Session.Store)
	}

	return nil
}

// SessionDir resolves the directory holding persisted session state,
// creating nothing. Empty Session.Dir falls back to the OS user config
// directory, then to the working directory when that is unavailable.
func (c *Config) SessionDir() string {
	if c.Session.Dir != "" {
		return c.Session.Dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".present"
	}
	return filepath.Join(base, "present")
}
