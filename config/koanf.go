// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where a config file is searched, in priority order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"present.yaml",
	"present.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "PRESENT_CONFIG"

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "PRESENT_"

// Load builds configuration from layered sources:
//  1. Defaults: built-in values from Default()
//  2. Config file: optional YAML file (first of DefaultConfigPaths, or
//     the path named by PRESENT_CONFIG)
//  3. Environment variables: PRESENT_-prefixed overrides, highest priority
//
// Precedence: ENV > file > defaults. The result is validated before return.
func Load() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile is Load with an explicit config file path. An empty path skips
// the file layer entirely.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the first file found, or empty string if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps PRESENT_-stripped environment variable names to koanf
// config paths. Variables not listed here are ignored, keeping unrelated
// PRESENT_* variables from leaking into the configuration.
var envMappings = map[string]string{
	"api_base_url":   "api.base_url",
	"api_version":    "api.version",
	"api_timeout":    "api.timeout",
	"api_user_agent": "api.user_agent",

	"rate_limit_enabled":             "rate_limit.enabled",
	"rate_limit_requests_per_second": "rate_limit.requests_per_second",
	"rate_limit_burst":               "rate_limit.burst",

	"breaker_enabled":       "breaker.enabled",
	"breaker_max_requests":  "breaker.max_requests",
	"breaker_interval":      "breaker.interval",
	"breaker_timeout":       "breaker.timeout",
	"breaker_min_requests":  "breaker.min_requests",
	"breaker_failure_ratio": "breaker.failure_ratio",

	"session_store": "session.store",
	"session_dir":   "session.dir",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Returning empty string drops the variable.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if path, ok := envMappings[key]; ok {
		return path
	}
	return ""
}
