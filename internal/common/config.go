// Package common provides shared utilities for finqa
package common

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Known environment names. The active one is selected once per process.
const (
	EnvLocalhost   = "localhost"
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Config holds all configuration for finqa
type Config struct {
	Environment  string                       `toml:"environment"`
	Environments map[string]EnvironmentConfig `toml:"environments"`
	Fixtures     FixturesConfig               `toml:"fixtures"`
	Client       ClientConfig                 `toml:"client"`
	Logging      LoggingConfig                `toml:"logging"`
	Results      ResultsConfig                `toml:"results"`
	Twin         TwinConfig                   `toml:"twin"`
}

// EnvironmentConfig holds the base URL of each target API for one environment.
type EnvironmentConfig struct {
	FinancesAPI string `toml:"finances_api"` // e.g. http://localhost:5000/api
}

// FixturesConfig points at the environment-keyed fixture file.
type FixturesConfig struct {
	Path string `toml:"path"`
}

// ClientConfig holds request builder settings
type ClientConfig struct {
	RateLimit int `toml:"rate_limit"` // requests per second, 0 = unlimited
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// ResultsConfig controls the raw response side channel.
type ResultsConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// TwinConfig holds settings for the in-memory replica of the Finances API.
type TwinConfig struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	JWTSecret   string `toml:"jwt_secret"`
	TokenExpiry string `toml:"token_expiry"` // duration string, default "1h"
}

// GetTokenExpiry parses and returns the access token lifetime.
func (c *TwinConfig) GetTokenExpiry() time.Duration {
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: EnvLocalhost,
		Environments: map[string]EnvironmentConfig{
			EnvLocalhost:   {FinancesAPI: "http://localhost:5000/api"},
			EnvDevelopment: {FinancesAPI: "https://dev.finances.example.com/api"},
			EnvTesting:     {FinancesAPI: "https://test.finances.example.com/api"},
			EnvProduction:  {FinancesAPI: "https://finances.example.com/api"},
		},
		Fixtures: FixturesConfig{
			Path: "data/fixtures.json",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Results: ResultsConfig{
			Dir: "tests/results",
		},
		Twin: TwinConfig{
			Host:        "127.0.0.1",
			Port:        5000,
			JWTSecret:   "finqa-twin-secret",
			TokenExpiry: "1h",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	config.Environment = strings.ToLower(strings.TrimSpace(config.Environment))
	if config.Environment == "" {
		config.Environment = EnvLocalhost
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FINQA_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("ENVIRONMENT"); env != "" {
		config.Environment = env
	}

	if url := os.Getenv("FINQA_FINANCES_API"); url != "" {
		if config.Environments == nil {
			config.Environments = make(map[string]EnvironmentConfig)
		}
		env := strings.ToLower(strings.TrimSpace(config.Environment))
		ec := config.Environments[env]
		ec.FinancesAPI = url
		config.Environments[env] = ec
	}

	if path := os.Getenv("FINQA_FIXTURES"); path != "" {
		config.Fixtures.Path = path
	}

	if level := os.Getenv("FINQA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if rl := os.Getenv("FINQA_RATE_LIMIT"); rl != "" {
		if n, err := strconv.Atoi(rl); err == nil {
			config.Client.RateLimit = n
		}
	}

	if dir := os.Getenv("FINQA_RESULTS_DIR"); dir != "" {
		config.Results.Dir = dir
	}

	if v := os.Getenv("FINQA_TEST_RESULTS"); v != "" {
		config.Results.Enabled = v == "true" || v == "1"
	}

	if host := os.Getenv("FINQA_TWIN_HOST"); host != "" {
		config.Twin.Host = host
	}

	if port := os.Getenv("FINQA_TWIN_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Twin.Port = p
		}
	}

	if v := os.Getenv("FINQA_TWIN_JWT_SECRET"); v != "" {
		config.Twin.JWTSecret = v
	}
}

// BaseURL returns the Finances API base URL of the active environment.
func (c *Config) BaseURL() (string, error) {
	ec, ok := c.Environments[c.Environment]
	if !ok {
		return "", fmt.Errorf("unknown environment %q (configured: %s)", c.Environment, strings.Join(c.EnvironmentNames(), ", "))
	}
	if ec.FinancesAPI == "" {
		return "", fmt.Errorf("environment %q has no finances_api base URL", c.Environment)
	}
	return strings.TrimRight(ec.FinancesAPI, "/"), nil
}

// EnvironmentNames returns the configured environment names, sorted.
func (c *Config) EnvironmentNames() []string {
	names := make([]string, 0, len(c.Environments))
	for name := range c.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
