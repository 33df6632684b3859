// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

// Package config loads and validates the application configuration.
//
// Configuration is layered with koanf: built-in defaults first, then an
// optional YAML file, then environment variables. Precedence is
// ENV > file > defaults.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	API      APIConfig      `koanf:"api"`
	Matching MatchingConfig `koanf:"matching"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8080
	Port int `koanf:"port"`

	// Timeout is the read/write timeout for HTTP requests.
	// Default: 30s
	Timeout time.Duration `koanf:"timeout"`

	// Environment is "development" or "production". Production enforces
	// stricter validation (a JWT secret is mandatory).
	// Default: development
	Environment string `koanf:"environment"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the DuckDB database file. Default: /data/scholarmach.duckdb
	Path string `koanf:"path"`

	// MaxMemory is the DuckDB memory limit. Default: 1GB
	MaxMemory string `koanf:"max_memory"`

	// Threads is the DuckDB thread count. 0 uses all cores.
	Threads int `koanf:"threads"`

	// SeedDemoData inserts a demo scholarship catalog on first start.
	// Default: false
	SeedDemoData bool `koanf:"seed_demo_data"`

	// ExpiryInterval is how often past-deadline scholarships are
	// deactivated. Default: 1h
	ExpiryInterval time.Duration `koanf:"expiry_interval"`
}

// SecurityConfig holds authentication and rate-limit settings.
type SecurityConfig struct {
	// JWTSecret signs and verifies bearer tokens (HS256).
	// Mandatory in production.
	JWTSecret string `koanf:"jwt_secret"`

	// TokenTTL is the lifetime of issued tokens. Default: 24h
	TokenTTL time.Duration `koanf:"token_ttl"`

	// RateLimitReqs is the allowed requests per window per client.
	// Default: 100
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate-limit window. Default: 1m
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// CORSOrigins lists allowed CORS origins. Default: ["*"]
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level. Default: info
	Level string `koanf:"level"`

	// Format is json or console. Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line in log output.
	Caller bool `koanf:"caller"`
}

// APIConfig holds API result-shaping settings.
type APIConfig struct {
	// DefaultPageSize for list endpoints. Default: 20
	DefaultPageSize int `koanf:"default_page_size"`

	// MaxPageSize for list endpoints. Default: 100
	MaxPageSize int `koanf:"max_page_size"`
}

// MatchingConfig holds recommendation engine overrides.
type MatchingConfig struct {
	// MaxResults is the maximum number of recommendations returned.
	// Default: 10
	MaxResults int `koanf:"max_results"`

	// HeuristicWeight is the blend weight of the heuristic scorer.
	// Default: 0.7
	HeuristicWeight float64 `koanf:"heuristic_weight"`

	// RulesWeight is the blend weight of the rule-based scorer.
	// Default: 0.3
	RulesWeight float64 `koanf:"rules_weight"`
}

// Default returns a Config populated with all default values.
// Defaults are applied first, then overridden by file and env layers.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:           "/data/scholarmach.duckdb",
			MaxMemory:      "1GB",
			Threads:        0,
			SeedDemoData:   false,
			ExpiryInterval: time.Hour,
		},
		Security: SecurityConfig{
			JWTSecret:       "",
			TokenTTL:        24 * time.Hour,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Matching: MatchingConfig{
			MaxResults:      10,
			HeuristicWeight: 0.7,
			RulesWeight:     0.3,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.Environment != "development" && c.Server.Environment != "production" {
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.ExpiryInterval < 0 {
		return fmt.Errorf("database.expiry_interval must not be negative, got %s", c.Database.ExpiryInterval)
	}
	if c.Server.Environment == "production" && len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters in production")
	}
	if c.Security.TokenTTL <= 0 {
		return fmt.Errorf("security.token_ttl must be positive, got %s", c.Security.TokenTTL)
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("api.default_page_size must be in [1, max_page_size], got %d", c.API.DefaultPageSize)
	}
	if c.Matching.MaxResults < 1 {
		return fmt.Errorf("matching.max_results must be positive, got %d", c.Matching.MaxResults)
	}
	if c.Matching.HeuristicWeight < 0 || c.Matching.RulesWeight < 0 {
		return fmt.Errorf("matching blend weights must be non-negative")
	}
	if c.Matching.HeuristicWeight+c.Matching.RulesWeight == 0 {
		return fmt.Errorf("matching blend weights must not both be zero")
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
