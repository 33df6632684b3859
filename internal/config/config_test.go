// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(*Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "bad environment",
			mutate:  func(c *Config) { c.Server.Environment = "staging" },
			wantErr: "server.environment",
		},
		{
			name:    "production requires jwt secret",
			mutate:  func(c *Config) { c.Server.Environment = "production" },
			wantErr: "jwt_secret",
		},
		{
			name: "production with strong secret passes",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.Security.JWTSecret = strings.Repeat("s", 32)
			},
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "database.path",
		},
		{
			name:    "negative expiry interval",
			mutate:  func(c *Config) { c.Database.ExpiryInterval = -time.Minute },
			wantErr: "expiry_interval",
		},
		{
			name:    "zero token ttl",
			mutate:  func(c *Config) { c.Security.TokenTTL = 0 },
			wantErr: "token_ttl",
		},
		{
			name: "page size above max",
			mutate: func(c *Config) {
				c.API.DefaultPageSize = 500
			},
			wantErr: "default_page_size",
		},
		{
			name: "blend weights both zero",
			mutate: func(c *Config) {
				c.Matching.HeuristicWeight = 0
				c.Matching.RulesWeight = 0
			},
			wantErr: "blend weights",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Matching.MaxResults != 10 {
		t.Errorf("max results = %d, want 10", cfg.Matching.MaxResults)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SCHOLARMACH_SERVER_PORT", "9090")
	t.Setenv("SCHOLARMACH_LOGGING_LEVEL", "debug")
	t.Setenv("SCHOLARMACH_SECURITY_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("cors origins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 4000\n  timeout: 10s\nmatching:\n  max_results: 5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("port = %d, want 4000", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 10*time.Second {
		t.Errorf("timeout = %s, want 10s", cfg.Server.Timeout)
	}
	if cfg.Matching.MaxResults != 5 {
		t.Errorf("max results = %d, want 5", cfg.Matching.MaxResults)
	}
}

func TestEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 4000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SCHOLARMACH_SERVER_PORT", "5000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("port = %d, want 5000 (env must beat file)", cfg.Server.Port)
	}
}

func TestEnvTransformSkipsUnknown(t *testing.T) {
	if got := envTransform("SCHOLARMACH_BOGUS_KEY"); got != "" {
		t.Errorf("expected unmapped key to be skipped, got %q", got)
	}
	if got := envTransform("SCHOLARMACH_SERVER_PORT"); got != "server.port" {
		t.Errorf("transform = %q, want server.port", got)
	}
	if got := envTransform("SCHOLARMACH_SECURITY_JWT_SECRET"); got != "security.jwt_secret" {
		t.Errorf("transform = %q, want security.jwt_secret", got)
	}
}
