// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

// Package main is the entry point for the Scholarmach server.
//
// Scholarmach is a self-hosted scholarship discovery platform. It keeps
// a catalog of scholarships in DuckDB, lets students maintain a profile
// of their academic background and preferences, and ranks the catalog
// against that profile with a blended heuristic and rule-based scorer.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, SCHOLARMACH_* env (Koanf v2)
//  2. Logging: zerolog, JSON or console format
//  3. Database: DuckDB catalog and profile storage
//  4. Recommendation engine: scoring weights from configuration
//  5. Authentication: JWT bearer tokens (HS256)
//  6. HTTP server: chi REST API under /api/v1
//  7. Supervisor tree: suture-managed HTTP server and deadline sweeper
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - SCHOLARMACH_* environment variables
//   - Config file (config.yaml, or SCHOLARMACH_CONFIG)
//   - Built-in defaults
//
// Production deployments must set:
//   - SCHOLARMACH_SECURITY_JWT_SECRET: 32+ character signing secret
//   - SCHOLARMACH_SERVER_ENVIRONMENT=production
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, waits for in-flight requests (10s timeout),
// then closes the database.
//
// # Example Usage
//
// Development with a demo catalog:
//
//	export SCHOLARMACH_DATABASE_PATH=./scholarmach.duckdb
//	export SCHOLARMACH_DATABASE_SEED_DEMO_DATA=true
//	./scholarmach
//
// Production:
//
//	export SCHOLARMACH_SERVER_ENVIRONMENT=production
//	export SCHOLARMACH_SECURITY_JWT_SECRET=$(openssl rand -base64 32)
//	export SCHOLARMACH_DATABASE_PATH=/data/scholarmach.duckdb
//	./scholarmach
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/scholarmach/scholarmach/internal/api"
	"github.com/scholarmach/scholarmach/internal/auth"
	"github.com/scholarmach/scholarmach/internal/config"
	"github.com/scholarmach/scholarmach/internal/database"
	"github.com/scholarmach/scholarmach/internal/logging"
	"github.com/scholarmach/scholarmach/internal/recommend"
	"github.com/scholarmach/scholarmach/internal/supervisor"
	"github.com/scholarmach/scholarmach/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Msg("Starting Scholarmach")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	if cfg.Database.SeedDemoData {
		n, err := db.SeedDemoData(context.Background())
		if err != nil {
			if closeErr := db.Close(); closeErr != nil {
				logging.Error().Err(closeErr).Msg("Error closing database")
			}
			logging.Fatal().Err(err).Msg("Failed to seed demo data")
		}
		if n > 0 {
			logging.Info().Int("scholarships", n).Msg("Seeded demo catalog")
		}
	}

	engine, err := recommend.NewEngine(matchingConfig(cfg), logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		if cfg.Server.Environment == "production" {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT authentication")
		}
		// Development fallback so the server can start without a
		// configured secret. Tokens do not survive restarts.
		logging.Warn().Err(err).Msg("Using an ephemeral JWT secret; set SCHOLARMACH_SECURITY_JWT_SECRET")
		devCfg := cfg.Security
		devCfg.JWTSecret = uuid.NewString() + uuid.NewString()
		jwtManager, err = auth.NewJWTManager(&devCfg)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT authentication")
		}
	}

	handlers := api.NewHandlers(db, engine, cfg)
	router := api.NewRouter(handlers, jwtManager, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Bridge zerolog to slog for sutureslog event logging.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	if cfg.Database.ExpiryInterval > 0 {
		tree.AddDataService(services.NewExpiryService(db, cfg.Database.ExpiryInterval))
		logging.Info().Dur("interval", cfg.Database.ExpiryInterval).Msg("Deadline expiry sweeper added")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// matchingConfig applies the configured overrides onto the default
// scoring weights. Individual boost weights are not exposed through the
// configuration; only the blend and the result cap are tunable.
func matchingConfig(cfg *config.Config) *recommend.Config {
	rc := recommend.DefaultConfig()
	if cfg.Matching.MaxResults > 0 {
		rc.Limits.MaxResults = cfg.Matching.MaxResults
	}
	if cfg.Matching.HeuristicWeight > 0 || cfg.Matching.RulesWeight > 0 {
		rc.Blend.Heuristic = cfg.Matching.HeuristicWeight
		rc.Blend.Rules = cfg.Matching.RulesWeight
	}
	return rc
}
