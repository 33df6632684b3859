// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scholarmach/scholarmach/internal/auth"
	"github.com/scholarmach/scholarmach/internal/config"
	"github.com/scholarmach/scholarmach/internal/middleware"
)

// Router wires handlers and middleware into the HTTP surface.
type Router struct {
	handlers   *Handlers
	jwtManager *auth.JWTManager
	cfg        *config.Config
}

// NewRouter creates a router for the given dependencies.
func NewRouter(handlers *Handlers, jwtManager *auth.JWTManager, cfg *config.Config) *Router {
	return &Router{
		handlers:   handlers,
		jwtManager: jwtManager,
		cfg:        cfg,
	}
}

// Setup builds the chi route tree.
//
// Health endpoints get a permissive rate limit for monitoring; data
// endpoints get the configured per-client limit and require a bearer
// token. CORS is global so OPTIONS preflights work everywhere.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   router.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(1000, router.cfg.Security.RateLimitWindow))
		r.Get("/", router.handlers.Health)
		r.Get("/live", router.handlers.HealthLive)
		r.Get("/ready", router.handlers.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(router.cfg.Security.RateLimitReqs, router.cfg.Security.RateLimitWindow))
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Authenticate(router.jwtManager))

		r.Get("/recommendations", router.handlers.Recommendations)

		r.Get("/scholarships", router.handlers.Scholarships)
		r.Post("/scholarships", router.handlers.ScholarshipCreate)
		r.Get("/scholarships/{id}", router.handlers.ScholarshipByID)

		r.Get("/profile", router.handlers.ProfileGet)
		r.Put("/profile", router.handlers.ProfilePut)
	})

	return r
}
