// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

// Package api provides the HTTP boundary of Scholarmach: chi routing,
// request validation, and the JSON response envelope.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/scholarmach/scholarmach/internal/config"
	"github.com/scholarmach/scholarmach/internal/database"
	"github.com/scholarmach/scholarmach/internal/models"
	"github.com/scholarmach/scholarmach/internal/recommend"
)

// Version is the application version reported by the health endpoint.
// Overridden at build time via -ldflags.
var Version = "dev"

// Store is the persistence surface the handlers depend on.
// *database.DB satisfies it; tests substitute a hand-written mock.
type Store interface {
	Ping(ctx context.Context) error
	GetProfile(ctx context.Context, id string) (*recommend.Profile, error)
	UpsertProfile(ctx context.Context, p *recommend.Profile) error
	ListEligible(ctx context.Context) ([]recommend.Scholarship, error)
	ListScholarships(ctx context.Context, limit, offset int) ([]recommend.Scholarship, error)
	GetScholarship(ctx context.Context, id string) (*recommend.Scholarship, error)
	InsertScholarship(ctx context.Context, s *recommend.Scholarship) error
}

// Matcher is the recommendation surface the handlers depend on.
type Matcher interface {
	Recommend(ctx context.Context, p recommend.Profile, candidates []recommend.Scholarship) *recommend.Response
}

// Handlers carries the dependencies of all HTTP handlers.
type Handlers struct {
	store    Store
	engine   Matcher
	cfg      *config.Config
	validate *validator.Validate
}

// NewHandlers creates the handler set.
func NewHandlers(store Store, engine Matcher, cfg *config.Config) *Handlers {
	return &Handlers{
		store:    store,
		engine:   engine,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// Health reports overall service health including database reachability.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	dbStatus := "ok"
	status := "healthy"
	code := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		dbStatus = "unreachable"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	respondSuccess(w, code, models.HealthStatus{
		Status:    status,
		Version:   Version,
		Database:  dbStatus,
		Timestamp: time.Now().UTC(),
	}, started)
}

// HealthLive is the liveness probe: the process is up.
func (h *Handlers) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady is the readiness probe: the database answers.
func (h *Handlers) HealthReady(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "DATABASE_ERROR", "Database not ready", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"}, started)
}

// scholarshipRequest is the POST /scholarships payload.
type scholarshipRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=300"`
	Description     string   `json:"description" validate:"max=5000"`
	Country         string   `json:"country" validate:"max=100"`
	TargetCountries []string `json:"target_countries" validate:"max=20,dive,max=100"`
	FieldOfStudy    string   `json:"field_of_study" validate:"max=200"`
	Level           string   `json:"level" validate:"omitempty,oneof=LICENCE MASTER DOCTORAT POSTDOC AUTRE"`
	Type            string   `json:"type" validate:"omitempty,oneof=full partial travel research merit need_based"`
	FinanceType     string   `json:"finance_type" validate:"max=100"`
	Language        string   `json:"language" validate:"max=100"`
	Amount          *float64 `json:"amount" validate:"omitempty,gte=0"`
	Currency        string   `json:"currency" validate:"max=10"`
	MinGPA          *float64 `json:"min_gpa" validate:"omitempty,gte=0"`
	MinAge          *int     `json:"min_age" validate:"omitempty,gte=0,lte=120"`
	MaxAge          *int     `json:"max_age" validate:"omitempty,gte=0,lte=120"`
	Deadline        *string  `json:"deadline"`
	ApplicationLink string   `json:"application_link" validate:"omitempty,url,max=500"`
	Active          bool     `json:"active"`
	Validated       bool     `json:"validated"`
}

// Scholarships lists the publishable catalog with paging.
func (h *Handlers) Scholarships(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	limit := getIntParam(r, "limit", h.cfg.API.DefaultPageSize)
	offset := getIntParam(r, "offset", 0)
	if limit < 1 || limit > h.cfg.API.MaxPageSize {
		limit = h.cfg.API.DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.store.ListScholarships(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list scholarships", err)
		return
	}
	if list == nil {
		list = []recommend.Scholarship{}
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"scholarships": list,
		"count":        len(list),
		"limit":        limit,
		"offset":       offset,
	}, started)
}

// ScholarshipByID returns a single catalog record.
func (h *Handlers) ScholarshipByID(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	id := pathParam(r, "id")
	s, err := h.store.GetScholarship(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrScholarshipNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Scholarship not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to get scholarship", err)
		return
	}

	respondSuccess(w, http.StatusOK, s, started)
}

// ScholarshipCreate validates and stores a new catalog record.
func (h *Handlers) ScholarshipCreate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req scholarshipRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		apiErr := validationError(err)
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error:    apiErr,
		})
		return
	}

	s := recommend.Scholarship{
		Title:           req.Title,
		Description:     req.Description,
		Country:         req.Country,
		TargetCountries: req.TargetCountries,
		FieldOfStudy:    req.FieldOfStudy,
		Level:           recommend.ScholarshipLevel(req.Level),
		Type:            recommend.ScholarshipType(req.Type),
		FinanceType:     req.FinanceType,
		Language:        req.Language,
		Amount:          req.Amount,
		Currency:        req.Currency,
		MinGPA:          req.MinGPA,
		MinAge:          req.MinAge,
		MaxAge:          req.MaxAge,
		ApplicationLink: req.ApplicationLink,
		Active:          req.Active,
		Validated:       req.Validated,
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "deadline must be RFC 3339", nil)
			return
		}
		s.Deadline = &deadline
	}

	if err := h.store.InsertScholarship(r.Context(), &s); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to store scholarship", err)
		return
	}

	respondSuccess(w, http.StatusCreated, s, started)
}
