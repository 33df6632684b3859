// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/scholarmach/scholarmach/internal/database"
	"github.com/scholarmach/scholarmach/internal/middleware"
	"github.com/scholarmach/scholarmach/internal/models"
	"github.com/scholarmach/scholarmach/internal/recommend"
)

// profileRequest is the PUT /profile payload. Every scoring field is
// optional; missing values stay unset and degrade to engine defaults.
type profileRequest struct {
	OriginCountry     string   `json:"origin_country" validate:"max=100"`
	TargetCountry     string   `json:"target_country" validate:"max=100"`
	FieldOfStudy      string   `json:"field_of_study" validate:"max=200"`
	EducationLevel    string   `json:"education_level" validate:"omitempty,oneof=high_school undergraduate masters phd postdoc"`
	GPA               *float64 `json:"gpa" validate:"omitempty,gte=0"`
	ScholarshipType   string   `json:"scholarship_type" validate:"omitempty,oneof=full partial travel research merit need_based"`
	FinanceType       string   `json:"finance_type" validate:"max=100"`
	PreferredLanguage string   `json:"preferred_language" validate:"max=20"`
	Age               *int     `json:"age" validate:"omitempty,gte=0,lte=120"`
}

// ProfileGet returns the authenticated student's profile.
func (h *Handlers) ProfileGet(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	profileID := middleware.ProfileIDFromContext(r.Context())
	if profileID == "" {
		respondError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "Not authenticated", nil)
		return
	}

	p, err := h.store.GetProfile(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, database.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found. Please complete your profile first.", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load profile", err)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}

// ProfilePut creates or replaces the authenticated student's profile.
func (h *Handlers) ProfilePut(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	profileID := middleware.ProfileIDFromContext(r.Context())
	if profileID == "" {
		respondError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "Not authenticated", nil)
		return
	}

	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error:    validationError(err),
		})
		return
	}

	p := recommend.Profile{
		ID:                profileID,
		OriginCountry:     req.OriginCountry,
		TargetCountry:     req.TargetCountry,
		FieldOfStudy:      req.FieldOfStudy,
		EducationLevel:    recommend.EducationLevel(req.EducationLevel),
		GPA:               req.GPA,
		ScholarshipType:   recommend.ScholarshipType(req.ScholarshipType),
		FinanceType:       req.FinanceType,
		PreferredLanguage: req.PreferredLanguage,
		Age:               req.Age,
	}

	if err := h.store.UpsertProfile(r.Context(), &p); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to store profile", err)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}
