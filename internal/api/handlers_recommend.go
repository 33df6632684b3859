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
	"github.com/scholarmach/scholarmach/internal/logging"
	"github.com/scholarmach/scholarmach/internal/metrics"
	"github.com/scholarmach/scholarmach/internal/middleware"
)

// Recommendations resolves the authenticated student's profile, loads
// the eligible catalog, and returns the scored recommendation list.
// A missing profile maps to 404; scoring itself never fails.
func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	profileID := middleware.ProfileIDFromContext(r.Context())
	if profileID == "" {
		respondError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "Not authenticated", nil)
		return
	}

	profile, err := h.store.GetProfile(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, database.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found. Please complete your profile first.", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load profile", err)
		return
	}

	candidates, err := h.store.ListEligible(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load scholarships", err)
		return
	}

	matchStart := time.Now()
	result := h.engine.Recommend(r.Context(), *profile, candidates)
	metrics.RecordMatch(result.Outcome.String(), result.TotalCandidates, time.Since(matchStart))

	logging.Ctx(r.Context()).Info().
		Str("profile_id", profileID).
		Str("outcome", result.Outcome.String()).
		Int("total_candidates", result.TotalCandidates).
		Int("filtered_candidates", result.FilteredCandidates).
		Int("recommendations", result.Count).
		Msg("Recommendations computed")

	respondSuccess(w, http.StatusOK, result, started)
}
