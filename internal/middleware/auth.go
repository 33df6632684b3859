// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/scholarmach/scholarmach/internal/auth"
	"github.com/scholarmach/scholarmach/internal/logging"
	"github.com/scholarmach/scholarmach/internal/models"
)

type contextKey string

const profileIDKey contextKey = "profile_id"

// ProfileIDFromContext returns the authenticated profile ID, or the
// empty string when the request is unauthenticated.
func ProfileIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(profileIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithProfileID returns a context carrying the profile ID.
// Exported for handler tests.
func ContextWithProfileID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, profileIDKey, id)
}

// Authenticate validates the bearer token and stores the token subject
// as the profile ID in the request context. Requests without a valid
// token receive a 401 with the standard error envelope.
func Authenticate(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, r, "Missing bearer token")
				return
			}

			claims, err := jwtManager.ValidateToken(token)
			if err != nil {
				logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
				unauthorized(w, r, "Invalid or expired token")
				return
			}

			ctx := ContextWithProfileID(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	resp := models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    "AUTHENTICATION_ERROR",
			Message: message,
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode error response")
	}
}
