// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scholarmach/scholarmach/internal/auth"
	"github.com/scholarmach/scholarmach/internal/config"
	"github.com/scholarmach/scholarmach/internal/recommend"
)

func newTestRouter(t *testing.T, store *mockStore) (http.Handler, *auth.JWTManager) {
	t.Helper()

	cfg := config.Default()
	cfg.Security.JWTSecret = "test-secret-that-is-long-enough-0123456789"

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	return NewRouter(newTestHandlers(t, store), jwtManager, cfg).Setup(), jwtManager
}

func TestRouterHealthIsUnauthenticated(t *testing.T) {
	router, _ := newTestRouter(t, &mockStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID response header")
	}
}

func TestRouterRejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter(t, &mockStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "AUTHENTICATION_ERROR") {
		t.Errorf("body = %s, want AUTHENTICATION_ERROR", rec.Body.String())
	}
}

func TestRouterAuthenticatedRecommendations(t *testing.T) {
	store := &mockStore{
		getProfileFn: func(_ context.Context, id string) (*recommend.Profile, error) {
			return &recommend.Profile{ID: id, EducationLevel: recommend.LevelMasters}, nil
		},
	}
	router, jwtManager := newTestRouter(t, store)

	token, err := jwtManager.GenerateToken("student-7", "student@example.org")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
}

func TestRouterScholarshipByIDRoute(t *testing.T) {
	store := &mockStore{
		getScholarshipFn: func(_ context.Context, id string) (*recommend.Scholarship, error) {
			return &recommend.Scholarship{ID: id, Title: "Routed Award", Active: true, Validated: true}, nil
		},
	}
	router, jwtManager := newTestRouter(t, store)

	token, err := jwtManager.GenerateToken("student-7", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scholarships/abc-123", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Routed Award") {
		t.Errorf("body = %s, want the routed record", rec.Body.String())
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &mockStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
