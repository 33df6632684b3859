// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/scholarmach/scholarmach/internal/auth"
	"github.com/scholarmach/scholarmach/internal/config"
	"github.com/scholarmach/scholarmach/internal/logging"
)

func testJWTManager(t *testing.T) *auth.JWTManager {
	t.Helper()
	m, err := auth.NewJWTManager(&config.SecurityConfig{
		JWTSecret: strings.Repeat("k", 32),
		TokenTTL:  time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	return m
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	var captured string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = logging.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if captured == "" {
		t.Error("expected request ID in context")
	}
	if rec.Header().Get("X-Request-ID") != captured {
		t.Errorf("header = %q, context = %q", rec.Header().Get("X-Request-ID"), captured)
	}
}

func TestRequestIDHonorsUpstreamHeader(t *testing.T) {
	var captured string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = logging.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if captured != "upstream-42" {
		t.Errorf("request ID = %q, want upstream-42", captured)
	}
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	handler := Authenticate(testJWTManager(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "AUTHENTICATION_ERROR") {
		t.Errorf("body = %s, want AUTHENTICATION_ERROR envelope", rec.Body.String())
	}
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	handler := Authenticate(testJWTManager(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticatePassesSubject(t *testing.T) {
	m := testJWTManager(t)
	token, err := m.GenerateToken("student-7", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotID string
	handler := Authenticate(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ProfileIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotID != "student-7" {
		t.Errorf("profile ID = %q, want student-7", gotID)
	}
}

func TestPrometheusMetricsPreservesStatus(t *testing.T) {
	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}
