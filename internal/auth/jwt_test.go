// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/scholarmach/scholarmach/internal/config"
)

func testSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		JWTSecret: strings.Repeat("k", 32),
		TokenTTL:  time.Hour,
	}
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	if _, err := NewJWTManager(&config.SecurityConfig{}); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	m, err := NewJWTManager(testSecurityConfig())
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	token, err := m.GenerateToken("student-1", "s1@example.org")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "student-1" {
		t.Errorf("subject = %q, want student-1", claims.Subject)
	}
	if claims.Email != "s1@example.org" {
		t.Errorf("email = %q, want s1@example.org", claims.Email)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m1, _ := NewJWTManager(testSecurityConfig())
	m2, _ := NewJWTManager(&config.SecurityConfig{
		JWTSecret: strings.Repeat("x", 32),
		TokenTTL:  time.Hour,
	})

	token, err := m1.GenerateToken("student-1", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := m2.ValidateToken(token); err == nil {
		t.Error("expected validation failure with wrong secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testSecurityConfig()
	cfg.TokenTTL = -time.Minute
	m, _ := NewJWTManager(cfg)

	token, err := m.GenerateToken("student-1", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := m.ValidateToken(token); err == nil {
		t.Error("expected validation failure for expired token")
	}
}

func TestValidateTokenRejectsNoneAlgorithm(t *testing.T) {
	m, _ := NewJWTManager(testSecurityConfig())

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "student-1"},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := m.ValidateToken(token); err == nil {
		t.Error("expected rejection of alg=none token")
	}
}

func TestValidateTokenRejectsEmptySubject(t *testing.T) {
	m, _ := NewJWTManager(testSecurityConfig())

	token, err := m.GenerateToken("", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := m.ValidateToken(token); err == nil {
		t.Error("expected rejection of token without subject")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m, _ := NewJWTManager(testSecurityConfig())

	if _, err := m.ValidateToken("not.a.token"); err == nil {
		t.Error("expected parse failure")
	}
}
