// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

// Package models holds the shared wire types of the HTTP API.
package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. Status is "success" or "error"; Error is populated only on
// error responses.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"count": 5, "recommendations": [...]},
//	  "metadata": {"timestamp": "2026-09-01T12:00:00Z", "query_time_ms": 12}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
// QueryTimeMS is the server-side handling time in milliseconds.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError carries structured error details.
//
// Common codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - DATABASE_ERROR: query execution failure
//   - AUTHENTICATION_ERROR: invalid or missing credentials
//   - NOT_FOUND: resource does not exist
//   - INTERNAL_ERROR: unexpected server failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}
