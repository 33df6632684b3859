// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/scholarmach/scholarmach/internal/logging"
)

// RequestID attaches a unique ID to each request. An upstream
// X-Request-ID header is honored; otherwise a UUID is generated. The ID
// is echoed in the response header and propagated through the context
// for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
