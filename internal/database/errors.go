// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package database

import (
	"errors"
	"io"
)

var (
	// ErrProfileNotFound is returned when no profile exists for an ID.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrScholarshipNotFound is returned when no scholarship exists for an ID.
	ErrScholarshipNotFound = errors.New("scholarship not found")
)

// closeQuietly closes a resource and explicitly ignores any error.
// Use in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
