// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package recommend

// Default-substitution helpers. Missing numeric fields degrade to
// defaults rather than erroring: unknown is scored as neutral or
// non-matching.

const (
	defaultMaxAge = 100

	defaultFinanceType = "complète"
	defaultLanguage    = "en"
)

// floatOr returns *p, or def when p is nil.
func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// intOr returns *p, or def when p is nil.
func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// ageWindow returns the scholarship's applicant-age bounds with defaults
// applied: no minimum means 0, no maximum means 100.
func ageWindow(s *Scholarship) (minAge, maxAge int) {
	return intOr(s.MinAge, 0), intOr(s.MaxAge, defaultMaxAge)
}

// outsideAgeWindow reports whether the profile age misses the window.
// A nil profile age is scored as 0, which fails any window with a positive
// minimum and passes open-ended windows.
func outsideAgeWindow(p *Profile, s *Scholarship) bool {
	age := intOr(p.Age, 0)
	minAge, maxAge := ageWindow(s)
	return age < minAge || age > maxAge
}
