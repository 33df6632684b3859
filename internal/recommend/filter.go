// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package recommend

import "strings"

// The eligibility filter removes scholarships that are categorically
// incompatible with the profile before any scoring happens. Categorical
// mismatches (wrong degree level, wrong country, wrong language) disqualify;
// they are never merely score-reducing. A scored result must not be
// numerically high yet categorically wrong.

// filterEligible returns the candidates passing all three eligibility
// checks, preserving input order. Inactive and unvalidated records are
// dropped first; the storage layer already filters on those flags, but the
// engine re-asserts them rather than trusting every caller.
func filterEligible(p *Profile, candidates []Scholarship) []Scholarship {
	levels := levelsFor(p.EducationLevel)
	synonyms := synonymsFor(p.TargetCountry)
	tokens := tokensFor(preferredLanguage(p))

	filtered := make([]Scholarship, 0, len(candidates))
	for i := range candidates {
		s := &candidates[i]
		if !s.Active || !s.Validated {
			continue
		}
		if !levelEligible(s, levels) {
			continue
		}
		if !countryEligible(s, p.TargetCountry, synonyms) {
			continue
		}
		if !languageEligible(s, tokens) {
			continue
		}
		filtered = append(filtered, *s)
	}
	return filtered
}

// levelEligible checks the scholarship level against the compatible set.
// Level is mandatory: a scholarship with no level recorded is rejected.
func levelEligible(s *Scholarship, levels []ScholarshipLevel) bool {
	for _, l := range levels {
		if s.Level == l {
			return true
		}
	}
	return false
}

// countryEligible passes when the profile names no target country, or any
// synonym appears as a substring of the scholarship's country field or of
// any entry in its target-countries list. Substring matching tolerates the
// free-text country values in the catalog.
func countryEligible(s *Scholarship, targetCountry string, synonyms []string) bool {
	if strings.TrimSpace(targetCountry) == "" {
		return true
	}

	country := strings.ToLower(s.Country)
	for _, syn := range synonyms {
		if country != "" && strings.Contains(country, syn) {
			return true
		}
	}
	for _, tc := range s.TargetCountries {
		tc = strings.ToLower(tc)
		for _, syn := range synonyms {
			if strings.Contains(tc, syn) {
				return true
			}
		}
	}
	return false
}

// languageEligible passes when the scholarship has no language recorded
// (language-agnostic), or its language field contains any accepted token.
// With an unknown profile language the token set is empty, so any
// scholarship that does specify a language fails.
func languageEligible(s *Scholarship, tokens []string) bool {
	lang := strings.TrimSpace(s.Language)
	if lang == "" {
		return true
	}
	upper := strings.ToUpper(lang)
	for _, tok := range tokens {
		if strings.Contains(upper, tok) {
			return true
		}
	}
	return false
}

// preferredLanguage returns the profile's language code, defaulting to "en".
func preferredLanguage(p *Profile) string {
	if strings.TrimSpace(p.PreferredLanguage) == "" {
		return defaultLanguage
	}
	return p.PreferredLanguage
}
