// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package recommend

import "strings"

// Static matching tables. These are immutable after process start; the
// engine only ever reads them. Country and field values in the catalog are
// free text, so matching is substring-based over lowercase synonym sets
// rather than exact equality.

// countrySynonyms maps a canonical lowercase country key to the spellings
// accepted for it. French spellings are included because a large share of
// the catalog is francophone.
var countrySynonyms = map[string][]string{
	"usa":     {"usa", "united states", "états-unis", "us", "america", "etats-unis"},
	"uk":      {"uk", "united kingdom", "royaume-uni", "grande-bretagne", "england", "britain"},
	"canada":  {"canada"},
	"germany": {"germany", "allemagne", "deutschland"},
	"france":  {"france"},
	"spain":   {"spain", "espagne", "españa"},
}

// languageTokens maps a profile language code to the uppercase tokens
// accepted in a scholarship's language field. Unknown codes map to an empty
// set, so any scholarship that does specify a language fails the check.
var languageTokens = map[string][]string{
	"en": {"EN", "ENGLISH", "ANGLAIS"},
	"fr": {"FR", "FRENCH", "FRANCAIS", "FRANÇAIS"},
	"es": {"ES", "SPANISH", "ESPAGNOL"},
	"de": {"DE", "GERMAN", "ALLEMAND"},
}

// compatibleLevels maps a profile education level to the scholarship levels
// considered eligible. A scholarship whose level is not in the mapped set is
// rejected outright; level is the one mandatory field of the filter.
var compatibleLevels = map[EducationLevel][]ScholarshipLevel{
	LevelHighSchool:    {ScholarshipLevelLicence},
	LevelUndergraduate: {ScholarshipLevelLicence},
	LevelMasters:       {ScholarshipLevelMaster},
	LevelPhD:           {ScholarshipLevelDoctorate},
	LevelPostdoc:       {ScholarshipLevelPostdoc},
}

// synonymsFor resolves a target country to its synonym set. Countries
// outside the known groups fall back to a singleton of their lowercase form,
// which keeps the substring match working for free-text values.
func synonymsFor(country string) []string {
	key := strings.ToLower(strings.TrimSpace(country))
	if key == "" {
		return nil
	}
	if syns, ok := countrySynonyms[key]; ok {
		return syns
	}
	return []string{key}
}

// tokensFor resolves a profile language code to its accepted token set.
func tokensFor(code string) []string {
	return languageTokens[strings.ToLower(strings.TrimSpace(code))]
}

// levelsFor resolves a profile education level to the compatible
// scholarship levels. Unknown levels yield nil, which rejects everything.
func levelsFor(level EducationLevel) []ScholarshipLevel {
	return compatibleLevels[level]
}

// containsFold reports whether haystack contains needle, case-insensitively.
// Both empty-needle and empty-haystack return false: an unset profile field
// never matches, per the conservative-degradation policy.
func containsFold(haystack, needle string) bool {
	if haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
