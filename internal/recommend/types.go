// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package recommend

import "time"

// EducationLevel is a profile-side education level.
// Values mirror the profile form; anything else is treated as unknown,
// which yields an empty compatible-level set and an empty filtered set.
type EducationLevel string

const (
	LevelHighSchool    EducationLevel = "high_school"
	LevelUndergraduate EducationLevel = "undergraduate"
	LevelMasters       EducationLevel = "masters"
	LevelPhD           EducationLevel = "phd"
	LevelPostdoc       EducationLevel = "postdoc"
	LevelUnknown       EducationLevel = ""
)

// Known reports whether the level is one of the closed profile values.
func (l EducationLevel) Known() bool {
	switch l {
	case LevelHighSchool, LevelUndergraduate, LevelMasters, LevelPhD, LevelPostdoc:
		return true
	default:
		return false
	}
}

// ScholarshipLevel is a scholarship-side education level. The catalog uses a
// distinct enumeration from the profile side; the two are bridged by the
// compatibility table in tables.go.
type ScholarshipLevel string

const (
	ScholarshipLevelLicence   ScholarshipLevel = "LICENCE"
	ScholarshipLevelMaster    ScholarshipLevel = "MASTER"
	ScholarshipLevelDoctorate ScholarshipLevel = "DOCTORAT"
	ScholarshipLevelPostdoc   ScholarshipLevel = "POSTDOC"
	ScholarshipLevelOther     ScholarshipLevel = "AUTRE"
	ScholarshipLevelUnknown   ScholarshipLevel = ""
)

// ScholarshipType classifies a scholarship or a profile preference.
type ScholarshipType string

const (
	TypeFull      ScholarshipType = "full"
	TypePartial   ScholarshipType = "partial"
	TypeTravel    ScholarshipType = "travel"
	TypeResearch  ScholarshipType = "research"
	TypeMerit     ScholarshipType = "merit"
	TypeNeedBased ScholarshipType = "need_based"
	TypeUnknown   ScholarshipType = ""
)

// Profile is the user-supplied academic and demographic record used to
// personalize recommendations. Every scoring field is optional; missing
// values degrade to neutral defaults and never produce an error.
type Profile struct {
	// ID identifies the profile. Identity validation is the boundary's
	// responsibility; the engine assumes it is given a valid profile.
	ID string `json:"id"`

	// OriginCountry is the applicant's country of origin.
	OriginCountry string `json:"origin_country,omitempty"`

	// TargetCountry is where the applicant wants to study.
	// Resolved to a synonym set for the eligibility filter.
	TargetCountry string `json:"target_country,omitempty"`

	// FieldOfStudy is the applicant's academic discipline, free text.
	FieldOfStudy string `json:"field_of_study,omitempty"`

	// EducationLevel is the applicant's current level.
	EducationLevel EducationLevel `json:"education_level,omitempty"`

	// GPA is the academic standing on the applicant's grading scale.
	// Nil is scored as zero.
	GPA *float64 `json:"gpa,omitempty"`

	// ScholarshipType is the preferred scholarship category.
	ScholarshipType ScholarshipType `json:"scholarship_type,omitempty"`

	// FinanceType is the preferred financing arrangement, free text.
	FinanceType string `json:"finance_type,omitempty"`

	// PreferredLanguage is an ISO-like language code. Defaults to "en".
	PreferredLanguage string `json:"preferred_language,omitempty"`

	// Age in years. Nil is scored as zero.
	Age *int `json:"age,omitempty"`
}

// Scholarship is one catalog record considered for recommendation.
// Only active and validated records are eligible; the engine re-asserts
// both flags even though the storage layer already filters on them.
type Scholarship struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// Country is the single free-text host-country field.
	Country string `json:"country,omitempty"`

	// TargetCountries lists additional host countries for multi-country
	// programs. Matched with the same synonym expansion as Country.
	TargetCountries []string `json:"target_countries,omitempty"`

	FieldOfStudy string           `json:"field_of_study,omitempty"`
	Level        ScholarshipLevel `json:"level,omitempty"`

	// Amount is the funding amount in Currency. Nil is scored as zero.
	Amount   *float64 `json:"amount,omitempty"`
	Currency string   `json:"currency,omitempty"`

	Type        ScholarshipType `json:"type,omitempty"`
	FinanceType string          `json:"finance_type,omitempty"`

	// Language is the instruction/application language. Empty means
	// language-agnostic and always passes the language check.
	Language string `json:"language,omitempty"`

	// MinGPA is the minimum academic standing required. Nil means none.
	MinGPA *float64 `json:"min_gpa,omitempty"`

	// MinAge and MaxAge bound applicant age. Nil defaults to 0 and 100.
	MinAge *int `json:"min_age,omitempty"`
	MaxAge *int `json:"max_age,omitempty"`

	Deadline        *time.Time `json:"deadline,omitempty"`
	ApplicationLink string     `json:"application_link,omitempty"`

	Active    bool `json:"active"`
	Validated bool `json:"validated"`
}

// Recommendation is a scholarship with its final match score attached.
type Recommendation struct {
	Scholarship

	// Score is the blended match score, rounded to 2 decimal places.
	// In the limited-results branch the score is a synthetic placeholder
	// (1.0, 0.9, 0.8), not a normalized blend.
	Score float64 `json:"score"`
}

// Outcome is the terminal state of one engine invocation. The four values
// are mutually exclusive and each carries a distinct response shape.
type Outcome int

const (
	// OutcomeNoCandidates means the caller supplied no eligible records.
	OutcomeNoCandidates Outcome = iota
	// OutcomeFilterEmpty means no record survived the eligibility filter.
	OutcomeFilterEmpty
	// OutcomeLimited means 1-3 records survived; scores are synthetic.
	OutcomeLimited
	// OutcomeFullRanking means >=4 records were scored and blended.
	OutcomeFullRanking
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoCandidates:
		return "no-candidates"
	case OutcomeFilterEmpty:
		return "filter-empty"
	case OutcomeLimited:
		return "limited-results"
	case OutcomeFullRanking:
		return "full-ranking"
	default:
		return "unknown"
	}
}

// ProfileEcho is the normalized view of the profile fields the scorers
// actually used. Returned for debugging and display; not part of the
// scoring contract.
type ProfileEcho struct {
	Age               int    `json:"age"`
	OriginCountry     string `json:"origin_country"`
	TargetCountry     string `json:"target_country"`
	FieldOfStudy      string `json:"field_of_study"`
	EducationLevel    string `json:"education_level"`
	GPA               float64 `json:"gpa"`
	ScholarshipType   string `json:"scholarship_type"`
	FinanceType       string `json:"finance_type"`
	PreferredLanguage string `json:"preferred_language"`
}

// Response is the result of one engine invocation.
type Response struct {
	// Recommendations is ordered by descending score, ties preserving
	// filtered-set order. At most Config.Limits.MaxResults entries.
	Recommendations []Recommendation `json:"recommendations"`

	// Count is len(Recommendations), echoed for the API envelope.
	Count int `json:"count"`

	// Message explains the no-candidates, filter-empty and
	// limited-results outcomes to the end user. Empty for full rankings.
	Message string `json:"message,omitempty"`

	// Profile echoes the normalized scoring inputs.
	Profile ProfileEcho `json:"profile"`

	// Outcome is the terminal state of this invocation.
	Outcome Outcome `json:"-"`

	// TotalCandidates is the number of records the caller supplied.
	TotalCandidates int `json:"total_candidates"`

	// FilteredCandidates is the number surviving the eligibility filter.
	FilteredCandidates int `json:"filtered_candidates"`
}
