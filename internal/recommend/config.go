// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package recommend

import "fmt"

// Config contains all tunables for the recommendation engine.
type Config struct {
	// Heuristic contains the boosts and penalties of the heuristic scorer.
	Heuristic HeuristicWeights `json:"heuristic"`

	// Rules contains the boosts and penalties of the rule-based scorer.
	Rules RuleWeights `json:"rules"`

	// Blend defines how the two score vectors are combined.
	Blend BlendWeights `json:"blend"`

	// Limits contains result-shaping limits.
	Limits LimitsConfig `json:"limits"`
}

// HeuristicWeights parameterizes the heuristic match scorer. Boosts are
// positive, penalties negative; the raw sum is min-max normalized per batch.
type HeuristicWeights struct {
	// OriginCountry is the boost when the profile's origin country
	// appears in the scholarship's country field.
	// Default: 0.10.
	OriginCountry float64 `json:"origin_country"`

	// TargetCountry is the boost for a target-country match.
	// Default: 0.10.
	TargetCountry float64 `json:"target_country"`

	// FieldOfStudy is the boost for a field-of-study match.
	// Default: 0.20.
	FieldOfStudy float64 `json:"field_of_study"`

	// EducationLevel is the boost for a string-level education match.
	// This is looser than the eligibility filter's closed mapping.
	// Default: 0.15.
	EducationLevel float64 `json:"education_level"`

	// GPAMet is the boost when the profile meets the minimum standing.
	// Default: 0.10.
	GPAMet float64 `json:"gpa_met"`

	// GPAMissed is the penalty when the profile is below the minimum.
	// Default: -0.05.
	GPAMissed float64 `json:"gpa_missed"`

	// ScholarshipType is the boost for a type-preference match.
	// Default: 0.10.
	ScholarshipType float64 `json:"scholarship_type"`

	// FinanceType is the boost for a financing-preference match.
	// Default: 0.10.
	FinanceType float64 `json:"finance_type"`

	// AmountDivisor scales the funding amount into a saturating bonus.
	// Default: 10000.
	AmountDivisor float64 `json:"amount_divisor"`

	// AmountCap caps the funding bonus.
	// Default: 0.05.
	AmountCap float64 `json:"amount_cap"`

	// AgePenalty applies when the profile age falls outside the
	// scholarship's age window.
	// Default: -0.10.
	AgePenalty float64 `json:"age_penalty"`
}

// RuleWeights parameterizes the rule-based scorer. Intentionally simpler
// than the heuristic scorer: boosts only, no normalization.
type RuleWeights struct {
	// TargetCountry boost. Matches the single country field only.
	// Default: 0.10.
	TargetCountry float64 `json:"target_country"`

	// FieldOfStudy boost. Default: 0.10.
	FieldOfStudy float64 `json:"field_of_study"`

	// FinanceType boost. Default: 0.10.
	FinanceType float64 `json:"finance_type"`

	// GPAMissed penalty when below the minimum standing. Default: -0.10.
	GPAMissed float64 `json:"gpa_missed"`

	// AgePenalty when outside the age window. Default: -0.10.
	AgePenalty float64 `json:"age_penalty"`
}

// BlendWeights combines the normalized heuristic score with the rule score.
// The blend is not re-normalized; see the package doc for the bounds note.
type BlendWeights struct {
	// Heuristic is the weight of the normalized heuristic score.
	// Default: 0.7.
	Heuristic float64 `json:"heuristic"`

	// Rules is the weight of the rule-based score.
	// Default: 0.3.
	Rules float64 `json:"rules"`
}

// LimitsConfig contains result-shaping limits.
type LimitsConfig struct {
	// MaxResults is the maximum number of recommendations returned.
	// Default: 10.
	MaxResults int `json:"max_results"`

	// MinFullScoring is the smallest filtered set that goes through the
	// full scoring pipeline. Smaller non-empty sets take the
	// limited-results branch with synthetic scores, because min-max
	// normalization is unstable over tiny samples.
	// Default: 4.
	MinFullScoring int `json:"min_full_scoring"`

	// SyntheticStep is the per-position decrement of the synthetic
	// scores in the limited-results branch (1.0, 0.9, 0.8, ...).
	// Default: 0.1.
	SyntheticStep float64 `json:"synthetic_step"`
}

// DefaultConfig returns a Config with the production scoring weights.
func DefaultConfig() *Config {
	return &Config{
		Heuristic: HeuristicWeights{
			OriginCountry:   0.10,
			TargetCountry:   0.10,
			FieldOfStudy:    0.20,
			EducationLevel:  0.15,
			GPAMet:          0.10,
			GPAMissed:       -0.05,
			ScholarshipType: 0.10,
			FinanceType:     0.10,
			AmountDivisor:   10000,
			AmountCap:       0.05,
			AgePenalty:      -0.10,
		},
		Rules: RuleWeights{
			TargetCountry: 0.10,
			FieldOfStudy:  0.10,
			FinanceType:   0.10,
			GPAMissed:     -0.10,
			AgePenalty:    -0.10,
		},
		Blend: BlendWeights{
			Heuristic: 0.7,
			Rules:     0.3,
		},
		Limits: LimitsConfig{
			MaxResults:     10,
			MinFullScoring: 4,
			SyntheticStep:  0.1,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Heuristic.AmountDivisor <= 0 {
		return fmt.Errorf("heuristic.amount_divisor must be positive, got %f", c.Heuristic.AmountDivisor)
	}
	if c.Heuristic.AmountCap < 0 {
		return fmt.Errorf("heuristic.amount_cap must be non-negative, got %f", c.Heuristic.AmountCap)
	}
	if c.Blend.Heuristic < 0 || c.Blend.Rules < 0 {
		return fmt.Errorf("blend weights must be non-negative, got %f/%f", c.Blend.Heuristic, c.Blend.Rules)
	}
	if c.Blend.Heuristic+c.Blend.Rules == 0 {
		return fmt.Errorf("blend weights must not both be zero")
	}
	if c.Limits.MaxResults < 1 {
		return fmt.Errorf("limits.max_results must be positive, got %d", c.Limits.MaxResults)
	}
	if c.Limits.MinFullScoring < 2 {
		return fmt.Errorf("limits.min_full_scoring must be at least 2, got %d", c.Limits.MinFullScoring)
	}
	if c.Limits.SyntheticStep <= 0 || c.Limits.SyntheticStep >= 1 {
		return fmt.Errorf("limits.synthetic_step must be in (0, 1), got %f", c.Limits.SyntheticStep)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	return &Config{
		Heuristic: c.Heuristic,
		Rules:     c.Rules,
		Blend:     c.Blend,
		Limits:    c.Limits,
	}
}
