// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages. The
// boundary layer loads profiles and scholarships from storage and hands
// them in; the engine never fetches, persists or authenticates anything.

// User-facing messages for the three non-full outcomes. The boundary
// surfaces them verbatim.
const (
	msgNoCandidates = "No scholarships available"
	msgFilterEmpty  = "No scholarships match your profile criteria. Try adjusting your preferences."
	msgLimited      = "Limited scholarships available. Add more for better AI matching."
)

// Engine produces ranked scholarship recommendations for a profile.
// It is a pure computation: deterministic for fixed inputs, no I/O, no
// shared mutable state. Safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Recommend scores the candidate scholarships against the profile and
// returns a ranked, truncated recommendation list. Inputs are never
// mutated. Malformed optional fields degrade to defaults; the method has
// no error return because data quality is never an error here.
//
// The context is accepted for interface symmetry with the rest of the
// service; the computation itself never blocks.
func (e *Engine) Recommend(ctx context.Context, p Profile, candidates []Scholarship) *Response {
	_ = ctx

	// Scoring sees the same defaults the echo reports: an unset financing
	// preference means a fully funded award, the catalog's dominant case.
	if p.FinanceType == "" {
		p.FinanceType = defaultFinanceType
	}

	echo := normalizeProfile(&p)
	logger := e.logger.With().Str("profile_id", p.ID).Logger()

	if len(candidates) == 0 {
		logger.Debug().Msg("no candidates supplied")
		return e.terminal(OutcomeNoCandidates, msgNoCandidates, echo, 0, 0)
	}

	filtered := filterEligible(&p, candidates)
	logger.Debug().
		Int("candidates", len(candidates)).
		Int("filtered", len(filtered)).
		Msg("eligibility filter applied")

	switch {
	case len(filtered) == 0:
		return e.terminal(OutcomeFilterEmpty, msgFilterEmpty, echo, len(candidates), 0)
	case len(filtered) < e.config.Limits.MinFullScoring:
		return e.limitedResponse(echo, len(candidates), filtered)
	default:
		return e.fullRanking(&p, echo, len(candidates), filtered)
	}
}

// terminal builds a response for the two empty outcomes.
func (e *Engine) terminal(outcome Outcome, msg string, echo ProfileEcho, total, filtered int) *Response {
	return &Response{
		Recommendations:    []Recommendation{},
		Count:              0,
		Message:            msg,
		Profile:            echo,
		Outcome:            outcome,
		TotalCandidates:    total,
		FilteredCandidates: filtered,
	}
}

// limitedResponse handles filtered sets too small for meaningful
// normalization. Every survivor is returned in filtered order with a
// synthetic descending score (1.0, 0.9, 0.8, ...); min-max over two or
// three records would rank noise.
func (e *Engine) limitedResponse(echo ProfileEcho, total int, filtered []Scholarship) *Response {
	recs := make([]Recommendation, len(filtered))
	for i := range filtered {
		recs[i] = Recommendation{
			Scholarship: filtered[i],
			Score:       round2(1.0 - float64(i)*e.config.Limits.SyntheticStep),
		}
	}

	return &Response{
		Recommendations:    recs,
		Count:              len(recs),
		Message:            msgLimited,
		Profile:            echo,
		Outcome:            OutcomeLimited,
		TotalCandidates:    total,
		FilteredCandidates: len(filtered),
	}
}

// fullRanking runs both scorers, blends, sorts and truncates.
func (e *Engine) fullRanking(p *Profile, echo ProfileEcho, total int, filtered []Scholarship) *Response {
	heuristic := heuristicScores(&e.config.Heuristic, p, filtered)
	rules := ruleScores(&e.config.Rules, p, filtered)

	blended := make([]float64, len(filtered))
	for i := range filtered {
		blended[i] = e.config.Blend.Heuristic*heuristic[i] + e.config.Blend.Rules*rules[i]
	}

	// Stable sort: ties keep filtered-set order.
	order := make([]int, len(filtered))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return blended[order[a]] > blended[order[b]]
	})

	limit := e.config.Limits.MaxResults
	if limit > len(order) {
		limit = len(order)
	}

	recs := make([]Recommendation, limit)
	for rank, idx := range order[:limit] {
		recs[rank] = Recommendation{
			Scholarship: filtered[idx],
			Score:       round2(blended[idx]),
		}
	}

	return &Response{
		Recommendations:    recs,
		Count:              len(recs),
		Profile:            echo,
		Outcome:            OutcomeFullRanking,
		TotalCandidates:    total,
		FilteredCandidates: len(filtered),
	}
}

// normalizeProfile builds the echo of the scoring inputs, with the same
// defaults the scorers apply: finance type "complète", language "en",
// missing numerics as zero.
func normalizeProfile(p *Profile) ProfileEcho {
	financeType := p.FinanceType
	if financeType == "" {
		financeType = defaultFinanceType
	}

	return ProfileEcho{
		Age:               intOr(p.Age, 0),
		OriginCountry:     p.OriginCountry,
		TargetCountry:     p.TargetCountry,
		FieldOfStudy:      p.FieldOfStudy,
		EducationLevel:    string(p.EducationLevel),
		GPA:               floatOr(p.GPA, 0),
		ScholarshipType:   string(p.ScholarshipType),
		FinanceType:       financeType,
		PreferredLanguage: preferredLanguage(p),
	}
}

// round2 rounds to two decimal places, the precision exposed to clients.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
