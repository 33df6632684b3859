// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package recommend

// The rule-based scorer is the second, independent score vector: a handful
// of business-rule boosts and penalties with no normalization. It anchors
// the blend so a candidate cannot rank purely on relative position within
// the heuristic batch.

// ruleScores computes the rule-based score for each candidate,
// index-aligned with the input. Scores are used as-is, unnormalized.
func ruleScores(w *RuleWeights, p *Profile, candidates []Scholarship) []float64 {
	scores := make([]float64, len(candidates))
	for i := range candidates {
		scores[i] = ruleScore(w, p, &candidates[i])
	}
	return scores
}

// ruleScore computes the rule-based score for a single candidate.
// Only the single country field participates here, not the target list.
func ruleScore(w *RuleWeights, p *Profile, s *Scholarship) float64 {
	score := 0.0

	if containsFold(s.Country, p.TargetCountry) {
		score += w.TargetCountry
	}
	if containsFold(s.FieldOfStudy, p.FieldOfStudy) {
		score += w.FieldOfStudy
	}
	if containsFold(s.FinanceType, p.FinanceType) {
		score += w.FinanceType
	}

	if floatOr(p.GPA, 0) < floatOr(s.MinGPA, 0) {
		score += w.GPAMissed
	}

	if outsideAgeWindow(p, s) {
		score += w.AgePenalty
	}

	return score
}
