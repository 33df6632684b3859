// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package recommend

// The heuristic scorer approximates the retired model-based ranker with a
// fixed additive heuristic: substring-match boosts on the profile's
// preference fields, a standing check, a saturating funding bonus and an
// age-window penalty. Raw scores are comparable only within one batch, so
// they are min-max normalized across the batch before blending.

// heuristicScores computes the raw heuristic score for each candidate and
// returns the batch min-max normalized vector, index-aligned with the input.
func heuristicScores(w *HeuristicWeights, p *Profile, candidates []Scholarship) []float64 {
	scores := make([]float64, len(candidates))
	for i := range candidates {
		scores[i] = heuristicScore(w, p, &candidates[i])
	}
	return normalizeMinMax(scores)
}

// heuristicScore computes the raw score for a single candidate.
func heuristicScore(w *HeuristicWeights, p *Profile, s *Scholarship) float64 {
	score := 0.0

	if containsFold(s.Country, p.OriginCountry) {
		score += w.OriginCountry
	}
	if containsFold(s.Country, p.TargetCountry) {
		score += w.TargetCountry
	}
	if containsFold(s.FieldOfStudy, p.FieldOfStudy) {
		score += w.FieldOfStudy
	}
	// String-level check, independent of the filter's closed level mapping.
	if containsFold(string(s.Level), string(p.EducationLevel)) {
		score += w.EducationLevel
	}

	if floatOr(p.GPA, 0) >= floatOr(s.MinGPA, 0) {
		score += w.GPAMet
	} else {
		score += w.GPAMissed
	}

	if containsFold(s.FinanceType, p.FinanceType) {
		score += w.FinanceType
	}
	if containsFold(string(s.Type), string(p.ScholarshipType)) {
		score += w.ScholarshipType
	}

	score += amountBoost(w, s)

	if outsideAgeWindow(p, s) {
		score += w.AgePenalty
	}

	return score
}

// amountBoost rewards higher funding with a bonus that saturates at
// AmountCap to keep funding from dominating the preference signals.
// A negative amount yields no bonus rather than a deduction; ingestion
// rejects negative amounts, so the clamp only guards hand-built catalogs.
func amountBoost(w *HeuristicWeights, s *Scholarship) float64 {
	boost := floatOr(s.Amount, 0) / w.AmountDivisor
	if boost > w.AmountCap {
		return w.AmountCap
	}
	if boost < 0 {
		return 0
	}
	return boost
}

// normalizeMinMax rescales scores to span [0, 1]. When every score is
// identical (max == min) the input is returned unchanged, which avoids the
// divide-by-zero and leaves the batch tied.
func normalizeMinMax(scores []float64) []float64 {
	if len(scores) == 0 {
		return scores
	}

	minScore, maxScore := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < minScore {
			minScore = s
		}
		if s > maxScore {
			maxScore = s
		}
	}

	if maxScore <= minScore {
		return scores
	}

	span := maxScore - minScore
	normalized := make([]float64, len(scores))
	for i, s := range scores {
		normalized[i] = (s - minScore) / span
	}
	return normalized
}
