// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

// Package recommend implements the hybrid scholarship matching engine.
//
// # Architecture
//
// One invocation moves through three phases:
//
//   - Eligibility Filter: hard categorical checks (degree level, target
//     country with synonym expansion, language) that disqualify rather
//     than down-rank
//   - Scoring: two independent score vectors - an additive heuristic
//     scorer with batch min-max normalization, and an unnormalized
//     rule-based scorer
//   - Blending: 0.7 x heuristic + 0.3 x rules, stable descending sort,
//     top-10 truncation, rounding to 2 decimals
//
// Filtered sets of one to three records skip scoring entirely and return
// synthetic descending placeholder scores (1.0, 0.9, 0.8), because min-max
// normalization over so few samples would be unstable and misleading.
//
// # Design Principles
//
//   - Deterministic: same inputs produce identical ordered output
//   - Pure: no I/O, no persistence, no clock or randomness
//   - Tolerant: missing or malformed optional fields degrade to neutral
//     defaults and never raise an error
//   - Immutable inputs: the profile and candidate list are never mutated
//
// # Score Bounds
//
// Blended scores fall in [0, 1] for all realistic inputs but the blend is
// not re-normalized or clamped: a maximal rule score on the
// heuristic-maximal candidate can exceed 1.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	resp := engine.Recommend(ctx, profile, scholarships)
//
// # Thread Safety
//
// The engine holds no mutable state; concurrent invocations are fully
// independent.
package recommend
