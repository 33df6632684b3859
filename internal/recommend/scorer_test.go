// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package recommend

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestHeuristicScoreBoosts(t *testing.T) {
	w := DefaultConfig().Heuristic

	base := Scholarship{Level: ScholarshipLevelMaster}

	tests := []struct {
		name    string
		profile Profile
		mutate  func(*Scholarship)
		want    float64
	}{
		{
			// No profile fields set: GPA 0 >= min 0 earns the standing
			// boost, nothing else fires.
			name:    "empty profile scores standing only",
			profile: Profile{},
			mutate:  func(*Scholarship) {},
			want:    0.10,
		},
		{
			name:    "origin country boost",
			profile: Profile{OriginCountry: "Cameroon"},
			mutate:  func(s *Scholarship) { s.Country = "Cameroon and Chad" },
			want:    0.10 + 0.10,
		},
		{
			name:    "field of study boost",
			profile: Profile{FieldOfStudy: "computer science"},
			mutate:  func(s *Scholarship) { s.FieldOfStudy = "Computer Science & AI" },
			want:    0.20 + 0.10,
		},
		{
			name:    "education level string boost",
			profile: Profile{EducationLevel: "master"},
			mutate:  func(*Scholarship) {},
			want:    0.15 + 0.10,
		},
		{
			name:    "gpa below minimum penalized",
			profile: Profile{GPA: fptr(2.0)},
			mutate:  func(s *Scholarship) { s.MinGPA = fptr(3.0) },
			want:    -0.05,
		},
		{
			name:    "missing gpa treated as zero",
			profile: Profile{},
			mutate:  func(s *Scholarship) { s.MinGPA = fptr(3.0) },
			want:    -0.05,
		},
		{
			name:    "scholarship type boost",
			profile: Profile{ScholarshipType: TypeMerit},
			mutate:  func(s *Scholarship) { s.Type = TypeMerit },
			want:    0.10 + 0.10,
		},
		{
			name:    "finance type boost",
			profile: Profile{FinanceType: "complète"},
			mutate:  func(s *Scholarship) { s.FinanceType = "Bourse complète" },
			want:    0.10 + 0.10,
		},
		{
			name:    "amount boost saturates at cap",
			profile: Profile{},
			mutate:  func(s *Scholarship) { s.Amount = fptr(50000.0) },
			want:    0.10 + 0.05,
		},
		{
			name:    "small amount boost proportional",
			profile: Profile{},
			mutate:  func(s *Scholarship) { s.Amount = fptr(200.0) },
			want:    0.10 + 0.02,
		},
		{
			name:    "negative amount yields no bonus",
			profile: Profile{},
			mutate:  func(s *Scholarship) { s.Amount = fptr(-500.0) },
			want:    0.10,
		},
		{
			name:    "age outside window penalized",
			profile: Profile{Age: iptr(30)},
			mutate:  func(s *Scholarship) { s.MaxAge = iptr(22) },
			want:    0.10 - 0.10,
		},
		{
			name:    "age inside default window",
			profile: Profile{Age: iptr(30)},
			mutate:  func(*Scholarship) {},
			want:    0.10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)

			got := heuristicScore(&w, &tt.profile, &s)
			if !almostEqual(got, tt.want) {
				t.Errorf("heuristicScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRuleScore(t *testing.T) {
	w := DefaultConfig().Rules

	tests := []struct {
		name    string
		profile Profile
		s       Scholarship
		want    float64
	}{
		{
			name: "all boosts",
			profile: Profile{
				TargetCountry: "Germany",
				FieldOfStudy:  "Physics",
				FinanceType:   "complète",
			},
			s: Scholarship{
				Country:      "Germany",
				FieldOfStudy: "Physics",
				FinanceType:  "complète",
			},
			want: 0.30,
		},
		{
			name:    "target list ignored by rule scorer",
			profile: Profile{TargetCountry: "Germany"},
			s:       Scholarship{TargetCountries: []string{"Germany"}},
			want:    0,
		},
		{
			name:    "gpa penalty",
			profile: Profile{GPA: fptr(2.5)},
			s:       Scholarship{MinGPA: fptr(3.0)},
			want:    -0.10,
		},
		{
			name:    "age penalty",
			profile: Profile{Age: iptr(30)},
			s:       Scholarship{MaxAge: iptr(25)},
			want:    -0.10,
		},
		{
			name:    "both penalties stack",
			profile: Profile{GPA: fptr(2.5), Age: iptr(30)},
			s:       Scholarship{MinGPA: fptr(3.0), MaxAge: iptr(25)},
			want:    -0.20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ruleScore(&w, &tt.profile, &tt.s)
			if !almostEqual(got, tt.want) {
				t.Errorf("ruleScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeMinMax(t *testing.T) {
	t.Run("spans unit interval", func(t *testing.T) {
		got := normalizeMinMax([]float64{0.2, 0.5, 0.8, 0.35})

		if !almostEqual(got[0], 0) {
			t.Errorf("min = %v, want 0", got[0])
		}
		if !almostEqual(got[2], 1) {
			t.Errorf("max = %v, want 1", got[2])
		}
		if !almostEqual(got[1], 0.5) {
			t.Errorf("mid = %v, want 0.5", got[1])
		}
		if !almostEqual(got[3], 0.25) {
			t.Errorf("mid = %v, want 0.25", got[3])
		}
	})

	t.Run("identical scores left unchanged", func(t *testing.T) {
		in := []float64{0.4, 0.4, 0.4, 0.4}
		got := normalizeMinMax(in)
		for i, v := range got {
			if !almostEqual(v, 0.4) {
				t.Errorf("index %d = %v, want 0.4", i, v)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := normalizeMinMax(nil); len(got) != 0 {
			t.Errorf("expected empty output, got %v", got)
		}
	})

	t.Run("negative scores shift into range", func(t *testing.T) {
		got := normalizeMinMax([]float64{-0.15, 0.85})
		if !almostEqual(got[0], 0) || !almostEqual(got[1], 1) {
			t.Errorf("got %v, want [0 1]", got)
		}
	})
}

func TestAgeWindowDefaults(t *testing.T) {
	s := Scholarship{}
	minAge, maxAge := ageWindow(&s)
	if minAge != 0 || maxAge != 100 {
		t.Errorf("ageWindow = %d/%d, want 0/100", minAge, maxAge)
	}

	p := Profile{Age: iptr(99)}
	if outsideAgeWindow(&p, &s) {
		t.Error("age 99 must pass the default window")
	}

	p.Age = nil
	s.MinAge = iptr(18)
	if !outsideAgeWindow(&p, &s) {
		t.Error("missing age defaults to 0 and must fail a positive minimum")
	}
}
