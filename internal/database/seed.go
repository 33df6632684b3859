// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package database

import "github.com/scholarmach/scholarmach/internal/recommend"

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// demoCatalog returns the demo scholarship catalog used for local
// development and first-run demos.
func demoCatalog() []recommend.Scholarship {
	return []recommend.Scholarship{
		{
			Title:        "DAAD Graduate Fellowship",
			Description:  "Full scholarship for international master's students in Germany.",
			Country:      "Germany",
			FieldOfStudy: "Computer Science",
			Level:        recommend.ScholarshipLevelMaster,
			Type:         recommend.TypeMerit,
			FinanceType:  "complète",
			Language:     "English",
			Amount:       fptr(12000),
			Currency:     "EUR",
			MinGPA:       fptr(3.0),
			MaxAge:       iptr(32),
			Active:       true,
			Validated:    true,
		},
		{
			Title:        "Eiffel Excellence Programme",
			Description:  "Bourse d'excellence pour étudiants internationaux en France.",
			Country:      "France",
			FieldOfStudy: "Engineering",
			Level:        recommend.ScholarshipLevelMaster,
			Type:         recommend.TypeMerit,
			FinanceType:  "complète",
			Language:     "Français",
			Amount:       fptr(14000),
			Currency:     "EUR",
			MinGPA:       fptr(3.2),
			MaxAge:       iptr(30),
			Active:       true,
			Validated:    true,
		},
		{
			Title:           "Chevening Scholarship",
			Description:     "UK government scholarship for one-year master's degrees.",
			Country:         "United Kingdom",
			TargetCountries: []string{"United Kingdom"},
			FieldOfStudy:    "Public Policy",
			Level:           recommend.ScholarshipLevelMaster,
			Type:            recommend.TypeFull,
			FinanceType:     "complète",
			Language:        "English",
			Amount:          fptr(18000),
			Currency:        "GBP",
			Active:          true,
			Validated:       true,
		},
		{
			Title:        "Fulbright Foreign Student Program",
			Description:  "Graduate study and research in the United States.",
			Country:      "United States",
			FieldOfStudy: "Any",
			Level:        recommend.ScholarshipLevelDoctorate,
			Type:         recommend.TypeResearch,
			FinanceType:  "complète",
			Language:     "English",
			Amount:       fptr(25000),
			Currency:     "USD",
			MinGPA:       fptr(3.5),
			Active:       true,
			Validated:    true,
		},
		{
			Title:        "Vanier Canada Graduate Scholarship",
			Description:  "Doctoral scholarship for study at Canadian universities.",
			Country:      "Canada",
			FieldOfStudy: "Health Research",
			Level:        recommend.ScholarshipLevelDoctorate,
			Type:         recommend.TypeResearch,
			FinanceType:  "complète",
			Language:     "English",
			Amount:       fptr(50000),
			Currency:     "CAD",
			Active:       true,
			Validated:    true,
		},
		{
			Title:           "Erasmus Mundus Joint Master",
			Description:     "Joint master's programmes across European universities.",
			Country:         "Spain",
			TargetCountries: []string{"Spain", "France", "Germany"},
			FieldOfStudy:    "Data Science",
			Level:           recommend.ScholarshipLevelMaster,
			Type:            recommend.TypePartial,
			FinanceType:     "partielle",
			Language:        "English",
			Amount:          fptr(9000),
			Currency:        "EUR",
			MaxAge:          iptr(35),
			Active:          true,
			Validated:       true,
		},
		{
			Title:        "Undergraduate Excellence Award",
			Description:  "Merit award for undergraduate study abroad.",
			Country:      "Canada",
			FieldOfStudy: "Business",
			Level:        recommend.ScholarshipLevelLicence,
			Type:         recommend.TypeMerit,
			FinanceType:  "partielle",
			Language:     "English",
			Amount:       fptr(5000),
			Currency:     "CAD",
			MinGPA:       fptr(3.0),
			MaxAge:       iptr(25),
			Active:       true,
			Validated:    true,
		},
		{
			Title:        "Humboldt Postdoctoral Fellowship",
			Description:  "Research fellowship for postdoctoral scientists in Germany.",
			Country:      "Germany",
			FieldOfStudy: "Natural Sciences",
			Level:        recommend.ScholarshipLevelPostdoc,
			Type:         recommend.TypeResearch,
			FinanceType:  "complète",
			Language:     "English",
			Amount:       fptr(32000),
			Currency:     "EUR",
			Active:       true,
			Validated:    true,
		},
	}
}
