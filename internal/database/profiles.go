// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/scholarmach/scholarmach/internal/metrics"
	"github.com/scholarmach/scholarmach/internal/recommend"
)

// GetProfile fetches a student profile by ID.
// Returns ErrProfileNotFound when no row exists.
func (db *DB) GetProfile(ctx context.Context, id string) (_ *recommend.Profile, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("get", "profiles", time.Since(start), err) }()

	query := `SELECT id, origin_country, target_country, field_of_study,
		education_level, gpa, scholarship_type, finance_type,
		preferred_language, age
	FROM profiles WHERE id = ?`

	var (
		p     recommend.Profile
		level string
		sType string
		gpa   sql.NullFloat64
		age   sql.NullInt32
	)
	err = db.conn.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.OriginCountry, &p.TargetCountry, &p.FieldOfStudy,
		&level, &gpa, &sType, &p.FinanceType,
		&p.PreferredLanguage, &age,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	p.EducationLevel = recommend.EducationLevel(level)
	p.ScholarshipType = recommend.ScholarshipType(sType)
	if gpa.Valid {
		v := gpa.Float64
		p.GPA = &v
	}
	if age.Valid {
		v := int(age.Int32)
		p.Age = &v
	}

	return &p, nil
}

// UpsertProfile inserts or replaces a student profile.
func (db *DB) UpsertProfile(ctx context.Context, p *recommend.Profile) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("upsert", "profiles", time.Since(start), err) }()

	if p.ID == "" {
		return fmt.Errorf("profile id must not be empty")
	}

	now := time.Now().UTC()
	query := `INSERT INTO profiles (
		id, full_name, origin_country, target_country, field_of_study,
		education_level, gpa, scholarship_type, finance_type,
		preferred_language, age, created_at, updated_at
	) VALUES (?, '', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		origin_country = excluded.origin_country,
		target_country = excluded.target_country,
		field_of_study = excluded.field_of_study,
		education_level = excluded.education_level,
		gpa = excluded.gpa,
		scholarship_type = excluded.scholarship_type,
		finance_type = excluded.finance_type,
		preferred_language = excluded.preferred_language,
		age = excluded.age,
		updated_at = excluded.updated_at`

	_, err = db.conn.ExecContext(ctx, query,
		p.ID, p.OriginCountry, p.TargetCountry, p.FieldOfStudy,
		string(p.EducationLevel), nullFloat(p.GPA), string(p.ScholarshipType),
		p.FinanceType, p.PreferredLanguage, nullInt(p.Age), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}
