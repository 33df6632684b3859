// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/scholarmach/scholarmach/internal/metrics"
	"github.com/scholarmach/scholarmach/internal/recommend"
)

const scholarshipColumns = `id, title, description, country, target_countries,
	field_of_study, level, type, finance_type, language,
	amount, currency, min_gpa, min_age, max_age, deadline,
	application_link, active, validated`

// ListEligible returns all active, validated scholarships in insertion
// order. This is the candidate set handed to the recommendation engine.
func (db *DB) ListEligible(ctx context.Context) (_ []recommend.Scholarship, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("list_eligible", "scholarships", time.Since(start), err) }()

	query := `SELECT ` + scholarshipColumns + `
	FROM scholarships
	WHERE active AND validated
	ORDER BY created_at, id`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible scholarships: %w", err)
	}
	defer closeQuietly(rows)

	return scanScholarships(rows)
}

// ListScholarships returns a page of the publishable catalog, newest
// first. Unvalidated and inactive records are excluded; they only exist
// for the admin ingestion path.
func (db *DB) ListScholarships(ctx context.Context, limit, offset int) ([]recommend.Scholarship, error) {
	query := `SELECT ` + scholarshipColumns + `
	FROM scholarships
	WHERE active AND validated
	ORDER BY created_at DESC, id
	LIMIT ? OFFSET ?`

	rows, err := db.conn.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list scholarships: %w", err)
	}
	defer closeQuietly(rows)

	return scanScholarships(rows)
}

// GetScholarship fetches a scholarship by ID.
// Returns ErrScholarshipNotFound when no row exists.
func (db *DB) GetScholarship(ctx context.Context, id string) (*recommend.Scholarship, error) {
	query := `SELECT ` + scholarshipColumns + ` FROM scholarships WHERE id = ?`

	rows, err := db.conn.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get scholarship: %w", err)
	}
	defer closeQuietly(rows)

	list, err := scanScholarships(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrScholarshipNotFound
	}
	return &list[0], nil
}

// InsertScholarship stores a new catalog record. A missing ID is
// generated; timestamps are set server-side.
func (db *DB) InsertScholarship(ctx context.Context, s *recommend.Scholarship) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "scholarships", time.Since(start), err) }()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	targets, err := json.Marshal(s.TargetCountries)
	if err != nil {
		return fmt.Errorf("failed to encode target countries: %w", err)
	}

	now := time.Now().UTC()
	query := `INSERT INTO scholarships (
		id, title, description, country, target_countries,
		field_of_study, level, type, finance_type, language,
		amount, currency, min_gpa, min_age, max_age, deadline,
		application_link, active, validated, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = db.conn.ExecContext(ctx, query,
		s.ID, s.Title, s.Description, s.Country, string(targets),
		s.FieldOfStudy, string(s.Level), string(s.Type), s.FinanceType, s.Language,
		nullFloat(s.Amount), s.Currency, nullFloat(s.MinGPA), nullInt(s.MinAge), nullInt(s.MaxAge),
		nullTime(s.Deadline), s.ApplicationLink, s.Active, s.Validated, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scholarship: %w", err)
	}

	return nil
}

// CountScholarships returns the total catalog size.
func (db *DB) CountScholarships(ctx context.Context) (int, error) {
	var count int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM scholarships`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scholarships: %w", err)
	}
	return count, nil
}

// ExpireScholarships deactivates catalog records whose deadline has
// passed. Returns the number of rows deactivated.
func (db *DB) ExpireScholarships(ctx context.Context, now time.Time) (_ int64, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("expire", "scholarships", time.Since(start), err) }()

	query := `UPDATE scholarships
	SET active = false, updated_at = ?
	WHERE active AND deadline IS NOT NULL AND deadline < ?`

	res, err := db.conn.ExecContext(ctx, query, now.UTC(), now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to expire scholarships: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count expired scholarships: %w", err)
	}
	return n, nil
}

func scanScholarships(rows *sql.Rows) ([]recommend.Scholarship, error) {
	var out []recommend.Scholarship
	for rows.Next() {
		var (
			s        recommend.Scholarship
			targets  string
			level    string
			sType    string
			amount   sql.NullFloat64
			minGPA   sql.NullFloat64
			minAge   sql.NullInt32
			maxAge   sql.NullInt32
			deadline sql.NullTime
		)
		err := rows.Scan(
			&s.ID, &s.Title, &s.Description, &s.Country, &targets,
			&s.FieldOfStudy, &level, &sType, &s.FinanceType, &s.Language,
			&amount, &s.Currency, &minGPA, &minAge, &maxAge, &deadline,
			&s.ApplicationLink, &s.Active, &s.Validated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scholarship: %w", err)
		}

		s.Level = recommend.ScholarshipLevel(level)
		s.Type = recommend.ScholarshipType(sType)
		if targets != "" && targets != "[]" {
			if err := json.Unmarshal([]byte(targets), &s.TargetCountries); err != nil {
				return nil, fmt.Errorf("failed to decode target countries for %s: %w", s.ID, err)
			}
		}
		if amount.Valid {
			v := amount.Float64
			s.Amount = &v
		}
		if minGPA.Valid {
			v := minGPA.Float64
			s.MinGPA = &v
		}
		if minAge.Valid {
			v := int(minAge.Int32)
			s.MinAge = &v
		}
		if maxAge.Valid {
			v := int(maxAge.Int32)
			s.MaxAge = &v
		}
		if deadline.Valid {
			t := deadline.Time
			s.Deadline = &t
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scholarship row iteration failed: %w", err)
	}
	return out, nil
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

// SeedDemoData inserts a small demo catalog when the table is empty.
// Controlled by database.seed_demo_data; returns the number of rows
// inserted, zero when data already exists.
func (db *DB) SeedDemoData(ctx context.Context) (int, error) {
	count, err := db.CountScholarships(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	catalog := demoCatalog()
	for i := range catalog {
		if err := db.InsertScholarship(ctx, &catalog[i]); err != nil {
			return i, fmt.Errorf("failed to seed scholarship %d: %w", i, err)
		}
	}
	return len(catalog), nil
}
