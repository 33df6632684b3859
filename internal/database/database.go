// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

// Package database provides DuckDB-backed storage for student profiles
// and the scholarship catalog.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/scholarmach/scholarmach/internal/config"
)

// DB wraps the DuckDB connection and provides data access methods.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens the database, configures the connection pool, and creates
// the schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Ensure the parent directory exists for file-backed databases.
	if cfg.Path != ":memory:" {
		if dbDir := filepath.Dir(cfg.Path); dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	// Auto-install/auto-load are disabled to prevent hangs in restricted
	// network environments.
	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, numThreads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg}

	// DuckDB is an embedded single-writer engine; a small pool avoids
	// write contention.
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(0)

	if err := db.createTables(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Conn returns the underlying SQL connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping verifies the database connection.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core tables and indexes.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL DEFAULT '',
			origin_country TEXT NOT NULL DEFAULT '',
			target_country TEXT NOT NULL DEFAULT '',
			field_of_study TEXT NOT NULL DEFAULT '',
			education_level TEXT NOT NULL DEFAULT '',
			gpa DOUBLE,
			scholarship_type TEXT NOT NULL DEFAULT '',
			finance_type TEXT NOT NULL DEFAULT '',
			preferred_language TEXT NOT NULL DEFAULT '',
			age INTEGER,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS scholarships (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			target_countries TEXT NOT NULL DEFAULT '[]',
			field_of_study TEXT NOT NULL DEFAULT '',
			level TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT '',
			finance_type TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT '',
			amount DOUBLE,
			currency TEXT NOT NULL DEFAULT '',
			min_gpa DOUBLE,
			min_age INTEGER,
			max_age INTEGER,
			deadline TIMESTAMP,
			application_link TEXT NOT NULL DEFAULT '',
			active BOOLEAN NOT NULL DEFAULT true,
			validated BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scholarships_active ON scholarships (active, validated)`,
		`CREATE INDEX IF NOT EXISTS idx_scholarships_level ON scholarships (level)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}
