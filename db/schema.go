// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	ddl := sqliteSchema
	if dbType == TypePostgres {
		ddl = postgresSchema
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Analyses
CREATE TABLE IF NOT EXISTS analysis (
    id TEXT PRIMARY KEY,
    scheme TEXT NOT NULL CHECK (scheme IN ('plurality', 'vote_for_two', 'anti_plurality', 'borda')),
    winner TEXT NOT NULL,
    voters INTEGER NOT NULL CHECK (voters > 2),
    alternatives INTEGER NOT NULL CHECK (alternatives > 2),
    total_happiness INTEGER NOT NULL,
    source_format TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    payload JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analysis_created_at ON analysis(created_at);
CREATE INDEX IF NOT EXISTS idx_analysis_scheme ON analysis(scheme);
`

const sqliteSchema = `
-- Analyses
CREATE TABLE IF NOT EXISTS analysis (
    id TEXT PRIMARY KEY,
    scheme TEXT NOT NULL CHECK (scheme IN ('plurality', 'vote_for_two', 'anti_plurality', 'borda')),
    winner TEXT NOT NULL,
    voters INTEGER NOT NULL CHECK (voters > 2),
    alternatives INTEGER NOT NULL CHECK (alternatives > 2),
    total_happiness INTEGER NOT NULL,
    source_format TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analysis_created_at ON analysis(created_at);
CREATE INDEX IF NOT EXISTS idx_analysis_scheme ON analysis(scheme);
`
