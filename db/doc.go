// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores analyses in sqlite or postgres.

# Connecting

Open picks the driver from the database type, pings, and creates the schema:

	conn, err := db.Open(db.TypeSQLite, "file:btva.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

sqlite uses modernc.org/sqlite (no cgo); postgres uses github.com/lib/pq.

# Schema Creation

CreateSchema is safe to call multiple times - uses IF NOT EXISTS for the
table and its indexes. The payload column is JSONB on postgres and TEXT on
sqlite.

# Tables

  - analysis: one row per tally (scheme, winner, voters, alternatives,
    total_happiness, source_format, created_at) plus the full JSON payload

# Store

	store := db.NewStore(conn, db.TypeSQLite)
	saved, err := store.SaveAnalysis(ctx, analysis) // assigns id + created_at
	a, err := store.GetAnalysis(ctx, saved.ID)      // ErrNotFound if missing
	recent, err := store.ListAnalyses(ctx, 20)      // newest first

Queries are written with ? placeholders and rewritten to $n for postgres.
*/
package db
