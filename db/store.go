// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/btva/models"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var ErrNotFound = errors.New("analysis not found")

// Store persists analyses
type Store struct {
	db     *sql.DB
	dbType string
	clock  clockwork.Clock
}

func NewStore(db *sql.DB, dbType string) *Store {
	return &Store{db: db, dbType: dbType, clock: clockwork.NewRealClock()}
}

// WithClock replaces the clock used for created_at timestamps
func (s *Store) WithClock(clock clockwork.Clock) *Store {
	s.clock = clock
	return s
}

// SaveAnalysis assigns an ID and timestamp to the analysis and stores it
func (s *Store) SaveAnalysis(ctx context.Context, a models.Analysis) (models.Analysis, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = s.clock.Now().UTC().Truncate(time.Microsecond)

	payload, err := json.Marshal(a)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("failed to encode analysis: %w", err)
	}

	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO analysis (id, scheme, winner, voters, alternatives, total_happiness, source_format, created_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), a.ID, a.Scheme, a.Winner, a.Voters, a.Alternatives, a.TotalHappiness, a.SourceFormat, a.CreatedAt, string(payload))
	if err != nil {
		return models.Analysis{}, fmt.Errorf("failed to insert analysis: %w", err)
	}

	return a, nil
}

// GetAnalysis loads one analysis by ID
func (s *Store) GetAnalysis(ctx context.Context, id string) (models.Analysis, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT payload FROM analysis WHERE id = ?
	`), id).Scan(&payload)

	if err == sql.ErrNoRows {
		return models.Analysis{}, ErrNotFound
	}
	if err != nil {
		return models.Analysis{}, fmt.Errorf("failed to query analysis: %w", err)
	}

	var a models.Analysis
	if err := json.Unmarshal(payload, &a); err != nil {
		return models.Analysis{}, fmt.Errorf("failed to decode analysis %s: %w", id, err)
	}
	return a, nil
}

// ListAnalyses returns the most recent analyses, newest first
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]models.Analysis, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT payload FROM analysis
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	analyses := []models.Analysis{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var a models.Analysis
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("failed to decode analysis: %w", err)
		}
		analyses = append(analyses, a)
	}

	return analyses, rows.Err()
}

// rebind rewrites ? placeholders to $1, $2, ... for postgres
func (s *Store) rebind(query string) string {
	if s.dbType != TypePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
