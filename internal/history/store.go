// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists successful searches to a local SQLite database
// so past winning queries can be reviewed and reused.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/scholar-search/pkg/types"
)

const dbFile = "history.db"

// Store manages the search history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Entry is one recorded search.
type Entry struct {
	ID           int64     `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	QueryUsed    string    `json:"query_used"`
	QueryAttempt int       `json:"query_attempt"`
	Queries      []string  `json:"queries"`
	Total        int       `json:"total"`
	Shown        int       `json:"shown"`
}

// Open opens or creates the history database at dir/history.db and
// creates the schema if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS searches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		query_used TEXT NOT NULL,
		query_attempt INTEGER NOT NULL,
		queries TEXT NOT NULL,
		total INTEGER NOT NULL,
		shown INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one row for a successful search. The full fallback list
// is stored as a JSON array alongside the winning query.
func (s *Store) Record(ctx context.Context, queries []string, page *types.ResultPage) error {
	queriesJSON, err := json.Marshal(queries)
	if err != nil {
		return fmt.Errorf("marshaling query list: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO searches (timestamp, query_used, query_attempt, queries, total, shown)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		page.QueryUsed, page.QueryAttempt, string(queriesJSON),
		page.Total, len(page.Data),
	)
	if err != nil {
		return fmt.Errorf("inserting history row: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first. A limit of 0 uses the
// configured default.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, query_used, query_attempt, queries, total, shown
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts, queriesJSON string
		if err := rows.Scan(&e.ID, &ts, &e.QueryUsed, &e.QueryAttempt, &queriesJSON, &e.Total, &e.Shown); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
			e.Timestamp = t
		}
		if err := json.Unmarshal([]byte(queriesJSON), &e.Queries); err != nil {
			return nil, fmt.Errorf("parsing stored query list: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes all history rows and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM searches`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}
