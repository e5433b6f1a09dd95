// Package store handles SQLite persistence of search history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/wordladder/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed-width so stored UTC timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for search history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			dictionary_path TEXT NOT NULL,
			dictionary_size INTEGER NOT NULL,
			start_word TEXT NOT NULL,
			goal_word TEXT NOT NULL,
			found INTEGER NOT NULL,
			path TEXT NOT NULL,
			expanded INTEGER NOT NULL,
			duration_us INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_searches_ended_at ON searches(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_searches_words ON searches(start_word, goal_word);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSearch stores a completed search.
func (s *Store) InsertSearch(ctx context.Context, rec model.SearchRecord) (int64, error) {
	found := 0
	if rec.Found {
		found = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (started_at, ended_at, dictionary_path, dictionary_size, start_word, goal_word, found, path, expanded, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(timeLayout),
		rec.EndedAt.UTC().Format(timeLayout),
		rec.DictionaryPath,
		rec.DictionarySize,
		rec.Start,
		rec.Goal,
		found,
		strings.Join(rec.Path, "\n"),
		rec.Expanded,
		rec.DurationUs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSearches returns searches matching cfg, oldest first. Last keeps only
// the newest N matches.
func (s *Store) ListSearches(ctx context.Context, cfg model.HistoryConfig) ([]model.SearchRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Word != "" {
		clauses = append(clauses, "(start_word = ? OR goal_word = ?)")
		args = append(args, cfg.Word, cfg.Word)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.UTC().Format(timeLayout))
	}
	query := fmt.Sprintf(`SELECT id, started_at, ended_at, dictionary_path, dictionary_size, start_word, goal_word, found, path, expanded, duration_us
		FROM searches
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.SearchRecord
	for rows.Next() {
		var rec model.SearchRecord
		var startedAt, endedAt, path string
		var found int
		if err := rows.Scan(&rec.ID, &startedAt, &endedAt, &rec.DictionaryPath, &rec.DictionarySize,
			&rec.Start, &rec.Goal, &found, &path, &rec.Expanded, &rec.DurationUs); err != nil {
			return nil, err
		}
		if rec.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, err
		}
		if rec.EndedAt, err = time.Parse(timeLayout, endedAt); err != nil {
			return nil, err
		}
		rec.Found = found != 0
		if path != "" {
			rec.Path = strings.Split(path, "\n")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(records) > cfg.Last {
		records = records[len(records)-cfg.Last:]
	}
	return records, nil
}

// Clear deletes all recorded searches and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM searches`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
