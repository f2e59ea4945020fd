// Package shortlist records candidates whose match percentage clears the
// shortlist threshold in a compact SQLite database separate from the main
// candidate store.
package shortlist

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jonathan/resume-screener/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS shortlisted_candidates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	candidate_name TEXT NOT NULL,
	work_experience_years REAL NOT NULL DEFAULT 0.0,
	skills TEXT NOT NULL,
	projects TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(candidate_name, skills, projects)
)`

// Store persists shortlist records in SQLite. The UNIQUE constraint plus
// INSERT OR IGNORE makes deduplication atomic under concurrent writers.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the shortlist database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create shortlist directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shortlist database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init shortlist schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertIfAbsent inserts a shortlist record unless the same
// (name, skills, projects) tuple already exists. Returns whether a new row
// was written; an existing duplicate is not an error.
func (s *Store) InsertIfAbsent(ctx context.Context, rec types.ShortlistRecord) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO shortlisted_candidates
		 (candidate_name, work_experience_years, skills, projects)
		 VALUES (?, ?, ?, ?)`,
		rec.CandidateName, rec.WorkExperienceYears, rec.Skills, rec.Projects,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert shortlist record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return affected > 0, nil
}

// List returns all shortlist records, newest first.
func (s *Store) List(ctx context.Context) ([]types.ShortlistRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, candidate_name, work_experience_years, skills, projects, created_at
		 FROM shortlisted_candidates
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortlist records: %w", err)
	}
	defer rows.Close()

	var records []types.ShortlistRecord
	for rows.Next() {
		var rec types.ShortlistRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.CandidateName, &rec.WorkExperienceYears,
			&rec.Skills, &rec.Projects, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan shortlist record: %w", err)
		}
		rec.CreatedAt = parseSQLiteTime(createdAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear removes all shortlist records.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM shortlisted_candidates`); err != nil {
		return fmt.Errorf("failed to clear shortlist: %w", err)
	}
	return nil
}

// parseSQLiteTime parses the timestamp formats SQLite emits for
// CURRENT_TIMESTAMP columns.
func parseSQLiteTime(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
