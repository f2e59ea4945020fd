// Package db provides PostgreSQL database access for the candidate store.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	raw_text TEXT NOT NULL DEFAULT '',
	resume_file_path TEXT NOT NULL DEFAULT '',
	experience_summary TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS skills (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	name_normalized TEXT NOT NULL UNIQUE,
	category TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS candidate_skills (
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	skill_id UUID NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
	PRIMARY KEY (candidate_id, skill_id)
);

CREATE TABLE IF NOT EXISTS education (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	degree TEXT NOT NULL DEFAULT '',
	institution TEXT NOT NULL DEFAULT '',
	year TEXT NOT NULL DEFAULT '',
	field_of_study TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS experiences (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	job_title TEXT NOT NULL DEFAULT '',
	company TEXT NOT NULL DEFAULT '',
	duration TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL DEFAULT '',
	end_date TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS projects (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	title TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	technologies TEXT NOT NULL DEFAULT ''
);
`

// EnsureSchema creates the candidate store tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
