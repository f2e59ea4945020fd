package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/types"
)

// SaveParsedResume upserts a candidate (keyed by email) together with its
// skills, education, experience and project entries, in a single
// transaction. Child rows are replaced wholesale so a re-uploaded resume
// does not accumulate duplicates. Returns the candidate id.
func (db *DB) SaveParsedResume(ctx context.Context, parsed types.ParsedResume, filePath, rawText string) (uuid.UUID, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var candidateID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, location, raw_text, resume_file_path, experience_summary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			raw_text = EXCLUDED.raw_text,
			resume_file_path = EXCLUDED.resume_file_path,
			experience_summary = EXCLUDED.experience_summary,
			updated_at = NOW()
		 RETURNING id`,
		parsed.Name, parsed.Email, parsed.Phone, parsed.Location,
		rawText, filePath, parsed.ExperienceSummary,
	).Scan(&candidateID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert candidate: %w", err)
	}

	for _, table := range []string{"candidate_skills", "education", "experiences", "projects"} {
		if _, err := tx.Exec(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE candidate_id = $1`, table), candidateID); err != nil {
			return uuid.Nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, skillName := range parsed.Skills {
		if skillName == "" {
			continue
		}
		skillID, err := findOrCreateSkill(ctx, tx, skillName)
		if err != nil {
			return uuid.Nil, err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO candidate_skills (candidate_id, skill_id)
			 VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			candidateID, skillID); err != nil {
			return uuid.Nil, fmt.Errorf("failed to attach skill: %w", err)
		}
	}

	for _, edu := range parsed.Education {
		if _, err := tx.Exec(ctx,
			`INSERT INTO education (candidate_id, degree, institution, year, field_of_study)
			 VALUES ($1, $2, $3, $4, $5)`,
			candidateID, edu.Degree, edu.Institution, edu.Year, edu.FieldOfStudy); err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert education: %w", err)
		}
	}

	for _, exp := range parsed.Experience {
		if _, err := tx.Exec(ctx,
			`INSERT INTO experiences (candidate_id, job_title, company, duration, description, start_date, end_date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			candidateID, exp.JobTitle, exp.Company, exp.Duration, exp.Description, exp.StartDate, exp.EndDate); err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert experience: %w", err)
		}
	}

	for _, proj := range parsed.Projects {
		if _, err := tx.Exec(ctx,
			`INSERT INTO projects (candidate_id, title, description, technologies)
			 VALUES ($1, $2, $3, $4)`,
			candidateID, proj.Title, proj.Description, proj.Technologies); err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert project: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit: %w", err)
	}
	return candidateID, nil
}

// ListCandidates returns snapshots of all candidates with their education and
// experience entries. Skills are fetched separately via GetCandidateSkills.
func (db *DB) ListCandidates(ctx context.Context) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, phone, location, experience_summary, resume_file_path, created_at
		 FROM candidates
		 ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.Candidate
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Location,
			&c.ExperienceSummary, &c.ResumeFilePath, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		index[c.ID] = len(candidates)
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.loadEducation(ctx, candidates, index); err != nil {
		return nil, err
	}
	if err := db.loadExperiences(ctx, candidates, index); err != nil {
		return nil, err
	}
	return candidates, nil
}

func candidateIDs(index map[uuid.UUID]int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	return ids
}

func (db *DB) loadEducation(ctx context.Context, candidates []types.Candidate, index map[uuid.UUID]int) error {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id, degree, institution, year, field_of_study
		 FROM education WHERE candidate_id = ANY($1)`,
		candidateIDs(index))
	if err != nil {
		return fmt.Errorf("failed to load education: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var candidateID uuid.UUID
		var edu types.Education
		if err := rows.Scan(&candidateID, &edu.Degree, &edu.Institution, &edu.Year, &edu.FieldOfStudy); err != nil {
			return fmt.Errorf("failed to scan education: %w", err)
		}
		if i, ok := index[candidateID]; ok {
			candidates[i].Education = append(candidates[i].Education, edu)
		}
	}
	return rows.Err()
}

func (db *DB) loadExperiences(ctx context.Context, candidates []types.Candidate, index map[uuid.UUID]int) error {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id, job_title, company, duration, description, start_date, end_date
		 FROM experiences WHERE candidate_id = ANY($1)`,
		candidateIDs(index))
	if err != nil {
		return fmt.Errorf("failed to load experiences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var candidateID uuid.UUID
		var exp types.Experience
		if err := rows.Scan(&candidateID, &exp.JobTitle, &exp.Company, &exp.Duration,
			&exp.Description, &exp.StartDate, &exp.EndDate); err != nil {
			return fmt.Errorf("failed to scan experience: %w", err)
		}
		if i, ok := index[candidateID]; ok {
			candidates[i].Experiences = append(candidates[i].Experiences, exp)
		}
	}
	return rows.Err()
}

// GetCandidate returns one candidate with all related entries, or nil when
// the id is unknown.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	var c types.Candidate
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, location, experience_summary, resume_file_path, created_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Location,
		&c.ExperienceSummary, &c.ResumeFilePath, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	index := map[uuid.UUID]int{c.ID: 0}
	list := []types.Candidate{c}
	if err := db.loadEducation(ctx, list, index); err != nil {
		return nil, err
	}
	if err := db.loadExperiences(ctx, list, index); err != nil {
		return nil, err
	}

	skills, err := db.GetCandidateSkills(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	list[0].Skills = skills

	projects, err := db.getProjects(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	list[0].Projects = projects

	return &list[0], nil
}

func (db *DB) getProjects(ctx context.Context, candidateID uuid.UUID) ([]types.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, description, technologies FROM projects WHERE candidate_id = $1`,
		candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.Title, &p.Description, &p.Technologies); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
