package db

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Skill categories assigned at ingestion.
const (
	CategoryProgramming = "programming"
	CategoryFramework   = "framework"
	CategoryTool        = "tool"
	CategorySoftSkill   = "soft_skill"
)

var (
	programmingKeywords = []string{"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin", "go", "golang", "rust", "typescript"}
	frameworkKeywords   = []string{"react", "angular", "vue", "django", "flask", "spring", "express", "rails", "laravel"}
	toolKeywords        = []string{"docker", "kubernetes", "aws", "azure", "gcp", "git", "jenkins", "terraform", "linux"}
)

// skillTokenSplitter breaks a skill name into words. "+" and "#" stay inside
// tokens so "c++" and "c#" survive as single words.
var skillTokenSplitter = regexp.MustCompile(`[^a-z0-9+#]+`)

// DetectSkillCategory buckets a skill name into programming, framework, tool
// or soft_skill. Keywords match whole words only, so "Django REST" is a
// framework hit and "MongoDB" is not a "go" hit.
func DetectSkillCategory(skillName string) string {
	tokens := make(map[string]bool)
	for _, tok := range skillTokenSplitter.Split(strings.ToLower(skillName), -1) {
		if tok != "" {
			tokens[tok] = true
		}
	}

	for _, kw := range programmingKeywords {
		if tokens[kw] {
			return CategoryProgramming
		}
	}
	for _, kw := range frameworkKeywords {
		if tokens[kw] {
			return CategoryFramework
		}
	}
	for _, kw := range toolKeywords {
		if tokens[kw] {
			return CategoryTool
		}
	}
	return CategorySoftSkill
}

// findOrCreateSkill finds an existing skill by normalized name or creates a
// new one, inside the given transaction.
func findOrCreateSkill(ctx context.Context, tx pgx.Tx, skillName string) (uuid.UUID, error) {
	normalized := skills.Normalize(skillName)
	if normalized == "" {
		return uuid.Nil, fmt.Errorf("skill name cannot be empty")
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx,
		`INSERT INTO skills (name, name_normalized, category)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (name_normalized) DO UPDATE SET name = skills.name
		 RETURNING id`,
		skillName, normalized, DetectSkillCategory(skillName),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to find or create skill: %w", err)
	}
	return id, nil
}

// GetCandidateSkills returns a candidate's skills ordered by normalized name.
func (db *DB) GetCandidateSkills(ctx context.Context, candidateID uuid.UUID) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT s.name, s.name_normalized, s.category
		 FROM skills s
		 JOIN candidate_skills cs ON cs.skill_id = s.id
		 WHERE cs.candidate_id = $1
		 ORDER BY s.name_normalized`,
		candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate skills: %w", err)
	}
	defer rows.Close()

	var result []types.Skill
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.Name, &s.NameNormalized, &s.Category); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
