package types

import "github.com/google/uuid"

// JobRole is a predefined role with its required skill set, loaded once from
// static configuration and treated as read-only.
type JobRole struct {
	Key    string   `json:"key" validate:"required"`
	Title  string   `json:"title" validate:"required"`
	Skills []string `json:"skills" validate:"required,min=1,dive,required"`
}

// MatchResult is the per-candidate outcome of a ranking query. It is produced
// per query and never persisted.
type MatchResult struct {
	CandidateID     uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	KeySkills       []string  `json:"key_skills"`
	MatchPercentage int       `json:"match_percentage"`
	MatchedSkills   []string  `json:"matched_skills,omitempty"`
	MissingSkills   []string  `json:"missing_skills,omitempty"`
	MatchedCount    int       `json:"matched_count"`
	TotalRequired   int       `json:"total_required"`
}
