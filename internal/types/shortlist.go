package types

import "time"

// ShortlistRecord is a compact persisted record of a shortlisted candidate.
// Skills and Projects are sorted, deduplicated, lowercase, comma-space-joined
// strings; the (CandidateName, Skills, Projects) tuple is unique in the store.
type ShortlistRecord struct {
	ID                  int64     `json:"id"`
	CandidateName       string    `json:"candidate_name"`
	WorkExperienceYears float64   `json:"work_experience_years"`
	Skills              string    `json:"skills"`
	Projects            string    `json:"projects"`
	CreatedAt           time.Time `json:"created_at"`
}
