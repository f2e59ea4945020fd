package server

import (
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// CandidateSummary is the list-view projection of a candidate
type CandidateSummary struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Skills            []string `json:"skills"`
	ExperienceSummary string   `json:"experience_summary"`
	Filename          string   `json:"filename"`
}

// CandidateListResponse represents the response for GET /api/candidates
type CandidateListResponse struct {
	Success    bool               `json:"success"`
	Candidates []CandidateSummary `json:"candidates"`
}

// CandidateDetailResponse represents the response for GET /api/candidates/{id}
type CandidateDetailResponse struct {
	Success   bool             `json:"success"`
	Candidate *types.Candidate `json:"candidate"`
	Filename  string           `json:"filename"`
}

// handleListCandidates returns all parsed candidates
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.store.ListCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	summaries := make([]CandidateSummary, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]

		skills, err := s.store.GetCandidateSkills(r.Context(), c.ID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		names := make([]string, 0, len(skills))
		for _, skill := range skills {
			names = append(names, skill.Name)
		}

		summaries = append(summaries, CandidateSummary{
			ID:                c.ID.String(),
			Name:              c.Name,
			Email:             c.Email,
			Skills:            names,
			ExperienceSummary: c.ExperienceSummary,
			Filename:          baseName(c.ResumeFilePath),
		})
	}

	s.jsonResponse(w, http.StatusOK, CandidateListResponse{
		Success:    true,
		Candidates: summaries,
	})
}

// handleGetCandidate returns full details for one candidate
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, CandidateDetailResponse{
		Success:   true,
		Candidate: candidate,
		Filename:  baseName(candidate.ResumeFilePath),
	})
}

func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
