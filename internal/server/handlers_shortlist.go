package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/shortlist"
	"github.com/jonathan/resume-screener/internal/types"
)

// ShortlistRequest represents the body for POST /api/shortlisted.
// Every candidate clearing the match threshold for the role is recorded.
type ShortlistRequest struct {
	Role string `json:"role"`
}

// ShortlistRecordResponse represents the response for POST /api/shortlisted
type ShortlistRecordResponse struct {
	Success   bool   `json:"success"`
	Role      string `json:"role"`
	Qualified int    `json:"qualified"`
	Recorded  int    `json:"recorded"`
}

// ShortlistListResponse represents the response for GET /api/shortlisted
type ShortlistListResponse struct {
	Success               bool                    `json:"success"`
	Count                 int                     `json:"count"`
	ShortlistedCandidates []types.ShortlistRecord `json:"shortlisted_candidates"`
}

// handleListShortlisted returns all shortlisted candidates
func (s *Server) handleListShortlisted(w http.ResponseWriter, r *http.Request) {
	records, err := s.shortlist.List(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ShortlistListResponse{
		Success:               true,
		Count:                 len(records),
		ShortlistedCandidates: records,
	})
}

// handleRecordShortlist ranks candidates for a role and records everyone who
// clears the match threshold
func (s *Server) handleRecordShortlist(w http.ResponseWriter, r *http.Request) {
	var req ShortlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Role == "" {
		s.errorResponse(w, http.StatusBadRequest, "Field 'role' is required")
		return
	}

	matches, err := s.engine.SearchByRole(r.Context(), req.Role)
	if err != nil {
		var notFound *ranking.RoleNotFoundError
		if errors.As(err, &notFound) {
			s.jsonResponse(w, http.StatusNotFound, RoleNotFoundResponse{
				Success:        false,
				Error:          notFound.Error(),
				AvailableRoles: notFound.Available,
			})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	batch := make([]shortlist.Candidate, 0, len(matches.Candidates))
	for _, result := range matches.Candidates {
		candidate, err := s.store.GetCandidate(r.Context(), result.CandidateID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		if candidate == nil {
			continue
		}

		skills := make([]string, 0, len(candidate.Skills))
		for _, skill := range candidate.Skills {
			skills = append(skills, skill.Name)
		}
		projects := make([]string, 0, len(candidate.Projects))
		for _, project := range candidate.Projects {
			projects = append(projects, project.Title)
		}

		batch = append(batch, shortlist.Candidate{
			Name:        candidate.Name,
			Experiences: candidate.Experiences,
			Skills:      skills,
			Projects:    projects,
		})
	}

	recorded := s.recorder.RecordBatch(r.Context(), batch)

	s.jsonResponse(w, http.StatusOK, ShortlistRecordResponse{
		Success:   true,
		Role:      matches.Role.Title,
		Qualified: len(batch),
		Recorded:  recorded,
	})
}

// handleClearShortlisted removes every shortlist record
func (s *Server) handleClearShortlisted(w http.ResponseWriter, r *http.Request) {
	if err := s.shortlist.Clear(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "All shortlisted candidates have been cleared",
	})
}
