package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

// SearchResponse represents the response for GET /api/search
type SearchResponse struct {
	Success bool                `json:"success"`
	Query   string              `json:"query"`
	Results []types.MatchResult `json:"results"`
	Count   int                 `json:"count"`
}

// RoleSearchResponse represents the response for GET /api/search-by-role
type RoleSearchResponse struct {
	Success bool                `json:"success"`
	Role    string              `json:"role"`
	RoleKey string              `json:"role_key"`
	Results []types.MatchResult `json:"results"`
	Count   int                 `json:"count"`
}

// RoleNotFoundResponse carries the available keys alongside the error
type RoleNotFoundResponse struct {
	Success        bool     `json:"success"`
	Error          string   `json:"error"`
	AvailableRoles []string `json:"available_roles"`
}

// JobRolesResponse represents the response for GET /api/job-roles
type JobRolesResponse struct {
	Success  bool            `json:"success"`
	JobRoles []types.JobRole `json:"job_roles"`
}

// handleSearch ranks candidates against a free-text skill query
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.errorResponse(w, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	filters := ranking.Filters{
		Education: r.URL.Query().Get("education"),
	}

	results, err := s.engine.Search(r.Context(), query, filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SearchResponse{
		Success: true,
		Query:   query,
		Results: results,
		Count:   len(results),
	})
}

// handleSearchByRole ranks candidates against a named role's skill profile
func (s *Server) handleSearchByRole(w http.ResponseWriter, r *http.Request) {
	roleKey := r.URL.Query().Get("role")
	if roleKey == "" {
		s.errorResponse(w, http.StatusBadRequest, "Query parameter 'role' is required")
		return
	}

	matches, err := s.engine.SearchByRole(r.Context(), roleKey)
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

	s.jsonResponse(w, http.StatusOK, RoleSearchResponse{
		Success: true,
		Role:    matches.Role.Title,
		RoleKey: matches.Role.Key,
		Results: matches.Candidates,
		Count:   len(matches.Candidates),
	})
}

// handleJobRoles lists the role catalog
func (s *Server) handleJobRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, JobRolesResponse{
		Success:  true,
		JobRoles: s.catalog.List(),
	})
}
