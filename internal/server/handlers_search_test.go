package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestHandleSearch(t *testing.T) {
	s, store := newTestServer(t)
	store.add(types.Candidate{Name: "Alice", Email: "alice@example.com"},
		"Python", "SQL")
	store.add(types.Candidate{Name: "Bob", Email: "bob@example.com"},
		"Java")

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=python,sql", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "python,sql", resp.Query)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Alice", resp.Results[0].Name)
	assert.Equal(t, 100, resp.Results[0].MatchPercentage)
}

func TestHandleSearchMissingQuery(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSearchEducationFilter(t *testing.T) {
	s, store := newTestServer(t)
	store.add(types.Candidate{
		Name:      "Alice",
		Education: []types.Education{{Degree: "B.Tech Computer Science"}},
	}, "Python")
	store.add(types.Candidate{Name: "Bob"}, "Python")

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=python&education=b.tech", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Alice", resp.Results[0].Name)
}

func TestHandleSearchByRole(t *testing.T) {
	s, store := newTestServer(t)
	store.add(types.Candidate{Name: "Alice"},
		"Python", "SQL", "REST API", "Docker")

	req := httptest.NewRequest(http.MethodGet, "/api/search-by-role?role=backend_developer", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp RoleSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "backend_developer", resp.RoleKey)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "Alice", resp.Results[0].Name)
}

func TestHandleSearchByRoleNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search-by-role?role=astronaut", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp RoleNotFoundResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.AvailableRoles)
}

func TestHandleSearchByRoleMissingParam(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search-by-role", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleJobRoles(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/job-roles", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp JobRolesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.JobRoles)

	keys := make([]string, 0, len(resp.JobRoles))
	for _, role := range resp.JobRoles {
		keys = append(keys, role.Key)
	}
	assert.Contains(t, keys, "backend_developer")
}
