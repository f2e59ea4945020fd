package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func addBackendCandidate(store *fakeStore, name string) {
	store.add(types.Candidate{
		Name: name,
		Experiences: []types.Experience{
			{JobTitle: "Engineer", Company: "Acme", Duration: "2 years"},
		},
		Projects: []types.Project{{Title: "Search Service"}},
	}, "Python", "SQL", "REST API", "Docker")
}

func TestHandleRecordShortlist(t *testing.T) {
	s, store := newTestServer(t)
	addBackendCandidate(store, "Alice")
	store.add(types.Candidate{Name: "Bob"}, "Photoshop") // does not qualify

	req := httptest.NewRequest(http.MethodPost, "/api/shortlisted",
		strings.NewReader(`{"role": "backend_developer"}`))
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ShortlistRecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Backend Developer", resp.Role)
	assert.Equal(t, 1, resp.Qualified)
	assert.Equal(t, 1, resp.Recorded)

	records, err := s.shortlist.List(req.Context())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].CandidateName)
	assert.InDelta(t, 2.0, records[0].WorkExperienceYears, 0.01)
	assert.Contains(t, records[0].Projects, "search service")
}

func TestHandleRecordShortlistIdempotent(t *testing.T) {
	s, store := newTestServer(t)
	addBackendCandidate(store, "Alice")

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/shortlisted",
			strings.NewReader(`{"role": "backend_developer"}`))
		w := httptest.NewRecorder()
		s.routes().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	records, err := s.shortlist.List(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	require.NoError(t, err)
	assert.Len(t, records, 1, "re-recording the same candidate must not duplicate")
}

func TestHandleRecordShortlistUnknownRole(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/shortlisted",
		strings.NewReader(`{"role": "astronaut"}`))
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp RoleNotFoundResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AvailableRoles)
}

func TestHandleRecordShortlistBadBody(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/shortlisted", strings.NewReader("{"))
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListAndClearShortlisted(t *testing.T) {
	s, store := newTestServer(t)
	addBackendCandidate(store, "Alice")

	record := httptest.NewRequest(http.MethodPost, "/api/shortlisted",
		strings.NewReader(`{"role": "backend_developer"}`))
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, record)
	require.Equal(t, http.StatusOK, w.Code)

	list := httptest.NewRequest(http.MethodGet, "/api/shortlisted", nil)
	w = httptest.NewRecorder()
	s.routes().ServeHTTP(w, list)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp ShortlistListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, 1, listResp.Count)

	clearReq := httptest.NewRequest(http.MethodDelete, "/api/shortlisted", nil)
	w = httptest.NewRecorder()
	s.routes().ServeHTTP(w, clearReq)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	s.routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/shortlisted", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, 0, listResp.Count)
}
