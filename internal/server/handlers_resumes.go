package server

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// UploadResponse represents the response for POST /api/resumes
type UploadResponse struct {
	Success     bool   `json:"success"`
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Message     string `json:"message"`
}

// handleUploadResume accepts a multipart resume upload, extracts its text,
// parses it into structured fields and persists the candidate
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxFileSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'file' form field")
		return
	}
	defer func() { _ = file.Close() }()

	if !ingestion.IsSupported(header.Filename) {
		s.errorResponse(w, http.StatusBadRequest, "File type not supported")
		return
	}

	path, err := ingestion.SaveUpload(s.uploadDir, header.Filename, file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save file: "+err.Error())
		return
	}

	text, err := ingestion.ExtractText(path)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to extract text: "+err.Error())
		return
	}
	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusBadRequest, "No text could be extracted from the file")
		return
	}

	parsed := s.parseResume(r, text)

	candidateID, err := s.store.SaveParsedResume(r.Context(), *parsed, path, text)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save candidate: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, UploadResponse{
		Success:     true,
		CandidateID: candidateID.String(),
		Name:        parsed.Name,
		Message:     "Resume parsed successfully",
	})
}

// parseResume runs LLM extraction, degrading to regex extraction when no
// client is configured or the call fails
func (s *Server) parseResume(r *http.Request, text string) *types.ParsedResume {
	if s.llmClient == nil {
		return parsing.Fallback(text)
	}

	parsed, err := parsing.ParseResume(r.Context(), s.llmClient, text)
	if err != nil {
		log.Printf("LLM parsing failed, using fallback: %v", err)
		return parsing.Fallback(text)
	}
	return parsed
}

// mediaTypes maps resume file extensions for inline serving
var mediaTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".html": "text/html",
	".htm":  "text/html",
}

// handleCandidateFile serves the stored resume file for viewing
func (s *Server) handleCandidateFile(w http.ResponseWriter, r *http.Request) {
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
	if candidate == nil || candidate.ResumeFilePath == "" {
		s.errorResponse(w, http.StatusNotFound, "Resume file not found")
		return
	}

	ext := strings.ToLower(filepath.Ext(candidate.ResumeFilePath))
	mediaType, ok := mediaTypes[ext]
	if !ok {
		mediaType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Content-Disposition",
		`inline; filename="`+filepath.Base(candidate.ResumeFilePath)+`"`)
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, candidate.ResumeFilePath)
}
