package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestPrintParsedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ParsedResume{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Skills: []string{"Python", "SQL", "Docker"},
		Experience: []types.Experience{
			{JobTitle: "Backend Engineer", Company: "Acme", Duration: "Jan 2020 - Mar 2022"},
		},
	}
	p.PrintParsedResume(resume)

	output := buf.String()
	assert.Contains(t, output, "Parsed Resume")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Skills (3):")
	assert.Contains(t, output, "- Python")
	assert.Contains(t, output, "Backend Engineer @ Acme")
	assert.Contains(t, output, "┌")
	assert.Contains(t, output, "└")
}

func TestPrintParsedResumeTruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ParsedResume{
		Name:   "Jane Doe",
		Skills: []string{"a", "b", "c", "d", "e", "f", "g"},
	}
	p.PrintParsedResume(resume)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintParsedResumeNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.MatchResult{
		{
			CandidateID:     uuid.New(),
			Name:            "Jane Doe",
			MatchPercentage: 80,
			MatchedSkills:   []string{"python", "sql"},
			MissingSkills:   []string{"docker"},
			MatchedCount:    4,
			TotalRequired:   5,
		},
	}
	p.PrintMatchResults(results)

	output := buf.String()
	assert.Contains(t, output, "Ranked Candidates (1)")
	assert.Contains(t, output, "1. Jane Doe  80%")
	assert.Contains(t, output, "matched: python, sql")
	assert.Contains(t, output, "missing: docker")
}

func TestPrintMatchResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResults(nil)

	output := buf.String()
	assert.Contains(t, output, "Ranked Candidates (0)")
	assert.Contains(t, output, "No candidates cleared the match threshold.")
}
