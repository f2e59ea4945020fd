package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeExtraction(t *testing.T) {
	prompt := ResumeExtraction("Jane Smith\nBackend Engineer")

	assert.Contains(t, prompt, "Jane Smith\nBackend Engineer")
	assert.Contains(t, prompt, "experience_summary")
	assert.False(t, strings.Contains(prompt, "{{.ResumeText}}"))
}

func TestResumeExtractionEmptyText(t *testing.T) {
	prompt := ResumeExtraction("")

	assert.NotEmpty(t, prompt)
	assert.False(t, strings.Contains(prompt, "{{"))
}
