// Package parsing turns cleaned resume text into a structured ParsedResume
// using LLM extraction, with schema validation on the model output.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/prompts"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
	schemaassets "github.com/jonathan/resume-screener/schemas"
)

// maxPromptChars caps how much resume text is sent to the model
const maxPromptChars = 12000

// ParseResume extracts structured fields from cleaned resume text.
// The model output is schema-validated before unmarshaling; callers that
// need upload to survive API outages should fall back to Fallback on error.
func ParseResume(ctx context.Context, client llm.Client, cleanedText string) (*types.ParsedResume, error) {
	if client == nil {
		return nil, &APICallError{Message: "LLM client is required"}
	}

	prompt := buildExtractionPrompt(cleanedText)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	jsonText := extractJSONObject(llm.CleanJSONBlock(responseText))
	if jsonText == "" {
		return nil, &ParseError{Message: "no JSON object found in response"}
	}

	if err := schemas.ValidateJSONString(schemaassets.ParsedResume(), jsonText); err != nil {
		return nil, &ParseError{
			Message: "response failed schema validation",
			Cause:   err,
		}
	}

	var resume types.ParsedResume
	if err := json.Unmarshal([]byte(jsonText), &resume); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	postProcess(&resume)
	return &resume, nil
}

// buildExtractionPrompt constructs the prompt for structured extraction
func buildExtractionPrompt(resumeText string) string {
	if len(resumeText) > maxPromptChars {
		resumeText = resumeText[:maxPromptChars]
	}
	return prompts.ResumeExtraction(resumeText)
}

// extractJSONObject returns the outermost JSON object in text, or an empty
// string when none is present. Models sometimes surround the object with
// prose despite instructions.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// postProcess trims scalar fields and cleans the skill list
func postProcess(resume *types.ParsedResume) {
	resume.EnsureDefaults()

	resume.Name = strings.TrimSpace(resume.Name)
	resume.Email = strings.TrimSpace(resume.Email)
	resume.Phone = strings.TrimSpace(resume.Phone)
	resume.Location = strings.TrimSpace(resume.Location)
	resume.ExperienceSummary = strings.TrimSpace(resume.ExperienceSummary)

	// Drop blank skills and duplicates, keeping first-seen order
	seen := make(map[string]bool, len(resume.Skills))
	cleaned := make([]string, 0, len(resume.Skills))
	for _, skill := range resume.Skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, skill)
	}
	resume.Skills = cleaned
}
