// Package prompts embeds the LLM prompt templates used for resume field
// extraction. Templates live in JSON files keyed by prompt name, with
// {{.Name}} placeholders for substitution.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// parsingPrompts parses parsing.json once; the file is embedded, so a load
// failure is a build defect and surfaces as a panic on first use.
var parsingPrompts = sync.OnceValue(func() map[string]string {
	data, err := promptFiles.ReadFile("parsing.json")
	if err != nil {
		panic(fmt.Sprintf("failed to read prompt file parsing.json: %v", err))
	}
	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		panic(fmt.Sprintf("failed to parse prompt file parsing.json: %v", err))
	}
	return prompts
})

// ResumeExtraction returns the structured-extraction prompt with the cleaned
// resume text substituted in.
func ResumeExtraction(resumeText string) string {
	template, exists := parsingPrompts()["extract-resume"]
	if !exists {
		panic(`prompt key "extract-resume" not found in parsing.json`)
	}
	return strings.ReplaceAll(template, "{{.ResumeText}}", resumeText)
}
