// Package schemas holds the JSON Schema assets for structured data artifacts,
// embedded at compile time so they travel with the binary.
package schemas

import _ "embed"

//go:embed parsed_resume.schema.json
var parsedResumeSchema string

// ParsedResume returns the JSON Schema for LLM resume extraction output
func ParsedResume() string {
	return parsedResumeSchema
}
