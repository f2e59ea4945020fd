package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare json untouched",
			input:    `{"name": "Jane"}`,
			expected: `{"name": "Jane"}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"name\": \"Jane\"}\n```",
			expected: `{"name": "Jane"}`,
		},
		{
			name:     "generic fence",
			input:    "```\n{\"name\": \"Jane\"}\n```",
			expected: `{"name": "Jane"}`,
		},
		{
			name:     "fence with language identifier",
			input:    "```javascript\n{\"name\": \"Jane\"}\n```",
			expected: `{"name": "Jane"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n{}\n```\n  ",
			expected: "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
