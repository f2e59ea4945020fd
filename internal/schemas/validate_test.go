package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"skills": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["name"]
}`

func TestValidateJSONString(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "Jane", "skills": ["Go"]}`)
	assert.NoError(t, err)
}

func TestValidateJSONStringMissingRequired(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"skills": ["Go"]}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "name")
}

func TestValidateJSONStringWrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "Jane", "skills": "Go"}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "skills", validationErr.Errors[0].Field)
}

func TestValidateJSONStringBadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONStringBadDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{not json`)
	assert.Error(t, err)
}
