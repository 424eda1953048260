// Package schemas validates structured LLM payloads against embedded JSON
// Schema documents before they are unmarshaled. A payload that fails
// validation is a protocol violation by the completion service.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names the embedded schema documents.
type Schema string

const (
	// CandidateProfile validates the field-extraction payload
	CandidateProfile Schema = "candidate_profile"
	// QuestionSet validates the question-generation payload
	QuestionSet Schema = "question_set"
)

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Schema Schema
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("payload does not match %s schema: %s", e.Schema, strings.Join(parts, "; "))
}

// Validate checks a JSON payload against the named embedded schema.
// Returns nil when the payload conforms, *ValidationError when it does not,
// and a plain error when the payload is not JSON at all.
func Validate(schema Schema, payload string) error {
	data, err := schemaFiles.ReadFile(string(schema) + ".schema.json")
	if err != nil {
		return fmt.Errorf("unknown schema %q: %w", schema, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(data),
		gojsonschema.NewStringLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to validate payload: %w", err)
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: schema}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
