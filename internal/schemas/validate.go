// Package schemas provides JSON Schema validation for structured data artifacts.
// The schema for the CV analysis result is embedded at compile time so replies
// from the model can be checked in-process before normalization.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed cv_analysis.schema.json
var cvAnalysisSchema string

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateCVAnalysis validates a JSON document against the embedded CV
// analysis result schema. Returns a *ValidationError listing field-level
// failures, or a plain error when the document is not valid JSON at all.
func ValidateCVAnalysis(document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(cvAnalysisSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
