// Package extraction implements the primary AI-based structured extraction of
// CV text. The path is all-or-nothing: any transport, parse, or validation
// failure returns a typed error and the caller falls back to the rule-based
// analyzer.
package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/llm"
	"github.com/jonathan/cv-analyzer/internal/prompts"
	"github.com/jonathan/cv-analyzer/internal/schemas"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// Analyze submits the CV text to the model and parses the reply into the
// canonical result shape. The custom field definitions are embedded in the
// prompt so the model can suggest an answer per field.
func Analyze(ctx context.Context, client llm.Client, cvText, jobTitle string, fields []types.CustomField) (*types.CVAnalysisResult, error) {
	if client == nil {
		return nil, &APICallError{Message: "LLM client is not configured"}
	}

	prompt := buildPrompt(cvText, jobTitle, fields)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	return ParseResponse(responseText, fields)
}

// buildPrompt constructs the extraction prompt from the embedded template.
func buildPrompt(cvText, jobTitle string, fields []types.CustomField) string {
	template := prompts.MustGet("cv.json", "analyze-cv")
	return prompts.Format(template, map[string]string{
		"CVText":       cvText,
		"JobTitle":     jobTitle,
		"CustomFields": describeFields(fields),
	})
}

// describeFields renders the custom field definitions as a prompt fragment,
// one line per field with its type, label, and options.
func describeFields(fields []types.CustomField) string {
	if len(fields) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(fmt.Sprintf("- %s (type: %s", f.FieldName, f.FieldType))
		if f.FieldLabel != "" {
			sb.WriteString(fmt.Sprintf(", label: %q", f.FieldLabel))
		}
		if len(f.FieldOptions) > 0 {
			sb.WriteString(fmt.Sprintf(", options: [%s]", strings.Join(f.FieldOptions, ", ")))
		}
		sb.WriteString(")\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// ParseResponse recovers the first top-level JSON object from the model
// reply, validates its shape, and normalizes it into a CVAnalysisResult.
func ParseResponse(responseText string, fields []types.CustomField) (*types.CVAnalysisResult, error) {
	jsonText := llm.ExtractJSONObject(llm.CleanJSONBlock(responseText))
	if jsonText == "" {
		return nil, &ParseError{Message: "no JSON object found in response"}
	}

	if err := schemas.ValidateCVAnalysis([]byte(jsonText)); err != nil {
		return nil, &ValidationError{
			Message: "response does not match the analysis schema",
			Cause:   err,
		}
	}

	result, err := normalizeResult([]byte(jsonText), fields)
	if err != nil {
		return nil, err
	}
	return result, nil
}
