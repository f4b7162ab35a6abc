package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-analyzer/internal/types"
)

func sampleResult() *types.CVAnalysisResult {
	return &types.CVAnalysisResult{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane@example.com",
			Phone:     "+441234567890",
		},
		WorkExperience: []types.WorkExperience{
			{Role: "Senior Developer", Company: "TechCorp", StartDate: "2020-01", EndDate: "2023-12"},
			{Role: "Staff Engineer", Company: "Acme", StartDate: "2024-01", CurrentlyWorking: true},
		},
		Education: []types.Education{
			{Institution: "State University", Qualification: "BSc Computer Science", StartDate: "2012-09", EndDate: "2016-05"},
		},
		Skills: types.Skills{
			Technical: []string{"Go", "PostgreSQL"},
			Soft:      []string{"Communication"},
		},
		Summary: "Seasoned backend engineer.",
		CustomFieldsSuggestions: map[string]string{
			"notice_period": "1 month",
			"gender":        "",
		},
	}
}

func TestPrintAnalysisResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysisResult(sampleResult())
	out := buf.String()

	assert.Contains(t, out, "PERSONAL INFO")
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "WORK EXPERIENCE")
	assert.Contains(t, out, "Senior Developer")
	assert.Contains(t, out, "present")
	assert.Contains(t, out, "EDUCATION")
	assert.Contains(t, out, "State University")
	assert.Contains(t, out, "SKILLS")
	assert.Contains(t, out, "Go, PostgreSQL")
	assert.Contains(t, out, "CUSTOM FIELD SUGGESTIONS")
	assert.Contains(t, out, "notice_period: 1 month")
	assert.Contains(t, out, "gender: (none)")

	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintAnalysisResultNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysisResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintAnalysisResultEmptySectionsOmitted(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysisResult(&types.CVAnalysisResult{})
	out := buf.String()

	assert.Contains(t, out, "PERSONAL INFO")
	assert.NotContains(t, out, "WORK EXPERIENCE")
	assert.NotContains(t, out, "EDUCATION")
	assert.NotContains(t, out, "SKILLS")
	assert.NotContains(t, out, "CUSTOM FIELD SUGGESTIONS")
}

func TestWrapText(t *testing.T) {
	wrapped := wrapText(strings.Repeat("word ", 20), 20)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 20)
	}
}
