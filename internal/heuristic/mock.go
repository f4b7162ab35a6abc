package heuristic

import (
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// MockCVText is the deterministic document text used when no AI credential is
// configured. The fallback analyzer recognizes it by its literal markers and
// returns a fixed result, which keeps local development and tests predictable
// without any network dependency.
const MockCVText = `Mock CV Content: This is extracted text from the CV document.

John Doe
john.doe@email.com
+15551234567

Professional Summary
Experienced software developer with a strong full-stack background.

Work Experience
Senior Developer at Tech Corp Jan 2020 - Dec 2023
Junior Developer at Startup Inc Jan 2018 - Dec 2020

Education
Bachelor of Science in Computer Science, State University 2014 - 2018

Technical Skills: JavaScript, React, Node.js, Python, SQL
Soft Skills: Communication, Teamwork, Problem Solving`

// isMockText reports whether the text is the canned development block.
func isMockText(text string) bool {
	return len(text) > 0 &&
		containsAll(text, "Mock CV Content", "John Doe", "john.doe@email.com")
}

func containsAll(text string, markers ...string) bool {
	for _, m := range markers {
		if !strings.Contains(text, m) {
			return false
		}
	}
	return true
}

// mockResult returns the fixed analysis for the mock block. Suggestions are
// still generated from the caller's field definitions so the completeness
// invariant holds.
func mockResult(jobTitle string, fields []types.CustomField) *types.CVAnalysisResult {
	result := &types.CVAnalysisResult{
		PersonalInfo: types.PersonalInfo{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john.doe@email.com",
			Phone:     "+15551234567",
		},
		WorkExperience: []types.WorkExperience{
			{Role: "Senior Developer", Company: "Tech Corp", StartDate: "2020-01", EndDate: "2023-12"},
			{Role: "Junior Developer", Company: "Startup Inc", StartDate: "2018-01", EndDate: "2020-12"},
		},
		Education: []types.Education{
			{Institution: "State University", Qualification: "Bachelor of Science in Computer Science", StartDate: "2014-09", EndDate: "2018-05"},
		},
		Skills: types.Skills{
			Technical: []string{"JavaScript", "React", "Node.js", "Python", "SQL"},
			Soft:      []string{"Communication", "Teamwork", "Problem Solving"},
		},
		Summary: "Experienced software developer with a strong full-stack background.",
	}
	result.CustomFieldsSuggestions = suggestCustomFields(MockCVText, jobTitle, fields, result)
	return result
}
