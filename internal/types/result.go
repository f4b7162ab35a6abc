// Package types provides type definitions for structured data used throughout the cv-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "regexp"

// DatePattern is the canonical month-precision date format for analysis results.
// Dates are "YYYY-MM" with a zero-padded month, or empty when unknown.
var DatePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// CVAnalysisResult represents the structured profile extracted from a CV document.
// It is produced fresh per analysis run and never mutated after construction.
type CVAnalysisResult struct {
	PersonalInfo            PersonalInfo      `json:"personalInfo"`
	WorkExperience          []WorkExperience  `json:"workExperience"`
	Education               []Education       `json:"education"`
	Skills                  Skills            `json:"skills"`
	Summary                 string            `json:"summary"`
	CustomFieldsSuggestions map[string]string `json:"customFieldsSuggestions"`
}

// PersonalInfo holds the candidate's contact details. Absent fields are empty
// strings, never null, to simplify downstream form binding.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// WorkExperience represents one employment entry, in document order.
// CurrentlyWorking=true means EndDate is not authoritative and is left empty.
type WorkExperience struct {
	Role             string `json:"role"`
	Company          string `json:"company"`
	StartDate        string `json:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
	Description      string `json:"description,omitempty"`
}

// Education represents one education entry, in document order.
type Education struct {
	Institution   string `json:"institution"`
	Qualification string `json:"qualification"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
}

// Skills groups extracted skills. Deduplication is not guaranteed.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// EmptyResult returns a structurally complete result with all collections
// initialized and one suggestion entry per custom field.
func EmptyResult(fields []CustomField) *CVAnalysisResult {
	suggestions := make(map[string]string, len(fields))
	for _, f := range fields {
		suggestions[f.FieldName] = ""
	}
	return &CVAnalysisResult{
		WorkExperience:          []WorkExperience{},
		Education:               []Education{},
		Skills:                  Skills{Technical: []string{}, Soft: []string{}},
		CustomFieldsSuggestions: suggestions,
	}
}
