package heuristic

import (
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// Placeholder values emitted when role/company extraction finds nothing.
// Candidates whose role resolves to the placeholder are discarded.
const (
	unknownRole    = "Unknown Role"
	unknownCompany = "Unknown Company"
)

// parseExperienceLine attempts to read one line as a work experience entry.
// Returns nil when the line is not a plausible candidate.
func parseExperienceLine(line string) *types.WorkExperience {
	lower := strings.ToLower(line)
	for _, marker := range nonExperienceMarkers {
		if strings.Contains(lower, marker) {
			return nil
		}
	}

	dates, span := extractDateRange(line, false)
	rest := stripDateSpan(line, span)

	if dates == nil && !looksLikeExperience(lower) {
		return nil
	}

	role, company := splitRoleCompany(rest)
	if role == unknownRole {
		return nil
	}

	entry := &types.WorkExperience{Role: role, Company: company}
	if dates != nil {
		entry.StartDate = dates.Start
		entry.CurrentlyWorking = dates.Current
		if !dates.Current {
			entry.EndDate = dates.End
		}
	}
	return entry
}

// looksLikeExperience admits a dateless line when it mentions a known job
// title or company indicator.
func looksLikeExperience(lower string) bool {
	for _, kw := range jobTitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, indicator := range companyIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// splitRoleCompany divides the date-stripped line into role and company.
// The first separator present wins; without one, a trailing run of words
// ending in a corporate suffix is taken as the company.
func splitRoleCompany(rest string) (string, string) {
	for _, sep := range roleCompanySeparators {
		if idx := strings.Index(rest, sep); idx >= 0 {
			role := cleanSegment(rest[:idx])
			company := cleanSegment(rest[idx+len(sep):])
			return orUnknown(role, unknownRole), orUnknown(company, unknownCompany)
		}
	}

	words := strings.Fields(rest)
	suffixAt := -1
	for i, w := range words {
		if isCorporateSuffix(w) {
			suffixAt = i
		}
	}
	if suffixAt >= 0 {
		companyStart := suffixAt - 1
		if companyStart < 0 {
			companyStart = 0
		}
		role := cleanSegment(strings.Join(words[:companyStart], " "))
		company := cleanSegment(strings.Join(words[companyStart:], " "))
		return orUnknown(role, unknownRole), orUnknown(company, unknownCompany)
	}

	return orUnknown(cleanSegment(rest), unknownRole), unknownCompany
}

func isCorporateSuffix(word string) bool {
	w := strings.ToLower(strings.Trim(word, ".,;"))
	for _, suffix := range corporateSuffixes {
		if w == suffix {
			return true
		}
	}
	return false
}

func cleanSegment(s string) string {
	return strings.Trim(strings.TrimSpace(s), ",;|•-–—")
}

func orUnknown(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
