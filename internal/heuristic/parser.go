package heuristic

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/cv-analyzer/internal/types"
)

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// phoneRegex is intentionally permissive and takes the first match in the
	// document, so stray years or IDs ahead of a real phone number will win.
	// This mirrors the long-standing behavior callers depend on; see DESIGN.md.
	phoneRegex = regexp.MustCompile(`[+]?[1-9][0-9]{0,15}`)
)

// Analyze runs the rule-based extraction over raw CV text. It never fails:
// the worst case is a structurally complete result with empty fields. The
// job title and custom fields only influence the suggestion map.
func Analyze(cvText, jobTitle string, fields []types.CustomField) *types.CVAnalysisResult {
	if isMockText(cvText) {
		return mockResult(jobTitle, fields)
	}

	result := types.EmptyResult(fields)

	for _, raw := range strings.Split(cvText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if result.PersonalInfo.Email == "" {
			if email := emailRegex.FindString(line); email != "" {
				result.PersonalInfo.Email = email
			}
		}
		if result.PersonalInfo.Phone == "" {
			if phone := phoneRegex.FindString(line); phone != "" {
				result.PersonalInfo.Phone = phone
			}
		}
		if result.PersonalInfo.FirstName == "" && strings.Contains(line, "@") {
			first, last := nameFromEmailLine(line)
			result.PersonalInfo.FirstName = first
			result.PersonalInfo.LastName = last
		}

		if edu := parseEducationLine(line); edu != nil {
			result.Education = append(result.Education, *edu)
			continue
		}
		if exp := parseExperienceLine(line); exp != nil {
			result.WorkExperience = append(result.WorkExperience, *exp)
		}
	}

	result.Skills.Technical = matchSkills(cvText, technicalSkillKeywords)
	result.Skills.Soft = matchSkills(cvText, softSkillKeywords)
	result.CustomFieldsSuggestions = suggestCustomFields(cvText, jobTitle, fields, result)

	return result
}

// nameFromEmailLine takes the first two whitespace-separated tokens that do
// not contain "@" as first and last name.
func nameFromEmailLine(line string) (string, string) {
	var names []string
	for _, token := range strings.Fields(line) {
		if strings.Contains(token, "@") {
			continue
		}
		names = append(names, strings.Trim(token, ",;:"))
		if len(names) == 2 {
			break
		}
	}
	switch len(names) {
	case 0:
		return "", ""
	case 1:
		return names[0], ""
	default:
		return names[0], names[1]
	}
}

// matchSkills returns the keywords present in the text, preserving the
// canonical casing of the table. Single-word keywords match on word
// boundaries so short names do not fire inside longer words.
func matchSkills(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	words := wordSet(lower)

	found := []string{}
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		if strings.ContainsAny(kwLower, " ./+#") {
			if strings.Contains(lower, kwLower) {
				found = append(found, kw)
			}
		} else if words[kwLower] {
			found = append(found, kw)
		}
	}
	return found
}

func wordSet(lower string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	}) {
		set[w] = true
	}
	return set
}

// detectIndustry scores each known industry by keyword hits over the text and
// returns the best match, or empty when nothing scores.
func detectIndustry(text string) string {
	lower := strings.ToLower(text)
	best := ""
	bestScore := 0
	// Iterate deterministically so ties resolve the same way every run.
	for _, industry := range industryOrder {
		score := 0
		for _, kw := range industryKeywords[industry] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = industry
			bestScore = score
		}
	}
	return best
}

// industryOrder fixes the iteration order over industryKeywords.
var industryOrder = []string{
	"Technology", "Finance", "Healthcare", "Education", "Retail",
	"Manufacturing", "Marketing", "Construction", "Hospitality", "Legal",
}

// now is replaceable in tests so tenure math stays deterministic.
var now = time.Now
