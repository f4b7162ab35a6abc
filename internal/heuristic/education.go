package heuristic

import (
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
)

const (
	unknownInstitution   = "Unknown Institution"
	unknownQualification = "Unknown Qualification"
)

// parseEducationLine attempts to read one line as an education entry.
// Detection is gated on degree/institution keywords; a bare year expands to
// the academic Sep-May span rather than the calendar year.
func parseEducationLine(line string) *types.Education {
	lower := strings.ToLower(line)
	if !containsAny(lower, educationKeywords) {
		return nil
	}

	dates, span := extractDateRange(line, true)
	rest := stripDateSpan(line, span)

	// A dateless single word is a section header, not an entry.
	if dates == nil && len(strings.Fields(rest)) < 2 {
		return nil
	}

	institution, qualification := splitEducation(rest)
	if institution == unknownInstitution && qualification == unknownQualification {
		return nil
	}

	entry := &types.Education{Institution: institution, Qualification: qualification}
	if dates != nil {
		entry.StartDate = dates.Start
		entry.EndDate = dates.End
	}
	return entry
}

// splitEducation divides a date-stripped line into institution and
// qualification. When a separator is found, the side naming a school-like
// entity becomes the institution; the conventional CV order
// ("BSc Computer Science, State University") is the default.
func splitEducation(rest string) (string, string) {
	for _, sep := range educationSeparators {
		idx := strings.Index(rest, sep)
		if idx < 0 {
			continue
		}
		left := cleanSegment(rest[:idx])
		right := cleanSegment(rest[idx+len(sep):])
		if left == "" || right == "" {
			continue
		}
		if isInstitution(left) && !isInstitution(right) {
			return left, right
		}
		return right, left
	}

	rest = cleanSegment(rest)
	if isInstitution(rest) {
		return rest, unknownQualification
	}
	if rest != "" {
		return unknownInstitution, rest
	}
	return unknownInstitution, unknownQualification
}

func isInstitution(segment string) bool {
	return containsAny(strings.ToLower(segment), institutionKeywords)
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
