package heuristic

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// defaultSuggestion is the free-text answer when no category matches.
const defaultSuggestion = "Based on CV content"

// suggestCustomFields produces one best-effort suggestion per caller-supplied
// field. The returned map's key set is always exactly the input field names.
func suggestCustomFields(cvText, jobTitle string, fields []types.CustomField, result *types.CVAnalysisResult) map[string]string {
	suggestions := make(map[string]string, len(fields))
	totalYears := totalTenure(result.WorkExperience, now())

	for _, f := range fields {
		if f.FieldType == types.FieldSelectOne && len(f.FieldOptions) > 0 {
			suggestions[f.FieldName] = suggestChoice(cvText, f, totalYears, result)
		} else {
			suggestions[f.FieldName] = suggestFreeText(cvText, f, totalYears, result)
		}
	}
	return suggestions
}

// suggestChoice picks the option best matching the field's semantic category,
// falling back to the first option when nothing matches.
func suggestChoice(cvText string, f types.CustomField, totalYears float64, result *types.CVAnalysisResult) string {
	semantic := fieldSemantic(f)
	lower := strings.ToLower(cvText)

	switch {
	case containsAny(semantic, []string{"gender", "sex"}):
		return pickOption(f.FieldOptions, genderKeywords(lower)...)

	case containsAny(semantic, []string{"education", "degree", "qualification"}):
		return pickOption(f.FieldOptions, highestEducationKeywords(lower, result.Education)...)

	case containsAny(semantic, []string{"experience", "seniority", "level"}):
		return pickOption(f.FieldOptions, tenureBucketKeywords(totalYears)...)

	case containsAny(semantic, []string{"industry", "sector"}):
		if industry := detectIndustry(cvText); industry != "" {
			return pickOption(f.FieldOptions, strings.ToLower(industry))
		}
		return f.FieldOptions[0]

	case containsAny(semantic, []string{"availability", "notice", "join"}):
		if anyCurrentlyWorking(result.WorkExperience) {
			return pickOption(f.FieldOptions, "notice", "month", "week")
		}
		return pickOption(f.FieldOptions, "immediate", "now", "available")

	case containsAny(semantic, []string{"remote", "work location", "workplace", "work mode"}):
		return pickOption(f.FieldOptions, workModeKeywords(lower)...)

	default:
		return f.FieldOptions[0]
	}
}

// suggestFreeText builds a short answer from extracted entities for
// non-choice fields.
func suggestFreeText(cvText string, f types.CustomField, totalYears float64, result *types.CVAnalysisResult) string {
	semantic := fieldSemantic(f)

	switch {
	case containsAny(semantic, []string{"management", "leadership"}):
		mgmtYears := managementTenure(result.WorkExperience, now())
		if mgmtYears > 0 {
			return fmt.Sprintf("%.1f years of management experience", mgmtYears)
		}
		return "No management experience mentioned"

	case containsAny(semantic, []string{"experience", "years"}):
		if totalYears > 0 {
			return fmt.Sprintf("%.1f years of professional experience", totalYears)
		}
		return defaultSuggestion

	case strings.Contains(semantic, "skill"):
		skills := result.Skills.Technical
		if containsAny(semantic, []string{"soft", "interpersonal"}) {
			skills = result.Skills.Soft
		}
		if len(skills) > 0 {
			return strings.Join(skills, ", ")
		}
		return defaultSuggestion

	case containsAny(semantic, []string{"industry", "sector"}):
		if industry := detectIndustry(cvText); industry != "" {
			return industry
		}
		return defaultSuggestion

	case containsAny(semantic, []string{"certification", "certificate", "license"}):
		if certs := certificationLines(cvText); len(certs) > 0 {
			return strings.Join(certs, "; ")
		}
		return defaultSuggestion

	case strings.Contains(semantic, "language"):
		if langs := matchSkills(cvText, languageNames); len(langs) > 0 {
			return strings.Join(langs, ", ")
		}
		return defaultSuggestion

	default:
		return defaultSuggestion
	}
}

// fieldSemantic is the lowercase haystack used to categorize a field.
// Underscores in field names are treated as spaces so snake_case names match
// the category keywords.
func fieldSemantic(f types.CustomField) string {
	name := strings.ReplaceAll(f.FieldName, "_", " ")
	return strings.ToLower(name + " " + f.FieldLabel)
}

// pickOption returns the first option whose lowercase form contains any of
// the keywords, or the first option when none match.
func pickOption(options []string, keywords ...string) string {
	for _, kw := range keywords {
		for _, opt := range options {
			if kw != "" && strings.Contains(strings.ToLower(opt), kw) {
				return opt
			}
		}
	}
	return options[0]
}

// genderKeywords infers option keywords from pronoun usage.
func genderKeywords(lower string) []string {
	words := wordSet(lower)
	masculine := words["he"] || words["him"] || words["his"]
	feminine := words["she"] || words["her"] || words["hers"]
	switch {
	case masculine && !feminine:
		return []string{"male", "man"}
	case feminine && !masculine:
		return []string{"female", "woman"}
	default:
		return []string{"prefer not", "other"}
	}
}

// tenureBucketKeywords maps total tenure to experience-level option keywords.
// Buckets: <1 entry, 1-3 junior, 3-6 mid, 6-10 senior, 10+ expert.
func tenureBucketKeywords(years float64) []string {
	switch {
	case years < 1:
		return []string{"entry", "graduate", "trainee"}
	case years < 3:
		return []string{"junior"}
	case years < 6:
		return []string{"mid", "intermediate"}
	case years < 10:
		return []string{"senior"}
	default:
		return []string{"expert", "lead", "principal", "senior"}
	}
}

// educationRanks orders qualification keywords from highest to lowest.
var educationRanks = []struct {
	keyword string
	options []string
}{
	{"phd", []string{"phd", "doctorate", "doctoral"}},
	{"doctorate", []string{"phd", "doctorate", "doctoral"}},
	{"master", []string{"master", "msc", "postgraduate"}},
	{"bachelor", []string{"bachelor", "bsc", "undergraduate"}},
	{"associate", []string{"associate"}},
	{"diploma", []string{"diploma"}},
	{"certificate", []string{"certificate"}},
	{"high school", []string{"high school", "secondary"}},
}

// highestEducationKeywords returns option keywords for the highest
// qualification found in the education entries or the raw text.
func highestEducationKeywords(lower string, education []types.Education) []string {
	haystack := lower
	for _, edu := range education {
		haystack += " " + strings.ToLower(edu.Qualification)
	}
	for _, rank := range educationRanks {
		if strings.Contains(haystack, rank.keyword) {
			return rank.options
		}
	}
	return nil
}

// workModeKeywords infers remote/hybrid/onsite preference from the text.
func workModeKeywords(lower string) []string {
	switch {
	case strings.Contains(lower, "remote"):
		return []string{"remote"}
	case strings.Contains(lower, "hybrid"):
		return []string{"hybrid"}
	default:
		return []string{"onsite", "on-site", "office"}
	}
}

// certificationLines collects lines mentioning certifications.
func certificationLines(cvText string) []string {
	var certs []string
	for _, raw := range strings.Split(cvText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "certified") || strings.Contains(lower, "certification") {
			certs = append(certs, line)
		}
	}
	return certs
}

func anyCurrentlyWorking(entries []types.WorkExperience) bool {
	for _, e := range entries {
		if e.CurrentlyWorking {
			return true
		}
	}
	return false
}

// totalTenure sums elapsed fractional years over entries with a start date,
// using ref for open-ended positions, rounded to one decimal.
func totalTenure(entries []types.WorkExperience, ref time.Time) float64 {
	var months float64
	for _, e := range entries {
		months += entryMonths(e, ref)
	}
	return round1(months / 12)
}

// managementTenure is totalTenure restricted to management roles.
func managementTenure(entries []types.WorkExperience, ref time.Time) float64 {
	var months float64
	for _, e := range entries {
		if isManagementRole(e) {
			months += entryMonths(e, ref)
		}
	}
	return round1(months / 12)
}

func isManagementRole(e types.WorkExperience) bool {
	lower := strings.ToLower(e.Role + " " + e.Description)
	return containsAny(lower, managementKeywords)
}

var yearMonthRegex = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// entryMonths returns the elapsed months of one entry. Entries without a
// parseable start contribute nothing; open-ended entries run until ref.
func entryMonths(e types.WorkExperience, ref time.Time) float64 {
	start, ok := parseYearMonth(e.StartDate)
	if !ok {
		return 0
	}
	end := ref
	if !e.CurrentlyWorking {
		parsed, ok := parseYearMonth(e.EndDate)
		if !ok {
			return 0
		}
		// Count the end month as worked in full.
		end = parsed.AddDate(0, 1, 0)
	}
	months := end.Sub(start).Hours() / 24 / 30.44
	if months < 0 {
		return 0
	}
	return months
}

func parseYearMonth(s string) (time.Time, bool) {
	m := yearMonthRegex.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
