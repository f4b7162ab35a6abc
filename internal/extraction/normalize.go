package extraction

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// rawResult mirrors the reply shape with loose typing so malformed leaf
// values can be coerced instead of failing the whole parse.
type rawResult struct {
	PersonalInfo            map[string]any   `json:"personalInfo"`
	WorkExperience          []map[string]any `json:"workExperience"`
	Education               []map[string]any `json:"education"`
	Skills                  map[string]any   `json:"skills"`
	Summary                 any              `json:"summary"`
	CustomFieldsSuggestions map[string]any   `json:"customFieldsSuggestions"`
}

// normalizeResult coerces the validated JSON document into the canonical
// result: missing collections become empty, missing strings become empty,
// malformed dates are dropped, and the suggestion map is reconciled to
// exactly the caller's field names.
func normalizeResult(document []byte, fields []types.CustomField) (*types.CVAnalysisResult, error) {
	var raw rawResult
	if err := json.Unmarshal(document, &raw); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	result := types.EmptyResult(fields)

	result.PersonalInfo = types.PersonalInfo{
		FirstName: asString(raw.PersonalInfo["firstName"]),
		LastName:  asString(raw.PersonalInfo["lastName"]),
		Email:     asString(raw.PersonalInfo["email"]),
		Phone:     asString(raw.PersonalInfo["phone"]),
	}

	for _, entry := range raw.WorkExperience {
		exp := types.WorkExperience{
			Role:             asString(entry["role"]),
			Company:          asString(entry["company"]),
			StartDate:        asDate(entry["startDate"]),
			EndDate:          asDate(entry["endDate"]),
			CurrentlyWorking: asBool(entry["currentlyWorking"]),
			Description:      asString(entry["description"]),
		}
		if exp.CurrentlyWorking {
			exp.EndDate = ""
		}
		result.WorkExperience = append(result.WorkExperience, exp)
	}

	for _, entry := range raw.Education {
		result.Education = append(result.Education, types.Education{
			Institution:   asString(entry["institution"]),
			Qualification: asString(entry["qualification"]),
			StartDate:     asDate(entry["startDate"]),
			EndDate:       asDate(entry["endDate"]),
		})
	}

	result.Skills = types.Skills{
		Technical: asStringSlice(raw.Skills["technical"]),
		Soft:      asStringSlice(raw.Skills["soft"]),
	}
	result.Summary = asString(raw.Summary)

	// The suggestion map must contain exactly the caller's field names:
	// extra keys from the model are dropped, missing keys become empty.
	for _, f := range fields {
		result.CustomFieldsSuggestions[f.FieldName] = asString(raw.CustomFieldsSuggestions[f.FieldName])
	}

	return result, nil
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	case bool:
		return fmt.Sprintf("%t", s)
	default:
		return ""
	}
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	default:
		return false
	}
}

func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

var looseDateRegex = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)

// asDate coerces a value to the canonical "YYYY-MM" form. Unpadded months
// are padded; anything else that does not fit the format is dropped.
func asDate(v any) string {
	s := asString(v)
	if s == "" {
		return ""
	}
	m := looseDateRegex.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	month := m[2]
	if len(month) == 1 {
		month = "0" + month
	}
	if month < "01" || month > "12" {
		return ""
	}
	return m[1] + "-" + month
}
