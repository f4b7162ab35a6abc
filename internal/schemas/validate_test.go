package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCVAnalysis(t *testing.T) {
	tests := []struct {
		name     string
		document string
		valid    bool
	}{
		{
			name: "Complete document",
			document: `{
				"personalInfo": {"firstName": "Jane"},
				"workExperience": [{"role": "Dev"}],
				"education": [],
				"skills": {"technical": []},
				"summary": "text",
				"customFieldsSuggestions": {"f": "v"}
			}`,
			valid: true,
		},
		{
			name:     "Empty object",
			document: `{}`,
			valid:    true,
		},
		{
			name:     "personalInfo must be an object",
			document: `{"personalInfo": "Jane Smith"}`,
			valid:    false,
		},
		{
			name:     "workExperience must be an array",
			document: `{"workExperience": {"role": "Dev"}}`,
			valid:    false,
		},
		{
			name:     "workExperience items must be objects",
			document: `{"workExperience": ["Dev at Acme"]}`,
			valid:    false,
		},
		{
			name:     "customFieldsSuggestions must be an object",
			document: `{"customFieldsSuggestions": ["a", "b"]}`,
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCVAnalysis([]byte(tt.document))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateCVAnalysisMalformedJSON(t *testing.T) {
	err := ValidateCVAnalysis([]byte(`{"personalInfo":`))
	require.Error(t, err)
	var ve *ValidationError
	assert.NotErrorAs(t, err, &ve, "malformed JSON is not a field-level failure")
}
