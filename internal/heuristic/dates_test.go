package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDateRange(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		academic bool
		expected *DateRange
	}{
		{
			name:     "Month-year range",
			line:     "Senior Developer at TechCorp Jan 2020 - Dec 2023",
			expected: &DateRange{Start: "2020-01", End: "2023-12"},
		},
		{
			name:     "Full month names",
			line:     "Analyst at BigBank January 2019 to March 2021",
			expected: &DateRange{Start: "2019-01", End: "2021-03"},
		},
		{
			name:     "Month-year to present",
			line:     "Engineer at Acme Feb 2021 - Present",
			expected: &DateRange{Start: "2021-02", Current: true},
		},
		{
			name:     "Year range",
			line:     "Consultant 2015 - 2018",
			expected: &DateRange{Start: "2015-01", End: "2018-12"},
		},
		{
			name:     "Year to present",
			line:     "Developer 2019 - present",
			expected: &DateRange{Start: "2019-01", Current: true},
		},
		{
			name:     "Since year",
			line:     "Team Lead since 2022",
			expected: &DateRange{Start: "2022-01", Current: true},
		},
		{
			name:     "Single month-year beats bare year",
			line:     "Graduated May 2019",
			expected: &DateRange{Start: "2019-05"},
		},
		{
			name:     "Bare year as calendar year",
			line:     "Freelance work 2017",
			expected: &DateRange{Start: "2017-01", End: "2017-12"},
		},
		{
			name:     "Bare year as academic year",
			line:     "Bachelor of Arts 2016",
			academic: true,
			expected: &DateRange{Start: "2016-09", End: "2016-05"},
		},
		{
			name:     "En dash separator",
			line:     "Manager Mar 2018 – Jun 2020",
			expected: &DateRange{Start: "2018-03", End: "2020-06"},
		},
		{
			name:     "No date",
			line:     "Senior Developer at TechCorp",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, span := extractDateRange(tt.line, tt.academic)
			if tt.expected == nil {
				assert.Nil(t, dr)
				assert.Empty(t, span)
				return
			}
			require.NotNil(t, dr)
			assert.Equal(t, *tt.expected, *dr)
			assert.NotEmpty(t, span, "matched span should be reported for stripping")
		})
	}
}

func TestStripDateSpan(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		span     string
		expected string
	}{
		{
			name:     "Trailing range",
			line:     "Senior Developer at TechCorp Jan 2020 - Dec 2023",
			span:     "Jan 2020 - Dec 2023",
			expected: "Senior Developer at TechCorp",
		},
		{
			name:     "Parenthesized range leaves no debris",
			line:     "Engineer at Acme (2019 - 2021)",
			span:     "2019 - 2021",
			expected: "Engineer at Acme",
		},
		{
			name:     "Empty span is a no-op",
			line:     "Engineer at Acme",
			span:     "",
			expected: "Engineer at Acme",
		},
		{
			name:     "Mid-line span collapses whitespace",
			line:     "Jan 2020 - Dec 2023 Senior Developer at TechCorp",
			span:     "Jan 2020 - Dec 2023",
			expected: "Senior Developer at TechCorp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripDateSpan(tt.line, tt.span))
		})
	}
}

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"Jan", "01", true},
		{"january", "01", true},
		{"Sept", "09", true},
		{"Dec.", "12", true},
		{"OCT", "10", true},
		{"notamonth", "", false},
	}

	for _, tt := range tests {
		num, ok := monthNumber(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.expected, num, tt.input)
	}
}
