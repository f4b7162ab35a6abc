package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-analyzer/internal/types"
)

func TestParseEducationLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected *types.Education
	}{
		{
			name: "Qualification comma institution with year range",
			line: "Bachelor of Science in Computer Science, State University 2014 - 2018",
			expected: &types.Education{
				Institution:   "State University",
				Qualification: "Bachelor of Science in Computer Science",
				StartDate:     "2014-01",
				EndDate:       "2018-12",
			},
		},
		{
			name: "Institution first",
			line: "State University - MSc Data Science 2019 - 2021",
			expected: &types.Education{
				Institution:   "State University",
				Qualification: "MSc Data Science",
				StartDate:     "2019-01",
				EndDate:       "2021-12",
			},
		},
		{
			name: "Bare year expands to academic span",
			line: "Master of Business Administration, Harvard Business School 2016",
			expected: &types.Education{
				Institution:   "Harvard Business School",
				Qualification: "Master of Business Administration",
				StartDate:     "2016-09",
				EndDate:       "2016-05",
			},
		},
		{
			name: "Institution only",
			line: "Stanford University",
			expected: &types.Education{
				Institution:   "Stanford University",
				Qualification: "Unknown Qualification",
			},
		},
		{
			name: "Qualification only",
			line: "Diploma in Graphic Design",
			expected: &types.Education{
				Institution:   "Unknown Institution",
				Qualification: "Diploma in Graphic Design",
			},
		},
		{
			name:     "No education keyword",
			line:     "Senior Developer at TechCorp Jan 2020 - Dec 2023",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := parseEducationLine(tt.line)
			if tt.expected == nil {
				assert.Nil(t, entry)
				return
			}
			require.NotNil(t, entry)
			assert.Equal(t, *tt.expected, *entry)
		})
	}
}

func TestSplitEducation(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		institution   string
		qualification string
	}{
		{
			name:          "Conventional order",
			input:         "BSc Computer Science, State University",
			institution:   "State University",
			qualification: "BSc Computer Science",
		},
		{
			name:          "Reversed order",
			input:         "State University, BSc Computer Science",
			institution:   "State University",
			qualification: "BSc Computer Science",
		},
		{
			name:          "From separator",
			input:         "PhD in Physics from MIT Institute",
			institution:   "MIT Institute",
			qualification: "PhD in Physics",
		},
		{
			name:          "No separator keeps degree intact",
			input:         "Bachelor of Science in Computer Science",
			institution:   "Unknown Institution",
			qualification: "Bachelor of Science in Computer Science",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			institution, qualification := splitEducation(tt.input)
			assert.Equal(t, tt.institution, institution)
			assert.Equal(t, tt.qualification, qualification)
		})
	}
}
