package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "JSON fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "Generic fence with language line",
			input:    "```javascript\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "Bare JSON untouched",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "Surrounding whitespace trimmed",
			input:    "  \n{\"a\": 1}\n ",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Bare object",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "Prose before and after",
			input:    `Here you go: {"a": {"b": 2}} hope that helps`,
			expected: `{"a": {"b": 2}}`,
		},
		{
			name:     "Braces inside strings are skipped",
			input:    `{"note": "use {curly} braces", "n": 1}`,
			expected: `{"note": "use {curly} braces", "n": 1}`,
		},
		{
			name:     "Escaped quotes inside strings",
			input:    `{"quote": "she said \"hi\" {", "n": 1} trailing`,
			expected: `{"quote": "she said \"hi\" {", "n": 1}`,
		},
		{
			name:     "First top-level object wins",
			input:    `{"first": true} {"second": true}`,
			expected: `{"first": true}`,
		},
		{
			name:     "Unbalanced object yields nothing",
			input:    `{"a": {"b": 2}`,
			expected: "",
		},
		{
			name:     "No object at all",
			input:    "no data here",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSONObject(tt.input))
		})
	}
}
