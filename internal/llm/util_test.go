package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"name\": \"Jane Martinez\"}\n```",
			expected: `{"name": "Jane Martinez"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"name\": \"Jane Martinez\"}\n```",
			expected: `{"name": "Jane Martinez"}`,
		},
		{
			name:     "code block with language identifier",
			input:    "```javascript\n{\"questions\": []}\n```",
			expected: `{"questions": []}`,
		},
		{
			name:     "plain JSON untouched",
			input:    `{"questions": []}`,
			expected: `{"questions": []}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n{\"email\": \"\"}\n  ",
			expected: `{"email": ""}`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}
