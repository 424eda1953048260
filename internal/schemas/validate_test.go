package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CandidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			name:    "complete profile",
			payload: `{"name": "Jane Martinez", "email": "jane@acme.io", "phone": "(415) 555-2020", "role": "Software Engineer"}`,
			valid:   true,
		},
		{
			name:    "empty fields are conforming",
			payload: `{"name": "", "email": "", "phone": "", "role": ""}`,
			valid:   true,
		},
		{
			name:    "missing name",
			payload: `{"email": "jane@acme.io"}`,
			valid:   false,
		},
		{
			name:    "name wrong type",
			payload: `{"name": 42}`,
			valid:   false,
		},
		{
			name:    "not an object",
			payload: `["a", "b"]`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(CandidateProfile, tt.payload)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				var verr *ValidationError
				require.Error(t, err)
				assert.True(t, errors.As(err, &verr))
			}
		})
	}
}

func TestValidate_QuestionSet(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			name:    "well formed set",
			payload: `{"questions": [{"text": "Explain useEffect.", "difficulty": "easy"}]}`,
			valid:   true,
		},
		{
			name:    "empty array still conforms",
			payload: `{"questions": []}`,
			valid:   true,
		},
		{
			// Repairable by the sanitizer, so not a protocol violation
			name:    "bogus difficulty conforms",
			payload: `{"questions": [{"text": "q", "difficulty": "impossible"}]}`,
			valid:   true,
		},
		{
			name:    "missing questions key",
			payload: `{"items": []}`,
			valid:   false,
		},
		{
			name:    "questions not an array",
			payload: `{"questions": "six"}`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(QuestionSet, tt.payload)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_NotJSON(t *testing.T) {
	err := Validate(CandidateProfile, "this is not json")
	assert.Error(t, err)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate(Schema("nope"), `{}`)
	assert.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(CandidateProfile, `{"email": "x"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidate_profile")
}
