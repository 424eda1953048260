package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_HeuristicWins(t *testing.T) {
	heuristic := ExtractionResult{Name: "Jane Martinez", Email: "jane@acme.io"}
	model := ExtractionResult{Name: "Janet Martin", Email: "janet@acme.io", Phone: "(415) 555-2020", Role: "Software Engineer"}

	merged := Merge(heuristic, model)

	assert.Equal(t, "Jane Martinez", merged.Name)
	assert.Equal(t, "jane@acme.io", merged.Email)
	assert.Equal(t, "(415) 555-2020", merged.Phone, "model fills fields the heuristic missed")
	assert.Equal(t, "Software Engineer", merged.Role)
}

func TestReconcile_SampleResume(t *testing.T) {
	heuristic := Heuristic(sampleResume)
	result := Reconcile(heuristic, ExtractionResult{}, sampleResume)

	assert.Equal(t, "Jane Martinez", result.Profile.Name)
	assert.Equal(t, "jane.martinez@acme.io", result.Profile.Email)
	assert.Equal(t, "(415) 555-2020", result.Profile.Phone)
	assert.Equal(t, "Software Engineer", result.Profile.Role)
	assert.False(t, result.NeedsUserInput)
	assert.Empty(t, result.MissingFields)
}

func TestReconcile_PlaceholderNameRejected(t *testing.T) {
	// Even when the model proposes it and the tokens appear in the text
	text := "John Doe\nSoftware Engineer\njohn.doe@initech.dev"
	model := ExtractionResult{Name: "John Doe", Email: "john.doe@initech.dev", Role: "Software Engineer"}

	result := Reconcile(ExtractionResult{}, model, text)

	assert.Equal(t, "", result.Profile.Name)
	assert.Contains(t, result.MissingFields, "name")
	assert.True(t, result.NeedsUserInput)
}

func TestReconcile_UngroundedNameRejected(t *testing.T) {
	text := "a resume describing backend work with Go and Postgres"
	model := ExtractionResult{Name: "Maria Gonzalez"}

	result := Reconcile(ExtractionResult{}, model, text)

	assert.Equal(t, "", result.Profile.Name, "no token of the name appears in the text")
}

func TestReconcile_NameGroundedByOneToken(t *testing.T) {
	text := "Resume of Gonzalez, backend engineer"
	model := ExtractionResult{Name: "Maria Gonzalez", Role: "backend engineer"}

	result := Reconcile(ExtractionResult{}, model, text)

	assert.Equal(t, "Maria Gonzalez", result.Profile.Name)
}

func TestReconcile_PublicProviderEmailRequiresVerbatim(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		email    string
		expected string
	}{
		{
			"gmail absent from text rejected",
			"Jane Martinez\nSoftware Engineer",
			"jane.martinez@gmail.com",
			"",
		},
		{
			"gmail present verbatim accepted",
			"Jane Martinez\njane.martinez@gmail.com",
			"jane.martinez@gmail.com",
			"jane.martinez@gmail.com",
		},
		{
			"corporate domain accepted without verbatim appearance",
			"Jane Martinez\nSoftware Engineer",
			"jane.martinez@acme.io",
			"jane.martinez@acme.io",
		},
		{
			"placeholder domain rejected",
			"contact me at user@example.com",
			"user@example.com",
			"",
		},
		{
			"malformed shape rejected",
			"some text",
			"not-an-email",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reconcile(ExtractionResult{}, ExtractionResult{Email: tt.email}, tt.text)
			assert.Equal(t, tt.expected, result.Profile.Email)
		})
	}
}

func TestReconcile_PhoneRequiresHeuristicCorroboration(t *testing.T) {
	text := "Jane Martinez\n(415) 555-2020"

	// Model-proposed phone matching the re-derived value survives
	result := Reconcile(ExtractionResult{}, ExtractionResult{Phone: "(415) 555-2020"}, text)
	assert.Equal(t, "(415) 555-2020", result.Profile.Phone)

	// A reformatted or invented phone does not
	result = Reconcile(ExtractionResult{}, ExtractionResult{Phone: "415-555-2020"}, text)
	assert.Equal(t, "", result.Profile.Phone)

	result = Reconcile(ExtractionResult{}, ExtractionResult{Phone: "(212) 555-0000"}, text)
	assert.Equal(t, "", result.Profile.Phone)
}

func TestReconcile_PhoneMissingAloneDoesNotNeedInput(t *testing.T) {
	text := "Jane Martinez\nSoftware Engineer\njane.martinez@acme.io"
	result := Reconcile(Heuristic(text), ExtractionResult{}, text)

	assert.False(t, result.NeedsUserInput)
	assert.Equal(t, []string{"phone"}, result.MissingFields)
}

func TestReconcile_RoleGrounding(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		role     string
		expected string
	}{
		{"token in text accepted", "years as a backend developer at Acme", "Backend Developer", "Backend Developer"},
		{"no token in text rejected", "a plain document", "Backend Developer", ""},
		{"stopword overlap not enough", "working with the team", "with the", ""},
		{"generic placeholder rejected", "position position position", "position", ""},
		{"unknown rejected", "unknown unknown", "unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reconcile(ExtractionResult{}, ExtractionResult{Role: tt.role}, tt.text)
			assert.Equal(t, tt.expected, result.Profile.Role)
		})
	}
}

func TestReconcile_MissingFieldOrder(t *testing.T) {
	result := Reconcile(ExtractionResult{}, ExtractionResult{}, "")

	assert.Equal(t, []string{"name", "email", "role", "phone"}, result.MissingFields)
	assert.True(t, result.NeedsUserInput)
}

// Every non-empty field of a reconciled profile is traceable to the source
// text: re-validating the profile against the same text changes nothing.
func TestReconcile_Stable(t *testing.T) {
	texts := []string{
		sampleResume,
		"Priya Natarajan\nData Scientist\npriya@lab.example",
		"no usable fields here",
	}
	for _, text := range texts {
		first := Reconcile(Heuristic(text), ExtractionResult{}, text)
		second := Reconcile(ExtractionResult(first.Profile), ExtractionResult{}, text)
		assert.Equal(t, first.Profile, second.Profile)
	}
}
