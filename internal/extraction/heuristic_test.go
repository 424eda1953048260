package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = "Jane Martinez\nSoftware Engineer\njane.martinez@acme.io\n(415) 555-2020"

func TestHeuristic_SampleResume(t *testing.T) {
	result := Heuristic(sampleResume)

	assert.Equal(t, "Jane Martinez", result.Name)
	assert.Equal(t, "Software Engineer", result.Role)
	assert.Equal(t, "jane.martinez@acme.io", result.Email)
	assert.Equal(t, "(415) 555-2020", result.Phone)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"name at document start", "Maria Gonzalez\nSenior Developer", "Maria Gonzalez"},
		{"three-part name", "Anna Lee Chen\nData Analyst", "Anna Lee Chen"},
		{"labeled name", "Resume\nName: Robert Okafor\nrobert@corp.example", "Robert Okafor"},
		{"signature name", "Thanks for reviewing.\nBest regards,\nPriya Natarajan", "Priya Natarajan"},
		{"contact label", "Contact: Liam Burke\nliam.burke@mail.example", "Liam Burke"},
		{"placeholder john doe rejected", "John Doe\nEngineer at Shop", ""},
		{"placeholder jaden smith rejected", "Jaden Smith\nDeveloper at Shop", ""},
		{"section heading rejected", "Skills Summary\nmore text", ""},
		{"all caps rejected", "JANE MARTINEZ\nEngineer", ""},
		{"no name present", "a resume with no proper nouns at all", ""},
		{"empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractName(tt.text))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"verbatim email recovered", "reach me at dana.wu@initech.dev anytime", "dana.wu@initech.dev"},
		{"lowercased", "Email: Dana.Wu@Initech.DEV", "dana.wu@initech.dev"},
		{"labeled form", "E-mail: hello.world77@provider.net", "hello.world77@provider.net"},
		{"placeholder rejected", "send mail to example@email.com please", ""},
		{"contains test rejected", "tester.account@corp.io", ""},
		{"contains sample rejected", "sample.user@corp.io", ""},
		{"no email", "no contact information here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractEmail(tt.text))
		})
	}
}

// Any text containing a verbatim email and no placeholder patterns must have
// that email recovered unchanged.
func TestExtractEmail_VerbatimRecoveryProperty(t *testing.T) {
	emails := []string{
		"j.martinez@acme.io",
		"dev+hiring@startup.co",
		"first_last@sub.domain.org",
	}
	for _, email := range emails {
		t.Run(email, func(t *testing.T) {
			text := "Some header\n" + email + "\nSome footer"
			assert.Equal(t, email, ExtractEmail(text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"parenthesized area code", "call (415) 555-2020 today", "(415) 555-2020"},
		{"hyphenated", "cell: 415-555-2020", "415-555-2020"},
		{"country code kept only after plain match fails", "+1 415 555 2020", "415 555 2020"},
		{"dot separated", "tel 415.555.2020", "415.555.2020"},
		{"no phone", "no digits to be found", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPhone(tt.text))
		})
	}
}

func TestExtractRole(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"summary label", "Professional Summary: Backend Developer building APIs", "Backend Developer building APIs"},
		{"line after name", "Carlos Mendez\nProduct Manager\ncarlos@shop.example", "Product Manager"},
		{"title vocabulary", "worked for years as devops engineer before moving on", "devops engineer"},
		{"filler prefix stripped", "Objective: I am a Frontend Developer seeking new challenges", "Frontend Developer seeking new challenges"},
		{"pipe suffix stripped", "Summary: Data Scientist | ML enthusiast", "Data Scientist"},
		{"generic heading rejected", "Objective: CV\nmore", ""},
		{"no role", "just some prose without titles", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractRole(tt.text))
		})
	}
}

func TestHeuristic_IndependentFields(t *testing.T) {
	// Fields extract independently: a text with only an email yields only an email
	result := Heuristic("contact: someone@initech.dev")

	assert.Equal(t, "", result.Name)
	assert.Equal(t, "someone@initech.dev", result.Email)
	assert.Equal(t, "", result.Phone)
	assert.Equal(t, "", result.Role)
}

func TestHeuristic_NeverPanicsOnHostileInput(t *testing.T) {
	inputs := []string{
		"",
		strings.Repeat("A", 100000),
		"\x00\x01\x02",
		strings.Repeat("@.@\n", 5000),
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Heuristic(in) })
	}
}
