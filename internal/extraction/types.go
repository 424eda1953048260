// Package extraction derives a grounded candidate profile from resume text.
// Two independent extractors (pattern-based and model-based) produce raw
// field values which are merged with fixed precedence and then re-validated
// against the source text to suppress fabricated values.
package extraction

// ExtractionResult holds raw candidate values from a single extractor.
// Values carry no grounding guarantee and are never persisted.
type ExtractionResult struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Profile is a reconciled candidate profile. Every non-empty field is
// traceable to the source text; empty string means unknown/unverified.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Result is the full output of one resume extraction request.
type Result struct {
	Profile
	NeedsUserInput bool     `json:"needs_user_input"`
	MissingFields  []string `json:"missing_fields"`
}

// Request describes one uploaded resume. Content is either plain text or a
// base64-encoded blob for binary document types.
type Request struct {
	Content      string `json:"content"`
	FileName     string `json:"file_name"`
	DeclaredType string `json:"declared_type"`
	IsEncoded    bool   `json:"is_encoded"`
}
