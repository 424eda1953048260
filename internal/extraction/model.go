package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/interview-agent/internal/llm"
	"github.com/jonathan/interview-agent/internal/prompts"
	"github.com/jonathan/interview-agent/internal/schemas"
)

// profilePayload mirrors the structured-output contract requested from the
// completion service.
type profilePayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// ModelExtractor delegates field extraction to the external completion
// service. The service is instructed never to fabricate values and to return
// empty strings for absent fields; it is still treated as unreliable, with
// hallucinated values corrected downstream by the reconciler.
type ModelExtractor struct {
	client llm.Client
}

// NewModelExtractor creates a model-based field extractor.
func NewModelExtractor(client llm.Client) *ModelExtractor {
	return &ModelExtractor{client: client}
}

// Extract requests {name, email, phone, role} from the completion service.
// An unreachable service or a payload that fails schema validation is a hard
// error for the whole extraction request.
func (m *ModelExtractor) Extract(ctx context.Context, text string, req Request) (ExtractionResult, error) {
	format := "plain text"
	if req.IsEncoded {
		format = "base64 encoded"
	}

	system := prompts.MustGet("extraction.json", "system")
	user := prompts.Format(prompts.MustGet("extraction.json", "user"), map[string]string{
		"FileType": req.DeclaredType,
		"FileName": req.FileName,
		"Format":   format,
		"Content":  text,
	})

	payload, err := m.client.GenerateJSON(ctx, system, user, llm.TierLite)
	if err != nil {
		return ExtractionResult{}, &ModelCallError{Cause: err}
	}

	if err := schemas.Validate(schemas.CandidateProfile, payload); err != nil {
		return ExtractionResult{}, &MalformedResponseError{Payload: payload, Cause: err}
	}

	var out profilePayload
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return ExtractionResult{}, &MalformedResponseError{Payload: payload, Cause: err}
	}

	return ExtractionResult{
		Name:  strings.TrimSpace(out.Name),
		Email: strings.TrimSpace(out.Email),
		Phone: strings.TrimSpace(out.Phone),
		Role:  strings.TrimSpace(out.Role),
	}, nil
}
