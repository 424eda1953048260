package questions

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/jonathan/interview-agent/internal/llm"
	"github.com/jonathan/interview-agent/internal/prompts"
	"github.com/jonathan/interview-agent/internal/schemas"
)

// questionSetPayload mirrors the structured-output contract requested from
// the completion service.
type questionSetPayload struct {
	Questions []Candidate `json:"questions"`
}

// Generator requests topic-constrained question sets from the external
// completion service and sanitizes them into finalized sets. The service may
// violate count, difficulty balance, or topic constraints; those are repaired
// here, never surfaced as errors. A missing or unparseable payload is a hard
// error.
type Generator struct {
	client llm.Client
	policy TopicPolicy
	logger *zap.Logger
}

// NewGenerator creates a question generator with the given topic policy.
func NewGenerator(client llm.Client, policy TopicPolicy, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, policy: policy, logger: logger}
}

// Generate produces a finalized six-question set for a role. resumeContext
// is optional supporting text from the candidate's resume.
func (g *Generator) Generate(ctx context.Context, role, resumeContext string) ([]Question, error) {
	if resumeContext == "" {
		resumeContext = "No resume provided"
	}

	system := prompts.MustGet("questions.json", "system")
	user := prompts.Format(prompts.MustGet("questions.json", "user"), map[string]string{
		"Role":          role,
		"ResumeContext": resumeContext,
	})

	payload, err := g.client.GenerateJSON(ctx, system, user, llm.TierStandard)
	if err != nil {
		return nil, &GenerationError{Cause: err}
	}

	if err := schemas.Validate(schemas.QuestionSet, payload); err != nil {
		return nil, &MalformedResponseError{Payload: payload, Cause: err}
	}

	var out questionSetPayload
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, &MalformedResponseError{Payload: payload, Cause: err}
	}

	set := Sanitize(out.Questions, g.policy)
	g.logger.Info("question set generated",
		zap.String("role", role),
		zap.Int("model_questions", len(out.Questions)))
	return set, nil
}
