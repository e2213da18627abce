package features

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lakshman261099/career-ai-sub000/internal/ai"
)

// PromptExecutor is a generic single-prompt executor for features whose
// input is passed to the model as-is. The internship analyzer, referral
// trainer and portfolio features all fit this shape.
type PromptExecutor struct {
	ai     ai.Completer
	system string
}

// NewPromptExecutor creates a PromptExecutor with the given system prompt.
func NewPromptExecutor(completer ai.Completer, system string) *PromptExecutor {
	return &PromptExecutor{ai: completer, system: system}
}

// Execute forwards the payload to the model as the user message.
func (e *PromptExecutor) Execute(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	if len(payload) == 0 || !json.Valid(payload) {
		return nil, fmt.Errorf("%w: payload must be a JSON document", ErrBadPayload)
	}

	content, err := e.ai.Complete(ctx, e.system, string(payload))
	if err != nil {
		return nil, err
	}
	return resultDocument(content), nil
}

// System prompts for the prompt-shaped features.
const (
	InternshipAnalyzerPrompt = `You are an internship analyzer. Given an internship posting and optionally a resume,
assess fit, growth potential and red flags. Respond with a JSON object containing:
fit_assessment (string), growth_score (0-100), red_flags (array), questions_to_ask (array).`

	ReferralTrainerPrompt = `You are a referral outreach trainer. Given a target contact and company, draft outreach.
Respond with a JSON object containing: connection_message (string), follow_up_message (string),
talking_points (array), etiquette_tips (array).`

	PortfolioIdeaPrompt = `You are a portfolio advisor. Given a target role and current skills, propose portfolio
projects. Respond with a JSON object containing: projects (array of {title, description,
skills_demonstrated, estimated_effort}).`

	PortfolioPublishPrompt = `You are a portfolio publisher. Given a project description, produce publication-ready
copy. Respond with a JSON object containing: title (string), summary (string),
readme_markdown (string), tags (array).`
)
