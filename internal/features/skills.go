package features

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lakshman261099/career-ai-sub000/internal/ai"
)

const skillMapperSystemPrompt = `You are a career assistant mapping a candidate's current skills to a target role.
Respond with a JSON object containing: current_strengths (array), skill_gaps (array),
learning_path (ordered array of {skill, resource, estimated_weeks}).`

const skillMapperProAddendum = `
Additionally include: market_demand (object keyed by skill with demand rating),
certification_recommendations (array), project_ideas (array of portfolio projects that demonstrate the missing skills).`

// SkillMapperExecutor maps the gap between a resume and a target role.
type SkillMapperExecutor struct {
	ai  ai.Completer
	pro bool
}

// NewSkillMapperExecutor creates a new SkillMapperExecutor.
func NewSkillMapperExecutor(completer ai.Completer, pro bool) *SkillMapperExecutor {
	return &SkillMapperExecutor{ai: completer, pro: pro}
}

type skillMapperInput struct {
	Resume     string `json:"resume"`
	TargetRole string `json:"target_role"`
}

// Execute runs the skill-gap analysis.
func (e *SkillMapperExecutor) Execute(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var in skillMapperInput
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if in.Resume == "" || in.TargetRole == "" {
		return nil, fmt.Errorf("%w: resume and target_role are required", ErrBadPayload)
	}

	system := skillMapperSystemPrompt
	if e.pro {
		system += skillMapperProAddendum
	}

	user := fmt.Sprintf("Target role: %s\n\nResume:\n%s", in.TargetRole, in.Resume)
	content, err := e.ai.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	return resultDocument(content), nil
}
