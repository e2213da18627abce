package features

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lakshman261099/career-ai-sub000/internal/ai"
)

const dreamPlannerSystemPrompt = `You are a long-term career planner. Given a dream role and the candidate's
current position, produce a multi-year plan. Respond with a JSON object containing:
milestones (ordered array of {title, timeframe, actions}), risks (array),
checkpoints (array of measurable outcomes per year).`

// DreamPlannerExecutor builds a multi-year plan toward a dream role.
type DreamPlannerExecutor struct {
	ai ai.Completer
}

// NewDreamPlannerExecutor creates a new DreamPlannerExecutor.
func NewDreamPlannerExecutor(completer ai.Completer) *DreamPlannerExecutor {
	return &DreamPlannerExecutor{ai: completer}
}

type dreamPlannerInput struct {
	DreamRole     string   `json:"dream_role"`
	CurrentRole   string   `json:"current_role"`
	CurrentSkills []string `json:"current_skills"`
	HorizonYears  int      `json:"horizon_years"`
}

// Execute runs the planning prompt.
func (e *DreamPlannerExecutor) Execute(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var in dreamPlannerInput
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if in.DreamRole == "" {
		return nil, fmt.Errorf("%w: dream_role is required", ErrBadPayload)
	}
	if in.HorizonYears <= 0 {
		in.HorizonYears = 5
	}

	user := fmt.Sprintf("Dream role: %s\nCurrent role: %s\nCurrent skills: %v\nPlanning horizon: %d years",
		in.DreamRole, in.CurrentRole, in.CurrentSkills, in.HorizonYears)
	content, err := e.ai.Complete(ctx, dreamPlannerSystemPrompt, user)
	if err != nil {
		return nil, err
	}
	return resultDocument(content), nil
}
