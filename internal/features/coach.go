package features

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lakshman261099/career-ai-sub000/internal/ai"
)

const dailyCoachSystemPrompt = `You are a daily career coach. Given the user's current goal and today's check-in,
produce a short actionable session. Respond with a JSON object containing:
focus (string), tasks (array of at most 3 concrete tasks for today),
reflection_prompt (string), encouragement (string, one sentence).`

// DailyCoachExecutor runs one coaching session.
type DailyCoachExecutor struct {
	ai ai.Completer
}

// NewDailyCoachExecutor creates a new DailyCoachExecutor.
func NewDailyCoachExecutor(completer ai.Completer) *DailyCoachExecutor {
	return &DailyCoachExecutor{ai: completer}
}

type dailyCoachInput struct {
	Goal    string `json:"goal"`
	CheckIn string `json:"check_in"`
}

// Execute runs the coaching prompt.
func (e *DailyCoachExecutor) Execute(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var in dailyCoachInput
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if in.Goal == "" {
		return nil, fmt.Errorf("%w: goal is required", ErrBadPayload)
	}

	user := fmt.Sprintf("Goal: %s\nToday's check-in: %s", in.Goal, in.CheckIn)
	content, err := e.ai.Complete(ctx, dailyCoachSystemPrompt, user)
	if err != nil {
		return nil, err
	}
	return resultDocument(content), nil
}
