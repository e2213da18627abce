package features

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lakshman261099/career-ai-sub000/internal/ai"
)

const jobPackSystemPrompt = `You are a career assistant analyzing how well a candidate fits a job posting.
Respond with a JSON object containing: match_score (0-100), matched_skills (array),
missing_skills (array), resume_suggestions (array of strings), cover_letter_outline (array of strings).`

const jobPackProAddendum = `
Additionally include: ats_keywords (array), interview_questions (array of 5 likely questions with suggested answers),
salary_negotiation_tips (array of strings).`

// JobPackExecutor matches a resume against a job description. The pro tier
// asks the model for the extended sections on top of the base analysis.
type JobPackExecutor struct {
	ai  ai.Completer
	pro bool
}

// NewJobPackExecutor creates a new JobPackExecutor.
func NewJobPackExecutor(completer ai.Completer, pro bool) *JobPackExecutor {
	return &JobPackExecutor{ai: completer, pro: pro}
}

type jobPackInput struct {
	JobDescription string `json:"job_description"`
	Resume         string `json:"resume"`
}

// Execute runs the job-fit analysis.
func (e *JobPackExecutor) Execute(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var in jobPackInput
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if in.JobDescription == "" || in.Resume == "" {
		return nil, fmt.Errorf("%w: job_description and resume are required", ErrBadPayload)
	}

	system := jobPackSystemPrompt
	if e.pro {
		system += jobPackProAddendum
	}

	user := fmt.Sprintf("Job description:\n%s\n\nResume:\n%s", in.JobDescription, in.Resume)
	content, err := e.ai.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	return resultDocument(content), nil
}
