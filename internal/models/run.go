package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Feature run statuses. A run moves queued -> running -> finished|failed and
// never leaves a terminal state; a failed run has at most one refund row
// correlated by its run id.
const (
	RunQueued   = "queued"
	RunRunning  = "running"
	RunFinished = "finished"
	RunFailed   = "failed"
)

// RunDB is the persisted record of one charged feature execution. It doubles
// as the job-status interface the caller polls and as the terminal-record
// source for the reconciliation sweep.
type RunDB struct {
	RunID     uuid.UUID       `json:"run_id" db:"run_id"`
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`
	Feature   string          `json:"feature" db:"feature"`
	Currency  string          `json:"currency" db:"currency"`
	Cost      int64           `json:"cost" db:"cost"`
	Status    string          `json:"status" db:"status"`
	Payload   json.RawMessage `json:"payload,omitempty" db:"payload"`
	Result    json.RawMessage `json:"result,omitempty" db:"result"`
	Error     *string         `json:"error,omitempty" db:"error"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Terminal reports whether the run has reached a final state.
func (r *RunDB) Terminal() bool {
	return r.Status == RunFinished || r.Status == RunFailed
}

// RunStatus is the poll-facing view of a run, cached in Redis with the
// database as the source of truth.
type RunStatus struct {
	RunID   uuid.UUID       `json:"run_id"`
	Status  string          `json:"status"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
	Feature string          `json:"feature"`
}

// JobMessage is the work item placed on the jobs topic. It carries the inputs
// needed to redo the computation plus everything required to reverse the
// charge if the worker fails.
type JobMessage struct {
	RunID    uuid.UUID       `json:"run_id"`
	UserID   uuid.UUID       `json:"user_id"`
	Feature  string          `json:"feature"`
	Currency string          `json:"currency"`
	Cost     int64           `json:"cost"`
	Payload  json.RawMessage `json:"payload"`
}
