// Package features holds the executors behind each paid feature key. An
// executor receives the job message the caller already paid for and returns
// the result document stored on the run.
package features

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoExecutor is returned when a job arrives for a feature key no executor
// was registered for. The worker settles such runs as failed so the charge
// is refunded.
var ErrNoExecutor = errors.New("no executor registered for feature")

// ErrBadPayload marks a job payload that does not match the executor's
// input shape. Not retryable: the payload was frozen at enqueue time.
var ErrBadPayload = errors.New("invalid job payload")

// Executor performs the actual work of one feature run.
type Executor interface {
	Execute(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
}

// Registry maps feature keys to their executors. Built once during worker
// startup and read-only afterwards.
type Registry struct {
	executors map[string]Executor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{executors: make(map[string]Executor)}
}

// Register binds an executor to a feature key, replacing any previous
// binding.
func (r *Registry) Register(feature string, e Executor) {
	r.executors[feature] = e
}

// Lookup returns the executor for a feature key, or ErrNoExecutor.
func (r *Registry) Lookup(feature string) (Executor, error) {
	e, ok := r.executors[feature]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoExecutor, feature)
	}
	return e, nil
}

// Features returns the registered feature keys.
func (r *Registry) Features() []string {
	keys := make([]string, 0, len(r.executors))
	for k := range r.executors {
		keys = append(keys, k)
	}
	return keys
}

// resultDocument normalizes model output into a JSON document. Models asked
// for JSON usually comply, sometimes wrapped in a markdown fence; anything
// else is kept verbatim under a text key rather than discarded.
func resultDocument(content string) json.RawMessage {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}

	wrapped, _ := json.Marshal(map[string]string{"text": content})
	return wrapped
}
