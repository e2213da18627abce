package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/features"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader hands out queued messages, then blocks until the context is
// canceled like a real consumer-group reader would.
type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type settlement struct {
	runID  uuid.UUID
	result json.RawMessage
	err    error
}

type fakeAccounting struct {
	mu          sync.Mutex
	running     []uuid.UUID
	settlements []settlement
	settleErr   error
}

func (a *fakeAccounting) MarkRunning(_ context.Context, runID uuid.UUID) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.running = append(a.running, runID)
	return nil
}

func (a *fakeAccounting) Settle(_ context.Context, runID uuid.UUID, result json.RawMessage, execErr error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.settleErr != nil {
		return a.settleErr
	}
	a.settlements = append(a.settlements, settlement{runID: runID, result: result, err: execErr})
	return nil
}

type staticExecutor struct {
	result json.RawMessage
	err    error
}

func (e *staticExecutor) Execute(context.Context, json.RawMessage) (json.RawMessage, error) {
	return e.result, e.err
}

func jobMessage(t *testing.T, job models.JobMessage) kafka.Message {
	t.Helper()
	data, err := json.Marshal(job)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(job.RunID.String()), Value: data}
}

func runWorker(t *testing.T, w *Worker) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, w.Run(ctx))
}

func TestWorker_ProcessesJob(t *testing.T) {
	runID := uuid.New()
	reader := &fakeReader{messages: []kafka.Message{
		jobMessage(t, models.JobMessage{RunID: runID, Feature: "daily_coach", Payload: json.RawMessage(`{"goal":"x"}`)}),
	}}
	accounting := &fakeAccounting{}

	registry := features.NewRegistry()
	registry.Register("daily_coach", &staticExecutor{result: json.RawMessage(`{"focus":"interview prep"}`)})

	runWorker(t, New(reader, accounting, registry, time.Minute))

	require.Len(t, accounting.settlements, 1)
	s := accounting.settlements[0]
	assert.Equal(t, runID, s.runID)
	assert.NoError(t, s.err)
	assert.JSONEq(t, `{"focus":"interview prep"}`, string(s.result))
	assert.Equal(t, []uuid.UUID{runID}, accounting.running)
	assert.Len(t, reader.committed, 1)
}

func TestWorker_ExecutionFailureSettlesAsFailed(t *testing.T) {
	runID := uuid.New()
	reader := &fakeReader{messages: []kafka.Message{
		jobMessage(t, models.JobMessage{RunID: runID, Feature: "jobpack_pro"}),
	}}
	accounting := &fakeAccounting{}

	registry := features.NewRegistry()
	registry.Register("jobpack_pro", &staticExecutor{err: errors.New("model timeout")})

	runWorker(t, New(reader, accounting, registry, time.Minute))

	require.Len(t, accounting.settlements, 1)
	assert.EqualError(t, accounting.settlements[0].err, "model timeout")
	// The message still commits: the failure is settled, not retried.
	assert.Len(t, reader.committed, 1)
}

func TestWorker_UnknownFeatureSettlesAsFailed(t *testing.T) {
	runID := uuid.New()
	reader := &fakeReader{messages: []kafka.Message{
		jobMessage(t, models.JobMessage{RunID: runID, Feature: "mystery_feature"}),
	}}
	accounting := &fakeAccounting{}

	runWorker(t, New(reader, accounting, features.NewRegistry(), time.Minute))

	require.Len(t, accounting.settlements, 1)
	assert.ErrorIs(t, accounting.settlements[0].err, features.ErrNoExecutor)
}

func TestWorker_MalformedMessageCommitted(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{{Value: []byte("not json")}}}
	accounting := &fakeAccounting{}

	runWorker(t, New(reader, accounting, features.NewRegistry(), time.Minute))

	assert.Empty(t, accounting.settlements)
	assert.Len(t, reader.committed, 1)
}

func TestWorker_SettlementFailureLeavesMessageUncommitted(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{
		jobMessage(t, models.JobMessage{RunID: uuid.New(), Feature: "daily_coach"}),
	}}
	accounting := &fakeAccounting{settleErr: errors.New("db down")}

	registry := features.NewRegistry()
	registry.Register("daily_coach", &staticExecutor{result: json.RawMessage(`{}`)})

	runWorker(t, New(reader, accounting, registry, time.Minute))

	assert.Empty(t, reader.committed)
}

type fakeReconciling struct {
	mu    sync.Mutex
	calls int
	swept int
}

func (f *fakeReconciling) ReconcileStuck(context.Context, time.Duration, int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.swept, nil
}

func TestReconciler_Sweeps(t *testing.T) {
	accounting := &fakeReconciling{swept: 2}
	rec := NewReconciler(accounting, 10*time.Millisecond, 30*time.Minute, 100)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	rec.Run(ctx)

	accounting.mu.Lock()
	defer accounting.mu.Unlock()
	assert.Greater(t, accounting.calls, 0)
}
