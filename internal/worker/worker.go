// Package worker consumes paid feature jobs from Kafka, executes them and
// reports the outcome back to the accounting layer. Delivery is
// at-least-once; every step on the settlement path is idempotent, so a
// redelivered message can never settle or refund a run twice.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/features"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaReader is the consumer-group reader surface the worker needs.
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Accounting is the settlement surface of the job accounting service.
type Accounting interface {
	MarkRunning(ctx context.Context, runID uuid.UUID) error
	Settle(ctx context.Context, runID uuid.UUID, result json.RawMessage, execErr error) error
}

// ExecutorLookup resolves a feature key to its executor.
type ExecutorLookup interface {
	Lookup(feature string) (features.Executor, error)
}

// Worker is the job-consuming loop.
type Worker struct {
	reader     KafkaReader
	accounting Accounting
	executors  ExecutorLookup
	jobTimeout time.Duration
}

// New creates a Worker. jobTimeout bounds a single execution; runs that
// exceed it settle as failed and are refunded.
func New(reader KafkaReader, accounting Accounting, executors ExecutorLookup, jobTimeout time.Duration) *Worker {
	return &Worker{
		reader:     reader,
		accounting: accounting,
		executors:  executors,
		jobTimeout: jobTimeout,
	}
}

// Run consumes jobs until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	logger.Log.Infow("worker started", "job_timeout", w.jobTimeout)

	for {
		msg, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logger.Log.Infow("worker stopping")
				return nil
			}
			return err
		}

		if err := w.process(ctx, msg); err != nil {
			// Leave the message uncommitted so it is redelivered; Settle
			// being idempotent makes the retry safe.
			logger.Log.Errorw("settlement failed, leaving message for redelivery",
				"offset", msg.Offset,
				"error", err,
			)
			continue
		}

		if err := w.reader.CommitMessages(ctx, msg); err != nil {
			logger.Log.Errorw("failed to commit offset", "offset", msg.Offset, "error", err)
		}
	}
}

// process executes one job and settles its run. The returned error covers
// only the settlement write; execution failures are settled as a failed run
// and do not propagate.
func (w *Worker) process(ctx context.Context, msg kafka.Message) error {
	var job models.JobMessage
	if err := json.Unmarshal(msg.Value, &job); err != nil {
		// Malformed message: there is no run to settle, and redelivery
		// cannot fix it.
		logger.Log.Errorw("dropping malformed job message", "offset", msg.Offset, "error", err)
		return nil
	}

	logger.Log.Infow("job received",
		"run_id", job.RunID,
		"feature", job.Feature,
		"user_id", job.UserID,
	)

	if err := w.accounting.MarkRunning(ctx, job.RunID); err != nil {
		logger.Log.Warnw("failed to mark run running", "run_id", job.RunID, "error", err)
	}

	result, execErr := w.execute(ctx, &job)
	return w.accounting.Settle(ctx, job.RunID, result, execErr)
}

func (w *Worker) execute(ctx context.Context, job *models.JobMessage) (json.RawMessage, error) {
	exec, err := w.executors.Lookup(job.Feature)
	if err != nil {
		return nil, err
	}

	jobCtx := ctx
	if w.jobTimeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, w.jobTimeout)
		defer cancel()
	}

	return exec.Execute(jobCtx, job.Payload)
}

// Close releases the underlying reader.
func (w *Worker) Close() error {
	return w.reader.Close()
}
