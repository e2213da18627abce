package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/segmentio/kafka-go"
)

// Charger is the slice of the ledger engine the accounting flow needs:
// charging a run up front and reversing the charge when it fails.
type Charger interface {
	Debit(ctx context.Context, userID uuid.UUID, feature, currency, runID string) (*models.TransactionDB, error)
	Refund(ctx context.Context, userID uuid.UUID, feature, currency string, amount int64, runID string) (*models.TransactionDB, error)
}

// RunWriter persists run records and their guarded state transitions.
type RunWriter interface {
	Create(ctx context.Context, run *models.RunDB) error
	MarkRunning(ctx context.Context, runID uuid.UUID) error
	MarkFinished(ctx context.Context, runID uuid.UUID, result json.RawMessage) (bool, error)
	MarkFailed(ctx context.Context, runID uuid.UUID, errMsg string) (bool, error)
}

// RunReader serves run lookups.
type RunReader interface {
	Get(ctx context.Context, runID uuid.UUID) (*models.RunDB, error)
	ListStuck(ctx context.Context, cutoff time.Time, limit int) ([]models.RunDB, error)
}

// RunStatusCache caches the poll-facing run view.
type RunStatusCache interface {
	GetRunStatus(ctx context.Context, runID uuid.UUID) (*models.RunStatus, error)
	SetRunStatus(ctx context.Context, status *models.RunStatus) error
}

// JobAccountingService owns the charge -> enqueue -> settle lifecycle of a
// paid feature run. The charge and the run record commit in one database
// transaction before the job reaches the queue, so every queued message
// corresponds to an already-paid run; settlement is the single place that
// decides whether the charge is kept or refunded.
type JobAccountingService struct {
	costs     CostReader
	ledger    Charger
	runWriter RunWriter
	runReader RunReader
	cache     RunStatusCache
	jobs      KafkaWriter
	runTx     TxRunner
}

// NewJobAccountingService creates a new JobAccountingService.
func NewJobAccountingService(
	costReader CostReader,
	ledger Charger,
	runWriter RunWriter,
	runReader RunReader,
	cache RunStatusCache,
	jobs KafkaWriter,
	runTx TxRunner,
) *JobAccountingService {
	return &JobAccountingService{
		costs:     costReader,
		ledger:    ledger,
		runWriter: runWriter,
		runReader: runReader,
		cache:     cache,
		jobs:      jobs,
		runTx:     runTx,
	}
}

// Start charges the user for one run of the feature and enqueues the job.
// The debit and the run record commit atomically before the message is
// written to the queue. If the queue write then fails, the run is marked
// failed and the charge refunded before ErrEnqueueFailed is returned, so the
// caller never pays for a job that was not accepted.
func (s *JobAccountingService) Start(ctx context.Context, userID uuid.UUID, feature, currency string, payload json.RawMessage) (*models.RunDB, error) {
	if !models.ValidCurrency(currency) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	cost, err := s.costs.CostOf(feature)
	if err != nil {
		return nil, err
	}

	run := &models.RunDB{
		RunID:    uuid.New(),
		UserID:   userID,
		Feature:  feature,
		Currency: currency,
		Cost:     cost.Amount(currency),
		Payload:  payload,
	}

	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.runWriter.Create(ctx, run); err != nil {
			return err
		}
		_, err := s.ledger.Debit(ctx, userID, feature, currency, run.RunID.String())
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			logger.Log.Infow("run rejected, insufficient funds",
				"user_id", userID,
				"feature", feature,
				"currency", currency,
				"cost", run.Cost,
			)
		} else {
			logger.Log.Errorw("failed to start run", "user_id", userID, "feature", feature, "error", err)
		}
		return nil, err
	}

	if err := s.enqueue(ctx, run); err != nil {
		logger.Log.Errorw("enqueue failed after charge, reversing",
			"run_id", run.RunID,
			"user_id", userID,
			"feature", feature,
			"error", err,
		)
		s.reverse(ctx, run, "enqueue failed")
		return nil, ErrEnqueueFailed
	}

	s.cacheStatus(ctx, run)
	logger.Log.Infow("run enqueued",
		"run_id", run.RunID,
		"user_id", userID,
		"feature", feature,
		"currency", currency,
		"cost", run.Cost,
	)
	return run, nil
}

func (s *JobAccountingService) enqueue(ctx context.Context, run *models.RunDB) error {
	msg := models.JobMessage{
		RunID:    run.RunID,
		UserID:   run.UserID,
		Feature:  run.Feature,
		Currency: run.Currency,
		Cost:     run.Cost,
		Payload:  run.Payload,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.jobs.WriteMessages(ctx, kafka.Message{
		Key:   []byte(run.RunID.String()),
		Value: data,
	})
}

// reverse marks the run failed and refunds its charge, committing both in
// one transaction: either the failure and its refund land together, or the
// run stays queued and the reconciliation sweep recovers the charge later.
// Both steps are guarded (terminal claim, refund uniqueness), so calling it
// concurrently with a worker settlement cannot double-refund.
func (s *JobAccountingService) reverse(ctx context.Context, run *models.RunDB, reason string) {
	err := s.runTx(ctx, func(ctx context.Context) error {
		claimed, err := s.runWriter.MarkFailed(ctx, run.RunID, reason)
		if err != nil || !claimed || run.Cost == 0 {
			return err
		}
		_, err = s.ledger.Refund(ctx, run.UserID, run.Feature, run.Currency, run.Cost, run.RunID.String())
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to reverse charge, leaving run for reconciliation",
			"run_id", run.RunID,
			"error", err,
		)
	}
}

// MarkRunning records that a worker picked up the run.
func (s *JobAccountingService) MarkRunning(ctx context.Context, runID uuid.UUID) error {
	return s.runWriter.MarkRunning(ctx, runID)
}

// Settle records the outcome of a run. A nil execErr finishes the run and
// keeps the charge; a non-nil execErr fails it and refunds the charge.
// Exactly one caller wins the terminal transition; everyone else is a no-op,
// which makes Settle safe to call again on queue redelivery and from the
// reconciliation sweep.
func (s *JobAccountingService) Settle(ctx context.Context, runID uuid.UUID, result json.RawMessage, execErr error) error {
	run, err := s.runReader.Get(ctx, runID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRunNotFound
		}
		return err
	}

	if execErr == nil {
		claimed, err := s.runWriter.MarkFinished(ctx, runID, result)
		if err != nil {
			return err
		}
		if claimed {
			run.Status = models.RunFinished
			run.Result = result
			s.cacheStatus(ctx, run)
			logger.Log.Infow("run finished", "run_id", runID, "feature", run.Feature)
		}
		return nil
	}

	// The failure claim and its refund commit together: a refund write that
	// fails rolls the claim back too, so the run stays claimable and a
	// redelivered Settle retries the whole settlement.
	var claimed bool
	err = s.runTx(ctx, func(ctx context.Context) error {
		var err error
		claimed, err = s.runWriter.MarkFailed(ctx, runID, execErr.Error())
		if err != nil || !claimed || run.Cost == 0 {
			return err
		}
		_, err = s.ledger.Refund(ctx, run.UserID, run.Feature, run.Currency, run.Cost, runID.String())
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed settlement did not commit", "run_id", runID, "error", err)
		return err
	}
	if !claimed {
		return nil
	}
	run.Status = models.RunFailed
	msg := execErr.Error()
	run.Error = &msg

	s.cacheStatus(ctx, run)
	logger.Log.Infow("run failed and refunded",
		"run_id", runID,
		"feature", run.Feature,
		"refunded", run.Cost,
		"reason", msg,
	)
	return nil
}

// Status returns the poll-facing view of a run, serving from the cache when
// a fresh snapshot is available.
func (s *JobAccountingService) Status(ctx context.Context, runID uuid.UUID) (*models.RunStatus, error) {
	if cached, err := s.cache.GetRunStatus(ctx, runID); err == nil {
		return cached, nil
	}

	run, err := s.runReader.Get(ctx, runID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}

	status := statusView(run)
	if run.Terminal() {
		if err := s.cache.SetRunStatus(ctx, status); err != nil {
			logger.Log.Warnw("failed to cache run status", "run_id", runID, "error", err)
		}
	}
	return status, nil
}

// ReconcileStuck fails and refunds runs that never reported an outcome.
// Runs younger than olderThan are left alone: their worker may still be
// working. Returns the number of runs swept.
func (s *JobAccountingService) ReconcileStuck(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	runs, err := s.runReader.ListStuck(ctx, cutoff, limit)
	if err != nil {
		return 0, err
	}

	swept := 0
	for i := range runs {
		run := &runs[i]
		// Claim and refund commit together; a failed sweep leaves the run
		// queued for the next pass.
		var claimed bool
		err := s.runTx(ctx, func(ctx context.Context) error {
			var err error
			claimed, err = s.runWriter.MarkFailed(ctx, run.RunID, "no outcome reported before reconciliation cutoff")
			if err != nil || !claimed || run.Cost == 0 {
				return err
			}
			_, err = s.ledger.Refund(ctx, run.UserID, run.Feature, run.Currency, run.Cost, run.RunID.String())
			return err
		})
		if err != nil {
			logger.Log.Errorw("reconcile: sweep did not commit", "run_id", run.RunID, "error", err)
			continue
		}
		if !claimed {
			continue
		}
		swept++
		logger.Log.Infow("reconciled stuck run",
			"run_id", run.RunID,
			"user_id", run.UserID,
			"feature", run.Feature,
			"refunded", run.Cost,
		)
	}
	return swept, nil
}

func (s *JobAccountingService) cacheStatus(ctx context.Context, run *models.RunDB) {
	if err := s.cache.SetRunStatus(ctx, statusView(run)); err != nil {
		logger.Log.Warnw("failed to cache run status", "run_id", run.RunID, "error", err)
	}
}

func statusView(run *models.RunDB) *models.RunStatus {
	status := &models.RunStatus{
		RunID:   run.RunID,
		Status:  run.Status,
		Result:  run.Result,
		Feature: run.Feature,
	}
	if run.Error != nil {
		status.Error = *run.Error
	}
	return status
}
