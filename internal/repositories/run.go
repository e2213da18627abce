package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
)

// RunWriterRepository persists feature-run records. The terminal transitions
// are guarded so that a run can be finished or failed at most once, which is
// what makes settlement safe under at-least-once queue delivery.
type RunWriterRepository struct {
	db *sqlx.DB
}

func NewRunWriterRepository(db *sqlx.DB) *RunWriterRepository {
	return &RunWriterRepository{db: db}
}

// Create inserts a queued run record.
func (r *RunWriterRepository) Create(ctx context.Context, run *models.RunDB) error {
	const query = `
		INSERT INTO feature_runs (run_id, user_id, feature, currency, cost, status, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'queued', $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := executor(ctx, r.db).QueryRowxContext(ctx, query,
		run.RunID, run.UserID, run.Feature, run.Currency, run.Cost, run.Payload,
	).Scan(&run.CreatedAt, &run.UpdatedAt)
	if err == nil {
		run.Status = models.RunQueued
	}
	return err
}

// MarkRunning moves a queued run to running. Redelivered messages hit this
// again; the guard keeps a finished run from being reopened.
func (r *RunWriterRepository) MarkRunning(ctx context.Context, runID uuid.UUID) error {
	const query = `
		UPDATE feature_runs
		SET status = 'running', updated_at = NOW()
		WHERE run_id = $1 AND status = 'queued'
	`
	_, err := executor(ctx, r.db).ExecContext(ctx, query, runID)
	return err
}

// MarkFinished records the result and moves the run to its terminal finished
// state. Returns false without error when the run was already terminal; the
// caller treats that as "someone settled this before us".
func (r *RunWriterRepository) MarkFinished(ctx context.Context, runID uuid.UUID, result json.RawMessage) (bool, error) {
	const query = `
		UPDATE feature_runs
		SET status = 'finished', result = $2, updated_at = NOW()
		WHERE run_id = $1 AND status IN ('queued', 'running')
		RETURNING run_id
	`
	return r.claim(ctx, query, runID, result)
}

// MarkFailed records the failure reason and moves the run to failed.
// Returns false without error when the run was already terminal.
func (r *RunWriterRepository) MarkFailed(ctx context.Context, runID uuid.UUID, errMsg string) (bool, error) {
	const query = `
		UPDATE feature_runs
		SET status = 'failed', error = $2, updated_at = NOW()
		WHERE run_id = $1 AND status IN ('queued', 'running')
		RETURNING run_id
	`
	return r.claim(ctx, query, runID, errMsg)
}

func (r *RunWriterRepository) claim(ctx context.Context, query string, runID uuid.UUID, arg any) (bool, error) {
	var claimed uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &claimed, query, runID, arg)
	if err == sql.ErrNoRows {
		logger.Log.Infow("run already terminal, transition skipped", "run_id", runID)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RunReaderRepository serves run lookups for status polling and the
// reconciliation sweep.
type RunReaderRepository struct {
	db *sqlx.DB
}

func NewRunReaderRepository(db *sqlx.DB) *RunReaderRepository {
	return &RunReaderRepository{db: db}
}

const selectRun = `
	SELECT run_id, user_id, feature, currency, cost, status, payload, result, error, created_at, updated_at
	FROM feature_runs
`

// Get returns one run by id, or sql.ErrNoRows.
func (r *RunReaderRepository) Get(ctx context.Context, runID uuid.UUID) (*models.RunDB, error) {
	var run models.RunDB
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &run, selectRun+` WHERE run_id = $1`, runID); err != nil {
		return nil, err
	}
	return &run, nil
}

// ListStuck returns non-terminal runs created before the cutoff, oldest
// first. These are charges whose worker never reported an outcome.
func (r *RunReaderRepository) ListStuck(ctx context.Context, cutoff time.Time, limit int) ([]models.RunDB, error) {
	query := selectRun + `
		WHERE status IN ('queued', 'running') AND created_at < $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	var runs []models.RunDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &runs, query, cutoff, limit)
	return runs, err
}
