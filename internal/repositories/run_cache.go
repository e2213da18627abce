package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/redis/go-redis/v9"
)

// RunStatusCacheRepository caches poll-facing run status in Redis so the
// status endpoint does not hammer Postgres while callers wait on a job.
// The database stays authoritative; entries expire on their own.
type RunStatusCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewRunStatusCacheRepository creates a new repository instance with the given TTL.
func NewRunStatusCacheRepository(client *redis.Client, expiration time.Duration) *RunStatusCacheRepository {
	return &RunStatusCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func runStatusKey(runID uuid.UUID) string {
	return fmt.Sprintf("run_status:%s", runID)
}

// GetRunStatus fetches a cached status. A miss is reported as an error so
// the caller falls through to the database, matching redis.Nil semantics.
func (r *RunStatusCacheRepository) GetRunStatus(ctx context.Context, runID uuid.UUID) (*models.RunStatus, error) {
	key := runStatusKey(runID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("run status not cached for %s", runID)
		}
		return nil, err
	}

	var status models.RunStatus
	if err := json.Unmarshal([]byte(val), &status); err != nil {
		logger.Log.Warnw("corrupt run status cache entry", "key", key, "error", err)
		return nil, err
	}

	return &status, nil
}

// SetRunStatus caches a status snapshot with expiration.
func (r *RunStatusCacheRepository) SetRunStatus(ctx context.Context, status *models.RunStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, runStatusKey(status.RunID), data, r.exp).Err()

	logger.Log.Debugw("run status cached",
		"run_id", status.RunID,
		"status", status.Status,
		"error", err,
	)

	return err
}
