package worker

import (
	"context"
	"time"

	"github.com/lakshman261099/career-ai-sub000/internal/logger"
)

// Reconciling is the sweep surface of the job accounting service.
type Reconciling interface {
	ReconcileStuck(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

// Reconciler periodically fails and refunds runs whose worker never reported
// an outcome, closing the gap left by worker crashes between charge and
// settlement.
type Reconciler struct {
	accounting Reconciling
	interval   time.Duration
	olderThan  time.Duration
	batchSize  int
}

// NewReconciler creates a Reconciler sweeping every interval for runs older
// than olderThan, at most batchSize per pass.
func NewReconciler(accounting Reconciling, interval, olderThan time.Duration, batchSize int) *Reconciler {
	return &Reconciler{
		accounting: accounting,
		interval:   interval,
		olderThan:  olderThan,
		batchSize:  batchSize,
	}
}

// Run sweeps until the context is canceled.
func (r *Reconciler) Run(ctx context.Context) {
	logger.Log.Infow("reconciler started",
		"interval", r.interval,
		"older_than", r.olderThan,
		"batch_size", r.batchSize,
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Infow("reconciler stopping")
			return
		case <-ticker.C:
			swept, err := r.accounting.ReconcileStuck(ctx, r.olderThan, r.batchSize)
			if err != nil {
				logger.Log.Errorw("reconciliation sweep failed", "error", err)
				continue
			}
			if swept > 0 {
				logger.Log.Infow("reconciliation sweep complete", "swept", swept)
			}
		}
	}
}
