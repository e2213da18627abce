package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobAccountingService_Start(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	payload := json.RawMessage(`{"resume":"..."}`)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockCharger(ctrl)
	runWriter := NewMockRunWriter(ctrl)
	cache := NewMockRunStatusCache(ctrl)
	jobs := NewMockKafkaWriter(ctrl)

	runWriter.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, run *models.RunDB) error {
		run.Status = models.RunQueued
		return nil
	})
	ledger.EXPECT().Debit(ctx, userID, "jobpack_pro", models.Gold, gomock.Any()).Return(&models.TransactionDB{}, nil)
	jobs.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	cache.EXPECT().SetRunStatus(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewJobAccountingService(testRegistry(t), ledger, runWriter, nil, cache, jobs, passTx)
	run, err := svc.Start(ctx, userID, "jobpack_pro", models.Gold, payload)

	assert.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, models.RunQueued, run.Status)
	assert.Equal(t, int64(3), run.Cost)
	assert.NotEqual(t, uuid.Nil, run.RunID)
}

func TestJobAccountingService_Start_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockCharger(ctrl)
	runWriter := NewMockRunWriter(ctrl)

	// The run record and the debit share one transaction; when the debit
	// fails the record never commits and nothing reaches the queue.
	runWriter.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	ledger.EXPECT().Debit(ctx, userID, "dream_planner", models.Gold, gomock.Any()).Return(nil, ErrInsufficientFunds)

	svc := NewJobAccountingService(testRegistry(t), ledger, runWriter, nil, nil, NewMockKafkaWriter(ctrl), passTx)
	run, err := svc.Start(ctx, userID, "dream_planner", models.Gold, nil)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Nil(t, run)
}

func TestJobAccountingService_Start_UnknownFeature(t *testing.T) {
	svc := NewJobAccountingService(testRegistry(t), nil, nil, nil, nil, nil, passTx)
	run, err := svc.Start(context.Background(), uuid.New(), "no_such_feature", models.Silver, nil)

	assert.Error(t, err)
	assert.Nil(t, run)
}

func TestJobAccountingService_Start_EnqueueFailure(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockCharger(ctrl)
	runWriter := NewMockRunWriter(ctrl)
	jobs := NewMockKafkaWriter(ctrl)

	runWriter.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	ledger.EXPECT().Debit(ctx, userID, "jobpack_pro", models.Gold, gomock.Any()).Return(&models.TransactionDB{}, nil)
	jobs.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))

	// The already-committed charge is reversed before the error surfaces.
	runWriter.EXPECT().MarkFailed(ctx, gomock.Any(), "enqueue failed").Return(true, nil)
	ledger.EXPECT().Refund(ctx, userID, "jobpack_pro", models.Gold, int64(3), gomock.Any()).Return(&models.TransactionDB{}, nil)

	svc := NewJobAccountingService(testRegistry(t), ledger, runWriter, nil, nil, jobs, passTx)
	run, err := svc.Start(ctx, userID, "jobpack_pro", models.Gold, nil)

	assert.ErrorIs(t, err, ErrEnqueueFailed)
	assert.Nil(t, run)
}

func TestJobAccountingService_Start_ReverseFailureStillSurfacesEnqueueError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockCharger(ctrl)
	runWriter := NewMockRunWriter(ctrl)
	jobs := NewMockKafkaWriter(ctrl)

	runWriter.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	ledger.EXPECT().Debit(ctx, userID, "jobpack_pro", models.Gold, gomock.Any()).Return(&models.TransactionDB{}, nil)
	jobs.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))

	// The reversal itself fails to commit: the claim rolls back with the
	// refund, the run stays queued for the reconciliation sweep, and the
	// caller still sees the enqueue failure.
	runWriter.EXPECT().MarkFailed(ctx, gomock.Any(), "enqueue failed").Return(true, nil)
	ledger.EXPECT().Refund(ctx, userID, "jobpack_pro", models.Gold, int64(3), gomock.Any()).
		Return(nil, errors.New("storage unavailable"))

	svc := NewJobAccountingService(testRegistry(t), ledger, runWriter, nil, nil, jobs, passTx)
	run, err := svc.Start(ctx, userID, "jobpack_pro", models.Gold, nil)

	assert.ErrorIs(t, err, ErrEnqueueFailed)
	assert.Nil(t, run)
}

func TestJobAccountingService_Settle_Finished(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()
	result := json.RawMessage(`{"score":87}`)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runReader := NewMockRunReader(ctrl)
	runWriter := NewMockRunWriter(ctrl)
	cache := NewMockRunStatusCache(ctrl)

	runReader.EXPECT().Get(ctx, runID).Return(&models.RunDB{
		RunID: runID, Feature: "jobpack_pro", Currency: models.Gold, Cost: 3, Status: models.RunRunning,
	}, nil)
	runWriter.EXPECT().MarkFinished(ctx, runID, result).Return(true, nil)
	cache.EXPECT().SetRunStatus(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, status *models.RunStatus) error {
		assert.Equal(t, models.RunFinished, status.Status)
		return nil
	})

	svc := NewJobAccountingService(testRegistry(t), NewMockCharger(ctrl), runWriter, runReader, cache, nil, passTx)
	err := svc.Settle(ctx, runID, result, nil)

	assert.NoError(t, err)
}

func TestJobAccountingService_Settle_FailedRefunds(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockCharger(ctrl)
	runReader := NewMockRunReader(ctrl)
	runWriter := NewMockRunWriter(ctrl)
	cache := NewMockRunStatusCache(ctrl)

	runReader.EXPECT().Get(ctx, runID).Return(&models.RunDB{
		RunID: runID, UserID: userID, Feature: "dream_planner", Currency: models.Gold, Cost: 3, Status: models.RunRunning,
	}, nil)
	runWriter.EXPECT().MarkFailed(ctx, runID, "model timeout").Return(true, nil)
	ledger.EXPECT().Refund(ctx, userID, "dream_planner", models.Gold, int64(3), runID.String()).Return(&models.TransactionDB{}, nil)
	cache.EXPECT().SetRunStatus(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewJobAccountingService(testRegistry(t), ledger, runWriter, runReader, cache, nil, passTx)
	err := svc.Settle(ctx, runID, nil, errors.New("model timeout"))

	assert.NoError(t, err)
}

func TestJobAccountingService_Settle_RefundFailureKeepsRunClaimable(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockCharger(ctrl)
	runReader := NewMockRunReader(ctrl)
	runWriter := NewMockRunWriter(ctrl)
	cache := NewMockRunStatusCache(ctrl)

	run := &models.RunDB{
		RunID: runID, UserID: userID, Feature: "dream_planner", Currency: models.Gold, Cost: 3, Status: models.RunRunning,
	}

	// First delivery: the refund write fails. Claim and refund share one
	// transaction, so the failure claim rolls back with it and the error
	// surfaces for the queue to redeliver.
	runReader.EXPECT().Get(ctx, runID).Return(run, nil)
	runWriter.EXPECT().MarkFailed(ctx, runID, "model timeout").Return(true, nil)
	ledger.EXPECT().Refund(ctx, userID, "dream_planner", models.Gold, int64(3), runID.String()).
		Return(nil, errors.New("storage unavailable"))

	svc := NewJobAccountingService(testRegistry(t), ledger, runWriter, runReader, cache, nil, passTx)
	err := svc.Settle(ctx, runID, nil, errors.New("model timeout"))
	assert.Error(t, err)

	// Redelivery: the run is still claimable and the refund lands.
	runReader.EXPECT().Get(ctx, runID).Return(run, nil)
	runWriter.EXPECT().MarkFailed(ctx, runID, "model timeout").Return(true, nil)
	ledger.EXPECT().Refund(ctx, userID, "dream_planner", models.Gold, int64(3), runID.String()).
		Return(&models.TransactionDB{}, nil)
	cache.EXPECT().SetRunStatus(gomock.Any(), gomock.Any()).Return(nil)

	err = svc.Settle(ctx, runID, nil, errors.New("model timeout"))
	assert.NoError(t, err)
}

func TestJobAccountingService_Settle_AlreadyTerminal(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockCharger(ctrl)
	runReader := NewMockRunReader(ctrl)
	runWriter := NewMockRunWriter(ctrl)

	// Redelivered failure for a run someone already settled: the claim is
	// lost and no refund is attempted.
	runReader.EXPECT().Get(ctx, runID).Return(&models.RunDB{
		RunID: runID, Feature: "jobpack_pro", Currency: models.Gold, Cost: 3, Status: models.RunFailed,
	}, nil)
	runWriter.EXPECT().MarkFailed(ctx, runID, gomock.Any()).Return(false, nil)

	svc := NewJobAccountingService(testRegistry(t), ledger, runWriter, runReader, nil, nil, passTx)
	err := svc.Settle(ctx, runID, nil, errors.New("worker crashed"))

	assert.NoError(t, err)
}

func TestJobAccountingService_Settle_RunNotFound(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runReader := NewMockRunReader(ctrl)
	runReader.EXPECT().Get(ctx, runID).Return(nil, sql.ErrNoRows)

	svc := NewJobAccountingService(testRegistry(t), nil, nil, runReader, nil, nil, passTx)
	err := svc.Settle(ctx, runID, nil, nil)

	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestJobAccountingService_Status(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := NewMockRunStatusCache(ctrl)
	runReader := NewMockRunReader(ctrl)

	// Cache hit short-circuits the database.
	cache.EXPECT().GetRunStatus(ctx, runID).Return(&models.RunStatus{RunID: runID, Status: models.RunRunning}, nil)

	svc := NewJobAccountingService(testRegistry(t), nil, nil, runReader, cache, nil, passTx)
	status, err := svc.Status(ctx, runID)

	assert.NoError(t, err)
	assert.Equal(t, models.RunRunning, status.Status)
}

func TestJobAccountingService_Status_CacheMiss(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := NewMockRunStatusCache(ctrl)
	runReader := NewMockRunReader(ctrl)

	cache.EXPECT().GetRunStatus(ctx, runID).Return(nil, errors.New("not cached"))
	runReader.EXPECT().Get(ctx, runID).Return(&models.RunDB{
		RunID: runID, Feature: "daily_coach", Status: models.RunFinished, Result: json.RawMessage(`{}`),
	}, nil)
	// Terminal snapshots are written back to the cache.
	cache.EXPECT().SetRunStatus(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewJobAccountingService(testRegistry(t), nil, nil, runReader, cache, nil, passTx)
	status, err := svc.Status(ctx, runID)

	assert.NoError(t, err)
	assert.Equal(t, models.RunFinished, status.Status)
}

func TestJobAccountingService_Status_NotFound(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := NewMockRunStatusCache(ctrl)
	runReader := NewMockRunReader(ctrl)

	cache.EXPECT().GetRunStatus(ctx, runID).Return(nil, errors.New("not cached"))
	runReader.EXPECT().Get(ctx, runID).Return(nil, sql.ErrNoRows)

	svc := NewJobAccountingService(testRegistry(t), nil, nil, runReader, cache, nil, passTx)
	_, err := svc.Status(ctx, runID)

	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestJobAccountingService_ReconcileStuck(t *testing.T) {
	ctx := context.Background()
	userA := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockCharger(ctrl)
	runReader := NewMockRunReader(ctrl)
	runWriter := NewMockRunWriter(ctrl)

	stuckA := models.RunDB{RunID: uuid.New(), UserID: userA, Feature: "jobpack_pro", Currency: models.Gold, Cost: 3, Status: models.RunQueued}
	stuckB := models.RunDB{RunID: uuid.New(), UserID: uuid.New(), Feature: "daily_coach", Currency: models.Gold, Cost: 2, Status: models.RunRunning}

	runReader.EXPECT().ListStuck(ctx, gomock.Any(), 100).Return([]models.RunDB{stuckA, stuckB}, nil)
	runWriter.EXPECT().MarkFailed(ctx, stuckA.RunID, gomock.Any()).Return(true, nil)
	ledger.EXPECT().Refund(ctx, userA, "jobpack_pro", models.Gold, int64(3), stuckA.RunID.String()).Return(&models.TransactionDB{}, nil)
	// Second run got settled by its worker between the listing and the claim.
	runWriter.EXPECT().MarkFailed(ctx, stuckB.RunID, gomock.Any()).Return(false, nil)

	svc := NewJobAccountingService(testRegistry(t), ledger, runWriter, runReader, nil, nil, passTx)
	swept, err := svc.ReconcileStuck(ctx, 30*time.Minute, 100)

	assert.NoError(t, err)
	assert.Equal(t, 1, swept)
}

func TestJobAccountingService_ReconcileStuck_RefundFailureLeavesRunForNextPass(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockCharger(ctrl)
	runReader := NewMockRunReader(ctrl)
	runWriter := NewMockRunWriter(ctrl)

	stuck := models.RunDB{RunID: uuid.New(), UserID: userID, Feature: "jobpack_pro", Currency: models.Gold, Cost: 3, Status: models.RunQueued}

	runReader.EXPECT().ListStuck(ctx, gomock.Any(), 100).Return([]models.RunDB{stuck}, nil)
	runWriter.EXPECT().MarkFailed(ctx, stuck.RunID, gomock.Any()).Return(true, nil)
	// The refund write fails: the claim rolls back with it, the run is not
	// counted as swept, and the next pass picks it up again.
	ledger.EXPECT().Refund(ctx, userID, "jobpack_pro", models.Gold, int64(3), stuck.RunID.String()).
		Return(nil, errors.New("storage unavailable"))

	svc := NewJobAccountingService(testRegistry(t), ledger, runWriter, runReader, nil, nil, passTx)
	swept, err := svc.ReconcileStuck(ctx, 30*time.Minute, 100)

	assert.NoError(t, err)
	assert.Equal(t, 0, swept)
}
