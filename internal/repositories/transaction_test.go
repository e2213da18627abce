package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTransactionWriterRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionWriterRepository(db)

	txn := &models.TransactionDB{
		UserID:        uuid.New(),
		Feature:       "jobpack_pro",
		Currency:      models.Gold,
		Amount:        3,
		TxType:        models.TxDebit,
		BeforeBalance: 10,
		AfterBalance:  7,
	}

	mock.ExpectQuery("INSERT INTO credit_transactions").
		WithArgs(txn.UserID, nil, txn.Feature, txn.Currency, txn.Amount,
			txn.TxType, txn.BeforeBalance, txn.AfterBalance, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), time.Now()))

	err := repo.Save(context.Background(), txn)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), txn.ID)
	assert.False(t, txn.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionWriterRepository_SaveRefund(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionWriterRepository(db)
	runID := uuid.NewString()

	txn := &models.TransactionDB{
		UserID:   uuid.New(),
		Feature:  "jobpack_pro",
		Currency: models.Gold,
		Amount:   3,
		RunID:    &runID,
	}

	mock.ExpectQuery("INSERT INTO credit_transactions").
		WithArgs(txn.UserID, nil, txn.Feature, txn.Currency, txn.Amount,
			txn.BeforeBalance, txn.AfterBalance, txn.RunID, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), time.Now()))

	inserted, err := repo.SaveRefund(context.Background(), txn)

	assert.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, models.TxRefund, txn.TxType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionWriterRepository_SaveRefund_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionWriterRepository(db)
	runID := uuid.NewString()

	txn := &models.TransactionDB{
		UserID:   uuid.New(),
		Feature:  "jobpack_pro",
		Currency: models.Gold,
		Amount:   3,
		RunID:    &runID,
	}

	// ON CONFLICT DO NOTHING returns no row when a refund for the run
	// already exists.
	mock.ExpectQuery("INSERT INTO credit_transactions").
		WithArgs(txn.UserID, nil, txn.Feature, txn.Currency, txn.Amount,
			txn.BeforeBalance, txn.AfterBalance, txn.RunID, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

	inserted, err := repo.SaveRefund(context.Background(), txn)

	assert.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionReaderRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionReaderRepository(db)
	userID := uuid.New()

	columns := []string{"id", "user_id", "tenant_id", "feature", "currency", "amount",
		"tx_type", "before_balance", "after_balance", "run_id", "metadata", "created_at"}

	mock.ExpectQuery("SELECT id, user_id, tenant_id, feature").
		WithArgs(userID, "jobpack_pro", 10).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(2), userID, nil, "jobpack_pro", models.Gold, int64(3),
				models.TxRefund, int64(7), int64(10), uuid.NewString(), nil, time.Now()).
			AddRow(int64(1), userID, nil, "jobpack_pro", models.Gold, int64(3),
				models.TxDebit, int64(10), int64(7), uuid.NewString(), nil, time.Now()))

	txns, err := repo.ListByUser(context.Background(), userID, "jobpack_pro", 10)

	assert.NoError(t, err)
	assert.Len(t, txns, 2)
	assert.Equal(t, models.TxRefund, txns[0].TxType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionReaderRepository_HasRefund(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionReaderRepository(db)
	runID := uuid.NewString()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(runID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasRefund(context.Background(), runID)

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
