package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/lakshman261099/career-ai-sub000/internal/txctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	if testing.Short() {
		t.Skip("requires docker")
	}

	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	require.NoError(t, RunMigrations(ctx, dsn, "up"))

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestIntegration_ConcurrentDebits(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	wallets := NewWalletWriterRepository(db)
	userID := uuid.New()

	_, _, err := wallets.ApplyCredit(ctx, userID, models.Silver, 5)
	require.NoError(t, err)

	// Ten concurrent unit debits against a balance of five: exactly five
	// must win, and the balance must never go below zero.
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := wallets.ApplyDebit(ctx, userID, models.Silver, 1)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, sql.ErrNoRows)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, succeeded)

	var balance int64
	require.NoError(t, db.Get(&balance, `SELECT balance FROM wallets WHERE user_id = $1 AND currency = $2`, userID, models.Silver))
	assert.Equal(t, int64(0), balance)
}

func TestIntegration_RefundIdempotency(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	wallets := NewWalletWriterRepository(db)
	txWriter := NewTransactionWriterRepository(db)
	txReader := NewTransactionReaderRepository(db)
	runTx := txctx.Runner(db)

	userID := uuid.New()
	runID := uuid.NewString()

	_, _, err := wallets.ApplyCredit(ctx, userID, models.Gold, 10)
	require.NoError(t, err)
	_, _, err = wallets.ApplyDebit(ctx, userID, models.Gold, 3)
	require.NoError(t, err)

	refund := func() (bool, error) {
		var inserted bool
		err := runTx(ctx, func(ctx context.Context) error {
			if _, _, err := wallets.ApplyCredit(ctx, userID, models.Gold, 3); err != nil {
				return err
			}
			var err error
			inserted, err = txWriter.SaveRefund(ctx, &models.TransactionDB{
				UserID:   userID,
				Feature:  "jobpack_pro",
				Currency: models.Gold,
				Amount:   3,
				TxType:   models.TxRefund,
				RunID:    &runID,
			})
			if err != nil {
				return err
			}
			if !inserted {
				return errors.New("duplicate refund")
			}
			return nil
		})
		return inserted, err
	}

	inserted, err := refund()
	require.NoError(t, err)
	assert.True(t, inserted)

	// The second refund loses the uniqueness race; its enclosing
	// transaction rolls back the balance credit.
	inserted, err = refund()
	assert.Error(t, err)
	assert.False(t, inserted)

	var balance int64
	require.NoError(t, db.Get(&balance, `SELECT balance FROM wallets WHERE user_id = $1 AND currency = $2`, userID, models.Gold))
	assert.Equal(t, int64(10), balance)

	exists, err := txReader.HasRefund(ctx, runID)
	require.NoError(t, err)
	assert.True(t, exists)

	var refunds int
	require.NoError(t, db.Get(&refunds, `SELECT COUNT(*) FROM credit_transactions WHERE run_id = $1 AND tx_type = 'refund'`, runID))
	assert.Equal(t, 1, refunds)
}

func TestIntegration_LedgerReplay(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	wallets := NewWalletWriterRepository(db)
	txWriter := NewTransactionWriterRepository(db)

	userID := uuid.New()

	record := func(amount int64, txType string) {
		var before, after int64
		var err error
		if txType == models.TxDebit {
			before, after, err = wallets.ApplyDebit(ctx, userID, models.Silver, amount)
		} else {
			before, after, err = wallets.ApplyCredit(ctx, userID, models.Silver, amount)
		}
		require.NoError(t, err)
		require.NoError(t, txWriter.Save(ctx, &models.TransactionDB{
			UserID:        userID,
			Feature:       "jobpack_free",
			Currency:      models.Silver,
			Amount:        amount,
			TxType:        txType,
			BeforeBalance: before,
			AfterBalance:  after,
		}))
	}

	record(20, models.TxCredit)
	record(1, models.TxDebit)
	record(1, models.TxDebit)
	record(5, models.TxCredit)
	record(3, models.TxDebit)

	// Replaying the ledger from zero reproduces the wallet balance.
	var replayed int64
	rows, err := db.Queryx(`SELECT amount, tx_type FROM credit_transactions WHERE user_id = $1 ORDER BY id`, userID)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var amount int64
		var txType string
		require.NoError(t, rows.Scan(&amount, &txType))
		if txType == models.TxDebit {
			replayed -= amount
		} else {
			replayed += amount
		}
	}

	var balance int64
	require.NoError(t, db.Get(&balance, `SELECT balance FROM wallets WHERE user_id = $1 AND currency = $2`, userID, models.Silver))
	assert.Equal(t, balance, replayed)
	assert.Equal(t, int64(20), balance)
}

func TestIntegration_RunClaim(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	writer := NewRunWriterRepository(db)
	reader := NewRunReaderRepository(db)

	run := &models.RunDB{
		RunID:    uuid.New(),
		UserID:   uuid.New(),
		Feature:  "daily_coach",
		Currency: models.Gold,
		Cost:     2,
	}
	require.NoError(t, writer.Create(ctx, run))
	require.NoError(t, writer.MarkRunning(ctx, run.RunID))

	claimed, err := writer.MarkFinished(ctx, run.RunID, json.RawMessage(`{"focus":"x"}`))
	require.NoError(t, err)
	assert.True(t, claimed)

	// A late failure report cannot reopen the finished run.
	claimed, err = writer.MarkFailed(ctx, run.RunID, "late worker crash")
	require.NoError(t, err)
	assert.False(t, claimed)

	got, err := reader.Get(ctx, run.RunID)
	require.NoError(t, err)
	assert.Equal(t, models.RunFinished, got.Status)
	assert.True(t, got.Terminal())
}

func TestIntegration_TenantRenew(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	tenants := NewTenantWalletRepository(db)
	tenantID := uuid.New()

	_, after, err := tenants.ApplyCredit(ctx, tenantID, models.Gold, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), after)

	_, err = tenants.SetCap(ctx, tenantID, models.Gold, 3000)
	require.NoError(t, err)

	wallet, err := tenants.Renew(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), wallet.GoldBalance)
	// Silver has no cap and keeps its balance.
	assert.Equal(t, int64(0), wallet.SilverBalance)
	require.NotNil(t, wallet.RenewalDate)
	assert.True(t, wallet.RenewalDate.After(time.Now()))

	_, err = tenants.Renew(ctx, uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
