package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
)

// TransactionWriterRepository appends rows to the immutable ledger.
type TransactionWriterRepository struct {
	db *sqlx.DB
}

func NewTransactionWriterRepository(db *sqlx.DB) *TransactionWriterRepository {
	return &TransactionWriterRepository{db: db}
}

const insertTransaction = `
	INSERT INTO credit_transactions
		(user_id, tenant_id, feature, currency, amount, tx_type, before_balance, after_balance, run_id, metadata, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	RETURNING id, created_at
`

// Save appends a debit or credit row and fills in the generated id and
// timestamp.
func (r *TransactionWriterRepository) Save(ctx context.Context, txn *models.TransactionDB) error {
	row := executor(ctx, r.db).QueryRowxContext(ctx, insertTransaction,
		txn.UserID, txn.TenantID, txn.Feature, txn.Currency, txn.Amount,
		txn.TxType, txn.BeforeBalance, txn.AfterBalance, txn.RunID, txn.Metadata,
	)
	err := row.Scan(&txn.ID, &txn.CreatedAt)

	logger.Log.Debugw("ledger append",
		"tx_type", txn.TxType,
		"feature", txn.Feature,
		"amount", txn.Amount,
		"run_id", txn.RunID,
		"error", err,
	)

	return err
}

const insertRefund = `
	INSERT INTO credit_transactions
		(user_id, tenant_id, feature, currency, amount, tx_type, before_balance, after_balance, run_id, metadata, created_at)
	VALUES ($1, $2, $3, $4, $5, 'refund', $6, $7, $8, $9, NOW())
	ON CONFLICT (run_id) WHERE tx_type = 'refund' DO NOTHING
	RETURNING id, created_at
`

// SaveRefund appends a refund row unless one already exists for the same run
// id. The partial unique index on (run_id) WHERE tx_type='refund' makes a
// second refund structurally impossible; a lost conflict returns
// inserted=false with no error so callers can roll back the balance change.
func (r *TransactionWriterRepository) SaveRefund(ctx context.Context, txn *models.TransactionDB) (inserted bool, err error) {
	row := executor(ctx, r.db).QueryRowxContext(ctx, insertRefund,
		txn.UserID, txn.TenantID, txn.Feature, txn.Currency, txn.Amount,
		txn.BeforeBalance, txn.AfterBalance, txn.RunID, txn.Metadata,
	)
	err = row.Scan(&txn.ID, &txn.CreatedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	txn.TxType = models.TxRefund
	return true, nil
}

// TransactionReaderRepository serves audit and history queries over the
// ledger.
type TransactionReaderRepository struct {
	db *sqlx.DB
}

func NewTransactionReaderRepository(db *sqlx.DB) *TransactionReaderRepository {
	return &TransactionReaderRepository{db: db}
}

// ListByUser returns a user's ledger rows, newest first. feature narrows the
// result when non-empty.
func (r *TransactionReaderRepository) ListByUser(ctx context.Context, userID uuid.UUID, feature string, limit int) ([]models.TransactionDB, error) {
	query := `
		SELECT id, user_id, tenant_id, feature, currency, amount, tx_type,
		       before_balance, after_balance, run_id, metadata, created_at
		FROM credit_transactions
		WHERE user_id = $1
	`
	args := []any{userID}
	if feature != "" {
		query += ` AND feature = $2`
		args = append(args, feature)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	var txns []models.TransactionDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &txns, query, args...)

	logger.Log.Debugw("ledger history",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(txns),
		"error", err,
	)

	return txns, err
}

// HasRefund reports whether a refund row already exists for the run id.
func (r *TransactionReaderRepository) HasRefund(ctx context.Context, runID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM credit_transactions
			WHERE run_id = $1 AND tx_type = 'refund'
		)
	`
	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &exists, query, runID)
	return exists, err
}
