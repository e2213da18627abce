package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
)

// WalletWriterRepository handles personal wallet balance mutations. Every
// mutation is a single guarded SQL statement, so the read-compare-write step
// of a debit is atomic at the row level.
type WalletWriterRepository struct {
	db *sqlx.DB
}

func NewWalletWriterRepository(db *sqlx.DB) *WalletWriterRepository {
	return &WalletWriterRepository{db: db}
}

// ApplyDebit decrements the balance if and only if it covers the amount.
// Returns the balances observed by that same statement. A missing wallet or
// an uncovered amount both surface as sql.ErrNoRows; the service layer maps
// that to its insufficient-funds error.
func (r *WalletWriterRepository) ApplyDebit(ctx context.Context, userID uuid.UUID, currency string, amount int64) (before, after int64, err error) {
	query := `
		UPDATE wallets
		SET balance = balance - $3, updated_at = NOW()
		WHERE user_id = $1 AND currency = $2 AND balance >= $3
		RETURNING balance
	`

	err = sqlx.GetContext(ctx, executor(ctx, r.db), &after, query, userID, currency, amount)

	logger.Log.Debugw("wallet debit",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"balance", after,
		"error", err,
	)

	if err != nil {
		return 0, 0, err
	}
	return after + amount, after, nil
}

// ApplyCredit performs an UPSERT: creates the wallet lazily on first credit,
// otherwise increases the balance.
func (r *WalletWriterRepository) ApplyCredit(ctx context.Context, userID uuid.UUID, currency string, amount int64) (before, after int64, err error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, currency)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	err = sqlx.GetContext(ctx, executor(ctx, r.db), &after, query, uuid.New(), userID, currency, amount)

	logger.Log.Debugw("wallet credit",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"balance", after,
		"error", err,
	)

	if err != nil {
		return 0, 0, err
	}
	return after - amount, after, nil
}

// WalletReaderRepository handles personal wallet reads.
type WalletReaderRepository struct {
	db *sqlx.DB
}

func NewWalletReaderRepository(db *sqlx.DB) *WalletReaderRepository {
	return &WalletReaderRepository{db: db}
}

// GetBalances retrieves both currency balances for a user. Wallets that were
// never created read as zero.
func (r *WalletReaderRepository) GetBalances(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	const query = `
		SELECT currency, balance
		FROM wallets
		WHERE user_id = $1
	`

	var rows []struct {
		Currency string `db:"currency"`
		Balance  int64  `db:"balance"`
	}

	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, userID)
	if err != nil {
		return nil, err
	}

	balances := map[string]int64{
		models.Silver: 0,
		models.Gold:   0,
	}
	for _, w := range rows {
		balances[w.Currency] = w.Balance
	}

	return balances, nil
}
