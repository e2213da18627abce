package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
)

// TenantWalletRepository handles pooled tenant wallets. These are mutated
// only by admin operations, so the query surface is small: lazy-creating
// credits, cap updates, and the annual renewal reset.
type TenantWalletRepository struct {
	db *sqlx.DB
}

func NewTenantWalletRepository(db *sqlx.DB) *TenantWalletRepository {
	return &TenantWalletRepository{db: db}
}

const selectTenantWallet = `
	SELECT tenant_id, silver_balance, gold_balance, silver_annual_cap,
	       gold_annual_cap, renewal_date, created_at, updated_at
	FROM tenant_wallets
	WHERE tenant_id = $1
`

// Get returns the tenant wallet, or sql.ErrNoRows if none exists yet.
func (r *TenantWalletRepository) Get(ctx context.Context, tenantID uuid.UUID) (*models.TenantWalletDB, error) {
	var w models.TenantWalletDB
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &w, selectTenantWallet, tenantID); err != nil {
		return nil, err
	}
	return &w, nil
}

// GetForUpdate locks the tenant wallet row for the rest of the enclosing
// transaction. Used by renewal, which needs the before-state for its audit
// entry.
func (r *TenantWalletRepository) GetForUpdate(ctx context.Context, tenantID uuid.UUID) (*models.TenantWalletDB, error) {
	var w models.TenantWalletDB
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &w, selectTenantWallet+` FOR UPDATE`, tenantID); err != nil {
		return nil, err
	}
	return &w, nil
}

// ApplyCredit increases the tenant balance in one currency, creating the
// wallet lazily on first top-up.
func (r *TenantWalletRepository) ApplyCredit(ctx context.Context, tenantID uuid.UUID, currency string, amount int64) (before, after int64, err error) {
	const query = `
		INSERT INTO tenant_wallets (tenant_id, silver_balance, gold_balance, created_at, updated_at)
		VALUES ($1,
		        CASE WHEN $2 = 'silver' THEN $3 ELSE 0 END,
		        CASE WHEN $2 = 'gold' THEN $3 ELSE 0 END,
		        NOW(), NOW())
		ON CONFLICT (tenant_id) DO UPDATE SET
			silver_balance = tenant_wallets.silver_balance + EXCLUDED.silver_balance,
			gold_balance   = tenant_wallets.gold_balance + EXCLUDED.gold_balance,
			updated_at     = NOW()
		RETURNING CASE WHEN $2 = 'silver' THEN silver_balance ELSE gold_balance END
	`

	err = sqlx.GetContext(ctx, executor(ctx, r.db), &after, query, tenantID, currency, amount)

	logger.Log.Debugw("tenant wallet credit",
		"tenant_id", tenantID,
		"currency", currency,
		"amount", amount,
		"balance", after,
		"error", err,
	)

	if err != nil {
		return 0, 0, err
	}
	return after - amount, after, nil
}

// SetCap sets the annual cap for one currency, creating the wallet if
// needed, and returns the updated row.
func (r *TenantWalletRepository) SetCap(ctx context.Context, tenantID uuid.UUID, currency string, cap int64) (*models.TenantWalletDB, error) {
	const query = `
		INSERT INTO tenant_wallets (tenant_id, silver_annual_cap, gold_annual_cap, created_at, updated_at)
		VALUES ($1,
		        CASE WHEN $2 = 'silver' THEN $3 END,
		        CASE WHEN $2 = 'gold' THEN $3 END,
		        NOW(), NOW())
		ON CONFLICT (tenant_id) DO UPDATE SET
			silver_annual_cap = CASE WHEN $2 = 'silver' THEN $3 ELSE tenant_wallets.silver_annual_cap END,
			gold_annual_cap   = CASE WHEN $2 = 'gold' THEN $3 ELSE tenant_wallets.gold_annual_cap END,
			updated_at        = NOW()
		RETURNING tenant_id, silver_balance, gold_balance, silver_annual_cap,
		          gold_annual_cap, renewal_date, created_at, updated_at
	`

	var w models.TenantWalletDB
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &w, query, tenantID, currency, cap); err != nil {
		return nil, err
	}
	return &w, nil
}

// Renew resets balances to their annual caps (currencies without a cap keep
// their balance) and advances the renewal date by one year. Returns the
// updated row, or sql.ErrNoRows for an unknown tenant.
func (r *TenantWalletRepository) Renew(ctx context.Context, tenantID uuid.UUID) (*models.TenantWalletDB, error) {
	const query = `
		UPDATE tenant_wallets SET
			silver_balance = COALESCE(silver_annual_cap, silver_balance),
			gold_balance   = COALESCE(gold_annual_cap, gold_balance),
			renewal_date   = COALESCE(renewal_date, NOW()) + INTERVAL '1 year',
			updated_at     = NOW()
		WHERE tenant_id = $1
		RETURNING tenant_id, silver_balance, gold_balance, silver_annual_cap,
		          gold_annual_cap, renewal_date, created_at, updated_at
	`

	var w models.TenantWalletDB
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &w, query, tenantID); err != nil {
		return nil, err
	}
	return &w, nil
}
