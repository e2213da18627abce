package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/costs"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
)

// TenantWallets is the tenant wallet storage surface used by admin
// operations.
type TenantWallets interface {
	Get(ctx context.Context, tenantID uuid.UUID) (*models.TenantWalletDB, error)
	GetForUpdate(ctx context.Context, tenantID uuid.UUID) (*models.TenantWalletDB, error)
	ApplyCredit(ctx context.Context, tenantID uuid.UUID, currency string, amount int64) (before, after int64, err error)
	SetCap(ctx context.Context, tenantID uuid.UUID, currency string, cap int64) (*models.TenantWalletDB, error)
	Renew(ctx context.Context, tenantID uuid.UUID) (*models.TenantWalletDB, error)
}

// AuditWriter appends admin audit entries.
type AuditWriter interface {
	Save(ctx context.Context, entry *models.AdminAuditDB) error
}

// Granter is the slice of the ledger engine used for personal grants.
type Granter interface {
	Balances(ctx context.Context, userID uuid.UUID) (silver, gold int64, err error)
	Credit(ctx context.Context, userID uuid.UUID, amount int64, feature, currency, runID string, metadata map[string]any) (*models.TransactionDB, error)
}

// GrantReader resolves plan-level grants from the pricing configuration.
type GrantReader interface {
	StartingBalance(plan string) costs.FeatureCost
	MonthlyAllowance(plan string) (costs.FeatureCost, error)
}

// Tenant-side ledger features. Tenant wallets never pay for feature runs,
// so the only rows they produce are admin credits.
const (
	featureAdminTopUp  = "admin_topup"
	featureRenewal     = "wallet_renewal"
	featureSignupGrant = "signup_grant"
	featureAllowance   = "monthly_allowance"
)

// AdminWalletService implements the privileged wallet operations: tenant
// top-ups, cap changes and annual renewals, plus the plan-level grants to
// personal wallets. Every tenant mutation pairs a ledger row with an audit
// entry inside one transaction, so the audit log and the ledger can never
// disagree about what an operator did.
type AdminWalletService struct {
	tenants  TenantWallets
	txWriter TransactionWriter
	audit    AuditWriter
	ledger   Granter
	grants   GrantReader
	runTx    TxRunner
}

// NewAdminWalletService creates a new AdminWalletService.
func NewAdminWalletService(
	tenants TenantWallets,
	txWriter TransactionWriter,
	audit AuditWriter,
	ledger Granter,
	grants GrantReader,
	runTx TxRunner,
) *AdminWalletService {
	return &AdminWalletService{
		tenants:  tenants,
		txWriter: txWriter,
		audit:    audit,
		ledger:   ledger,
		grants:   grants,
		runTx:    runTx,
	}
}

// TopUp credits a tenant wallet in one currency, creating the wallet on
// first use. The balance change, its ledger row and the audit entry commit
// together.
func (s *AdminWalletService) TopUp(ctx context.Context, actorID, tenantID uuid.UUID, currency string, amount int64, reason string) (*models.TenantWalletDB, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	if !models.ValidCurrency(currency) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	var wallet *models.TenantWalletDB
	err := s.runTx(ctx, func(ctx context.Context) error {
		before, after, err := s.tenants.ApplyCredit(ctx, tenantID, currency, amount)
		if err != nil {
			return err
		}

		if err := s.txWriter.Save(ctx, &models.TransactionDB{
			UserID:        actorID,
			TenantID:      &tenantID,
			Feature:       featureAdminTopUp,
			Currency:      currency,
			Amount:        amount,
			TxType:        models.TxCredit,
			BeforeBalance: before,
			AfterBalance:  after,
		}); err != nil {
			return err
		}

		if err := s.audit.Save(ctx, &models.AdminAuditDB{
			ActorID:  actorID,
			TenantID: tenantID,
			Action:   models.AuditTopUp,
			Before:   balanceState(currency, before),
			After:    balanceState(currency, after),
			Reason:   reason,
		}); err != nil {
			return err
		}

		wallet, err = s.tenants.Get(ctx, tenantID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("tenant top-up failed", "tenant_id", tenantID, "actor_id", actorID, "error", err)
		return nil, err
	}

	logger.Log.Infow("tenant wallet topped up",
		"tenant_id", tenantID,
		"actor_id", actorID,
		"currency", currency,
		"amount", amount,
	)
	return wallet, nil
}

// SetCap sets the annual cap for one currency. Caps bound what a renewal
// resets the balance to; changing a cap moves no funds, so only an audit
// entry is written.
func (s *AdminWalletService) SetCap(ctx context.Context, actorID, tenantID uuid.UUID, currency string, cap int64, reason string) (*models.TenantWalletDB, error) {
	if cap < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAmount, cap)
	}
	if !models.ValidCurrency(currency) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	var wallet *models.TenantWalletDB
	err := s.runTx(ctx, func(ctx context.Context) error {
		before, err := s.tenants.Get(ctx, tenantID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		wallet, err = s.tenants.SetCap(ctx, tenantID, currency, cap)
		if err != nil {
			return err
		}

		return s.audit.Save(ctx, &models.AdminAuditDB{
			ActorID:  actorID,
			TenantID: tenantID,
			Action:   models.AuditSetCap,
			Before:   walletState(before),
			After:    walletState(wallet),
			Reason:   reason,
		})
	})
	if err != nil {
		logger.Log.Errorw("set cap failed", "tenant_id", tenantID, "actor_id", actorID, "error", err)
		return nil, err
	}

	logger.Log.Infow("tenant cap updated",
		"tenant_id", tenantID,
		"actor_id", actorID,
		"currency", currency,
		"cap", cap,
	)
	return wallet, nil
}

// Renew resets the tenant balances to their annual caps and advances the
// renewal date by one year. Each balance that grows gets a ledger credit for
// the difference, so renewals remain replayable from the transaction log.
// Returns ErrTenantNotFound for a tenant without a wallet.
func (s *AdminWalletService) Renew(ctx context.Context, actorID, tenantID uuid.UUID, reason string) (*models.TenantWalletDB, error) {
	var wallet *models.TenantWalletDB
	err := s.runTx(ctx, func(ctx context.Context) error {
		before, err := s.tenants.GetForUpdate(ctx, tenantID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTenantNotFound
			}
			return err
		}

		wallet, err = s.tenants.Renew(ctx, tenantID)
		if err != nil {
			return err
		}

		for _, currency := range []string{models.Silver, models.Gold} {
			delta := wallet.Balance(currency) - before.Balance(currency)
			if delta <= 0 {
				continue
			}
			if err := s.txWriter.Save(ctx, &models.TransactionDB{
				UserID:        actorID,
				TenantID:      &tenantID,
				Feature:       featureRenewal,
				Currency:      currency,
				Amount:        delta,
				TxType:        models.TxCredit,
				BeforeBalance: before.Balance(currency),
				AfterBalance:  wallet.Balance(currency),
			}); err != nil {
				return err
			}
		}

		return s.audit.Save(ctx, &models.AdminAuditDB{
			ActorID:  actorID,
			TenantID: tenantID,
			Action:   models.AuditRenew,
			Before:   walletState(before),
			After:    walletState(wallet),
			Reason:   reason,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrTenantNotFound) {
			logger.Log.Errorw("tenant renewal failed", "tenant_id", tenantID, "actor_id", actorID, "error", err)
		}
		return nil, err
	}

	logger.Log.Infow("tenant wallet renewed",
		"tenant_id", tenantID,
		"actor_id", actorID,
		"renewal_date", wallet.RenewalDate,
	)
	return wallet, nil
}

// GrantSignup brings a fresh personal wallet up to the plan's starting
// balance. Top-up-to semantics make it safe to call again for the same user:
// currencies already at or above the grant are left alone.
func (s *AdminWalletService) GrantSignup(ctx context.Context, userID uuid.UUID, plan string) error {
	grant := s.grants.StartingBalance(plan)

	silver, gold, err := s.ledger.Balances(ctx, userID)
	if err != nil {
		return err
	}
	have := map[string]int64{models.Silver: silver, models.Gold: gold}

	for _, currency := range []string{models.Silver, models.Gold} {
		shortfall := grant.Amount(currency) - have[currency]
		if shortfall <= 0 {
			continue
		}
		_, err := s.ledger.Credit(ctx, userID, shortfall, featureSignupGrant, currency, "", map[string]any{"plan": plan})
		if err != nil {
			return err
		}
	}

	logger.Log.Infow("signup grant applied", "user_id", userID, "plan", plan)
	return nil
}

// RefillMonthly credits the plan's recurring allowance to a personal wallet.
// The scheduler invoking this is responsible for calling it once per cycle.
func (s *AdminWalletService) RefillMonthly(ctx context.Context, userID uuid.UUID, plan string) error {
	allowance, err := s.grants.MonthlyAllowance(plan)
	if err != nil {
		return err
	}

	for _, currency := range []string{models.Silver, models.Gold} {
		amount := allowance.Amount(currency)
		if amount == 0 {
			continue
		}
		if _, err := s.ledger.Credit(ctx, userID, amount, featureAllowance, currency, "", map[string]any{"plan": plan}); err != nil {
			return err
		}
	}

	logger.Log.Infow("monthly allowance credited", "user_id", userID, "plan", plan)
	return nil
}

func balanceState(currency string, balance int64) json.RawMessage {
	data, _ := json.Marshal(map[string]int64{currency: balance})
	return data
}

func walletState(w *models.TenantWalletDB) json.RawMessage {
	if w == nil {
		return nil
	}
	data, _ := json.Marshal(w)
	return data
}
