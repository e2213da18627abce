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
	"github.com/segmentio/kafka-go"
)

// WalletWriter defines the atomic balance mutations of a personal wallet.
type WalletWriter interface {
	ApplyDebit(ctx context.Context, userID uuid.UUID, currency string, amount int64) (before, after int64, err error)  // Guarded decrement; sql.ErrNoRows when balance < amount
	ApplyCredit(ctx context.Context, userID uuid.UUID, currency string, amount int64) (before, after int64, err error) // Lazy-creating increment
}

// WalletReader defines personal wallet reads.
type WalletReader interface {
	GetBalances(ctx context.Context, userID uuid.UUID) (map[string]int64, error) // Returns balances by currency
}

// TransactionWriter appends rows to the append-only ledger.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.TransactionDB) error                      // Appends a debit or credit row
	SaveRefund(ctx context.Context, txn *models.TransactionDB) (bool, error)        // Appends a refund row unless the run already has one
}

// TransactionReader serves ledger history and refund-existence queries.
type TransactionReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, feature string, limit int) ([]models.TransactionDB, error)
	HasRefund(ctx context.Context, runID string) (bool, error)
}

// CostReader resolves feature costs from the static pricing table.
type CostReader interface {
	CostOf(feature string) (costs.FeatureCost, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TxRunner executes fn inside one database transaction, joining a
// transaction already present on the context.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// LedgerService is the credit ledger engine: the only component allowed to
// move a wallet balance. Each operation runs as a single database
// transaction pairing the balance change with its immutable ledger row, so
// the transaction log replayed from zero always reproduces the balance.
type LedgerService struct {
	costs        CostReader
	walletWriter WalletWriter
	walletReader WalletReader
	txWriter     TransactionWriter
	txReader     TransactionReader
	kafkaWriter  KafkaWriter
	runTx        TxRunner
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	costReader CostReader,
	walletWriter WalletWriter,
	walletReader WalletReader,
	txWriter TransactionWriter,
	txReader TransactionReader,
	kafkaWriter KafkaWriter,
	runTx TxRunner,
) *LedgerService {
	return &LedgerService{
		costs:        costReader,
		walletWriter: walletWriter,
		walletReader: walletReader,
		txWriter:     txWriter,
		txReader:     txReader,
		kafkaWriter:  kafkaWriter,
		runTx:        runTx,
	}
}

// publishTransaction publishes a committed ledger row to the transaction
// event topic. Best effort: a publish failure never fails the ledger
// operation, the database row is the source of truth.
func publishTransaction(ctx context.Context, w KafkaWriter, txn *models.TransactionDB) {
	if w == nil || txn == nil {
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("failed to marshal ledger event", "tx_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.UserID.String()),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish ledger event", "tx_id", txn.ID, "error", err)
	}
}

// Balances returns the user's silver and gold balances.
func (s *LedgerService) Balances(ctx context.Context, userID uuid.UUID) (silver, gold int64, err error) {
	balances, err := s.walletReader.GetBalances(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get balances", "user_id", userID, "error", err)
		return 0, 0, err
	}
	return balances[models.Silver], balances[models.Gold], nil
}

// CanAfford reports whether the user can pay for one run of the feature in
// the given currency. A zero configured cost always affords. This is only a
// pre-check: Debit's own atomicity stays authoritative under races.
func (s *LedgerService) CanAfford(ctx context.Context, userID uuid.UUID, feature, currency string) (bool, error) {
	if !models.ValidCurrency(currency) {
		return false, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	cost, err := s.costs.CostOf(feature)
	if err != nil {
		return false, err
	}
	amount := cost.Amount(currency)
	if amount == 0 {
		return true, nil
	}

	balances, err := s.walletReader.GetBalances(ctx, userID)
	if err != nil {
		return false, err
	}
	return balances[currency] >= amount, nil
}

// Debit charges the configured cost of one feature run. A zero cost
// succeeds without touching the ledger and returns a nil transaction.
// Returns ErrInsufficientFunds when the atomically observed balance cannot
// cover the cost; two concurrent debits against a wallet that affords only
// one can therefore never both succeed.
func (s *LedgerService) Debit(ctx context.Context, userID uuid.UUID, feature, currency, runID string) (*models.TransactionDB, error) {
	if !models.ValidCurrency(currency) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	cost, err := s.costs.CostOf(feature)
	if err != nil {
		return nil, err
	}
	amount := cost.Amount(currency)
	if amount == 0 {
		return nil, nil
	}

	txn := &models.TransactionDB{
		UserID:   userID,
		Feature:  feature,
		Currency: currency,
		Amount:   amount,
		TxType:   models.TxDebit,
		RunID:    optional(runID),
	}

	err = s.runTx(ctx, func(ctx context.Context) error {
		before, after, err := s.walletWriter.ApplyDebit(ctx, userID, currency, amount)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientFunds
			}
			return err
		}
		txn.BeforeBalance = before
		txn.AfterBalance = after
		return s.txWriter.Save(ctx, txn)
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			logger.Log.Errorw("debit failed", "user_id", userID, "feature", feature, "error", err)
		}
		return nil, err
	}

	publishTransaction(ctx, s.kafkaWriter, txn)
	return txn, nil
}

// Credit adds amount to the user's balance and appends a credit row. Used
// for admin grants, purchased top-ups and allowances; crediting cannot
// underflow, so the only failure mode besides storage errors is a
// malformed amount.
func (s *LedgerService) Credit(ctx context.Context, userID uuid.UUID, amount int64, feature, currency, runID string, metadata map[string]any) (*models.TransactionDB, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	if !models.ValidCurrency(currency) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	txn := &models.TransactionDB{
		UserID:   userID,
		Feature:  feature,
		Currency: currency,
		Amount:   amount,
		TxType:   models.TxCredit,
		RunID:    optional(runID),
		Metadata: marshalMetadata(metadata),
	}

	err := s.runTx(ctx, func(ctx context.Context) error {
		before, after, err := s.walletWriter.ApplyCredit(ctx, userID, currency, amount)
		if err != nil {
			return err
		}
		txn.BeforeBalance = before
		txn.AfterBalance = after
		return s.txWriter.Save(ctx, txn)
	})
	if err != nil {
		logger.Log.Errorw("credit failed", "user_id", userID, "feature", feature, "amount", amount, "error", err)
		return nil, err
	}

	publishTransaction(ctx, s.kafkaWriter, txn)
	return txn, nil
}

// Refund restores a previously debited amount, tagged refund in the audit
// trail. Idempotent per run id: if a refund row for runID already exists no
// balance change is made, the attempt is logged, and a nil transaction is
// returned without error. The existence check and the insert run in the
// same transaction; the partial unique index on refund run ids backstops
// the rare race between them.
func (s *LedgerService) Refund(ctx context.Context, userID uuid.UUID, feature, currency string, amount int64, runID string) (*models.TransactionDB, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	if !models.ValidCurrency(currency) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	if runID == "" {
		return nil, ErrMissingRunID
	}

	txn := &models.TransactionDB{
		UserID:   userID,
		Feature:  feature,
		Currency: currency,
		Amount:   amount,
		TxType:   models.TxRefund,
		RunID:    optional(runID),
	}

	var duplicate bool
	err := s.runTx(ctx, func(ctx context.Context) error {
		exists, err := s.txReader.HasRefund(ctx, runID)
		if err != nil {
			return err
		}
		if exists {
			duplicate = true
			return nil
		}

		before, after, err := s.walletWriter.ApplyCredit(ctx, userID, currency, amount)
		if err != nil {
			return err
		}
		txn.BeforeBalance = before
		txn.AfterBalance = after

		inserted, err := s.txWriter.SaveRefund(ctx, txn)
		if err != nil {
			return err
		}
		if !inserted {
			// A concurrent refund committed between the existence check
			// and the insert. Abort the transaction so the balance credit
			// above never lands; the retried call takes the duplicate path.
			return fmt.Errorf("refund for run %s lost the uniqueness race", runID)
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("refund failed", "user_id", userID, "run_id", runID, "error", err)
		return nil, err
	}
	if duplicate {
		logger.Log.Infow("duplicate refund suppressed", "run_id", runID, "user_id", userID, "feature", feature)
		return nil, nil
	}

	publishTransaction(ctx, s.kafkaWriter, txn)
	return txn, nil
}

// History returns the user's ledger rows, newest first.
func (s *LedgerService) History(ctx context.Context, userID uuid.UUID, feature string, limit int) ([]models.TransactionDB, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.txReader.ListByUser(ctx, userID, feature, limit)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func marshalMetadata(m map[string]any) json.RawMessage {
	if len(m) == 0 {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		logger.Log.Warnw("failed to marshal transaction metadata", "error", err)
		return nil
	}
	return data
}
