package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Ledger transaction types. The ledger is append-only: a row is never
// updated or deleted once written, so the transaction log replayed from an
// empty wallet always reproduces the current balance.
const (
	TxDebit  = "debit"
	TxCredit = "credit"
	TxRefund = "refund"
)

// TransactionDB is one immutable ledger row. BeforeBalance and AfterBalance
// are captured inside the same database transaction that moved the balance,
// so the pair is always consistent with Amount.
type TransactionDB struct {
	ID            int64           `json:"id" db:"id"`
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`
	TenantID      *uuid.UUID      `json:"tenant_id,omitempty" db:"tenant_id"`
	Feature       string          `json:"feature" db:"feature"`
	Currency      string          `json:"currency" db:"currency"`
	Amount        int64           `json:"amount" db:"amount"`
	TxType        string          `json:"tx_type" db:"tx_type"`
	BeforeBalance int64           `json:"before_balance" db:"before_balance"`
	AfterBalance  int64           `json:"after_balance" db:"after_balance"`
	RunID         *string         `json:"run_id,omitempty" db:"run_id"`
	Metadata      json.RawMessage `json:"metadata,omitempty" db:"metadata"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}
