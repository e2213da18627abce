package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported credit currencies.
//
// Silver is the free-tier currency, Gold the paid one. Every wallet holds an
// independent integer balance in each.
const (
	Silver = "silver"
	Gold   = "gold"
)

// ValidCurrency reports whether s names one of the two credit currencies.
func ValidCurrency(s string) bool {
	return s == Silver || s == Gold
}

// WalletDB represents a personal wallet row in the database.
// One row per (user, currency); created lazily on first credit.
type WalletDB struct {
	WalletID  uuid.UUID `json:"wallet_id" db:"wallet_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Currency  string    `json:"currency" db:"currency"`
	Balance   int64     `json:"balance" db:"balance"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
