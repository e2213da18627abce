package models

import (
	"time"

	"github.com/google/uuid"
)

// TenantWalletDB represents the pooled wallet of an organizational tenant
// (e.g. a university). Unlike personal wallets it carries optional annual
// caps and a renewal date; it is mutated only by admin operations, never by
// feature consumption.
type TenantWalletDB struct {
	TenantID      uuid.UUID  `json:"tenant_id" db:"tenant_id"`
	SilverBalance int64      `json:"silver_balance" db:"silver_balance"`
	GoldBalance   int64      `json:"gold_balance" db:"gold_balance"`
	SilverCap     *int64     `json:"silver_annual_cap" db:"silver_annual_cap"`
	GoldCap       *int64     `json:"gold_annual_cap" db:"gold_annual_cap"`
	RenewalDate   *time.Time `json:"renewal_date" db:"renewal_date"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Balance returns the tenant balance in the given currency.
func (w *TenantWalletDB) Balance(currency string) int64 {
	if currency == Gold {
		return w.GoldBalance
	}
	return w.SilverBalance
}

// Cap returns the annual cap for the given currency, or nil if none is set.
func (w *TenantWalletDB) Cap(currency string) *int64 {
	if currency == Gold {
		return w.GoldCap
	}
	return w.SilverCap
}
