package services

import "errors"

var (
	// ErrInsufficientFunds is returned when a debit would take a balance
	// below zero. Expected and recoverable: the caller is prompted to top
	// up or wait, and it is never logged as an error.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount marks a caller bug: a zero or negative amount
	// passed to a ledger operation.
	ErrInvalidAmount = errors.New("amount must be a positive integer")

	// ErrInvalidCurrency marks an unknown currency name.
	ErrInvalidCurrency = errors.New("unknown currency")

	// ErrMissingRunID marks a refund attempt without the correlation key
	// that makes it idempotent.
	ErrMissingRunID = errors.New("run id required")

	// ErrEnqueueFailed is returned after a charge could not be handed to
	// the job queue. The debit is refunded synchronously before callers
	// see this; if that reversal cannot commit, the run stays queued and
	// the reconciliation sweep refunds it.
	ErrEnqueueFailed = errors.New("failed to enqueue job")

	// ErrRunNotFound is returned for status or settlement requests against
	// an unknown run id.
	ErrRunNotFound = errors.New("run not found")

	// ErrTenantNotFound is returned by admin operations that require an
	// existing tenant wallet.
	ErrTenantNotFound = errors.New("tenant wallet not found")
)
