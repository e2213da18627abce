// Package txctx carries a database transaction through a context so that
// repositories on both the HTTP tier and the worker tier can share one atomic
// unit of work without knowing who opened it.
package txctx

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// contextKey is an unexported type for keys in context.
type contextKey struct{}

var txKey = contextKey{}

// With stores a transaction in the context.
func With(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// From retrieves the transaction from the context. Returns nil if not present.
func From(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// Runner returns a function that executes fn inside a database transaction.
// If the context already carries a transaction (e.g. opened by the HTTP tx
// middleware) fn joins it instead of nesting a second one; otherwise a fresh
// transaction is opened, committed on success and rolled back on error.
func Runner(db *sqlx.DB) func(ctx context.Context, fn func(ctx context.Context) error) error {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		if tx := From(ctx); tx != nil {
			return fn(ctx)
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}

		defer func() {
			if rec := recover(); rec != nil {
				tx.Rollback()
				panic(rec)
			}
		}()

		if err := fn(With(ctx, tx)); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("rollback after %w: %v", err, rbErr)
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	}
}
