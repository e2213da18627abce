package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lakshman261099/career-ai-sub000/internal/txctx"
)

// executor returns the transaction carried by the context when present, or
// the bare connection pool otherwise. All write repositories route their
// statements through this so a ledger operation's wallet update and its
// transaction row always share one database transaction.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := txctx.From(ctx); tx != nil {
		return tx
	}
	return db
}
