package middlewares

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/txctx"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The ledger
// repositories pick the transaction up from the request context, so every
// balance mutation performed while serving one request commits or rolls back
// as a single atomic unit. An error response (status >= 400) rolls the
// transaction back.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			r = r.WithContext(txctx.With(r.Context(), tx))

			next.ServeHTTP(rw, r)

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "status", rw.statusCode, "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				// The response has already been written; the log line is
				// all that can record the lost commit.
				logger.Log.Errorw("failed to commit transaction", "error", err)
			}
		})
	}
}
