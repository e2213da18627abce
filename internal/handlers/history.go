package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/jwt"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
)

// HistoryTokener defines only the methods needed by this handler.
type HistoryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// HistoryReader defines the interface that the service must implement.
type HistoryReader interface {
	History(ctx context.Context, userID uuid.UUID, feature string, limit int) ([]models.TransactionDB, error)
}

// HistoryResponse represents the user's ledger history
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Ledger rows, newest first
	Transactions []models.TransactionDB `json:"transactions"`
}

// HistoryErrorResponse represents an error response for the history endpoint
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewHistoryHandler returns an HTTP handler for the user's transaction history.
// @Summary Get transaction history
// @Description Returns the user's ledger rows, newest first. Optionally filtered by feature.
// @Tags wallet
// @Produce json
// @Param feature query string false "Filter by feature key"
// @Param limit query int false "Max rows to return" default(50)
// @Success 200 {object} handlers.HistoryResponse "Transaction history"
// @Failure 401 {object} handlers.HistoryErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.HistoryErrorResponse "Internal server error"
// @Router /wallet/transactions [get]
// @Security BearerAuth
func NewHistoryHandler(
	svc HistoryReader,
	tokenGetter HistoryTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			writeJSON(w, http.StatusUnauthorized, HistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			writeJSON(w, http.StatusUnauthorized, HistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		feature := r.URL.Query().Get("feature")

		txns, err := svc.History(ctx, claims.UserID, feature, limit)
		if err != nil {
			logger.Log.Errorw("failed to get history", "userID", claims.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		if txns == nil {
			txns = []models.TransactionDB{}
		}
		writeJSON(w, http.StatusOK, HistoryResponse{Transactions: txns})
	}
}
