package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/jwt"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Balancer defines the interface that the service must implement.
type Balancer interface {
	Balances(ctx context.Context, userID uuid.UUID) (silver, gold int64, err error)
}

// CurrencyBalance represents balances in both credit currencies
// swagger:model CurrencyBalance
type CurrencyBalance struct {
	// Silver balance
	// default: 20
	Silver int64 `json:"silver"`

	// Gold balance
	// default: 3000
	Gold int64 `json:"gold"`
}

// BalanceResponse represents a successful response with user balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// User balances
	Balance *CurrencyBalance `json:"balance"`
}

// BalanceErrorResponse represents an error response when fetching balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching user balances.
// @Summary Get wallet balance
// @Description Returns the user's Silver and Gold balances
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "User balance"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.BalanceErrorResponse "Internal server error"
// @Router /wallet/balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	svc Balancer,
	tokenGetter BalanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized balance request: missing or invalid token")
			writeJSON(w, http.StatusUnauthorized, BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			writeJSON(w, http.StatusUnauthorized, BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		silver, gold, err := svc.Balances(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "userID", claims.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, BalanceErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{
			Balance: &CurrencyBalance{Silver: silver, Gold: gold},
		})
	}
}
