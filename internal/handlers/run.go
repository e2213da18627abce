package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/costs"
	"github.com/lakshman261099/career-ai-sub000/internal/jwt"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/lakshman261099/career-ai-sub000/internal/services"
)

// StartRunTokener defines only the methods needed by this handler.
type StartRunTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RunStarter defines the interface that the service must implement.
type RunStarter interface {
	Start(ctx context.Context, userID uuid.UUID, feature, currency string, payload json.RawMessage) (*models.RunDB, error)
}

// StartRunRequest represents the JSON body for starting a feature run
// swagger:model StartRunRequest
type StartRunRequest struct {
	// Currency to pay with
	// required: true
	// default: silver
	Currency string `json:"currency"`

	// Feature-specific input document
	Payload json.RawMessage `json:"payload"`
}

// StartRunResponse represents a successfully enqueued run
// swagger:model StartRunResponse
type StartRunResponse struct {
	// Run identifier for polling status
	RunID string `json:"run_id"`

	// Run status, always queued on creation
	// default: queued
	Status string `json:"status"`

	// Amount charged
	Cost int64 `json:"cost"`

	// Currency charged
	Currency string `json:"currency"`
}

// RunErrorResponse represents an error response for run endpoints
// swagger:model RunErrorResponse
type RunErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

// NewStartRunHandler returns an HTTP handler that charges for and enqueues
// one feature run.
// @Summary Start a paid feature run
// @Description Charges the feature cost from the user's wallet and enqueues the job. The charge is refunded automatically if the job fails.
// @Tags runs
// @Accept json
// @Produce json
// @Param feature path string true "Feature key"
// @Param request body handlers.StartRunRequest true "Run request"
// @Success 201 {object} handlers.StartRunResponse "Run enqueued"
// @Failure 400 {object} handlers.RunErrorResponse "Unknown feature or invalid request"
// @Failure 401 {object} handlers.RunErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.RunErrorResponse "Insufficient funds"
// @Failure 503 {object} handlers.RunErrorResponse "Job queue unavailable"
// @Router /features/{feature}/runs [post]
// @Security BearerAuth
func NewStartRunHandler(
	svc RunStarter,
	tokenGetter StartRunTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			writeJSON(w, http.StatusUnauthorized, RunErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			writeJSON(w, http.StatusUnauthorized, RunErrorResponse{Error: "Unauthorized"})
			return
		}

		feature := chi.URLParam(r, "feature")

		var req StartRunRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode run request", "error", err)
			writeJSON(w, http.StatusBadRequest, RunErrorResponse{Error: "Invalid request body"})
			return
		}

		run, err := svc.Start(ctx, claims.UserID, feature, req.Currency, req.Payload)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientFunds):
				writeJSON(w, http.StatusPaymentRequired, RunErrorResponse{Error: "Insufficient funds"})
			case errors.Is(err, costs.ErrUnknownFeature), errors.Is(err, services.ErrInvalidCurrency):
				writeJSON(w, http.StatusBadRequest, RunErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrEnqueueFailed):
				writeJSON(w, http.StatusServiceUnavailable, RunErrorResponse{Error: "Job queue unavailable, charge refunded"})
			default:
				logger.Log.Errorw("failed to start run", "userID", claims.UserID, "feature", feature, "error", err)
				writeJSON(w, http.StatusInternalServerError, RunErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusCreated, StartRunResponse{
			RunID:    run.RunID.String(),
			Status:   run.Status,
			Cost:     run.Cost,
			Currency: run.Currency,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
