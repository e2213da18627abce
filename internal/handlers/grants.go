package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/costs"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
)

// GrantApplier defines the interface that the service must implement.
type GrantApplier interface {
	GrantSignup(ctx context.Context, userID uuid.UUID, plan string) error
	RefillMonthly(ctx context.Context, userID uuid.UUID, plan string) error
}

// GrantRequest represents the JSON body for grant endpoints
// swagger:model GrantRequest
type GrantRequest struct {
	// Plan tier the grant is based on
	// required: true
	// default: pro
	Plan string `json:"plan"`
}

// GrantResponse represents a successful grant
// swagger:model GrantResponse
type GrantResponse struct {
	// Success message
	// default: Grant applied
	Message string `json:"message"`
}

func userIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, AdminErrorResponse{Error: "Invalid user id"})
		return uuid.Nil, false
	}
	return userID, true
}

// NewSignupGrantHandler returns an HTTP handler applying the one-time signup
// grant to a user's wallet.
// @Summary Apply signup grant
// @Description Brings a user's wallet up to the plan's starting balance. Safe to repeat. Operator role required.
// @Tags admin
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body handlers.GrantRequest true "Grant request"
// @Success 200 {object} handlers.GrantResponse "Grant applied"
// @Failure 400 {object} handlers.AdminErrorResponse "Invalid request"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Operator role required"
// @Router /admin/users/{user_id}/grants/signup [post]
// @Security BearerAuth
func NewSignupGrantHandler(
	svc GrantApplier,
	tokenGetter AdminTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := authorizeOperator(w, r, tokenGetter); !ok {
			return
		}
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		var req GrantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, AdminErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.GrantSignup(ctx, userID, req.Plan); err != nil {
			logger.Log.Errorw("failed to apply signup grant", "userID", userID, "plan", req.Plan, "error", err)
			writeJSON(w, http.StatusInternalServerError, AdminErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, GrantResponse{Message: "Grant applied"})
	}
}

// NewMonthlyRefillHandler returns an HTTP handler crediting a plan's monthly
// allowance.
// @Summary Apply monthly allowance
// @Description Credits the plan's recurring allowance to a user's wallet. Operator role required.
// @Tags admin
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body handlers.GrantRequest true "Grant request"
// @Success 200 {object} handlers.GrantResponse "Allowance credited"
// @Failure 400 {object} handlers.AdminErrorResponse "Unknown plan"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Operator role required"
// @Router /admin/users/{user_id}/grants/allowance [post]
// @Security BearerAuth
func NewMonthlyRefillHandler(
	svc GrantApplier,
	tokenGetter AdminTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := authorizeOperator(w, r, tokenGetter); !ok {
			return
		}
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		var req GrantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, AdminErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.RefillMonthly(ctx, userID, req.Plan); err != nil {
			if errors.Is(err, costs.ErrUnknownFeature) {
				writeJSON(w, http.StatusBadRequest, AdminErrorResponse{Error: "Unknown plan"})
				return
			}
			logger.Log.Errorw("failed to credit allowance", "userID", userID, "plan", req.Plan, "error", err)
			writeJSON(w, http.StatusInternalServerError, AdminErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, GrantResponse{Message: "Allowance credited"})
	}
}
