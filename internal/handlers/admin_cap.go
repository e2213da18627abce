package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/lakshman261099/career-ai-sub000/internal/services"
)

// CapSetter defines the interface that the service must implement.
type CapSetter interface {
	SetCap(ctx context.Context, actorID, tenantID uuid.UUID, currency string, cap int64, reason string) (*models.TenantWalletDB, error)
}

// SetCapRequest represents the JSON body for setting a tenant's annual cap
// swagger:model SetCapRequest
type SetCapRequest struct {
	// Currency the cap applies to
	// required: true
	// default: gold
	Currency string `json:"currency"`

	// Annual cap amount
	// required: true
	// default: 5000
	Cap int64 `json:"cap"`

	// Reason recorded in the audit log
	Reason string `json:"reason"`
}

// NewAdminSetCapHandler returns an HTTP handler for setting a tenant's
// annual cap.
// @Summary Set tenant annual cap
// @Description Sets the annual cap for one currency on a tenant wallet. Operator role required.
// @Tags admin
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param request body handlers.SetCapRequest true "Cap request"
// @Success 200 {object} handlers.TenantWalletResponse "Updated wallet"
// @Failure 400 {object} handlers.AdminErrorResponse "Invalid request"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Operator role required"
// @Router /admin/tenants/{tenant_id}/cap [put]
// @Security BearerAuth
func NewAdminSetCapHandler(
	svc CapSetter,
	tokenGetter AdminTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorizeOperator(w, r, tokenGetter)
		if !ok {
			return
		}
		tenantID, ok := tenantIDParam(w, r)
		if !ok {
			return
		}

		var req SetCapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode cap request", "error", err)
			writeJSON(w, http.StatusBadRequest, AdminErrorResponse{Error: "Invalid request body"})
			return
		}

		wallet, err := svc.SetCap(ctx, claims.UserID, tenantID, req.Currency, req.Cap, req.Reason)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAmount) || errors.Is(err, services.ErrInvalidCurrency) {
				writeJSON(w, http.StatusBadRequest, AdminErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to set tenant cap", "tenantID", tenantID, "error", err)
			writeJSON(w, http.StatusInternalServerError, AdminErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, TenantWalletResponse{Wallet: wallet})
	}
}
