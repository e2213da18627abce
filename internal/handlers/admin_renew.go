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

// Renewer defines the interface that the service must implement.
type Renewer interface {
	Renew(ctx context.Context, actorID, tenantID uuid.UUID, reason string) (*models.TenantWalletDB, error)
}

// RenewRequest represents the JSON body for a tenant renewal
// swagger:model RenewRequest
type RenewRequest struct {
	// Reason recorded in the audit log
	Reason string `json:"reason"`
}

// NewAdminRenewHandler returns an HTTP handler for the annual tenant renewal.
// @Summary Renew a tenant wallet
// @Description Resets tenant balances to their annual caps and advances the renewal date by one year. Operator role required.
// @Tags admin
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param request body handlers.RenewRequest true "Renewal request"
// @Success 200 {object} handlers.TenantWalletResponse "Renewed wallet"
// @Failure 400 {object} handlers.AdminErrorResponse "Invalid tenant id"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Operator role required"
// @Failure 404 {object} handlers.AdminErrorResponse "Tenant not found"
// @Router /admin/tenants/{tenant_id}/renew [post]
// @Security BearerAuth
func NewAdminRenewHandler(
	svc Renewer,
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

		var req RenewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode renew request", "error", err)
			writeJSON(w, http.StatusBadRequest, AdminErrorResponse{Error: "Invalid request body"})
			return
		}

		wallet, err := svc.Renew(ctx, claims.UserID, tenantID, req.Reason)
		if err != nil {
			if errors.Is(err, services.ErrTenantNotFound) {
				writeJSON(w, http.StatusNotFound, AdminErrorResponse{Error: "Tenant not found"})
				return
			}
			logger.Log.Errorw("failed to renew tenant", "tenantID", tenantID, "error", err)
			writeJSON(w, http.StatusInternalServerError, AdminErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, TenantWalletResponse{Wallet: wallet})
	}
}
