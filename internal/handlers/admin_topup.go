package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/jwt"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/lakshman261099/career-ai-sub000/internal/services"
)

// AdminTokener defines only the methods needed by the admin handlers.
type AdminTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TenantTopUpper defines the interface that the service must implement.
type TenantTopUpper interface {
	TopUp(ctx context.Context, actorID, tenantID uuid.UUID, currency string, amount int64, reason string) (*models.TenantWalletDB, error)
}

// AdminErrorResponse represents an error response for admin endpoints
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	// default: Forbidden
	Error string `json:"error"`
}

// TopUpRequest represents the JSON body for a tenant top-up
// swagger:model TopUpRequest
type TopUpRequest struct {
	// Currency to credit
	// required: true
	// default: gold
	Currency string `json:"currency"`

	// Amount to credit
	// required: true
	// default: 3000
	Amount int64 `json:"amount"`

	// Reason recorded in the audit log
	Reason string `json:"reason"`
}

// TenantWalletResponse represents a tenant wallet state
// swagger:model TenantWalletResponse
type TenantWalletResponse struct {
	Wallet *models.TenantWalletDB `json:"wallet"`
}

// authorizeOperator authenticates the request and requires the operator
// role. Writes the error response itself; callers bail out on false.
func authorizeOperator(w http.ResponseWriter, r *http.Request, tokenGetter AdminTokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		writeJSON(w, http.StatusUnauthorized, AdminErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		writeJSON(w, http.StatusUnauthorized, AdminErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	if !claims.IsOperator() {
		logger.Log.Warnw("non-operator attempted admin operation", "userID", claims.UserID, "path", r.URL.Path)
		writeJSON(w, http.StatusForbidden, AdminErrorResponse{Error: "Forbidden"})
		return nil, false
	}

	return claims, true
}

// tenantIDParam parses the tenant_id path parameter.
func tenantIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	tenantID, err := uuid.Parse(chi.URLParam(r, "tenant_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, AdminErrorResponse{Error: "Invalid tenant id"})
		return uuid.Nil, false
	}
	return tenantID, true
}

// NewAdminTopUpHandler returns an HTTP handler for crediting a tenant wallet.
// @Summary Top up a tenant wallet
// @Description Credits a tenant wallet in one currency. Operator role required. The mutation is recorded in the ledger and the audit log.
// @Tags admin
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param request body handlers.TopUpRequest true "Top-up request"
// @Success 200 {object} handlers.TenantWalletResponse "Updated wallet"
// @Failure 400 {object} handlers.AdminErrorResponse "Invalid request"
// @Failure 401 {object} handlers.AdminErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdminErrorResponse "Operator role required"
// @Router /admin/tenants/{tenant_id}/topup [post]
// @Security BearerAuth
func NewAdminTopUpHandler(
	svc TenantTopUpper,
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

		var req TopUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode top-up request", "error", err)
			writeJSON(w, http.StatusBadRequest, AdminErrorResponse{Error: "Invalid request body"})
			return
		}

		wallet, err := svc.TopUp(ctx, claims.UserID, tenantID, req.Currency, req.Amount, req.Reason)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAmount) || errors.Is(err, services.ErrInvalidCurrency) {
				writeJSON(w, http.StatusBadRequest, AdminErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to top up tenant", "tenantID", tenantID, "error", err)
			writeJSON(w, http.StatusInternalServerError, AdminErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, TenantWalletResponse{Wallet: wallet})
	}
}
