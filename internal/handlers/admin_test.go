package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/costs"
	"github.com/lakshman261099/career-ai-sub000/internal/jwt"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/lakshman261099/career-ai-sub000/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTopUpHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockTenantTopUpper(ctrl)
	actorID := uuid.New()
	tenantID := uuid.New()

	router := chi.NewRouter()
	router.Post("/admin/tenants/{tenant_id}/topup", NewAdminTopUpHandler(svc, testJWT))

	t.Run("operator tops up tenant", func(t *testing.T) {
		svc.EXPECT().TopUp(gomock.Any(), actorID, tenantID, models.Gold, int64(3000), "semester budget").
			Return(&models.TenantWalletDB{TenantID: tenantID, GoldBalance: 3000}, nil)

		body := `{"currency":"gold","amount":3000,"reason":"semester budget"}`
		req := httptest.NewRequest(http.MethodPost, "/admin/tenants/"+tenantID.String()+"/topup", bytes.NewBufferString(body))
		req.Header.Set("Authorization", bearerToken(t, actorID, jwt.Operator))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp TenantWalletResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(3000), resp.Wallet.GoldBalance)
	})

	t.Run("non-operator forbidden", func(t *testing.T) {
		body := `{"currency":"gold","amount":3000}`
		req := httptest.NewRequest(http.MethodPost, "/admin/tenants/"+tenantID.String()+"/topup", bytes.NewBufferString(body))
		req.Header.Set("Authorization", bearerToken(t, actorID, ""))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("invalid amount", func(t *testing.T) {
		svc.EXPECT().TopUp(gomock.Any(), actorID, tenantID, models.Gold, int64(-5), "").
			Return(nil, services.ErrInvalidAmount)

		body := `{"currency":"gold","amount":-5}`
		req := httptest.NewRequest(http.MethodPost, "/admin/tenants/"+tenantID.String()+"/topup", bytes.NewBufferString(body))
		req.Header.Set("Authorization", bearerToken(t, actorID, jwt.Operator))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid tenant id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/tenants/not-a-uuid/topup", bytes.NewBufferString(`{}`))
		req.Header.Set("Authorization", bearerToken(t, actorID, jwt.Operator))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminSetCapHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCapSetter(ctrl)
	actorID := uuid.New()
	tenantID := uuid.New()
	cap := int64(5000)

	router := chi.NewRouter()
	router.Put("/admin/tenants/{tenant_id}/cap", NewAdminSetCapHandler(svc, testJWT))

	svc.EXPECT().SetCap(gomock.Any(), actorID, tenantID, models.Gold, cap, "new contract").
		Return(&models.TenantWalletDB{TenantID: tenantID, GoldCap: &cap}, nil)

	body := `{"currency":"gold","cap":5000,"reason":"new contract"}`
	req := httptest.NewRequest(http.MethodPut, "/admin/tenants/"+tenantID.String()+"/cap", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearerToken(t, actorID, jwt.Operator))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp TenantWalletResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Wallet.GoldCap)
	assert.Equal(t, cap, *resp.Wallet.GoldCap)
}

func TestAdminRenewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRenewer(ctrl)
	actorID := uuid.New()
	tenantID := uuid.New()

	router := chi.NewRouter()
	router.Post("/admin/tenants/{tenant_id}/renew", NewAdminRenewHandler(svc, testJWT))

	t.Run("renewal", func(t *testing.T) {
		svc.EXPECT().Renew(gomock.Any(), actorID, tenantID, "annual").
			Return(&models.TenantWalletDB{TenantID: tenantID, GoldBalance: 3000}, nil)

		req := httptest.NewRequest(http.MethodPost, "/admin/tenants/"+tenantID.String()+"/renew", bytes.NewBufferString(`{"reason":"annual"}`))
		req.Header.Set("Authorization", bearerToken(t, actorID, jwt.Operator))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		svc.EXPECT().Renew(gomock.Any(), actorID, tenantID, "").
			Return(nil, services.ErrTenantNotFound)

		req := httptest.NewRequest(http.MethodPost, "/admin/tenants/"+tenantID.String()+"/renew", bytes.NewBufferString(`{}`))
		req.Header.Set("Authorization", bearerToken(t, actorID, jwt.Operator))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGrantHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockGrantApplier(ctrl)
	actorID := uuid.New()
	userID := uuid.New()

	router := chi.NewRouter()
	router.Post("/admin/users/{user_id}/grants/signup", NewSignupGrantHandler(svc, testJWT))
	router.Post("/admin/users/{user_id}/grants/allowance", NewMonthlyRefillHandler(svc, testJWT))

	t.Run("signup grant", func(t *testing.T) {
		svc.EXPECT().GrantSignup(gomock.Any(), userID, "pro").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/admin/users/"+userID.String()+"/grants/signup", bytes.NewBufferString(`{"plan":"pro"}`))
		req.Header.Set("Authorization", bearerToken(t, actorID, jwt.Operator))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("monthly allowance unknown plan", func(t *testing.T) {
		svc.EXPECT().RefillMonthly(gomock.Any(), userID, "no_such_plan").
			Return(fmt.Errorf("%w: allowance %q", costs.ErrUnknownFeature, "no_such_plan"))

		req := httptest.NewRequest(http.MethodPost, "/admin/users/"+userID.String()+"/grants/allowance", bytes.NewBufferString(`{"plan":"no_such_plan"}`))
		req.Header.Set("Authorization", bearerToken(t, actorID, jwt.Operator))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
