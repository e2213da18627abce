package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lakshman261099/career-ai-sub000/internal/jwt"
	"github.com/lakshman261099/career-ai-sub000/internal/logger"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
	"github.com/lakshman261099/career-ai-sub000/internal/services"
)

// RunStatusTokener defines only the methods needed by this handler.
type RunStatusTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RunStatusReader defines the interface that the service must implement.
type RunStatusReader interface {
	Status(ctx context.Context, runID uuid.UUID) (*models.RunStatus, error)
}

// NewRunStatusHandler returns an HTTP handler for polling a run's status.
// @Summary Get run status
// @Description Returns the current status of a feature run, with the result once finished.
// @Tags runs
// @Produce json
// @Param run_id path string true "Run ID"
// @Success 200 {object} models.RunStatus "Run status"
// @Failure 400 {object} handlers.RunErrorResponse "Invalid run id"
// @Failure 401 {object} handlers.RunErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.RunErrorResponse "Run not found"
// @Router /runs/{run_id} [get]
// @Security BearerAuth
func NewRunStatusHandler(
	svc RunStatusReader,
	tokenGetter RunStatusTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			writeJSON(w, http.StatusUnauthorized, RunErrorResponse{Error: "Unauthorized"})
			return
		}

		if _, err := tokenGetter.GetClaims(ctx, tokenStr); err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			writeJSON(w, http.StatusUnauthorized, RunErrorResponse{Error: "Unauthorized"})
			return
		}

		runID, err := uuid.Parse(chi.URLParam(r, "run_id"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, RunErrorResponse{Error: "Invalid run id"})
			return
		}

		status, err := svc.Status(ctx, runID)
		if err != nil {
			if errors.Is(err, services.ErrRunNotFound) {
				writeJSON(w, http.StatusNotFound, RunErrorResponse{Error: "Run not found"})
				return
			}
			logger.Log.Errorw("failed to get run status", "runID", runID, "error", err)
			writeJSON(w, http.StatusInternalServerError, RunErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}
