package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
	"github.com/sbilibin2017/daily-lifehack/internal/services"
)

// LifehackGetter defines the interface that the service must implement.
type LifehackGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Lifehack, error)
}

// NewGetLifehackHandler returns an HTTP handler for a single lifehack.
// @Summary Get a lifehack by id
// @Tags lifehacks
// @Produce json
// @Param id path int true "Lifehack id"
// @Success 200 {object} models.Lifehack "Lifehack"
// @Failure 404 {object} handlers.ErrorResponse "Lifehack not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/lifehacks/{id} [get]
func NewGetLifehackHandler(svc LifehackGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A non-numeric id can match no stored entity.
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Lifehack not found")
			return
		}

		lifehack, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLifehackNotFound):
				writeError(w, http.StatusNotFound, "Lifehack not found")
			default:
				logger.Log.Errorw("failed to fetch lifehack", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to fetch lifehack")
			}
			return
		}

		writeJSON(w, http.StatusOK, lifehack)
	}
}
