package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// AllLister defines the interface that the service must implement.
type AllLister interface {
	All(ctx context.Context) ([]models.Lifehack, error)
}

// NewAllLifehacksHandler returns an HTTP handler listing every lifehack.
// @Summary Get all lifehacks
// @Description Returns all lifehacks sorted by descending date.
// @Tags lifehacks
// @Produce json
// @Success 200 {array} models.Lifehack "All lifehacks, newest first"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/lifehacks/all [get]
func NewAllLifehacksHandler(svc AllLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lifehacks, err := svc.All(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to fetch all lifehacks", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch all lifehacks")
			return
		}

		writeJSON(w, http.StatusOK, lifehacks)
	}
}
