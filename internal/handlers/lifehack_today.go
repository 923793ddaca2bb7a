package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// TodayResolver defines the interface that the service must implement.
type TodayResolver interface {
	Today(ctx context.Context) (*models.Lifehack, error)
}

// NewTodayHandler returns an HTTP handler for today's lifehack, generating
// one when none exists for the current UTC day.
// @Summary Get today's lifehack
// @Description Returns the lifehack for the current UTC calendar day, generating and storing a new one on first request of the day.
// @Tags lifehacks
// @Produce json
// @Success 200 {object} models.Lifehack "Today's lifehack"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/lifehacks/today [get]
func NewTodayHandler(svc TodayResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lifehack, err := svc.Today(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to resolve today's lifehack", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch today's lifehack")
			return
		}

		writeJSON(w, http.StatusOK, lifehack)
	}
}
