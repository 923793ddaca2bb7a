package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// PreviousLister defines the interface that the service must implement.
type PreviousLister interface {
	Previous(ctx context.Context, days int) ([]models.Lifehack, error)
}

// NewPreviousHandler returns an HTTP handler for the prior days' lifehacks.
// @Summary Get previous lifehacks
// @Description Returns lifehacks for the N days before today (default 7), omitting days without content.
// @Tags lifehacks
// @Produce json
// @Param days query int false "Number of previous days" default(7)
// @Success 200 {array} models.Lifehack "Previous lifehacks, newest first"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/lifehacks/previous [get]
func NewPreviousHandler(svc PreviousLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Non-numeric or out-of-range values fall back to the default window.
		days, err := strconv.Atoi(r.URL.Query().Get("days"))
		if err != nil {
			days = 0
		}

		lifehacks, err := svc.Previous(r.Context(), days)
		if err != nil {
			logger.Log.Errorw("failed to fetch previous lifehacks", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch previous lifehacks")
			return
		}

		writeJSON(w, http.StatusOK, lifehacks)
	}
}
