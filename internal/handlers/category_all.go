package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// CategoryLister defines the interface that the service must implement.
type CategoryLister interface {
	List(ctx context.Context) ([]models.Category, error)
}

// NewAllCategoriesHandler returns an HTTP handler listing all categories.
// @Summary Get all categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category "All categories"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/categories [get]
func NewAllCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to fetch categories", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}

		writeJSON(w, http.StatusOK, categories)
	}
}
