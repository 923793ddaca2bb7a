package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// CategoryLifehackLister defines the interface that the service must implement.
type CategoryLifehackLister interface {
	ByCategory(ctx context.Context, categoryID int64) ([]models.Lifehack, error)
}

// NewLifehacksByCategoryHandler returns an HTTP handler listing a category's lifehacks.
// @Summary Get lifehacks by category
// @Description Returns the lifehacks in a category sorted by descending date. Unknown categories yield an empty list.
// @Tags lifehacks
// @Produce json
// @Param categoryId path int true "Category id"
// @Success 200 {array} models.Lifehack "Lifehacks in the category, newest first"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/lifehacks/category/{categoryId} [get]
func NewLifehacksByCategoryHandler(svc CategoryLifehackLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryId"), 10, 64)
		if err != nil {
			// No category can have a non-numeric id; the result is an empty list.
			writeJSON(w, http.StatusOK, []models.Lifehack{})
			return
		}

		lifehacks, err := svc.ByCategory(r.Context(), categoryID)
		if err != nil {
			logger.Log.Errorw("failed to fetch lifehacks by category", "categoryId", categoryID, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch lifehacks by category")
			return
		}

		writeJSON(w, http.StatusOK, lifehacks)
	}
}
