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

// CategoryGetter defines the interface that the service must implement.
type CategoryGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Category, error)
}

// NewGetCategoryHandler returns an HTTP handler for a single category.
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} models.Category "Category"
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/categories/{id} [get]
func NewGetCategoryHandler(svc CategoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Category not found")
			return
		}

		category, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNotFound):
				writeError(w, http.StatusNotFound, "Category not found")
			default:
				logger.Log.Errorw("failed to fetch category", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to fetch category")
			}
			return
		}

		writeJSON(w, http.StatusOK, category)
	}
}
