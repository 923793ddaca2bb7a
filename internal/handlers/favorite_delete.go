package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/services"
)

// FavoriteRemover defines the interface that the service must implement.
type FavoriteRemover interface {
	Remove(ctx context.Context, id int64) error
}

// NewDeleteFavoriteHandler returns an HTTP handler removing a favorite by id.
// @Summary Delete a favorite
// @Tags favorites
// @Produce json
// @Param id path int true "Favorite id"
// @Success 204 "Favorite deleted"
// @Failure 404 {object} handlers.ErrorResponse "Favorite not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/favorites/{id} [delete]
// @Security BearerAuth
func NewDeleteFavoriteHandler(svc FavoriteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Favorite not found")
			return
		}

		if err := svc.Remove(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrFavoriteNotFound):
				writeError(w, http.StatusNotFound, "Favorite not found")
			default:
				logger.Log.Errorw("failed to delete favorite", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to delete favorite")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
