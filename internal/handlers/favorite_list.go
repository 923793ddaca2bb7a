package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// FavoriteTokener defines only the token methods needed by the favorites handlers.
type FavoriteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// FavoriteLister defines the interface that the service must implement.
type FavoriteLister interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
}

// NewListFavoritesHandler returns an HTTP handler listing the caller's favorites.
// @Summary List favorites
// @Description Returns the authenticated user's favorites, newest first.
// @Tags favorites
// @Produce json
// @Success 200 {array} models.Favorite "User's favorites"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/favorites [get]
// @Security BearerAuth
func NewListFavoritesHandler(svc FavoriteLister, tokener FavoriteTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authorizedUserID(ctx, r, tokener)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		favorites, err := svc.ListByUser(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list favorites", "userID", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch favorites")
			return
		}

		writeJSON(w, http.StatusOK, favorites)
	}
}

// authorizedUserID resolves the calling user from the bearer token.
func authorizedUserID(ctx context.Context, r *http.Request, tokener FavoriteTokener) (int64, bool) {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("unauthorized request: missing token", "err", err)
		return 0, false
	}

	userID, err := tokener.GetUserID(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("unauthorized request: invalid token", "err", err)
		return 0, false
	}

	return userID, true
}
