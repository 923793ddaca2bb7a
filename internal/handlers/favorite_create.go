package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// FavoriteAdder defines the interface that the service must implement.
type FavoriteAdder interface {
	Add(ctx context.Context, userID, lifehackID int64) (*models.Favorite, error)
}

// CreateFavoriteRequest represents the JSON body for creating a favorite
// swagger:model CreateFavoriteRequest
type CreateFavoriteRequest struct {
	// Lifehack id to favorite
	// required: true
	// default: 1
	LifehackID int64 `json:"lifehackId"`
}

// NewCreateFavoriteHandler returns an HTTP handler creating a favorite for the caller.
// @Summary Add a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param createFavoriteRequest body handlers.CreateFavoriteRequest true "Favorite creation request"
// @Success 201 {object} models.Favorite "Created favorite"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/favorites [post]
// @Security BearerAuth
func NewCreateFavoriteHandler(svc FavoriteAdder, tokener FavoriteTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authorizedUserID(ctx, r, tokener)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.LifehackID == 0 {
			writeError(w, http.StatusBadRequest, "lifehackId is required")
			return
		}

		favorite, err := svc.Add(ctx, userID, req.LifehackID)
		if err != nil {
			logger.Log.Errorw("failed to create favorite", "userID", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to create favorite")
			return
		}

		writeJSON(w, http.StatusCreated, favorite)
	}
}
