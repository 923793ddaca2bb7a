package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

var (
	// ErrFavoriteNotFound is returned when no favorite exists for the requested id.
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// FavoriteReader defines read operations on the favorite collection.
type FavoriteReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
}

// FavoriteWriter defines write operations on the favorite collection.
type FavoriteWriter interface {
	Save(ctx context.Context, userID, lifehackID int64) (*models.Favorite, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// FavoriteService manages a user's favorites.
type FavoriteService struct {
	reader FavoriteReader
	writer FavoriteWriter
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(reader FavoriteReader, writer FavoriteWriter) *FavoriteService {
	return &FavoriteService{reader: reader, writer: writer}
}

// ListByUser returns the user's favorites, newest first.
func (s *FavoriteService) ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return s.reader.ListByUser(ctx, userID)
}

// Add stores a new favorite for the user. Dangling lifehack ids are accepted
// silently; the store does not enforce referential integrity.
func (s *FavoriteService) Add(ctx context.Context, userID, lifehackID int64) (*models.Favorite, error) {
	favorite, err := s.writer.Save(ctx, userID, lifehackID)
	if err != nil {
		logger.Log.Errorw("failed to save favorite", "userID", userID, "lifehackID", lifehackID, "error", err)
		return nil, err
	}
	return favorite, nil
}

// Remove deletes a favorite by id, returning ErrFavoriteNotFound when no
// such favorite existed.
func (s *FavoriteService) Remove(ctx context.Context, id int64) error {
	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete favorite", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrFavoriteNotFound
	}
	return nil
}
