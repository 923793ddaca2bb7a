package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// FavoriteRepository is the in-memory favorite collection. It is the only
// collection supporting deletes; deleted ids are never reassigned.
type FavoriteRepository struct {
	mu        sync.Mutex
	favorites map[int64]models.Favorite
	nextID    int64
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{
		favorites: make(map[int64]models.Favorite),
		nextID:    1,
	}
}

// GetByID returns the favorite with the given id, or nil when absent.
func (r *FavoriteRepository) GetByID(ctx context.Context, id int64) (*models.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorite, ok := r.favorites[id]

	logger.Log.Infow("favorite get by id", "id", id, "found", ok)

	if !ok {
		return nil, nil
	}
	return &favorite, nil
}

// ListByUser returns the user's favorites sorted newest-created-first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorites := make([]models.Favorite, 0)
	for _, favorite := range r.favorites {
		if favorite.UserID == userID {
			favorites = append(favorites, favorite)
		}
	}
	sort.Slice(favorites, func(i, j int) bool {
		if favorites[i].CreatedAt.Equal(favorites[j].CreatedAt) {
			return favorites[i].ID > favorites[j].ID
		}
		return favorites[i].CreatedAt.After(favorites[j].CreatedAt)
	})

	logger.Log.Infow("favorite list by user", "userID", userID, "count", len(favorites))

	return favorites, nil
}

// Save stores a new favorite stamped with the server clock and returns the
// stored copy including the assigned id.
func (r *FavoriteRepository) Save(ctx context.Context, userID, lifehackID int64) (*models.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	favorite := models.Favorite{
		ID:         r.nextID,
		UserID:     userID,
		LifehackID: lifehackID,
		CreatedAt:  time.Now(),
	}
	r.favorites[favorite.ID] = favorite
	r.nextID++

	logger.Log.Infow("favorite saved", "id", favorite.ID, "userID", userID, "lifehackID", lifehackID)

	return &favorite, nil
}

// Delete removes the favorite with the given id and reports whether a row
// existed and was removed.
func (r *FavoriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.favorites[id]
	if ok {
		delete(r.favorites, id)
	}

	logger.Log.Infow("favorite deleted", "id", id, "deleted", ok)

	return ok, nil
}
