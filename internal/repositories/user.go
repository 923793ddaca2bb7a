package repositories

import (
	"context"
	"sync"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// UserRepository is the in-memory user collection. Ids start at 1 and are
// never reused within the process lifetime.
type UserRepository struct {
	mu     sync.Mutex
	users  map[int64]models.UserDB
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int64]models.UserDB),
		nextID: 1,
	}
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]

	logger.Log.Infow("user get by id", "id", id, "found", ok)

	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetByUsername returns the user with the given username (case-sensitive),
// or nil when absent. Linear scan; the collection is small.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			logger.Log.Infow("user get by username", "username", username, "found", true)
			return &u, nil
		}
	}

	logger.Log.Infow("user get by username", "username", username, "found", false)
	return nil, nil
}

// Save stores a new user and returns the stored copy including the assigned id.
// The id assignment and insert happen under one critical section.
func (r *UserRepository) Save(ctx context.Context, username, password string) (*models.UserDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := models.UserDB{
		ID:       r.nextID,
		Username: username,
		Password: password,
	}
	r.users[user.ID] = user
	r.nextID++

	logger.Log.Infow("user saved", "id", user.ID, "username", username)

	return &user, nil
}
