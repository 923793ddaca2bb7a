package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// dayKey normalizes a timestamp to its UTC calendar day. Two dates match
// when their keys are equal, regardless of time-of-day.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// LifehackRepository is the in-memory lifehack collection.
type LifehackRepository struct {
	mu        sync.Mutex
	lifehacks map[int64]models.Lifehack
	nextID    int64
}

func NewLifehackRepository() *LifehackRepository {
	return &LifehackRepository{
		lifehacks: make(map[int64]models.Lifehack),
		nextID:    1,
	}
}

// copyLifehack returns a caller-owned copy so stored tag slices are never
// shared mutably.
func copyLifehack(l models.Lifehack) models.Lifehack {
	if l.Tags != nil {
		tags := make([]string, len(l.Tags))
		copy(tags, l.Tags)
		l.Tags = tags
	}
	return l
}

// sortedIDs returns ids in insertion order. Must be called with mu held.
func (r *LifehackRepository) sortedIDs() []int64 {
	ids := make([]int64, 0, len(r.lifehacks))
	for id := range r.lifehacks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// GetByID returns the lifehack with the given id, or nil when absent.
func (r *LifehackRepository) GetByID(ctx context.Context, id int64) (*models.Lifehack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lifehack, ok := r.lifehacks[id]

	logger.Log.Infow("lifehack get by id", "id", id, "found", ok)

	if !ok {
		return nil, nil
	}
	lifehack = copyLifehack(lifehack)
	return &lifehack, nil
}

// GetByDate returns the first lifehack (in insertion order) whose date falls
// on the same UTC calendar day as date, or nil when absent.
func (r *LifehackRepository) GetByDate(ctx context.Context, date time.Time) (*models.Lifehack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(date)
	for _, id := range r.sortedIDs() {
		lifehack := r.lifehacks[id]
		if dayKey(lifehack.Date) == key {
			logger.Log.Infow("lifehack get by date", "day", key, "id", lifehack.ID)
			lifehack = copyLifehack(lifehack)
			return &lifehack, nil
		}
	}

	logger.Log.Infow("lifehack get by date", "day", key, "found", false)
	return nil, nil
}

// List returns all lifehacks sorted by descending date. Lifehacks sharing a
// date keep their insertion order.
func (r *LifehackRepository) List(ctx context.Context) ([]models.Lifehack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lifehacks := make([]models.Lifehack, 0, len(r.lifehacks))
	for _, id := range r.sortedIDs() {
		lifehacks = append(lifehacks, copyLifehack(r.lifehacks[id]))
	}
	sort.SliceStable(lifehacks, func(i, j int) bool {
		return lifehacks[i].Date.After(lifehacks[j].Date)
	})

	logger.Log.Infow("lifehack list", "count", len(lifehacks))

	return lifehacks, nil
}

// ListByCategory returns the lifehacks referencing the given category id,
// sorted by descending date.
func (r *LifehackRepository) ListByCategory(ctx context.Context, categoryID int64) ([]models.Lifehack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lifehacks := make([]models.Lifehack, 0)
	for _, id := range r.sortedIDs() {
		lifehack := r.lifehacks[id]
		if lifehack.CategoryID != nil && *lifehack.CategoryID == categoryID {
			lifehacks = append(lifehacks, copyLifehack(lifehack))
		}
	}
	sort.SliceStable(lifehacks, func(i, j int) bool {
		return lifehacks[i].Date.After(lifehacks[j].Date)
	})

	logger.Log.Infow("lifehack list by category", "categoryID", categoryID, "count", len(lifehacks))

	return lifehacks, nil
}

// Save stores a new lifehack and returns the stored copy including the
// assigned id. The id assignment and insert happen under one critical
// section so concurrent creates cannot collide.
func (r *LifehackRepository) Save(ctx context.Context, title *string, content string, date time.Time, categoryID *int64, tags []string, image string) (*models.Lifehack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lifehack := models.Lifehack{
		ID:         r.nextID,
		Title:      title,
		Content:    content,
		Date:       date,
		CategoryID: categoryID,
		Tags:       tags,
		Image:      image,
	}
	r.lifehacks[lifehack.ID] = copyLifehack(lifehack)
	r.nextID++

	logger.Log.Infow("lifehack saved", "id", lifehack.ID, "day", dayKey(date))

	return &lifehack, nil
}
