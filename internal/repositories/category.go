package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// CategoryRepository is the in-memory category collection. Categories are
// seeded at startup and read-only afterwards.
type CategoryRepository struct {
	mu         sync.Mutex
	categories map[int64]models.Category
	nextID     int64
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[int64]models.Category),
		nextID:     1,
	}
}

// GetByID returns the category with the given id, or nil when absent.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]

	logger.Log.Infow("category get by id", "id", id, "found", ok)

	if !ok {
		return nil, nil
	}
	return &category, nil
}

// GetByName returns the first category whose name matches case-insensitively,
// or nil when absent.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, category := range r.categories {
		if strings.EqualFold(category.Name, name) {
			c := category
			logger.Log.Infow("category get by name", "name", name, "id", c.ID)
			return &c, nil
		}
	}

	logger.Log.Infow("category get by name", "name", name, "found", false)
	return nil, nil
}

// List returns all categories ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories := make([]models.Category, 0, len(r.categories))
	for _, category := range r.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].ID < categories[j].ID
	})

	logger.Log.Infow("category list", "count", len(categories))

	return categories, nil
}

// Save stores a new category and returns the stored copy including the
// assigned id.
func (r *CategoryRepository) Save(ctx context.Context, name, icon, color string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category := models.Category{
		ID:    r.nextID,
		Name:  name,
		Icon:  icon,
		Color: color,
	}
	r.categories[category.ID] = category
	r.nextID++

	logger.Log.Infow("category saved", "id", category.ID, "name", name)

	return &category, nil
}
