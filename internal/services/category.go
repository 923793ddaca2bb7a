package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

var (
	// ErrCategoryNotFound is returned when no category exists for the requested id.
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryReader defines read operations on the category collection.
type CategoryReader interface {
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
}

// CategoryService serves category reads.
type CategoryService struct {
	reader CategoryReader
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(reader CategoryReader) *CategoryService {
	return &CategoryService{reader: reader}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.reader.List(ctx)
}

// GetByID returns a single category or ErrCategoryNotFound.
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get category", "id", id, "error", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
