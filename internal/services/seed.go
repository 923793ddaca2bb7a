package services

import (
	"context"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

// CategoryWriter defines write operations on the category collection.
type CategoryWriter interface {
	Save(ctx context.Context, name, icon, color string) (*models.Category, error)
}

// defaultCategories are created once when the category collection is empty.
var defaultCategories = []models.Category{
	{Name: "Kitchen", Icon: "ri-restaurant-line", Color: "#5AE053"},
	{Name: "Home", Icon: "ri-home-line", Color: "#8A2B43"},
	{Name: "Tech", Icon: "ri-computer-line", Color: "#3E2844"},
	{Name: "Garden", Icon: "ri-plant-line", Color: "#FFC0CB"},
	{Name: "Money", Icon: "ri-money-dollar-circle-line", Color: "#FFD700"},
	{Name: "Health", Icon: "ri-heart-pulse-line", Color: "#FF6347"},
	{Name: "Travel", Icon: "ri-suitcase-line", Color: "#87CEEB"},
	{Name: "Cleaning", Icon: "ri-brush-line", Color: "#20B2AA"},
}

// sampleLifehack describes one startup sample before category resolution.
type sampleLifehack struct {
	content  string
	category string
	tags     []string
	image    string
}

// sampleLifehacks are created on the 1st, 2nd and 3rd day before today when
// the lifehack collection is empty.
var sampleLifehacks = []sampleLifehack{
	{
		content:  "Use an ice cube tray to freeze herbs in olive oil. This way, you'll have pre-portioned herb-infused oil ready for cooking anytime!",
		category: "Kitchen",
		tags:     []string{"Kitchen", "Cooking"},
		image:    "https://source.unsplash.com/random/250x250/?herbs,oil,ice,tray",
	},
	{
		content:  "Use a binder clip to organize charging cables on your desk. Clip it to the edge and thread cables through.",
		category: "Home",
		tags:     []string{"Office", "Organization"},
		image:    "https://source.unsplash.com/random/250x250/?desk,cable,organizer",
	},
	{
		content:  "Place a wooden spoon across a pot of boiling water to prevent it from boiling over. It breaks the surface tension of bubbles.",
		category: "Kitchen",
		tags:     []string{"Kitchen", "Cooking"},
		image:    "https://source.unsplash.com/random/250x250/?pot,cooking,wooden,spoon",
	},
}

// SeedService populates the empty store with the default categories and
// sample lifehacks at process start.
type SeedService struct {
	categoryReader CategoryReader
	categoryNames  CategoryNameReader
	categoryWriter CategoryWriter
	lifehackReader LifehackReader
	lifehackWriter LifehackWriter
}

// NewSeedService creates a new SeedService.
func NewSeedService(
	categoryReader CategoryReader,
	categoryNames CategoryNameReader,
	categoryWriter CategoryWriter,
	lifehackReader LifehackReader,
	lifehackWriter LifehackWriter,
) *SeedService {
	return &SeedService{
		categoryReader: categoryReader,
		categoryNames:  categoryNames,
		categoryWriter: categoryWriter,
		lifehackReader: lifehackReader,
		lifehackWriter: lifehackWriter,
	}
}

// Run seeds categories and lifehacks when their collections are empty.
// Seeding is skipped entirely for non-empty collections, so restarts of a
// long-lived process (which keep no state anyway) and tests with prepared
// data behave the same.
func (s *SeedService) Run(ctx context.Context) error {
	categories, err := s.categoryReader.List(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		for _, category := range defaultCategories {
			if _, err := s.categoryWriter.Save(ctx, category.Name, category.Icon, category.Color); err != nil {
				return err
			}
		}
		logger.Log.Infow("seeded default categories", "count", len(defaultCategories))
	}

	lifehacks, err := s.lifehackReader.List(ctx)
	if err != nil {
		return err
	}
	if len(lifehacks) != 0 {
		return nil
	}

	today := todayUTC()
	for i, sample := range sampleLifehacks {
		var categoryID *int64
		category, err := s.categoryNames.GetByName(ctx, sample.category)
		if err != nil {
			return err
		}
		if category != nil {
			categoryID = &category.ID
		}

		date := today.AddDate(0, 0, -(i + 1))
		if _, err := s.lifehackWriter.Save(ctx, nil, sample.content, date, categoryID, sample.tags, sample.image); err != nil {
			return err
		}
	}
	logger.Log.Infow("seeded sample lifehacks", "count", len(sampleLifehacks))

	return nil
}
