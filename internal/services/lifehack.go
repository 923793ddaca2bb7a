package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrLifehackNotFound is returned when no lifehack exists for the requested id.
	ErrLifehackNotFound = errors.New("lifehack not found")
)

// imageURLTemplate composes the illustrative image URL from a prompt.
const imageURLTemplate = "https://source.unsplash.com/random/250x250/?"

// fallbackLifehack is substituted when the generation call fails, so the
// today endpoint always produces content once called.
var fallbackLifehack = models.GeneratedLifehack{
	Content:     "Keep a dedicated 'lost items' box in your home. Whenever you find something out of place, put it there. Check this box first when you're looking for something missing.",
	Category:    "Home",
	Tags:        []string{"Organization", "Productivity"},
	ImagePrompt: "A small box labeled 'lost items' with miscellaneous household objects",
}

// LifehackReader defines read operations on the lifehack collection.
type LifehackReader interface {
	GetByID(ctx context.Context, id int64) (*models.Lifehack, error)
	GetByDate(ctx context.Context, date time.Time) (*models.Lifehack, error)
	List(ctx context.Context) ([]models.Lifehack, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Lifehack, error)
}

// LifehackWriter defines write operations on the lifehack collection.
type LifehackWriter interface {
	Save(ctx context.Context, title *string, content string, date time.Time, categoryID *int64, tags []string, image string) (*models.Lifehack, error)
}

// CategoryNameReader resolves category names to stored categories.
type CategoryNameReader interface {
	GetByName(ctx context.Context, name string) (*models.Category, error)
}

// Generator produces one new lifehack payload from the external collaborator.
type Generator interface {
	Generate(ctx context.Context) (*models.GeneratedLifehack, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LifehackService resolves daily content, materializing new lifehacks on demand.
type LifehackService struct {
	reader      LifehackReader
	writer      LifehackWriter
	categories  CategoryNameReader
	generator   Generator
	kafkaWriter KafkaWriter
}

// NewLifehackService creates a new LifehackService.
func NewLifehackService(
	reader LifehackReader,
	writer LifehackWriter,
	categories CategoryNameReader,
	generator Generator,
	kafkaWriter KafkaWriter,
) *LifehackService {
	return &LifehackService{
		reader:      reader,
		writer:      writer,
		categories:  categories,
		generator:   generator,
		kafkaWriter: kafkaWriter,
	}
}

// todayUTC returns the current calendar day at UTC midnight. The day
// boundary is UTC so every caller shares one global "today".
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// publishCreated publishes a lifehack-created event to Kafka.
func (s *LifehackService) publishCreated(ctx context.Context, lifehack *models.Lifehack, source string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "lifehack_id", lifehack.ID)
		return
	}

	event := models.LifehackCreatedEvent{
		EventID:    uuid.NewString(),
		LifehackID: lifehack.ID,
		Date:       lifehack.Date.UTC().Format("2006-01-02"),
		Source:     source,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "lifehack_id", lifehack.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "lifehack_id", lifehack.ID, "error", err)
	} else {
		logger.Log.Infow("Lifehack event published to Kafka", "lifehack_id", lifehack.ID, "source", source)
	}
}

// Today returns the lifehack for the current UTC calendar day, generating
// and persisting one when none exists yet. Generation failures are recovered
// locally with the fallback payload and never surfaced to the caller.
func (s *LifehackService) Today(ctx context.Context) (*models.Lifehack, error) {
	today := todayUTC()

	existing, err := s.reader.GetByDate(ctx, today)
	if err != nil {
		logger.Log.Errorw("failed to look up today's lifehack", "error", err)
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	source := "generated"
	generated, err := s.generator.Generate(ctx)
	if err != nil {
		logger.Log.Warnw("generation failed, using fallback content", "error", err)
		fallback := fallbackLifehack
		generated = &fallback
		source = "fallback"
	}

	var categoryID *int64
	category, err := s.categories.GetByName(ctx, generated.Category)
	if err != nil {
		logger.Log.Errorw("failed to resolve category name", "name", generated.Category, "error", err)
	} else if category != nil {
		categoryID = &category.ID
	}

	image := imageURLTemplate + url.QueryEscape(generated.ImagePrompt)

	created, err := s.writer.Save(ctx, nil, generated.Content, today, categoryID, generated.Tags, image)
	if err != nil {
		logger.Log.Errorw("failed to save today's lifehack", "error", err)
		return nil, err
	}

	s.publishCreated(ctx, created, source)

	return created, nil
}

// Previous returns the lifehacks for the N calendar days before today,
// newest first, omitting days without content. Out-of-range day counts fall
// back to the default of 7.
func (s *LifehackService) Previous(ctx context.Context, days int) ([]models.Lifehack, error) {
	if days < 1 {
		days = 7
	}

	today := todayUTC()
	lifehacks := make([]models.Lifehack, 0, days)
	for i := 1; i <= days; i++ {
		lifehack, err := s.reader.GetByDate(ctx, today.AddDate(0, 0, -i))
		if err != nil {
			logger.Log.Errorw("failed to look up previous lifehack", "offset", i, "error", err)
			return nil, err
		}
		if lifehack != nil {
			lifehacks = append(lifehacks, *lifehack)
		}
	}

	return lifehacks, nil
}

// All returns every lifehack, newest first.
func (s *LifehackService) All(ctx context.Context) ([]models.Lifehack, error) {
	return s.reader.List(ctx)
}

// GetByID returns a single lifehack or ErrLifehackNotFound.
func (s *LifehackService) GetByID(ctx context.Context, id int64) (*models.Lifehack, error) {
	lifehack, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get lifehack", "id", id, "error", err)
		return nil, err
	}
	if lifehack == nil {
		return nil, ErrLifehackNotFound
	}
	return lifehack, nil
}

// ByCategory returns the lifehacks in a category, newest first.
func (s *LifehackService) ByCategory(ctx context.Context, categoryID int64) ([]models.Lifehack, error) {
	return s.reader.ListByCategory(ctx, categoryID)
}
