package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/daily-lifehack/internal/facades"
	"github.com/sbilibin2017/daily-lifehack/internal/handlers"
	"github.com/sbilibin2017/daily-lifehack/internal/jwt"
	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/middlewares"
	"github.com/sbilibin2017/daily-lifehack/internal/repositories"
	"github.com/sbilibin2017/daily-lifehack/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title daily-lifehack API
// @version 1.0.0
// @description Service serving one generated lifehack per day plus categories and favorites
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		openaiBaseURL, openaiAPIKey, openaiModel, openaiTimeout,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		openaiBaseURL, openaiAPIKey, openaiModel, openaiTimeout,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, generation API, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	openaiBaseURL, openaiAPIKey, openaiModel string, openaiTimeoutSecond int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Generation API config
	openaiBaseURL = getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")
	openaiAPIKey = getEnv("OPENAI_API_KEY", "")
	openaiModel = getEnv("OPENAI_MODEL", "gpt-4o")
	if openaiTimeoutSecond, err = strconv.Atoi(getEnv("OPENAI_TIMEOUT_SECOND", "30")); err != nil {
		return
	}

	// Kafka config; empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "lifehack-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, store, generation facade, Kafka writer, and
// HTTP server. It seeds default data, sets up routes, applies middleware,
// and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	openaiBaseURL, openaiAPIKey, openaiModel string, openaiTimeoutSecond int,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	if openaiAPIKey == "" {
		logger.Log.Warn("OPENAI_API_KEY is not set; generation will rely on the fallback payload")
	}

	// Kafka writer for lifehack-created events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userRepo := repositories.NewUserRepository()
	categoryRepo := repositories.NewCategoryRepository()
	lifehackRepo := repositories.NewLifehackRepository()
	favoriteRepo := repositories.NewFavoriteRepository()

	// Initialize generation facade
	generator := facades.NewGeneratorFacade(
		openaiBaseURL, openaiAPIKey, openaiModel,
		time.Duration(openaiTimeoutSecond)*time.Second,
	)

	// Initialize services
	authService := services.NewAuthService(userRepo, userRepo, tokens)
	lifehackService := services.NewLifehackService(lifehackRepo, lifehackRepo, categoryRepo, generator, kafkaWriter)
	categoryService := services.NewCategoryService(categoryRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, favoriteRepo)
	seedService := services.NewSeedService(categoryRepo, categoryRepo, categoryRepo, lifehackRepo, lifehackRepo)

	// Seed default categories and sample lifehacks
	if err := seedService.Run(ctx); err != nil {
		logger.Log.Errorw("failed to seed default data", "error", err)
		return err
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/api/auth/login", handlers.NewLoginHandler(authService))

	r.Get("/api/lifehacks/today", handlers.NewTodayHandler(lifehackService))
	r.Get("/api/lifehacks/previous", handlers.NewPreviousHandler(lifehackService))
	r.Get("/api/lifehacks/all", handlers.NewAllLifehacksHandler(lifehackService))
	r.Get("/api/lifehacks/category/{categoryId}", handlers.NewLifehacksByCategoryHandler(lifehackService))
	r.Get("/api/lifehacks/{id}", handlers.NewGetLifehackHandler(lifehackService))

	r.Get("/api/categories", handlers.NewAllCategoriesHandler(categoryService))
	r.Get("/api/categories/{id}", handlers.NewGetCategoryHandler(categoryService))

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(tokens)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/favorites", handlers.NewListFavoritesHandler(favoriteService, tokens))
		r.Post("/api/favorites", handlers.NewCreateFavoriteHandler(favoriteService, tokens))
		r.Delete("/api/favorites/{id}", handlers.NewDeleteFavoriteHandler(favoriteService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
