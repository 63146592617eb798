package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/config"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/api"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/database"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/middleware"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/router"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/server"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	llmService, err := service.NewLLMService()
	if err != nil {
		logger.Fatal("failed to initialize LLM service", zap.Error(err))
	}

	ocrService, err := service.NewOCRService()
	if err != nil {
		// Receipt scanning degrades to unavailable; everything else works.
		logger.Warn("receipt scanning disabled", zap.Error(err))
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		logger.Warn("receipt archiving disabled", zap.Error(err))
		s3Config = nil
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	ingredientService := service.NewIngredientService(db)
	catalogService := service.NewCatalogService(db)
	cartService := service.NewCartService(db, logger)
	notificationService := service.NewNotificationService(db)
	orderService := service.NewOrderService(db, notificationService, logger)
	suggestionService := service.NewSuggestionService(db, llmService, redisClient, logger)

	var extractor service.ItemExtractor
	if ocrService != nil {
		extractor = ocrService
	}
	receiptService := service.NewReceiptService(s3Config, extractor, ingredientService, logger)

	handlers := router.Handlers{
		Auth:          api.NewAuthHandler(authService),
		Ingredients:   api.NewIngredientHandler(ingredientService),
		Catalog:       api.NewCatalogHandler(catalogService),
		Cart:          api.NewCartHandler(cartService),
		Orders:        api.NewOrderHandler(orderService),
		Notifications: api.NewNotificationHandler(notificationService),
		Suggestions:   api.NewSuggestionHandler(suggestionService),
		Receipts:      api.NewReceiptHandler(receiptService),
		Dashboard:     api.NewDashboardHandler(db),
	}

	limiter := middleware.NewSuggestionRateLimiter(redisClient)
	engine := router.SetupRouter(logger, authService, limiter, handlers)
	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort, logger)

	errChan := make(chan error, 1)
	go func() { errChan <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
