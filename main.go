// File: restohours/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restohours/config"
	"restohours/database"
	"restohours/database/repository"
	"restohours/handlers"
	"restohours/middleware"
	"restohours/models"
	"restohours/routes"
	"restohours/services/hours"
	"restohours/services/restaurant"
	"restohours/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// The dataset is loaded once and never modified afterwards.
	dataset, err := loadDataset(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load dataset: %v", err)
	}
	logger.Info("main: dataset loaded",
		zap.Int("restaurants", len(dataset)),
		zap.String("source", config.AppConfig.DatasetSource),
		zap.String("parseMode", config.AppConfig.ParseMode))

	var (
		openCache   restaurant.OpenCache
		redisClient *redis.Client
	)
	if config.AppConfig.CacheEnabled {
		if redisClient = utils.GetCacheClient(); redisClient != nil {
			openCache = restaurant.NewRedisOpenCache(redisClient, config.AppConfig.CacheTTL, restaurant.DatasetFingerprint(dataset))
		}
	}

	matcher := restaurant.Matcher{Inclusive: config.AppConfig.MatchInclusive}
	restaurantService := restaurant.NewRestaurantService(dataset, matcher, openCache, logger)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, time.Minute, redisClient, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(restaurantHandler, config.AppConfig.StaticPage))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4040"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Server is running on port: %s", port)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// loadDataset reads the raw records from the configured source and parses their hours.
func loadDataset(ctx context.Context) ([]models.Restaurant, error) {
	var repo repository.RestaurantRepository
	switch config.AppConfig.DatasetSource {
	case "mongo":
		repo = repository.NewMongoRestaurantRepo()
	default:
		repo = repository.NewFileRestaurantRepo(config.AppConfig.DatasetPath)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	raw, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	mode, err := hours.ParseMode(config.AppConfig.ParseMode)
	if err != nil {
		return nil, err
	}
	return restaurant.LoadDataWith(hours.NewParser(hours.WithMode(mode)), raw)
}
