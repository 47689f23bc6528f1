// seed loads a dataset file into the restaurants collection so the server can run
// with DATASET_SOURCE=mongo.
package main

import (
	"context"
	"time"

	"restohours/config"
	"restohours/database"
	"restohours/database/repository"
	restaurantRepo "restohours/database/repository/restaurant"
	"restohours/services/hours"
	"restohours/services/restaurant"
	"restohours/utils"

	arg "github.com/alexflint/go-arg"
	"go.uber.org/zap"
)

type Args struct {
	Data       string `arg:"-d,--data" default:"./data/rest_hours.json" help:"path to a JSON or YAML dataset"`
	MongoURL   string `arg:"--mongo-url" help:"overrides DATABASE_URL"`
	Database   string `arg:"--database" help:"overrides MONGO_DATABASE"`
	Collection string `arg:"--collection" help:"overrides MONGO_COLLECTION"`
	Strict     bool   `arg:"-s,--strict" help:"refuse to seed schedule strings that do not parse cleanly"`
}

func main() {
	var args Args
	arg.MustParse(&args)

	config.LoadConfig()
	if args.MongoURL != "" {
		config.AppConfig.DatabaseURL = args.MongoURL
	}
	if args.Database != "" {
		config.AppConfig.MongoDatabase = args.Database
	}
	if args.Collection != "" {
		config.AppConfig.MongoCollection = args.Collection
	}
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	raw, err := repository.NewFileRestaurantRepo(args.Data).GetAll(ctx)
	if err != nil {
		logger.Fatal("failed to read dataset", zap.String("path", args.Data), zap.Error(err))
	}

	// Parse before writing so the server never starts on a dataset it would reject.
	mode := hours.BestEffort
	if args.Strict {
		mode = hours.Strict
	}
	if _, err := restaurant.LoadDataWith(hours.NewParser(hours.WithMode(mode)), raw); err != nil {
		logger.Fatal("dataset does not parse", zap.Error(err))
	}

	var writer restaurantRepo.RestaurantWriter = restaurantRepo.NewMongoRestaurantRepo()
	if err := writer.ReplaceAll(ctx, raw); err != nil {
		logger.Fatal("failed to seed restaurants", zap.Error(err))
	}
	if err := database.Close(ctx); err != nil {
		logger.Warn("mongo disconnect failed", zap.Error(err))
	}

	logger.Info("seeded restaurants",
		zap.Int("count", len(raw)),
		zap.String("database", config.AppConfig.MongoDatabase),
		zap.String("collection", config.AppConfig.MongoCollection))
}
