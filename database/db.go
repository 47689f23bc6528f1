package database

import (
	"context"
	"time"

	"restohours/config"
	"restohours/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance. It stays nil unless the
// dataset is served from MongoDB.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB() {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Sugar().Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Sugar().Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	logger.Info("Connected to MongoDB successfully!")
}

// RestaurantCollection returns the configured restaurants collection.
func RestaurantCollection() *mongo.Collection {
	if MongoClient == nil {
		InitDB()
	}
	return MongoClient.Database(config.AppConfig.MongoDatabase).Collection(config.AppConfig.MongoCollection)
}

// Close disconnects the global client if one was opened.
func Close(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}
