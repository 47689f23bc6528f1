package restaurantRepo

import (
	"context"
	"fmt"

	"restohours/database"
	"restohours/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// restaurantDoc is the stored form of a record. Position keeps the source order,
// which decides the order of open-restaurant results.
type restaurantDoc struct {
	Position int      `bson:"position"`
	Name     string   `bson:"name"`
	Times    []string `bson:"times"`
}

// MongoRestaurantRepo implements RestaurantRepository using MongoDB.
type MongoRestaurantRepo struct {
	coll *mongo.Collection
}

// NewMongoRestaurantRepo uses the configured database and collection.
func NewMongoRestaurantRepo() *MongoRestaurantRepo {
	return NewMongoRestaurantRepoWithCollection(database.RestaurantCollection())
}

func NewMongoRestaurantRepoWithCollection(coll *mongo.Collection) *MongoRestaurantRepo {
	return &MongoRestaurantRepo{coll: coll}
}

func (r *MongoRestaurantRepo) GetAll(ctx context.Context) ([]models.RawRestaurant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve restaurants: %w", err)
	}
	defer cursor.Close(ctx)

	var restaurants []models.RawRestaurant
	for cursor.Next(ctx) {
		var doc restaurantDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode restaurant: %w", err)
		}
		restaurants = append(restaurants, models.RawRestaurant{Name: doc.Name, Times: doc.Times})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}
	return restaurants, nil
}

// ReplaceAll drops every stored record and inserts data in order.
func (r *MongoRestaurantRepo) ReplaceAll(ctx context.Context, data []models.RawRestaurant) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear restaurants: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(data))
	for i, d := range data {
		docs = append(docs, restaurantDoc{Position: i, Name: d.Name, Times: d.Times})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert restaurants: %w", err)
	}
	return r.ensureIndexes(ctx)
}
