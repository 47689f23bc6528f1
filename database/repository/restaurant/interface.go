package restaurantRepo

import (
	"context"

	"restohours/models"
)

// RestaurantRepository loads the raw dataset. The service reads it once at startup.
type RestaurantRepository interface {
	// GetAll returns every record in dataset order.
	GetAll(ctx context.Context) ([]models.RawRestaurant, error)
}

// RestaurantWriter replaces the stored dataset. Only the seed tool uses it.
type RestaurantWriter interface {
	ReplaceAll(ctx context.Context, data []models.RawRestaurant) error
}
