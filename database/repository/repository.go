package repository

import (
	restaurantRepo "restohours/database/repository/restaurant"
)

// Re-export the RestaurantRepository interface and constructors.
type RestaurantRepository = restaurantRepo.RestaurantRepository

var NewFileRestaurantRepo = restaurantRepo.NewFileRestaurantRepo

var NewMongoRestaurantRepo = restaurantRepo.NewMongoRestaurantRepo
