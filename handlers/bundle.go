// File: restohours/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Restaurant endpoints
	FindOpenHandler        gin.HandlerFunc
	ListRestaurantsHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc

	// StaticPage is served at "/".
	StaticPage string
}

// NewHandlerBundle wires the restaurant handler into a bundle.
func NewHandlerBundle(rh *RestaurantHandler, staticPage string) *HandlerBundle {
	return &HandlerBundle{
		FindOpenHandler:        rh.FindOpenHandler,
		ListRestaurantsHandler: rh.ListRestaurantsHandler,
		HealthHandler:          rh.HealthHandler,
		StaticPage:             staticPage,
	}
}
