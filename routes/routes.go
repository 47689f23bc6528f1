package routes

import (
	"time"

	"restohours/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRestaurantRoutes registers the open-restaurant endpoints.
func RegisterRestaurantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/restaurant")
	{
		api.GET("", hb.ListRestaurantsHandler)
		api.GET("/findOpen", hb.FindOpenHandler)
		api.POST("/findOpen", hb.FindOpenHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterStaticRoutes serves the date picker page.
func RegisterStaticRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.StaticPage == "" {
		return
	}
	r.GET("/", func(c *gin.Context) {
		c.File(hb.StaticPage)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterStaticRoutes(r, hb)
	RegisterRestaurantRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
