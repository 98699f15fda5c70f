package routes

import (
	"net/http"
	"time"

	"wanderbook/config"
	"wanderbook/handlers"
	"wanderbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterExperienceRoutes registers catalog read endpoints.
func RegisterExperienceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/experiences")
	{
		api.GET("", hb.Experience.ListExperiencesHandler)
		api.GET("/:id", hb.Experience.GetExperienceHandler)
	}
}

// RegisterBookingRoutes registers booking creation and lookup endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/:reference", hb.Booking.GetBookingHandler)
	}
}

// RegisterPromoRoutes registers the promo validation endpoint.
func RegisterPromoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/promo")
	{
		api.POST("/validate", hb.Promo.ValidatePromoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterExperienceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPromoRoutes(r, hb)
	RegisterHealthRoute(r)
}
