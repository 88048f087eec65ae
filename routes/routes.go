package routes

import (
	"time"

	"rentify/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRentalRoutes registers rental browsing and booking endpoints.
func RegisterRentalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rentals")
	{
		api.GET("", hb.ListRentalsHandler)
		api.POST("", hb.CreateRentalHandler)
		api.GET("/:id", hb.GetRentalHandler)
		api.GET("/:id/quote", hb.QuoteHandler)
		api.POST("/:id/book", hb.BookRentalHandler)
		api.GET("/:id/bookings", hb.ListRentalBookingsHandler)
	}
}

// RegisterBookingRoutes registers booking lookup endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", handlers.IdempotencyHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterRentalRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
