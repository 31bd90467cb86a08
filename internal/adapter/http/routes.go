package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all trips API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *TripHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	trips := api.Group("/trips")
	trips.GET("", h.ListTrips)
	trips.POST("/search", h.SearchTrips)
	trips.POST("/search/multi", h.MultiSearchTrips)
	trips.POST("/search/city", h.SearchTripsByCity)
}
