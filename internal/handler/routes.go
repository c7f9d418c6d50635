package handler

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/boplan/boplan-backend/internal/middleware"
)

// Handlers bundles all HTTP handlers for route registration
type Handlers struct {
	Calculate *CalculateHandler
	Auth      *AuthHandler
	Profile   *ProfileHandler
	Export    *ExportHandler
	SpotPrice *SpotPriceHandler
	Geocode   *GeocodeHandler
	WebSocket *WebSocketHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, h Handlers) {
	// Public calculate endpoint, rate-limited per IP
	e.POST("/api/calculate", h.Calculate.PublicCalculate, middleware.RateLimitMiddleware(rateLimiter))

	// WebSocket endpoint (token via query parameter)
	e.GET("/ws", h.WebSocket.HandleWS)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec)

	// API version 1 (protected)
	api := e.Group("/api/v1")
	api.Use(authMiddleware.Authenticate())

	api.POST("/budget/calculate", h.Calculate.Calculate)

	api.POST("/auth/callback", h.Auth.Callback)
	api.GET("/auth/me", h.Auth.Me)

	api.POST("/profiles", h.Profile.CreateProfile)
	api.GET("/profiles", h.Profile.GetProfiles)
	api.GET("/profiles/:id", h.Profile.GetProfile)
	api.PUT("/profiles/:id", h.Profile.UpdateProfile)
	api.DELETE("/profiles/:id", h.Profile.DeleteProfile)
	api.POST("/profiles/:id/export", h.Export.ExportProfile)

	api.GET("/spot-price", h.SpotPrice.GetSpotPrice)
	api.GET("/geocode", h.Geocode.Geocode)
}
