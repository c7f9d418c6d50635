package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/boplan/boplan-backend/docs"
	"github.com/boplan/boplan-backend/internal/calculation"
	"github.com/boplan/boplan-backend/internal/client"
	"github.com/boplan/boplan-backend/internal/config"
	"github.com/boplan/boplan-backend/internal/handler"
	"github.com/boplan/boplan-backend/internal/middleware"
	"github.com/boplan/boplan-backend/internal/repository/cache"
	"github.com/boplan/boplan-backend/internal/repository/postgres"
	"github.com/boplan/boplan-backend/internal/repository/storage"
	"github.com/boplan/boplan-backend/internal/service"
	"github.com/boplan/boplan-backend/internal/websocket"
)

// @title Boplan API
// @version 1.0
// @description Household mortgage and housing budget calculator
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize repositories
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	exportRepo, err := storage.NewS3ExportRepository(context.Background(), cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize export storage")
	}

	// Spot-price cache is optional; without Redis every request hits the upstream
	var priceCache service.PriceCache
	if cfg.RedisAddr != "" {
		redisCache := cache.NewPriceCache(cfg.RedisAddr)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Redis unreachable, spot-price caching disabled")
		} else {
			log.Info().Msg("Connected to Redis")
			priceCache = redisCache
			defer redisCache.Close()
		}
	}

	// Initialize external API clients
	elprisClient := client.NewElprisClient(cfg.SpotPriceBaseURL)
	geocodeClient := client.NewGeocodeClient(cfg.GeocodeBaseURL, cfg.GeocodeAPIKey)

	// Initialize WebSocket hub
	hub := websocket.NewHub()

	// Initialize services
	engine := calculation.NewEngine()
	authService := service.NewAuthService(userRepo)
	budgetService := service.NewBudgetService(engine)
	notifier := service.NewRecalcNotifier(engine, hub)
	defer notifier.Stop()
	profileService := service.NewProfileService(profileRepo, hub, notifier)
	spotPriceService := service.NewSpotPriceService(elprisClient, priceCache)
	geocodeService := service.NewGeocodeService(geocodeClient)
	exportService := service.NewExportService(profileRepo, engine, exportRepo)

	// Create user provider adapter for auth middleware and WebSocket validator
	userProvider := &userProviderAdapter{authService: authService}

	// Initialize auth middleware
	authMiddleware, err := middleware.NewAuthMiddleware(cfg.Auth0Domain, cfg.Auth0Audience, userProvider)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth middleware")
	}

	// Initialize JWT validator for WebSocket connections
	wsValidator, err := websocket.NewAuth0JWTValidator(cfg.Auth0Domain, cfg.Auth0Audience, userProvider)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create WebSocket JWT validator")
	}

	// Rate limiter for the public calculate endpoint
	rateLimiter := middleware.NewRateLimiter()
	defer rateLimiter.Stop()

	// Initialize handlers
	handlers := handler.Handlers{
		Calculate: handler.NewCalculateHandler(budgetService),
		Auth:      handler.NewAuthHandler(authService),
		Profile:   handler.NewProfileHandler(profileService),
		Export:    handler.NewExportHandler(exportService),
		SpotPrice: handler.NewSpotPriceHandler(spotPriceService),
		Geocode:   handler.NewGeocodeHandler(geocodeService),
		WebSocket: handler.NewWebSocketHandler(hub, wsValidator, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, authMiddleware, rateLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// userProviderAdapter adapts AuthService to middleware.UserProvider and
// websocket.UserLookup
type userProviderAdapter struct {
	authService *service.AuthService
}

// GetUserIDByAuth0ID implements middleware.UserProvider
func (a *userProviderAdapter) GetUserIDByAuth0ID(auth0ID string) (uuid.UUID, error) {
	user, err := a.authService.GetUserByAuth0ID(auth0ID)
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
