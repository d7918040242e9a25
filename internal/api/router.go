package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ayudabesh/marketplace-api/internal/api/handler"
	"github.com/ayudabesh/marketplace-api/internal/api/middleware"
	"github.com/ayudabesh/marketplace-api/internal/core/domain"
	"github.com/ayudabesh/marketplace-api/internal/core/service"
	"github.com/ayudabesh/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/ayudabesh/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ayudabesh/marketplace-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.AttemptLimit, cfg.Login.AttemptWindow)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(userRepo, tokens, limiter)
	requestService := service.NewRequestService(requestRepo)

	authHandler := handler.NewAuthHandler(authService, tokens.TTL())
	requestHandler := handler.NewRequestHandler(requestService)

	apiGate := middleware.Auth(authService, middleware.RespondJSON)
	pageGate := middleware.Auth(authService, middleware.RespondRedirect)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/logout", authHandler.Logout)

	// --- Service request routes ---
	requests := e.Group("/api/requests")
	requests.POST("/create", requestHandler.Create, apiGate)
	requests.GET("/my-requests", requestHandler.MyRequests, apiGate)
	requests.GET("/pending", requestHandler.Pending, apiGate, middleware.RBAC(domain.RoleProvider))
	requests.PATCH("/:id", requestHandler.Update)

	// --- Browser dashboards (redirect to /login when unauthenticated) ---
	e.GET("/customer/dashboard", authHandler.Dashboard, pageGate, middleware.RBAC(domain.RoleCustomer))
	e.GET("/provider/dashboard", authHandler.Dashboard, pageGate, middleware.RBAC(domain.RoleProvider))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
