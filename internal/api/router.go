package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userportal/registration-system/internal/api/handler"
	"github.com/userportal/registration-system/internal/api/middleware"
	"github.com/userportal/registration-system/internal/core/domain"
	"github.com/userportal/registration-system/internal/core/ports"
)

// Dependencies carries everything the router needs to register the routes.
// Mongo and Redis are only used by the readiness probe; when either is nil
// the probe route is not registered.
type Dependencies struct {
	Auth   ports.AuthService
	Users  ports.UserService
	Tokens ports.TokenService
	Mongo  *mongo.Database
	Redis  *redis.Client
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("userportal"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	adminHandler := handler.NewAdminHandler(d.Users)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/admin/login", authHandler.AdminLogin)

	// --- Admin routes (access gate + role gate) ---
	admin := e.Group("/api/admin", middleware.Auth(d.Tokens), middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)

	// --- Operational routes ---
	e.GET("/health", handler.NewHealthHandler().Health)
	if d.Mongo != nil && d.Redis != nil {
		e.GET("/health/ready", handler.NewReadinessHandler(d.Mongo, d.Redis).Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one structured log line per request via zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
