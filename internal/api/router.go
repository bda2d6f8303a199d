package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/altosdelparque/residential-system/docs"
	"github.com/altosdelparque/residential-system/internal/api/handler"
	"github.com/altosdelparque/residential-system/internal/api/middleware"
	"github.com/altosdelparque/residential-system/internal/auth"
	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/infrastructure/config"
	redisdb "github.com/altosdelparque/residential-system/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs wired in from main.
type Dependencies struct {
	Config    *config.Config
	Log       zerolog.Logger
	Tokens    *auth.TokenManager
	RateLimit *redisdb.RateLimitStore
	MongoDB   *mongo.Database
	Redis     *redis.Client

	Auth          *handler.AuthHandler
	Apartments    *handler.ApartmentHandler
	Bookings      *handler.BookingHandler
	Maintenance   *handler.MaintenanceHandler
	Damages       *handler.DamageHandler
	Payments      *handler.PaymentHandler
	Notifications *handler.NotificationHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("residential"))

	authGuard := middleware.Auth(deps.Tokens)
	loginLimiter := middleware.RateLimit(deps.RateLimit, "auth",
		int64(deps.Config.AuthRateLimit), deps.Config.AuthRateWindow, deps.Log)

	// --- Auth routes (rate limited, no token required) ---
	e.POST("/auth/register", deps.Auth.Register, loginLimiter)
	e.POST("/auth/login", deps.Auth.Login, loginLimiter)
	e.GET("/auth/profile", deps.Auth.Profile, authGuard)

	// --- Health probes / operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.MongoDB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1", authGuard)

	// --- Apartments ---
	apartments := v1.Group("/apartments")
	apartments.POST("", deps.Apartments.Create, middleware.RBAC(domain.RoleAdmin))
	apartments.GET("", deps.Apartments.List,
		middleware.RBAC(domain.RoleAdmin, domain.RoleOwner, domain.RoleSecurity))
	apartments.GET("/:id", deps.Apartments.Get)
	apartments.PUT("/:id/status", deps.Apartments.UpdateStatus, middleware.RBAC(domain.RoleAdmin))

	// --- Guest bookings ---
	bookings := v1.Group("/bookings")
	bookings.POST("", deps.Bookings.Register,
		middleware.RBAC(domain.RoleAdmin, domain.RoleOwner))
	bookings.PUT("/:id/checkin", deps.Bookings.CheckIn,
		middleware.RBAC(domain.RoleAdmin, domain.RoleSecurity))
	bookings.PUT("/:id/checkout", deps.Bookings.CheckOut,
		middleware.RBAC(domain.RoleAdmin, domain.RoleSecurity))
	bookings.GET("/active", deps.Bookings.ListActive,
		middleware.RBAC(domain.RoleAdmin, domain.RoleSecurity))

	// --- Maintenance ---
	maintenance := v1.Group("/maintenance")
	maintenance.POST("", deps.Maintenance.Schedule, middleware.RBAC(domain.RoleAdmin))
	maintenance.PUT("/:id/status", deps.Maintenance.UpdateStatus, middleware.RBAC(domain.RoleAdmin))
	maintenance.GET("", deps.Maintenance.List)

	// --- Damage reports ---
	damages := v1.Group("/damage-reports")
	damages.POST("", deps.Damages.File)
	damages.GET("/my", deps.Damages.ListMine)
	damages.PUT("/:id/status", deps.Damages.UpdateStatus, middleware.RBAC(domain.RoleAdmin))

	// --- Payments ---
	payments := v1.Group("/payments")
	payments.POST("", deps.Payments.Record, middleware.RBAC(domain.RoleAdmin))
	payments.PUT("/:id/pay", deps.Payments.MarkPaid)
	payments.GET("", deps.Payments.List,
		middleware.RBAC(domain.RoleAdmin, domain.RoleOwner))

	// --- Notifications ---
	notifications := v1.Group("/notifications")
	notifications.POST("", deps.Notifications.Send, middleware.RBAC(domain.RoleAdmin))
	notifications.GET("", deps.Notifications.List)
	notifications.PUT("/:id/read", deps.Notifications.MarkRead)

	return e
}
