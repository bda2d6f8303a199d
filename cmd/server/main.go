package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/altosdelparque/residential-system/internal/api"
	"github.com/altosdelparque/residential-system/internal/api/handler"
	"github.com/altosdelparque/residential-system/internal/auth"
	"github.com/altosdelparque/residential-system/internal/core/service"
	"github.com/altosdelparque/residential-system/internal/infrastructure/config"
	mongodb "github.com/altosdelparque/residential-system/internal/infrastructure/db/mongo"
	redisdb "github.com/altosdelparque/residential-system/internal/infrastructure/db/redis"
	"github.com/altosdelparque/residential-system/internal/infrastructure/queue"
	"github.com/altosdelparque/residential-system/pkg/logger"
)

// @title           Residential Complex API
// @version         1.0
// @description     Management backend for apartments, guests, maintenance, damages, payments and notifications.
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "residential-system"})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "residential-system",
		Pretty:  cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "residential-system",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	apartmentRepo := mongodb.NewApartmentRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	maintenanceRepo := mongodb.NewMaintenanceRepository(db)
	damageRepo := mongodb.NewDamageRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":         userRepo.EnsureIndexes,
		"apartments":    apartmentRepo.EnsureIndexes,
		"bookings":      bookingRepo.EnsureIndexes,
		"payments":      paymentRepo.EnsureIndexes,
		"notifications": notificationRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to ensure indexes")
		}
	}

	// --- Core services ---
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	notificationService := service.NewNotificationService(notificationRepo, log)
	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notificationService, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	apartmentService := service.NewApartmentService(apartmentRepo, log)
	bookingService := service.NewBookingService(bookingRepo, apartmentRepo, dispatcher, log)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, dispatcher, log)
	damageService := service.NewDamageService(damageRepo, dispatcher, log)
	paymentService := service.NewPaymentService(paymentRepo, apartmentRepo, dispatcher, log)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Config:    cfg,
		Log:       log,
		Tokens:    tokens,
		RateLimit: redisdb.NewRateLimitStore(rdb),
		MongoDB:   db,
		Redis:     rdb,

		Auth:          handler.NewAuthHandler(authService),
		Apartments:    handler.NewApartmentHandler(apartmentService),
		Bookings:      handler.NewBookingHandler(bookingService),
		Maintenance:   handler.NewMaintenanceHandler(maintenanceService),
		Damages:       handler.NewDamageHandler(damageService),
		Payments:      handler.NewPaymentHandler(paymentService),
		Notifications: handler.NewNotificationHandler(notificationService, dispatcher),
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
