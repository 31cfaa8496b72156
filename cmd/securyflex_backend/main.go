package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/core/services"
	"github.com/securyflex/securyflex-backend/internal/handlers"
	"github.com/securyflex/securyflex-backend/internal/middleware"
	"github.com/securyflex/securyflex-backend/internal/platform/broadcast"
	"github.com/securyflex/securyflex-backend/internal/platform/cache"
	"github.com/securyflex/securyflex-backend/internal/platform/config"
	"github.com/securyflex/securyflex-backend/internal/platform/dispatch"
	pgsqlrepo "github.com/securyflex/securyflex-backend/internal/repositories/database/pgsql"
	"github.com/securyflex/securyflex-backend/internal/utils"
	"github.com/securyflex/securyflex-backend/internal/workers"
	"github.com/securyflex/securyflex-backend/pkg/database"
)

// @title SecuryFlex Backend API
// @version 1.0
// @description Marketplace backend for security opdrachten, sollicitaties, ND-nummer compliance and Finqle payments.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis is optional; without it live updates degrade to polling the
	// notification listing.
	var broadcaster portssvc.Broadcaster
	if cfg.RedisURL != "" {
		redisClient, err := broadcast.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		broadcaster = broadcast.NewRedisBroadcaster(redisClient)
		logger.Info("Redis broadcaster connected.")
	}

	queryCache := cache.New(cfg.CacheSize, cfg.CacheTTL)
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	repos := pgsqlrepo.NewRepositoryProvider(dbPool)
	svc := services.NewServiceContainer(
		repos,
		cfg,
		queryCache,
		broadcaster,
		dispatch.NewEmailDispatcher(logger),
		dispatch.NewPushDispatcher(logger),
	)

	// Background workers: outbox delivery and the license expiry sweep.
	outboxWorker := workers.NewOutboxWorker(repos.OutboxRepo, svc.Notification, cfg.OutboxPollInterval, logger)
	go outboxWorker.Run(ctx)
	sweeper := workers.NewComplianceSweeper(svc.Compliance, cfg.ComplianceSweepInterval, logger)
	go sweeper.Run(ctx)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  300,
	})))
	r.Use(middleware.AnalyticsMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped.")
}
