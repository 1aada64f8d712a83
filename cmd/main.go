package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/citypulse/waterlog-api/internal/aggregator"
	"github.com/citypulse/waterlog-api/internal/config"
	v1 "github.com/citypulse/waterlog-api/internal/handler/http/v1"
	"github.com/citypulse/waterlog-api/internal/ratelimit"
	"github.com/citypulse/waterlog-api/internal/repository"
	"github.com/citypulse/waterlog-api/internal/service"
	"github.com/citypulse/waterlog-api/internal/storage"
	"github.com/citypulse/waterlog-api/internal/webhook"
	"github.com/citypulse/waterlog-api/pkg/logger"
	"github.com/citypulse/waterlog-api/pkg/postgres"
	redisclient "github.com/citypulse/waterlog-api/pkg/redis"

	_ "github.com/citypulse/waterlog-api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title CityPulse Waterlog API
// @version 1.0
// @description Crowd-sourced urban water-logging reporting and ward risk analytics.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Status change events go through Redis to the webhook worker.
	eventPublisher := webhook.NewRedisPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Repositories
	reportRepo := repository.NewReportRepository(dbpool, redisClient)
	wardRepo := repository.NewWardRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)

	// Ward boundaries are seeded from the bundled GeoJSON on first start.
	if err := aggregator.SeedWards(ctx, wardRepo, cfg.WardGeoJSONPath, log); err != nil {
		log.Fatalf("Failed to seed ward boundaries: %v", err)
	}

	imageStore, err := storage.NewImageStore(cfg.UploadDir, cfg.MaxUploadBytes, log)
	if err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	// Services
	limiter := ratelimit.NewLimiter(redisClient, log)
	locator := service.NewWardLocator(wardRepo, log, 10*time.Minute)
	authService := service.NewAuthService(userRepo, log, cfg)
	reportService := service.NewReportService(reportRepo, locator, limiter, eventPublisher, log, cfg)
	analyticsService := service.NewAnalyticsService(wardRepo, reportRepo, log)

	// Periodic ward risk recomputation, plus one pass at startup so a
	// fresh deployment serves scores before the first tick.
	agg := aggregator.New(wardRepo, reportRepo, log, cfg.AggregationTimeout)
	if err := agg.Run(ctx); err != nil {
		log.WithError(err).Error("Initial aggregation pass failed")
	}
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.AggregationSchedule, func() {
		if err := agg.Run(ctx); err != nil {
			log.WithError(err).Error("Aggregation pass failed")
		}
	}); err != nil {
		log.Fatalf("Invalid aggregation schedule %q: %v", cfg.AggregationSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	handler := v1.NewHandler(authService, reportService, analyticsService, imageStore, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Uploaded report images are served as static files.
	router.Static("/uploads", cfg.UploadDir)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
