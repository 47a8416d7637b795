package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-overlord-pulse/internal/pulse/config"
	delivery "golang-overlord-pulse/internal/pulse/delivery/http"
	_ "golang-overlord-pulse/internal/pulse/docs"
	"golang-overlord-pulse/internal/pulse/repository"
	"golang-overlord-pulse/internal/pulse/service"
	"golang-overlord-pulse/pkg/logger"
	"golang-overlord-pulse/pkg/postgres"
	"golang-overlord-pulse/pkg/redis"
	"golang-overlord-pulse/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the pulse service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Pulse Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	snapshotRepo := repository.NewPulseSnapshotRepository(db.DB)
	cacheRepo := repository.NewPulseCacheRepository(db.DB)
	jobLogRepo := repository.NewPulseJobLogRepository(db.DB)

	requestLimiter := repository.NewRequestLimiter(cfg.NewsAPI.MaxRequestPerMinute)
	var newsRepo repository.NewsRepository
	switch cfg.Pulse.Source {
	case "googlerss":
		newsRepo = repository.NewGoogleRSSRepository(appLogger, requestLimiter)
	default:
		newsRepo = repository.NewNewsAPIRepository(cfg, appLogger, requestLimiter)
	}

	// Initialize optional Telegram notifier
	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Warn("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize services
	jobSvc := service.NewPulseJobService(cfg, appLogger, newsRepo, snapshotRepo, cacheRepo, jobLogRepo, redisClient.Client, notifier)
	querySvc := service.NewPulseQueryService(appLogger, snapshotRepo, cacheRepo, jobLogRepo)

	// Start the internal scheduler, if configured
	scheduler := service.NewPulseScheduler(jobSvc, appLogger, cfg.Pulse.CronSpec)
	if err := scheduler.Start(ctx); err != nil {
		appLogger.Fatal("Failed to start pulse scheduler", logger.ErrorField(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	pulseHandler := delivery.NewPulseHandler(querySvc, appLogger)
	pulseGroup := apiV1.Group("/pulse")
	pulseHandler.RegisterRoutes(pulseGroup)

	jobHandler := delivery.NewJobHandler(jobSvc, querySvc, cfg, appLogger)
	jobsGroup := apiV1.Group("/jobs")
	jobHandler.RegisterRoutes(jobsGroup)

	adminGroup := apiV1.Group("/admin")
	jobHandler.RegisterAdminRoutes(adminGroup)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Overlord Pulse API
// @version 1.0
// @description News volume and sentiment tracking for the overlord roster.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "pulse-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-pulse.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing pulse-service CLI: %s\n", err)
		os.Exit(1)
	}
}
