package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/kairosml/kairos-go/internal/api"
	"github.com/kairosml/kairos-go/internal/api/handlers"
	"github.com/kairosml/kairos-go/internal/cache"
	"github.com/kairosml/kairos-go/internal/config"
	"github.com/kairosml/kairos-go/internal/database"
	"github.com/kairosml/kairos-go/internal/logging"
	"github.com/kairosml/kairos-go/internal/middleware"
	"github.com/kairosml/kairos-go/internal/services"
	"github.com/kairosml/kairos-go/internal/telemetry"
	"github.com/kairosml/kairos-go/pkg/engine"
)

const serviceVersion = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := telemetry.InitTelemetry(telemetry.TelemetryConfig{
		Enabled:        cfg.Telemetry.Enabled,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: cfg.Telemetry.ServiceVersion,
		Environment:    cfg.Environment,
	}); err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetry.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to shutdown telemetry: %v\n", err)
		}
	}()

	logger := logging.NewLogrusLogger(cfg.LogLevel, cfg.Environment)
	slogger := logging.NewStandardOTLPLogger(logging.OTLPConfig{
		Enabled:        cfg.Telemetry.Enabled,
		Endpoint:       cfg.Telemetry.OTLPEndpoint,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: cfg.Telemetry.ServiceVersion,
		Environment:    cfg.Environment,
		LogLevel:       cfg.Telemetry.LogLevel,
	})

	ctx := context.Background()

	// Engine sidecar connection is required.
	engineService := engine.NewService(&cfg.Engine, logger)
	if err := engineService.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to connect to forecasting engine: %w", err)
	}
	defer func() {
		_ = engineService.Close()
	}()

	// Optional Redis-backed response cache.
	var redisClient *database.RedisClient
	var forecastCache *cache.ForecastCache
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisConnection(cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer redisClient.Close()

		if cfg.Forecast.CacheEnabled {
			forecastCache = cache.NewForecastCache(redisClient.Client, cfg.Forecast.CacheTTLDuration(), logger)
		}
	}

	// Optional Postgres-backed forecast audit log.
	var db *database.PostgresDB
	var history *database.ForecastLogRepository
	if cfg.Database.Enabled {
		db, err = database.NewPostgresConnection(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if cfg.Forecast.HistoryEnabled {
			history = database.NewForecastLogRepository(db.Pool)
		}
	}

	forecastService := services.NewForecastService(cfg, engineService, logger)

	forecastHandler := handlers.NewForecastHandler(forecastService, forecastCache, history, logger)
	modelsHandler := handlers.NewModelsHandler(forecastService)
	healthHandler := handlers.NewHealthHandler(engineService, db, redisClient, serviceVersion)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	api.SetupRoutes(router, forecastHandler, modelsHandler, healthHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Minute,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slogger.LogStartup(cfg.Telemetry.ServiceName, serviceVersion, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slogger.LogShutdown(cfg.Telemetry.ServiceName, "signal received")

	// Give outstanding requests a deadline for completion
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server exited gracefully")
	return nil
}
