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

	"github.com/labstack/echo/v4"

	"github.com/danapr/tumpangan/internal/pkg/config"
	"github.com/danapr/tumpangan/internal/pkg/database"
	"github.com/danapr/tumpangan/internal/pkg/health"
	"github.com/danapr/tumpangan/internal/pkg/logger"
	"github.com/danapr/tumpangan/internal/pkg/middleware"
	"github.com/danapr/tumpangan/internal/pkg/nats"
	"github.com/danapr/tumpangan/services/trips/gateway"
	"github.com/danapr/tumpangan/services/trips/handler"
	"github.com/danapr/tumpangan/services/trips/repository"
	"github.com/danapr/tumpangan/services/trips/usecase"
)

func main() {
	appName := "trips-service"
	configPath := "config/trips.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	tripRepo := repository.NewTripRepository(configs, postgresClient.GetDB())
	geoRepo := repository.NewGeoRepository(redisClient)
	searchCache := repository.NewSearchCacheRepository(redisClient,
		time.Duration(configs.Trips.CacheTTLSeconds)*time.Second)

	// Initialize gateways
	tripGW := gateway.NewTripGW(natsClient)
	userGW := gateway.NewUserGW(configs)

	// Initialize usecase
	tripUC := usecase.NewTripUC(configs, tripRepo, geoRepo, searchCache, tripGW, userGW)

	// Initialize handlers
	tripHandler := handler.NewHandler(configs, tripUC)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize health service with dependency checkers
	healthService := health.NewService()
	healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthService.AddChecker("nats", health.CheckerFunc(func(ctx context.Context) error {
		if !natsClient.IsConnected() {
			return fmt.Errorf("nats connection lost")
		}
		return nil
	}))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	tripHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", logger.Err(err))
	}

	logger.Info("Server exited")
}
