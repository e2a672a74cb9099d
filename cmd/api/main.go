package main

// @title Airport Tracker API
// @version 1.0.0
// @description Поиск аэропортов в радиусе и отчёт об активности рейсов между ними.
// @description
// @description Если в локальной базе нет рейсов для выбранного радиуса, отчёт строится
// @description из синтетических рейсов (source=mock), а в фоне публикуется запрос на импорт.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/airport-tracker/docs"
	"github.com/airport-tracker/internal/config"
	httpDelivery "github.com/airport-tracker/internal/delivery/http"
	"github.com/airport-tracker/internal/delivery/http/handler"
	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/pkg/logger"
	"github.com/airport-tracker/internal/repository/cache"
	"github.com/airport-tracker/internal/repository/postgres"
	redisRepo "github.com/airport-tracker/internal/repository/redis"
	"github.com/airport-tracker/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "airport-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Airport Tracker API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.ApplySchema(ctx); err != nil {
		log.Fatal("Failed to apply schema", zap.Error(err))
	}

	checks := map[string]httpDelivery.HealthChecker{"postgres": db}

	// 4. Redis: очередь импорта. Без Redis отчёт работает, но импорт не запрашивается
	var streamRepo repository.StreamRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
		checks["redis"] = redisClient
	} else {
		log.Warn("Redis disabled, import requests will not be published")
	}

	// 5. Health checks
	for name, check := range checks {
		if err := check.Health(ctx); err != nil {
			log.Fatal("Health check failed", zap.String("dependency", name), zap.Error(err))
		}
	}
	log.Info("All connections healthy")

	// 6. Initialize Repositories
	airportRepo := postgres.NewAirportRepository(db)
	flightRepo := postgres.NewFlightRepository(db)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	airportUC := usecase.NewAirportUseCase(airportRepo, log, cfg.Report.MaxRadiusKm)

	reportUC := usecase.NewFlightReportUseCase(
		airportRepo,
		flightRepo,
		streamRepo,
		usecase.NewMockFlightGenerator(cfg.Report.MockSeed),
		log,
		usecase.ReportOptions{
			MaxMockFlights:      cfg.Report.MaxMockFlights,
			MaxRadiusKm:         cfg.Report.MaxRadiusKm,
			RequestImport:       cfg.Report.RequestImport,
			ImportLookbackHours: cfg.Importer.LookbackHours,
		},
	)

	importUC := usecase.NewImportRequestUseCase(streamRepo, log, cfg.Importer.LookbackHours)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	airportHandler := handler.NewAirportHandler(airportUC, log)
	flightHandler := handler.NewFlightHandler(reportUC, importUC, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, airportHandler, flightHandler, checks)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Дожидаемся фоновых публикаций запросов на импорт
	reportUC.Wait()

	log.Info("Server stopped successfully")
}
