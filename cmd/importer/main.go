package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/airport-tracker/internal/config"
	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/infrastructure/opensky"
	"github.com/airport-tracker/internal/pkg/logger"
	"github.com/airport-tracker/internal/repository/cache"
	"github.com/airport-tracker/internal/repository/postgres"
	redisRepo "github.com/airport-tracker/internal/repository/redis"
	"github.com/airport-tracker/internal/usecase"
	"github.com/airport-tracker/internal/worker"
	"github.com/airport-tracker/internal/worker/flights"
	"go.uber.org/zap"
)

func main() {
	airport := flag.String("airport", "", "ICAO код: однократный импорт одного аэропорта и выход")
	hours := flag.Int("hours", 0, "глубина импорта в часах (по умолчанию IMPORTER_LOOKBACK_HOURS)")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if *airport == "" && !cfg.Importer.Enabled {
		fmt.Println("Importer is disabled in configuration. Set IMPORTER_ENABLED=true to enable.")
		os.Exit(0)
	}
	if *hours <= 0 {
		*hours = cfg.Importer.LookbackHours
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "flight-importer")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Flight Importer",
		zap.String("consumer_group", cfg.Importer.ConsumerGroup),
		zap.Int("lookback_hours", *hours),
		zap.Duration("interval", cfg.Importer.Interval))

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.ApplySchema(ctx); err != nil {
		log.Fatal("Failed to apply schema", zap.Error(err))
	}

	// 4. Cache и очередь: Redis, если включён, иначе кеш в памяти без очереди
	var (
		cacheRepo  repository.CacheRepository
		streamRepo repository.StreamRepository
	)
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
		cacheRepo = cache.NewCacheRepository(redisClient)
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
	} else {
		cacheRepo = cache.NewMemoryCache(cfg.Cache.MemoryCacheSize, cfg.Cache.FlightsCacheTTL, log)
	}

	// 5. Initialize repositories and use cases
	provider := opensky.NewClient(&cfg.OpenSky, log, opensky.WithCache(cacheRepo, cfg.Cache.FlightsCacheTTL))
	importUC := usecase.NewFlightImportUseCase(
		provider,
		postgres.NewAirportRepository(db),
		postgres.NewFlightRepository(db),
		log,
	)

	// Однократный режим
	if *airport != "" {
		result, err := importUC.ImportAirport(ctx, *airport, *hours)
		if err != nil {
			log.Fatal("Import failed", zap.String("icao", *airport), zap.Error(err))
		}
		log.Info("Import finished",
			zap.String("icao", result.ICAO),
			zap.Int("departures", result.Departures),
			zap.Int("arrivals", result.Arrivals),
			zap.Int("skipped", result.Skipped),
			zap.Int("failed", result.Failed))
		return
	}

	// 6. Initialize workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(flights.NewScheduledImportWorker(
		importUC,
		cfg.Importer.Interval,
		*hours,
		cfg.Importer.AirportLimit,
		log,
	))
	if streamRepo != nil {
		workerManager.Register(flights.NewImportRequestWorker(
			streamRepo,
			importUC,
			cfg.Importer.ConsumerGroup,
			cfg.Importer.StreamReadTimeout,
			log,
		))
	} else {
		log.Warn("Redis disabled, on-demand import requests are not consumed")
	}

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	for name, err := range workerManager.Failed() {
		log.Warn("Worker exited with error", zap.String("name", name), zap.Error(err))
	}

	log.Info("Importer shutdown complete")
}
