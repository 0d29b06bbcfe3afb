package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/config"
	"github.com/room-search-microservice/internal/infrastructure/mapbox"
	"github.com/room-search-microservice/internal/pkg/logger"
	"github.com/room-search-microservice/internal/repository/cache"
	"github.com/room-search-microservice/internal/repository/postgres"
	redisRepo "github.com/room-search-microservice/internal/repository/redis"
	"github.com/room-search-microservice/internal/usecase"
	"github.com/room-search-microservice/internal/worker"
	"github.com/room-search-microservice/internal/worker/room"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "room-geocode-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Room Geocode Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("default_country", cfg.Worker.DefaultCountry),
		zap.String("cache_backend", cfg.Cache.Backend))

	// 3. Mapbox client
	provider, err := mapbox.NewMapboxClient(&cfg.Mapbox, log)
	if err != nil {
		log.Fatal("Failed to initialize Mapbox client", zap.Error(err))
	}

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 5. Connect to Redis (streams всегда идут через Redis)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	cacheStore, closeCache, err := cache.NewStore(cfg, redisClient, log)
	if err != nil {
		log.Fatal("Failed to initialize geocode cache", zap.Error(err))
	}
	defer closeCache()

	// 6. Initialize repositories
	roomRepo := postgres.NewRoomRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 7. Initialize use cases
	geocodingUC := usecase.NewGeocodingUseCase(
		provider,
		usecase.NewGeocodeCache(cacheStore, nil, log),
		cfg.Geocoding,
		log,
	)

	// 8. Initialize workers
	geocodeWorker := room.NewGeocodeWorker(
		streamRepo,
		geocodingUC,
		roomRepo,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		cfg.Worker.DefaultCountry,
		log,
	)

	// 9. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(geocodeWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 10. Wait for interrupt signal or worker failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info("Received shutdown signal")
	case err := <-workerManager.Errors():
		log.Error("Worker failed, shutting down", zap.Error(err))
	}

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
