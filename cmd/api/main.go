package main

// @title Room Search Microservice API
// @version 1.0.0
// @description Поиск комнат в аренду на карте: по адресу, bounding box или радиусу, с фильтрами по цене, площади, типу и статусу.
// @description
// @description Основные возможности:
// @description - Поиск комнат в виде GeoJSON FeatureCollection
// @description - Поиск по адресу с сортировкой по расстоянию
// @description - Подсказки адреса и геокодирование через Mapbox с кешированием
// @description - Изображения для карточек комнат

// @contact.name API Support
// @contact.email support@room-search-microservice.com

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

	"go.uber.org/zap"

	"github.com/room-search-microservice/configs"
	_ "github.com/room-search-microservice/docs"
	"github.com/room-search-microservice/internal/config"
	httpDelivery "github.com/room-search-microservice/internal/delivery/http"
	"github.com/room-search-microservice/internal/delivery/http/handler"
	"github.com/room-search-microservice/internal/infrastructure/mapbox"
	"github.com/room-search-microservice/internal/pkg/logger"
	"github.com/room-search-microservice/internal/repository/cache"
	"github.com/room-search-microservice/internal/repository/postgres"
	"github.com/room-search-microservice/internal/usecase"
)

const poolStatsInterval = 15 * time.Second

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "room-search-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Room Search Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	// 3. Mapbox client: без токена сервис не стартует
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
	log.Info("PostgreSQL connected")

	// 5. Connect to cache storage
	var redisClient *cache.Redis
	if cfg.Cache.Backend == config.CacheBackendRedis {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
	}

	cacheStore, closeCache, err := cache.NewStore(cfg, redisClient, log)
	if err != nil {
		log.Fatal("Failed to initialize geocode cache", zap.Error(err))
	}
	defer closeCache()

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := cacheStore.Ping(ctx); err != nil {
		log.Fatal("Cache health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	poolCtx, stopPoolStats := context.WithCancel(context.Background())
	defer stopPoolStats()
	go db.ReportPoolStats(poolCtx, poolStatsInterval)

	// 7. Initialize Repositories
	roomRepo := postgres.NewRoomRepository(db)

	log.Info("Repositories initialized")

	// 8. Initialize Use Cases
	geocodeCache := usecase.NewGeocodeCache(cacheStore, nil, log)
	geocodingUC := usecase.NewGeocodingUseCase(provider, geocodeCache, cfg.Geocoding, log)
	filterBuilder := usecase.NewSpatialFilterBuilder(geocodingUC, cfg.Search)
	roomUC := usecase.NewRoomUseCase(roomRepo, filterBuilder, log)

	catalog, err := loadImageCatalog(cfg.Images.File)
	if err != nil {
		log.Fatal("Failed to read room image catalog", zap.Error(err))
	}
	roomImageUC, err := usecase.NewRoomImageUseCase(catalog, nil, log)
	if err != nil {
		log.Fatal("Failed to initialize room image catalog", zap.Error(err))
	}

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	roomHandler := handler.NewRoomHandler(roomUC, log)
	addressHandler := handler.NewAddressHandler(geocodingUC, log)
	roomImageHandler := handler.NewRoomImageHandler(roomImageUC)
	healthHandler := handler.NewHealthHandler(log,
		handler.HealthCheck{Name: "database", Check: db.Health},
		handler.HealthCheck{Name: "cache", Check: cacheStore.Ping},
	)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		roomHandler,
		addressHandler,
		roomImageHandler,
		healthHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// loadImageCatalog читает каталог из файла или берет встроенный
func loadImageCatalog(path string) ([]byte, error) {
	if path == "" {
		return configs.RoomImages, nil
	}
	return os.ReadFile(path)
}
