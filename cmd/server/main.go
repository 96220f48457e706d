package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/productassistant/backend/config"
	httpDelivery "github.com/productassistant/backend/internal/delivery/http"
	"github.com/productassistant/backend/internal/domain"
	"github.com/productassistant/backend/internal/infrastructure/cache"
	"github.com/productassistant/backend/internal/infrastructure/datasheet"
	"github.com/productassistant/backend/internal/infrastructure/openai"
	"github.com/productassistant/backend/internal/usecase"
)

func main() {
	// Load .env if present; real deployments configure via the environment
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)

	logger.Info("starting product assistant backend",
		"version", "1.0.0",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"cache_type", cfg.Cache.Type)

	// Initialize infrastructure dependencies
	var answerCache domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		answerCache = redisCache
		logger.Info("redis cache connected")
	default:
		answerCache = cache.NewMemoryCache()
		logger.Info("in-memory cache initialized")
	}
	logger.Info("cache configured", "ttl", cfg.Cache.TTL)

	store := datasheet.NewStore(cfg.Datasheet.Dir)
	logger.Info("datasheet store configured", "dir", cfg.Datasheet.Dir)

	extractor := openai.NewExtractor(openai.Config{
		Endpoint:   cfg.OpenAI.Endpoint,
		APIKey:     cfg.OpenAI.APIKey,
		Model:      cfg.OpenAI.Model,
		APIVersion: cfg.OpenAI.APIVersion,
		MaxTokens:  cfg.OpenAI.MaxTokens,
	}, logger)
	logger.Info("extractor configured",
		"model", cfg.OpenAI.Model,
		"max_tokens", cfg.OpenAI.MaxTokens)

	// Initialize usecase layer
	queryService := usecase.NewQueryService(
		answerCache,
		extractor,
		store,
		usecase.QueryServiceConfig{
			CacheTTL: cfg.Cache.TTL,
		},
		logger,
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(queryService, logger)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", "addr", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newLogger builds the JSON logger handed to every component
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Server.Environment == "development" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}
