package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/productassistant/backend/internal/domain"
)

// QueryServiceConfig holds configuration for the query service
type QueryServiceConfig struct {
	CacheTTL time.Duration
}

// QueryService answers product-attribute questions with caching.
// Flow: check cache -> extract intent -> datasheet lookup -> cache -> return
type QueryService struct {
	cache     domain.CacheRepository
	extractor domain.AttributeExtractor
	store     domain.DatasheetStore
	cacheTTL  time.Duration
	logger    *slog.Logger
}

// NewQueryService creates a new query service with dependencies
func NewQueryService(
	cache domain.CacheRepository,
	extractor domain.AttributeExtractor,
	store domain.DatasheetStore,
	config QueryServiceConfig,
	logger *slog.Logger,
) *QueryService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}

	return &QueryService{
		cache:     cache,
		extractor: extractor,
		store:     store,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// ProcessQuery resolves a raw user question to a formatted attribute value.
// Both an uninterpretable query and a datasheet miss yield the fixed
// domain.NotFoundAnswer; any collaborator failure is logged and propagated.
func (s *QueryService) ProcessQuery(ctx context.Context, query domain.ProductQuery) (string, error) {
	if query.Query == "" {
		return "", domain.ErrInvalidRequest
	}

	// Try cache first; the raw query text is the key
	cached, err := s.cache.Get(ctx, query.Query)
	if err == nil {
		s.logger.Info("cache hit", "query", query.Query)
		return cached, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Error("cache lookup failed", "query", query.Query, "error", err)
		return "", err
	}

	intent, err := s.extractor.Extract(ctx, query.Query)
	if err != nil {
		s.logger.Error("extraction failed", "query", query.Query, "error", err)
		return "", err
	}

	if intent.Empty() {
		s.logger.Info("query produced no usable product or attribute", "query", query.Query)
		return domain.NotFoundAnswer, nil
	}

	answer, err := s.store.FindAttribute(ctx, intent.Product, intent.Attribute)
	if err != nil {
		if errors.Is(err, domain.ErrAttributeNotFound) {
			s.logger.Info("attribute not found",
				"product", intent.Product,
				"attribute", intent.Attribute)
			return domain.NotFoundAnswer, nil
		}
		s.logger.Error("datasheet lookup failed",
			"product", intent.Product,
			"attribute", intent.Attribute,
			"error", err)
		return "", err
	}

	if err := s.cache.Set(ctx, query.Query, answer, s.cacheTTL); err != nil {
		s.logger.Error("failed to cache answer", "query", query.Query, "error", err)
		return "", err
	}

	s.logger.Info("query processed",
		"product", intent.Product,
		"attribute", intent.Attribute)

	return answer, nil
}
