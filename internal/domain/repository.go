package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for answer caching
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// AttributeExtractor defines the interface for deriving a (product, attribute)
// pair from free-text queries via a hosted language model
type AttributeExtractor interface {
	Extract(ctx context.Context, query string) (ExtractedIntent, error)
}

// DatasheetStore defines the interface for product datasheet lookups
type DatasheetStore interface {
	LoadAll(ctx context.Context) ([]ProductRecord, error)
	FindAttribute(ctx context.Context, product, attribute string) (string, error)
}
