package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/productassistant/backend/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data      map[string]string
	getError  error
	setError  error
	getCalled bool
	setCalled bool
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string]string),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	m.getCalled = true
	if m.getError != nil {
		return "", m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return "", domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.setCalled = true
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// MockExtractor is a mock implementation of domain.AttributeExtractor
type MockExtractor struct {
	intent domain.ExtractedIntent
	err    error
	called bool
}

func (m *MockExtractor) Extract(ctx context.Context, query string) (domain.ExtractedIntent, error) {
	m.called = true
	if m.err != nil {
		return domain.ExtractedIntent{}, m.err
	}
	return m.intent, nil
}

// MockDatasheetStore is a mock implementation of domain.DatasheetStore
type MockDatasheetStore struct {
	answer string
	err    error
	called bool
}

func (m *MockDatasheetStore) LoadAll(ctx context.Context) ([]domain.ProductRecord, error) {
	return nil, nil
}

func (m *MockDatasheetStore) FindAttribute(ctx context.Context, product, attribute string) (string, error) {
	m.called = true
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewQueryService(t *testing.T) {
	t.Run("applies default cache TTL", func(t *testing.T) {
		svc := NewQueryService(NewMockCacheRepository(), &MockExtractor{}, &MockDatasheetStore{}, QueryServiceConfig{}, testLogger())
		if svc.cacheTTL != 10*time.Minute {
			t.Errorf("cacheTTL = %v, want 10m", svc.cacheTTL)
		}
	})

	t.Run("keeps configured cache TTL", func(t *testing.T) {
		svc := NewQueryService(NewMockCacheRepository(), &MockExtractor{}, &MockDatasheetStore{}, QueryServiceConfig{CacheTTL: time.Hour}, testLogger())
		if svc.cacheTTL != time.Hour {
			t.Errorf("cacheTTL = %v, want 1h", svc.cacheTTL)
		}
	})
}

func TestProcessQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty query", func(t *testing.T) {
		svc := NewQueryService(NewMockCacheRepository(), &MockExtractor{}, &MockDatasheetStore{}, QueryServiceConfig{}, testLogger())

		_, err := svc.ProcessQuery(ctx, domain.ProductQuery{})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("cache hit short-circuits extractor and store", func(t *testing.T) {
		cache := NewMockCacheRepository()
		cache.data["width of 6205?"] = "15 mm"
		extractor := &MockExtractor{}
		store := &MockDatasheetStore{}
		svc := NewQueryService(cache, extractor, store, QueryServiceConfig{}, testLogger())

		answer, err := svc.ProcessQuery(ctx, domain.ProductQuery{Query: "width of 6205?"})
		if err != nil {
			t.Fatalf("ProcessQuery() error = %v", err)
		}
		if answer != "15 mm" {
			t.Errorf("answer = %q, want %q", answer, "15 mm")
		}
		if extractor.called {
			t.Error("extractor was invoked on a cache hit")
		}
		if store.called {
			t.Error("datasheet store was invoked on a cache hit")
		}
	})

	t.Run("empty intent yields the not-found answer", func(t *testing.T) {
		cache := NewMockCacheRepository()
		extractor := &MockExtractor{intent: domain.ExtractedIntent{}}
		store := &MockDatasheetStore{}
		svc := NewQueryService(cache, extractor, store, QueryServiceConfig{}, testLogger())

		answer, err := svc.ProcessQuery(ctx, domain.ProductQuery{Query: "how are you?"})
		if err != nil {
			t.Fatalf("ProcessQuery() error = %v", err)
		}
		if answer != domain.NotFoundAnswer {
			t.Errorf("answer = %q, want the not-found answer", answer)
		}
		if store.called {
			t.Error("datasheet store was invoked for an empty intent")
		}
		if cache.setCalled {
			t.Error("not-found answer was cached")
		}
	})

	t.Run("lookup miss yields the not-found answer", func(t *testing.T) {
		cache := NewMockCacheRepository()
		extractor := &MockExtractor{intent: domain.ExtractedIntent{Product: "6205", Attribute: "Diameter"}}
		store := &MockDatasheetStore{err: domain.ErrAttributeNotFound}
		svc := NewQueryService(cache, extractor, store, QueryServiceConfig{}, testLogger())

		answer, err := svc.ProcessQuery(ctx, domain.ProductQuery{Query: "diameter of 6205?"})
		if err != nil {
			t.Fatalf("ProcessQuery() error = %v", err)
		}
		if answer != domain.NotFoundAnswer {
			t.Errorf("answer = %q, want the not-found answer", answer)
		}
		if cache.setCalled {
			t.Error("not-found answer was cached")
		}
	})

	t.Run("successful lookup caches and returns the answer", func(t *testing.T) {
		cache := NewMockCacheRepository()
		extractor := &MockExtractor{intent: domain.ExtractedIntent{Product: "6205", Attribute: "Width"}}
		store := &MockDatasheetStore{answer: "15 mm"}
		svc := NewQueryService(cache, extractor, store, QueryServiceConfig{}, testLogger())

		answer, err := svc.ProcessQuery(ctx, domain.ProductQuery{Query: "width of 6205?"})
		if err != nil {
			t.Fatalf("ProcessQuery() error = %v", err)
		}
		if answer != "15 mm" {
			t.Errorf("answer = %q, want %q", answer, "15 mm")
		}
		// The raw query text is the cache key
		if cached, ok := cache.data["width of 6205?"]; !ok || cached != "15 mm" {
			t.Errorf("cache entry = %q (present=%v), want %q", cached, ok, "15 mm")
		}
	})

	t.Run("extraction failure propagates", func(t *testing.T) {
		extractorErr := errors.New("upstream unavailable")
		svc := NewQueryService(NewMockCacheRepository(), &MockExtractor{err: extractorErr}, &MockDatasheetStore{}, QueryServiceConfig{}, testLogger())

		_, err := svc.ProcessQuery(ctx, domain.ProductQuery{Query: "width of 6205?"})
		if !errors.Is(err, extractorErr) {
			t.Errorf("error = %v, want the extractor error", err)
		}
	})

	t.Run("datasheet load failure propagates", func(t *testing.T) {
		extractor := &MockExtractor{intent: domain.ExtractedIntent{Product: "6205", Attribute: "Width"}}
		store := &MockDatasheetStore{err: domain.ErrDatasheetLoad}
		svc := NewQueryService(NewMockCacheRepository(), extractor, store, QueryServiceConfig{}, testLogger())

		_, err := svc.ProcessQuery(ctx, domain.ProductQuery{Query: "width of 6205?"})
		if !errors.Is(err, domain.ErrDatasheetLoad) {
			t.Errorf("error = %v, want ErrDatasheetLoad", err)
		}
	})

	t.Run("cache read failure propagates", func(t *testing.T) {
		cache := NewMockCacheRepository()
		cache.getError = domain.ErrCacheUnavailable
		extractor := &MockExtractor{}
		svc := NewQueryService(cache, extractor, &MockDatasheetStore{}, QueryServiceConfig{}, testLogger())

		_, err := svc.ProcessQuery(ctx, domain.ProductQuery{Query: "width of 6205?"})
		if !errors.Is(err, domain.ErrCacheUnavailable) {
			t.Errorf("error = %v, want ErrCacheUnavailable", err)
		}
		if extractor.called {
			t.Error("extractor was invoked after a cache failure")
		}
	})

	t.Run("cache write failure propagates", func(t *testing.T) {
		cache := NewMockCacheRepository()
		cache.setError = domain.ErrCacheUnavailable
		extractor := &MockExtractor{intent: domain.ExtractedIntent{Product: "6205", Attribute: "Width"}}
		store := &MockDatasheetStore{answer: "15 mm"}
		svc := NewQueryService(cache, extractor, store, QueryServiceConfig{}, testLogger())

		_, err := svc.ProcessQuery(ctx, domain.ProductQuery{Query: "width of 6205?"})
		if !errors.Is(err, domain.ErrCacheUnavailable) {
			t.Errorf("error = %v, want ErrCacheUnavailable", err)
		}
	})
}
