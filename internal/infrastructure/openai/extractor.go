package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"golang.org/x/time/rate"

	"github.com/productassistant/backend/internal/domain"
)

// systemPrompt is the fixed instruction sent ahead of every user query.
const systemPrompt = "Extract the product name and attribute from this query."

// Config holds the language-model service settings
type Config struct {
	Endpoint   string
	APIKey     string
	Model      string
	APIVersion string // non-empty selects Azure-style endpoints
	MaxTokens  int
}

// Extractor derives a (product, attribute) pair from free-text queries via a
// hosted chat-completion endpoint
type Extractor struct {
	client      openai.Client
	model       string
	maxTokens   int64
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

// NewExtractor creates a new extractor client. Retries are disabled: a failed
// extraction fails the whole request.
func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
	}

	if cfg.APIVersion != "" {
		opts = append(opts,
			azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
		)
	} else {
		opts = append(opts,
			option.WithBaseURL(cfg.Endpoint),
			option.WithAPIKey(cfg.APIKey),
		)
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 50
	}

	// Keep bursts of identical uncached queries from hammering the endpoint
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Extractor{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   int64(maxTokens),
		rateLimiter: limiter,
		logger:      logger,
	}
}

// Extract asks the model for the product and attribute named in the query.
// The first choice's content is parsed as a comma-separated pair: text before
// the first comma is the product, text after it is the attribute. A response
// without a comma yields an empty intent, which is not an error.
func (e *Extractor) Extract(ctx context.Context, query string) (domain.ExtractedIntent, error) {
	if strings.TrimSpace(query) == "" {
		return domain.ExtractedIntent{}, domain.ErrInvalidRequest
	}

	if err := e.rateLimiter.Wait(ctx); err != nil {
		return domain.ExtractedIntent{}, fmt.Errorf("rate limiter error: %w", err)
	}

	completion, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(query),
		},
		MaxTokens: openai.Int(e.maxTokens),
	})
	if err != nil {
		return domain.ExtractedIntent{}, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	if len(completion.Choices) == 0 {
		return domain.ExtractedIntent{}, fmt.Errorf("%w: no completion choices returned", domain.ErrExtractionFailed)
	}

	content := completion.Choices[0].Message.Content
	product, attribute, found := strings.Cut(content, ",")
	if !found {
		e.logger.Warn("model response contained no product/attribute pair",
			"query", query)
		return domain.ExtractedIntent{}, nil
	}

	intent := domain.ExtractedIntent{
		Product:   strings.TrimSpace(product),
		Attribute: strings.TrimSpace(attribute),
	}

	e.logger.Debug("extracted intent",
		"product", intent.Product,
		"attribute", intent.Attribute)

	return intent, nil
}
