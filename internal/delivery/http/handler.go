package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/productassistant/backend/internal/domain"
)

// QueryProcessor is the slice of the usecase layer the HTTP boundary needs
type QueryProcessor interface {
	ProcessQuery(ctx context.Context, query domain.ProductQuery) (string, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	processor QueryProcessor
	logger    *slog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(processor QueryProcessor, logger *slog.Logger) *Handler {
	return &Handler{
		processor: processor,
		logger:    logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "product-assistant-backend",
		"version": "1.0.0",
	})
}

// HandleQuery answers a product-attribute question.
// 400 for a missing/blank query, 404 when nothing could be resolved, 500 for
// any downstream failure (cause logged, never exposed).
func (h *Handler) HandleQuery(c *gin.Context) {
	var query domain.ProductQuery
	if err := c.ShouldBindJSON(&query); err != nil || strings.TrimSpace(query.Query) == "" {
		h.logger.Warn("invalid query input")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid query input",
		})
		return
	}

	answer, err := h.processor.ProcessQuery(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("query processing failed", "query", query.Query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
		return
	}

	if answer == domain.NotFoundAnswer {
		c.JSON(http.StatusNotFound, gin.H{
			"answer": answer,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answer": answer,
	})
}
