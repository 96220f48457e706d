package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrAttributeNotFound is returned when no datasheet record carries the
	// requested product attribute
	ErrAttributeNotFound = errors.New("product attribute not found")

	// ErrDatasheetLoad is returned when the datasheet directory cannot be
	// read or a document cannot be parsed
	ErrDatasheetLoad = errors.New("failed to load datasheets")

	// ErrExtractionFailed is returned when the language model call fails
	ErrExtractionFailed = errors.New("extraction request failed")
)
