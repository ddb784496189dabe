package domain

import (
	"errors"
	"fmt"
)

// Request-level errors. These are the only errors that escape a batch.
var (
	// ErrNoURLs signals an empty batch.
	ErrNoURLs = errors.New("no urls in request")
	// ErrTooManyURLs signals a batch above the configured limit.
	ErrTooManyURLs = errors.New("too many urls in request")
)

// Stage-level errors. The article pipeline converts them into a status.
var (
	// ErrInvalidURL signals a URL without an http(s) scheme or a host.
	ErrInvalidURL = errors.New("invalid url")
	// ErrFetchFailed signals a connection failure, a non-2xx response or a cancelled transfer.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrFetchTimeout signals an expired fetch deadline.
	ErrFetchTimeout = errors.New("fetch timeout")
	// ErrNoExtractor signals a host without a registered body extractor.
	ErrNoExtractor = errors.New("no extractor registered for host")
	// ErrArticleNotFound signals that the extractor could not locate the article container.
	ErrArticleNotFound = errors.New("article not found")
	// ErrAnalysisTimeout signals an expired analysis deadline.
	ErrAnalysisTimeout = errors.New("analysis timeout")
)

// Startup errors.
var (
	// ErrEmptyDictionary signals a charged-word source without a single word.
	ErrEmptyDictionary = errors.New("charged-word dictionary is empty")
)

// TooManyURLsError wraps ErrTooManyURLs with the limit and the submitted count.
type TooManyURLsError struct {
	Max int
	Got int
}

func (e *TooManyURLsError) Error() string {
	return fmt.Sprintf("%s, should be %d or less", ErrTooManyURLs.Error(), e.Max)
}

func (e *TooManyURLsError) Unwrap() error { return ErrTooManyURLs }

// NewTooManyURLs creates a batch size error.
func NewTooManyURLs(limit, got int) error {
	return &TooManyURLsError{Max: limit, Got: got}
}
