package analyze

import (
	"context"

	"github.com/kailas-cloud/jaundice/internal/extractor"
)

// Fetcher downloads raw page content under its own deadline.
// Expired deadlines are reported with domain.ErrFetchTimeout.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// ExtractorResolver picks the body extractor for a URL.
type ExtractorResolver interface {
	Resolve(rawURL string) (extractor.Extractor, error)
}

// Tokenizer turns plain text into normalized words, honoring ctx cancellation.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]string, error)
}
