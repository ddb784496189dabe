package jaundice

import (
	"time"

	"github.com/kailas-cloud/jaundice/internal/domain"
	"github.com/kailas-cloud/jaundice/internal/domain/article"
)

// Status is the outcome of analyzing one article.
type Status string

// Status values.
const (
	StatusOK           Status = Status(article.StatusOK)
	StatusFetchError   Status = Status(article.StatusFetchError)
	StatusParsingError Status = Status(article.StatusParsingError)
	StatusTimeout      Status = Status(article.StatusTimeout)
)

// Errors returned by Client.Analyze and accepted from custom extractors.
var (
	ErrNoURLs          = domain.ErrNoURLs
	ErrTooManyURLs     = domain.ErrTooManyURLs
	ErrArticleNotFound = domain.ErrArticleNotFound
)

// Result is the analysis of one submitted URL.
// Title, Score and WordCount are set only when Status is StatusOK.
type Result struct {
	URL       string
	Status    Status
	Title     string
	Score     float64
	WordCount int
	// Elapsed is the time spent tokenizing; zero if analysis never started.
	Elapsed time.Duration
}

// OK reports whether the article was analyzed successfully.
func (r Result) OK() bool { return r.Status == StatusOK }

func resultFromDomain(r article.Result) Result {
	out := Result{URL: r.URL(), Status: Status(r.Status())}
	if r.Status() == article.StatusOK {
		out.Title, _ = r.Title()
		out.Score, _ = r.Score()
		out.WordCount, _ = r.WordCount()
	}
	out.Elapsed, _ = r.Elapsed()
	return out
}
