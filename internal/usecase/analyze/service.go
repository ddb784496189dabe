package analyze

import (
	"cmp"
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/jaundice/internal/domain"
	"github.com/kailas-cloud/jaundice/internal/domain/article"
	"github.com/kailas-cloud/jaundice/internal/logger"
	"github.com/kailas-cloud/jaundice/internal/metrics"
)

// DefaultMaxURLs is the largest batch accepted by Analyze.
const DefaultMaxURLs = 10

// Runner analyzes one article.
type Runner interface {
	Run(ctx context.Context, index int, rawURL string) article.Result
}

// Service runs a batch of article pipelines concurrently.
type Service struct {
	runner         Runner
	maxURLs        int
	maxConcurrency int
}

// New creates a batch Service.
func New(runner Runner) *Service {
	return &Service{runner: runner, maxURLs: DefaultMaxURLs}
}

// WithLimits configures the batch size limit and the number of pipelines
// running at once. A non-positive concurrency runs the whole batch at once.
func (s *Service) WithLimits(maxURLs, maxConcurrency int) *Service {
	if maxURLs > 0 {
		s.maxURLs = maxURLs
	}
	s.maxConcurrency = maxConcurrency
	return s
}

// MaxURLs returns the batch size limit.
func (s *Service) MaxURLs() int { return s.maxURLs }

// Analyze runs one pipeline per URL and returns the results in input order.
// It returns an error only when the batch itself is rejected, before any
// pipeline starts.
func (s *Service) Analyze(ctx context.Context, urls []string) ([]article.Result, error) {
	if len(urls) == 0 {
		return nil, domain.ErrNoURLs
	}
	if len(urls) > s.maxURLs {
		return nil, domain.NewTooManyURLs(s.maxURLs, len(urls))
	}

	start := time.Now()
	metrics.BatchSize.Observe(float64(len(urls)))
	ctx = logger.WithFields(ctx, zap.Int("batch_size", len(urls)))

	done := make(chan article.Result, len(urls))
	var g errgroup.Group
	if s.maxConcurrency > 0 {
		g.SetLimit(s.maxConcurrency)
	}
	for i, u := range urls {
		g.Go(func() error {
			done <- s.runner.Run(ctx, i, u)
			return nil
		})
	}
	_ = g.Wait() // pipelines never fail
	close(done)

	results := make([]article.Result, 0, len(urls))
	counts := make(map[article.Status]int, len(article.Statuses()))
	for r := range done {
		results = append(results, r)
		counts[r.Status()]++
	}
	slices.SortFunc(results, func(a, b article.Result) int { return cmp.Compare(a.Index(), b.Index()) })

	logger.FromContext(ctx).Info("Batch analyzed",
		zap.Int("ok", counts[article.StatusOK]),
		zap.Int("fetch_error", counts[article.StatusFetchError]),
		zap.Int("parsing_error", counts[article.StatusParsingError]),
		zap.Int("timeout", counts[article.StatusTimeout]),
		zap.Duration("duration", time.Since(start)),
	)

	return results, nil
}
