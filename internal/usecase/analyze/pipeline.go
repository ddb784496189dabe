package analyze

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jaundice/internal/domain"
	"github.com/kailas-cloud/jaundice/internal/domain/article"
	"github.com/kailas-cloud/jaundice/internal/domain/charged"
	"github.com/kailas-cloud/jaundice/internal/domain/text"
	"github.com/kailas-cloud/jaundice/internal/extractor"
	"github.com/kailas-cloud/jaundice/internal/logger"
	"github.com/kailas-cloud/jaundice/internal/metrics"
)

// DefaultAnalysisTimeout bounds the tokenization stage of one article.
const DefaultAnalysisTimeout = 3 * time.Second

// Pipeline analyzes a single article: URL check, fetch, extract, tokenize, score.
// It is stateless between runs and safe for concurrent use.
type Pipeline struct {
	fetcher         Fetcher
	resolver        ExtractorResolver
	tokenizer       Tokenizer
	charged         charged.Set
	analysisTimeout time.Duration
}

// NewPipeline creates a Pipeline. chargedWords is shared read-only by every run.
func NewPipeline(
	fetcher Fetcher, resolver ExtractorResolver, tokenizer Tokenizer, chargedWords charged.Set,
) *Pipeline {
	return &Pipeline{
		fetcher:         fetcher,
		resolver:        resolver,
		tokenizer:       tokenizer,
		charged:         chargedWords,
		analysisTimeout: DefaultAnalysisTimeout,
	}
}

// WithAnalysisTimeout overrides the analysis deadline.
func (p *Pipeline) WithAnalysisTimeout(d time.Duration) *Pipeline {
	if d > 0 {
		p.analysisTimeout = d
	}
	return p
}

// Run processes rawURL and always returns exactly one Result for it.
// Stage failures are converted to a status and never returned as errors.
func (p *Pipeline) Run(ctx context.Context, index int, rawURL string) article.Result {
	res := p.run(ctx, index, rawURL)

	metrics.ArticlesTotal.WithLabelValues(res.Status().String()).Inc()
	fields := []zap.Field{
		zap.Int("index", index),
		zap.String("url", rawURL),
		zap.String("status", res.Status().String()),
	}
	if elapsed, ok := res.Elapsed(); ok {
		fields = append(fields, zap.Duration("elapsed", elapsed))
	}
	logger.FromContext(ctx).Debug("Article analyzed", fields...)

	return res
}

func (p *Pipeline) run(ctx context.Context, index int, rawURL string) article.Result {
	u, err := article.ParseURL(rawURL)
	if err != nil {
		return article.NewFetchError(index, rawURL)
	}
	target := u.String()

	start := time.Now()
	raw, err := p.fetcher.Fetch(ctx, target)
	metrics.StageDuration.WithLabelValues(metrics.StageFetch).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.FromContext(ctx).Debug("Fetch failed", zap.String("url", rawURL), zap.Error(err))
		if errors.Is(err, domain.ErrFetchTimeout) {
			return article.NewFetchTimeout(index, rawURL)
		}
		return article.NewFetchError(index, rawURL)
	}

	start = time.Now()
	doc, err := p.extract(target, raw)
	metrics.StageDuration.WithLabelValues(metrics.StageExtract).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.FromContext(ctx).Debug("Extraction failed", zap.String("url", rawURL), zap.Error(err))
		return article.NewParsingError(index, rawURL)
	}

	return p.analyze(ctx, index, rawURL, doc)
}

// extract resolves the site extractor and runs it. Panics are reported as errors.
func (p *Pipeline) extract(rawURL string, raw []byte) (doc extractor.Article, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("extractor panic: %v", rec)
		}
	}()

	e, err := p.resolver.Resolve(rawURL)
	if err != nil {
		return extractor.Article{}, fmt.Errorf("resolve extractor: %w", err)
	}
	doc, err = e.Extract(raw)
	if err != nil {
		return extractor.Article{}, fmt.Errorf("extract: %w", err)
	}
	return doc, nil
}

// analyze runs the tokenizer under the analysis deadline and scores the words.
func (p *Pipeline) analyze(ctx context.Context, index int, rawURL string, doc extractor.Article) article.Result {
	actx, cancel := context.WithTimeout(ctx, p.analysisTimeout)
	defer cancel()

	start := time.Now()
	words, err := p.tokenize(actx, doc.Text)
	elapsed := time.Since(start)
	metrics.StageDuration.WithLabelValues(metrics.StageAnalyze).Observe(elapsed.Seconds())

	switch {
	case err == nil:
		return article.NewOK(index, rawURL, doc.Title, text.Score(words, p.charged), len(words), elapsed)
	case errors.Is(err, domain.ErrAnalysisTimeout):
		return article.NewAnalysisTimeout(index, rawURL, elapsed)
	default:
		logger.FromContext(ctx).Warn("Analysis failed", zap.String("url", rawURL), zap.Error(err))
		return article.NewAnalysisError(index, rawURL, elapsed)
	}
}

func (p *Pipeline) tokenize(ctx context.Context, body string) (words []string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			words, err = nil, fmt.Errorf("tokenizer panic: %v", rec)
		}
	}()
	words, err = p.tokenizer.Tokenize(ctx, body)
	switch {
	case err == nil:
		return words, nil
	case ctx.Err() != nil:
		return nil, fmt.Errorf("%w: %w", domain.ErrAnalysisTimeout, err)
	default:
		return nil, fmt.Errorf("tokenize: %w", err)
	}
}
