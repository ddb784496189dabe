// Package jaundice scores news articles for the share of charged vocabulary.
//
// A Client downloads a batch of article URLs concurrently, extracts the body
// text, normalizes its words and reports the percentage of words found in a
// charged-word dictionary.
package jaundice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jaundice/internal/db"
	dbRedis "github.com/kailas-cloud/jaundice/internal/db/redis"
	"github.com/kailas-cloud/jaundice/internal/domain/charged"
	"github.com/kailas-cloud/jaundice/internal/domain/text"
	"github.com/kailas-cloud/jaundice/internal/extractor"
	"github.com/kailas-cloud/jaundice/internal/logger"
	"github.com/kailas-cloud/jaundice/internal/repository/dictionary"
	"github.com/kailas-cloud/jaundice/internal/transport/fetcher"
	analyzeuc "github.com/kailas-cloud/jaundice/internal/usecase/analyze"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the jaundice library entry point. It is safe for concurrent use.
type Client struct {
	store   db.Store
	svc     *analyzeuc.Service
	charged charged.Set
	logger  *zap.Logger
}

// New creates a Client and loads the charged-word dictionary.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	normalizer := buildNormalizer(cfg)

	var store db.Store
	src, err := dictionarySource(cfg, &store)
	if err != nil {
		return nil, err
	}

	words, err := dictionary.Load(context.Background(), src, normalizer)
	if err != nil {
		closeStore(store)
		return nil, fmt.Errorf("jaundice: load dictionary: %w", err)
	}

	c := wireClient(cfg, normalizer, words)
	c.store = store
	return c, nil
}

func buildNormalizer(cfg *clientConfig) text.Normalizer {
	if cfg.normalizer != nil {
		return text.NormalizerFunc(cfg.normalizer)
	}
	base := text.NewLowercaseNormalizer()
	if len(cfg.lemmas) > 0 {
		return text.NewDictionaryNormalizer(base, cfg.lemmas)
	}
	return base
}

// dictionarySource picks the first configured source: words, directory, Redis.
func dictionarySource(cfg *clientConfig, store *db.Store) (dictionary.Source, error) {
	switch {
	case len(cfg.chargedWords) > 0:
		return wordList(cfg.chargedWords), nil
	case cfg.dictDir != "":
		return dictionary.NewFileSource(cfg.dictDir), nil
	case len(cfg.redisAddrs) > 0:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.redisAddrs,
			Password: cfg.redisPassword,
		})
		if err != nil {
			return nil, fmt.Errorf("jaundice: create redis store: %w", err)
		}
		if err := s.WaitForReady(context.Background(), defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("jaundice: redis not ready: %w", err)
		}
		*store = s
		return dictionary.New(s, cfg.redisKey), nil
	default:
		return nil, errors.New("jaundice: charged words required (use WithChargedWords, WithDictionaryDir or WithRedis)")
	}
}

func wireClient(cfg *clientConfig, normalizer text.Normalizer, words charged.Set) *Client {
	registry := extractor.NewDefaultRegistry(cfg.genericHosts...)
	for host, fn := range cfg.extractors {
		registry.Register(host, extractFuncAdapter(fn))
	}

	f := fetcher.New(fetcher.Config{
		Timeout:       cfg.fetchTimeout,
		UserAgent:     cfg.userAgent,
		MaxConcurrent: cfg.maxInFlight,
		PerHostRPS:    cfg.perHostRPS,
		Client:        cfg.httpClient,
	})

	tokOpts := []text.TokenizerOption{text.WithYieldEvery(cfg.yieldEvery)}
	if cfg.keepShortSet {
		tokOpts = append(tokOpts, text.WithKeepShort(cfg.keepShort...))
	}
	tokenizer := text.NewTokenizer(normalizer, tokOpts...)

	pipeline := analyzeuc.NewPipeline(f, registry, tokenizer, words).
		WithAnalysisTimeout(cfg.analysisTimeout)
	svc := analyzeuc.New(pipeline).WithLimits(cfg.maxURLs, cfg.maxConcurrency)

	l := cfg.logger
	if l == nil {
		l = zap.NewNop()
	}
	return &Client{svc: svc, charged: words, logger: l}
}

// Analyze scores every URL and returns one Result per URL, in input order.
// It fails only when the batch is empty (ErrNoURLs) or too large (ErrTooManyURLs).
func (c *Client) Analyze(ctx context.Context, urls ...string) ([]Result, error) {
	ctx = logger.ContextWithLogger(ctx, c.logger)
	results, err := c.svc.Analyze(ctx, urls)
	if err != nil {
		return nil, fmt.Errorf("jaundice: %w", err)
	}

	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = resultFromDomain(r)
	}
	return out, nil
}

// ChargedWords returns the normalized dictionary in sorted order.
func (c *Client) ChargedWords() []string {
	return c.charged.Words()
}

// MaxURLs returns the largest batch Analyze accepts.
func (c *Client) MaxURLs() int {
	return c.svc.MaxURLs()
}

// Close releases all resources.
func (c *Client) Close() {
	closeStore(c.store)
}

func closeStore(s db.Store) {
	if s != nil {
		s.Close()
	}
}

// wordList is a fixed in-memory dictionary source.
type wordList []string

func (w wordList) Words(context.Context) ([]string, error) { return w, nil }

// extractFuncAdapter wraps a public ExtractFunc to satisfy extractor.Extractor.
func extractFuncAdapter(fn ExtractFunc) extractor.Func {
	return func(raw []byte) (extractor.Article, error) {
		title, body, err := fn(raw)
		if err != nil {
			return extractor.Article{}, fmt.Errorf("custom extractor: %w", err)
		}
		return extractor.Article{Title: title, Text: body}, nil
	}
}
