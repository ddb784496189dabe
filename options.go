package jaundice

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*clientConfig)

// ExtractFunc extracts the article title and plain text from a raw page.
// Return ErrArticleNotFound when the page has no article.
type ExtractFunc func(raw []byte) (title, text string, err error)

type clientConfig struct {
	chargedWords []string
	dictDir      string

	redisAddrs    []string
	redisPassword string
	redisKey      string

	lemmas     map[string]string
	normalizer func(string) string

	extractors   map[string]ExtractFunc
	genericHosts []string

	httpClient      *http.Client
	userAgent       string
	fetchTimeout    time.Duration
	analysisTimeout time.Duration
	perHostRPS      float64
	maxInFlight     int

	maxURLs        int
	maxConcurrency int
	yieldEvery     int
	keepShort      []string
	keepShortSet   bool

	logger *zap.Logger
}

// WithChargedWords supplies the charged-word dictionary directly.
func WithChargedWords(words ...string) Option {
	return func(c *clientConfig) { c.chargedWords = append(c.chargedWords, words...) }
}

// WithDictionaryDir loads charged words from every *.txt file in dir.
func WithDictionaryDir(dir string) Option {
	return func(c *clientConfig) { c.dictDir = dir }
}

// WithRedis loads charged words from a Redis set. An empty key selects the default.
func WithRedis(addr, password, key string) Option {
	return func(c *clientConfig) {
		c.redisAddrs = []string{addr}
		c.redisPassword = password
		c.redisKey = key
	}
}

// WithLemmas maps word forms to their lemma before scoring.
func WithLemmas(formToLemma map[string]string) Option {
	return func(c *clientConfig) { c.lemmas = formToLemma }
}

// WithNormalizer replaces the built-in normalizer entirely.
// fn must be safe for concurrent use.
func WithNormalizer(fn func(token string) string) Option {
	return func(c *clientConfig) { c.normalizer = fn }
}

// WithExtractor registers a body extractor for host.
func WithExtractor(host string, fn ExtractFunc) Option {
	return func(c *clientConfig) {
		if c.extractors == nil {
			c.extractors = make(map[string]ExtractFunc)
		}
		c.extractors[host] = fn
	}
}

// WithGenericHosts analyzes pages of hosts with the generic <article>/<main> extractor.
func WithGenericHosts(hosts ...string) Option {
	return func(c *clientConfig) { c.genericHosts = append(c.genericHosts, hosts...) }
}

// WithHTTPClient sets the HTTP client used for downloads.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header of downloads.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) { c.userAgent = ua }
}

// WithFetchTimeout sets the per-article download deadline (default 30s).
func WithFetchTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.fetchTimeout = d }
}

// WithAnalysisTimeout sets the per-article analysis deadline (default 3s).
func WithAnalysisTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.analysisTimeout = d }
}

// WithPerHostRateLimit caps downloads per second for each host.
func WithPerHostRateLimit(rps float64) Option {
	return func(c *clientConfig) { c.perHostRPS = rps }
}

// WithMaxInFlight caps concurrent downloads across all batches.
func WithMaxInFlight(n int) Option {
	return func(c *clientConfig) { c.maxInFlight = n }
}

// WithMaxURLs sets the largest accepted batch (default 10).
func WithMaxURLs(n int) Option {
	return func(c *clientConfig) { c.maxURLs = n }
}

// WithMaxConcurrency caps the articles of one batch processed at once.
func WithMaxConcurrency(n int) Option {
	return func(c *clientConfig) { c.maxConcurrency = n }
}

// WithYieldEvery sets how many tokens are processed between cancellation checks.
func WithYieldEvery(n int) Option {
	return func(c *clientConfig) { c.yieldEvery = n }
}

// WithKeepShort replaces the short words kept despite the length filter (default "не").
func WithKeepShort(words ...string) Option {
	return func(c *clientConfig) {
		c.keepShort = words
		c.keepShortSet = true
	}
}

// WithLogger sets the logger used for per-article and batch logs.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}
