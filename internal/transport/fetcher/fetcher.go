// Package fetcher downloads article pages over HTTP.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"

	"github.com/kailas-cloud/jaundice/internal/domain"
	"github.com/kailas-cloud/jaundice/internal/domain/article"
	"github.com/kailas-cloud/jaundice/internal/version"
)

// Defaults applied by New for zero config values.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 10 << 20
	DefaultMaxRedirects = 5
)

// Config holds fetcher settings.
type Config struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	MaxRedirects int
	// MaxConcurrent caps in-flight requests. Zero means unlimited.
	MaxConcurrent int
	// PerHostRPS limits request rate per host. Zero disables limiting.
	PerHostRPS float64
	// Client overrides the HTTP client (tests). Its CheckRedirect is replaced.
	Client *http.Client
}

// Fetcher performs single-attempt GET requests under a hard deadline.
// One Fetcher is shared by all concurrent article pipelines.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
	perHostRPS   float64

	sem chan struct{}

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates a Fetcher.
func New(cfg Config) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.MaxRedirects <= 0 {
		cfg.MaxRedirects = DefaultMaxRedirects
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = version.UserAgent()
	}

	var client http.Client
	if cfg.Client != nil {
		client = *cfg.Client
	} else {
		client = http.Client{Transport: newTransport()}
	}
	client.CheckRedirect = checkRedirect(cfg.MaxRedirects)

	f := &Fetcher{
		client:       &client,
		timeout:      cfg.Timeout,
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		perHostRPS:   cfg.PerHostRPS,
		limiters:     make(map[string]*rate.Limiter),
	}
	if cfg.MaxConcurrent > 0 {
		f.sem = make(chan struct{}, cfg.MaxConcurrent)
	}
	return f
}

// Timeout returns the fetch deadline.
func (f *Fetcher) Timeout() time.Duration { return f.timeout }

// Fetch downloads rawURL and returns the body decoded to UTF-8.
//
// Errors wrap domain.ErrInvalidURL, domain.ErrFetchTimeout (deadline expired)
// or domain.ErrFetchFailed (everything else). There are no retries.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := article.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if err := f.acquire(ctx); err != nil {
		return nil, classify(ctx, "wait for slot", err)
	}
	defer f.release()

	if err := f.waitHost(ctx, u.Hostname()); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", domain.ErrFetchFailed)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classify(ctx, "do request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d: %w", resp.StatusCode, domain.ErrFetchFailed)
	}

	var body io.Reader = resp.Body
	if r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type")); err == nil {
		body = r
	}
	b, err := io.ReadAll(io.LimitReader(body, f.maxBodyBytes+1))
	if err != nil {
		return nil, classify(ctx, "read body", err)
	}
	if int64(len(b)) > f.maxBodyBytes {
		return nil, fmt.Errorf("body exceeds %d bytes: %w", f.maxBodyBytes, domain.ErrFetchFailed)
	}
	return b, nil
}

// classify maps a transport error to the fetch sentinels using the state of the
// deadline-bound context.
func classify(ctx context.Context, op string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrFetchTimeout, err)
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrFetchFailed, err)
}

func (f *Fetcher) acquire(ctx context.Context) error {
	if f.sem == nil {
		return nil
	}
	select {
	case f.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Fetcher) release() {
	if f.sem == nil {
		return
	}
	<-f.sem
}

func (f *Fetcher) waitHost(ctx context.Context, host string) error {
	if f.perHostRPS <= 0 {
		return nil
	}
	if err := f.limiter(host).Wait(ctx); err != nil {
		// Wait fails early when the next token is past the deadline.
		if ctx.Err() == nil || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("rate limit %s: %w: %v", host, domain.ErrFetchTimeout, err)
		}
		return fmt.Errorf("rate limit %s: %w: %v", host, domain.ErrFetchFailed, err)
	}
	return nil
}

func (f *Fetcher) limiter(host string) *rate.Limiter {
	host = strings.ToLower(host)
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(f.perHostRPS), 1)
		f.limiters[host] = l
	}
	return l
}

func checkRedirect(maxHops int) func(req *http.Request, via []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxHops {
			return errors.New("too many redirects")
		}
		if _, err := article.ParseURL(req.URL.String()); err != nil {
			return fmt.Errorf("redirect: %w", err)
		}
		return nil
	}
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConnsPerHost:   64,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
