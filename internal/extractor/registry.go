// Package extractor turns downloaded pages into plain article text.
//
// Extraction heuristics are site specific, so extractors are registered per host
// and looked up through a Registry.
package extractor

import (
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"

	"github.com/kailas-cloud/jaundice/internal/domain"
)

// Article is the plain-text content of a page.
type Article struct {
	Title string
	Text  string
}

// Extractor maps raw page content to an Article.
// A missing article container is reported with domain.ErrArticleNotFound.
type Extractor interface {
	Extract(raw []byte) (Article, error)
}

// Func adapts a plain function to Extractor.
type Func func(raw []byte) (Article, error)

// Extract implements Extractor.
func (f Func) Extract(raw []byte) (Article, error) { return f(raw) }

// Registry resolves an Extractor by URL host. It is read-only after setup.
type Registry struct {
	byHost map[string]Extractor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byHost: make(map[string]Extractor)}
}

// Register binds e to host. A later registration for the same host wins.
func (r *Registry) Register(host string, e Extractor) *Registry {
	r.byHost[HostKey(host)] = e
	return r
}

// Resolve returns the extractor registered for the host of rawURL.
// Unknown hosts are reported with domain.ErrNoExtractor.
func (r *Registry) Resolve(rawURL string) (Extractor, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", domain.ErrNoExtractor)
	}
	key := HostKey(u.Hostname())
	e, ok := r.byHost[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, domain.ErrNoExtractor)
	}
	return e, nil
}

// Hosts returns the registered host keys in sorted order.
func (r *Registry) Hosts() []string {
	out := make([]string, 0, len(r.byHost))
	for h := range r.byHost {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// HostKey normalizes a host for lookup: lower case, no port, no trailing dot,
// no leading "www.".
func HostKey(host string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	if hp, _, err := net.SplitHostPort(h); err == nil {
		h = hp
	}
	h = strings.TrimSuffix(h, ".")
	return strings.TrimPrefix(h, "www.")
}

// NewDefaultRegistry registers the built-in site extractors and the Generic
// extractor for every host in genericHosts.
func NewDefaultRegistry(genericHosts ...string) *Registry {
	r := NewRegistry()
	for _, h := range genericHosts {
		if strings.TrimSpace(h) != "" {
			r.Register(h, Func(Generic))
		}
	}
	return r.Register(InosmiHost, Func(Inosmi))
}
