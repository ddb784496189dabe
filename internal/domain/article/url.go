package article

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kailas-cloud/jaundice/internal/domain"
)

// ParseURL performs the structural check done before any network I/O:
// the URL must parse, use http or https, and name a host.
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", raw, domain.ErrInvalidURL)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, fmt.Errorf("unsupported scheme %q: %w", u.Scheme, domain.ErrInvalidURL)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("missing host in %q: %w", raw, domain.ErrInvalidURL)
	}
	return u, nil
}
