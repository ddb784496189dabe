package extractor

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/jaundice/internal/domain"
)

func TestHostKey(t *testing.T) {
	tests := map[string]string{
		"inosmi.ru":         "inosmi.ru",
		"INOSMI.RU":         "inosmi.ru",
		"www.inosmi.ru":     "inosmi.ru",
		"inosmi.ru:443":     "inosmi.ru",
		"inosmi.ru.":        "inosmi.ru",
		" www.Example.com ": "example.com",
		"sub.inosmi.ru":     "sub.inosmi.ru",
		"[::1]:8080":        "::1",
		"127.0.0.1:54321":   "127.0.0.1",
	}
	for in, want := range tests {
		if got := HostKey(in); got != want {
			t.Errorf("HostKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRegistry_Resolve(t *testing.T) {
	called := false
	r := NewRegistry().Register("inosmi.ru", Func(func([]byte) (Article, error) {
		called = true
		return Article{Text: "x"}, nil
	}))

	e, err := r.Resolve("https://www.inosmi.ru/20250917/a.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.Extract(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected registered extractor to be returned")
	}
}

func TestRegistry_ResolvePaddedURL(t *testing.T) {
	r := NewDefaultRegistry("example.com")

	for _, raw := range []string{" https://inosmi.ru/a.html", "https://example.com:8443/a \t"} {
		if _, err := r.Resolve(raw); err != nil {
			t.Errorf("Resolve(%q): unexpected error: %v", raw, err)
		}
	}
}

func TestRegistry_UnknownHost(t *testing.T) {
	r := NewDefaultRegistry()

	for _, raw := range []string{"https://example.com/a", "https://inosmi.ru.evil.com/a", "://bad"} {
		if _, err := r.Resolve(raw); !errors.Is(err, domain.ErrNoExtractor) {
			t.Errorf("Resolve(%q): expected ErrNoExtractor, got %v", raw, err)
		}
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry("example.com", "", "WWW.Blog.Example.org")
	want := []string{"blog.example.org", "example.com", "inosmi.ru"}
	if got := r.Hosts(); !reflect.DeepEqual(got, want) {
		t.Errorf("Hosts() = %v, want %v", got, want)
	}
}
