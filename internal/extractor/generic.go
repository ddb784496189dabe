package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/kailas-cloud/jaundice/internal/domain"
)

// Generic extracts the first <article>, falling back to <main>.
// Pages with neither are reported as not found.
func Generic(raw []byte) (Article, error) {
	root, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return Article{}, fmt.Errorf("parse html: %w", err)
	}

	content := findFirst(root, "article")
	if content == nil {
		content = findFirst(root, "main")
	}
	if content == nil {
		return Article{}, fmt.Errorf("generic: %w", domain.ErrArticleNotFound)
	}

	title := ""
	if h1 := findFirst(content, "h1"); h1 != nil {
		title = nodeText(h1)
	}
	if title == "" {
		if t := findFirst(root, "title"); t != nil {
			title = nodeText(t)
		}
	}

	return Article{Title: title, Text: nodeText(content)}, nil
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}
