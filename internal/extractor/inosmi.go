package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kailas-cloud/jaundice/internal/domain"
)

// InosmiHost is the host served by Inosmi.
const InosmiHost = "inosmi.ru"

var inosmiContainers = []string{
	"div.layout-article",
	"article.article",
	"article",
}

var inosmiBuzz = strings.Join([]string{
	".article__notice",
	".article__aggr",
	"aside",
	".media__copyright",
	".article__meta",
	".article__info",
	".article__tags",
	".share", ".social", ".banner", ".ads", ".subscribe",
	"script", "style", "noscript",
}, ", ")

// Inosmi extracts articles from inosmi.ru pages.
func Inosmi(raw []byte) (Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return Article{}, fmt.Errorf("parse html: %w", err)
	}

	var container *goquery.Selection
	for _, css := range inosmiContainers {
		if sel := doc.Find(css).First(); sel.Length() > 0 {
			container = sel
			break
		}
	}
	if container == nil {
		return Article{}, fmt.Errorf("inosmi: %w", domain.ErrArticleNotFound)
	}

	title := strings.TrimSpace(container.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("head title").First().Text())
	}

	container.Find(inosmiBuzz).Remove()

	return Article{
		Title: strings.Join(strings.Fields(title), " "),
		Text:  nodeText(container.Get(0)),
	}, nil
}
