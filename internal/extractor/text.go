package extractor

import (
	"strings"

	"golang.org/x/net/html"
)

// skipText lists elements whose text never belongs to an article body.
var skipText = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
	"iframe":   {},
	"svg":      {},
}

// inline elements do not break words; everything else does.
var inline = map[string]struct{}{
	"a": {}, "abbr": {}, "b": {}, "bdi": {}, "cite": {}, "code": {}, "em": {},
	"i": {}, "mark": {}, "q": {}, "s": {}, "small": {}, "span": {}, "strong": {},
	"sub": {}, "sup": {}, "time": {}, "u": {}, "var": {},
}

// nodeText returns the visible text under n with every whitespace run collapsed
// to a single space.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		switch cur.Type {
		case html.TextNode:
			b.WriteString(cur.Data)
			return
		case html.ElementNode:
			tag := strings.ToLower(cur.Data)
			if _, skip := skipText[tag]; skip {
				return
			}
			if _, ok := inline[tag]; !ok {
				b.WriteByte(' ')
				defer b.WriteByte(' ')
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
