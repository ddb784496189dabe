package text

import (
	"bufio"
	"context"
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"
)

// DefaultYieldEvery is the number of tokens processed between two suspension points.
const DefaultYieldEvery = 500

// DefaultKeepShort is the short word exempt from the length filter.
const DefaultKeepShort = "не"

// minWordRunes is the length a normalized word must exceed to be kept.
const minWordRunes = 2

// punctuation is every printable ASCII punctuation character.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var decorative = strings.NewReplacer(
	"«", "", "»", "",
	"„", "", "“", "", "”", "",
	"…", "",
)

// Tokenizer splits text into normalized word forms.
// Tokenize is safe for concurrent use.
type Tokenizer struct {
	normalizer Normalizer
	yieldEvery int
	keepShort  map[string]struct{}
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithYieldEvery sets how many tokens are processed between suspension points.
func WithYieldEvery(n int) TokenizerOption {
	return func(t *Tokenizer) {
		if n > 0 {
			t.yieldEvery = n
		}
	}
}

// WithKeepShort replaces the set of short words exempt from the length filter.
func WithKeepShort(words ...string) TokenizerOption {
	return func(t *Tokenizer) {
		t.keepShort = make(map[string]struct{}, len(words))
		for _, w := range words {
			t.keepShort[w] = struct{}{}
		}
	}
}

// NewTokenizer creates a Tokenizer backed by the given normalizer.
func NewTokenizer(normalizer Normalizer, opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{
		normalizer: normalizer,
		yieldEvery: DefaultYieldEvery,
		keepShort:  map[string]struct{}{DefaultKeepShort: {}},
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Tokenize returns the normalized words of text in input order, duplicates included.
//
// Every yieldEvery tokens the loop yields the processor and checks ctx. When ctx is
// done the call stops and returns ctx's error; no partial result is returned.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]string, error) {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 4096), len(text)+1)
	sc.Split(bufio.ScanWords)

	var words []string
	for i := 0; sc.Scan(); i++ {
		if i%t.yieldEvery == 0 {
			runtime.Gosched()
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("tokenize: %w", err)
			}
		}
		if w, ok := t.word(sc.Text()); ok {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return words, nil
}

func (t *Tokenizer) word(raw string) (string, bool) {
	cleaned := CleanToken(raw)
	if cleaned == "" {
		return "", false
	}
	w := t.normalizer.Normalize(cleaned)
	if utf8.RuneCountInString(w) > minWordRunes {
		return w, true
	}
	if _, ok := t.keepShort[w]; ok {
		return w, true
	}
	return "", false
}

// CleanToken removes quotation marks and ellipses and trims ASCII punctuation at both ends.
func CleanToken(raw string) string {
	return strings.Trim(decorative.Replace(raw), punctuation)
}
