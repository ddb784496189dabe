// Package text turns extracted article text into normalized word forms and scores them.
package text

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps a cleaned token to its canonical (lemma) form.
// Implementations must be pure and safe for concurrent use.
type Normalizer interface {
	Normalize(token string) string
}

// NormalizerFunc adapts a plain function to Normalizer.
type NormalizerFunc func(token string) string

// Normalize implements Normalizer.
func (f NormalizerFunc) Normalize(token string) string { return f(token) }

// LowercaseNormalizer folds a token to NFC lower case using Russian casing rules.
type LowercaseNormalizer struct {
	casers sync.Pool
}

// NewLowercaseNormalizer creates a LowercaseNormalizer.
func NewLowercaseNormalizer() *LowercaseNormalizer {
	n := &LowercaseNormalizer{}
	// cases.Caser keeps internal state and must not be shared between goroutines.
	n.casers.New = func() any {
		c := cases.Lower(language.Russian)
		return &c
	}
	return n
}

// Normalize implements Normalizer.
func (n *LowercaseNormalizer) Normalize(token string) string {
	c := n.casers.Get().(*cases.Caser)
	defer n.casers.Put(c)
	return c.String(norm.NFC.String(token))
}

// DictionaryNormalizer lowercases a token and maps known word forms to their lemma.
// Unknown forms are returned lowercased.
type DictionaryNormalizer struct {
	base   Normalizer
	lemmas map[string]string
}

// NewDictionaryNormalizer creates a DictionaryNormalizer.
// Keys of lemmas are expected in the form produced by base.
func NewDictionaryNormalizer(base Normalizer, lemmas map[string]string) *DictionaryNormalizer {
	cp := make(map[string]string, len(lemmas))
	for form, lemma := range lemmas {
		cp[base.Normalize(form)] = base.Normalize(lemma)
	}
	return &DictionaryNormalizer{base: base, lemmas: cp}
}

// Normalize implements Normalizer.
func (n *DictionaryNormalizer) Normalize(token string) string {
	w := n.base.Normalize(token)
	if lemma, ok := n.lemmas[w]; ok {
		return lemma
	}
	return w
}

// Len returns the number of known word forms.
func (n *DictionaryNormalizer) Len() int { return len(n.lemmas) }
