// Package charged holds the dictionary of charged (sensational) word forms.
package charged

import "sort"

// Set is an immutable set of normalized charged word forms.
// A Set is safe for concurrent use once built.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from normalized word forms. Empty strings are skipped.
func NewSet(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// Contains reports whether word is a charged word form (exact match).
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct words.
func (s Set) Len() int { return len(s.words) }

// Words returns the words in sorted order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
