// Package lemma loads word-form tables for the dictionary normalizer.
package lemma

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk layout: each lemma lists its word forms.
//
//	lemmas:
//	  хотеть: [хочет, хочу, хотят]
type fileFormat struct {
	Lemmas map[string][]string `yaml:"lemmas"`
}

// LoadFile reads a lemma table and returns it as a form -> lemma map.
// Every lemma also maps to itself.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read lemma file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a lemma table. A form claimed by two lemmas is an error.
func Parse(data []byte) (map[string]string, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lemma file: %w", err)
	}

	out := make(map[string]string)
	for lemma, forms := range f.Lemmas {
		lemma = strings.TrimSpace(lemma)
		if lemma == "" {
			return nil, fmt.Errorf("lemma file: empty lemma")
		}
		for _, form := range append([]string{lemma}, forms...) {
			form = strings.TrimSpace(form)
			if form == "" {
				continue
			}
			if prev, ok := out[form]; ok && prev != lemma {
				return nil, fmt.Errorf("lemma file: form %q maps to both %q and %q", form, prev, lemma)
			}
			out[form] = lemma
		}
	}
	return out, nil
}
