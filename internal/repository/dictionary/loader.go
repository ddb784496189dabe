// Package dictionary loads the charged-word set from files or Redis.
package dictionary

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/jaundice/internal/domain"
	"github.com/kailas-cloud/jaundice/internal/domain/charged"
	"github.com/kailas-cloud/jaundice/internal/domain/text"
)

// Source yields raw, not yet normalized, charged words.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// Load reads src and normalizes every word with n, so that the set matches the
// tokenizer output.
func Load(ctx context.Context, src Source, n text.Normalizer) (charged.Set, error) {
	raw, err := src.Words(ctx)
	if err != nil {
		return charged.Set{}, err
	}

	normalized := make([]string, 0, len(raw))
	for _, w := range raw {
		if w = n.Normalize(text.CleanToken(w)); w != "" {
			normalized = append(normalized, w)
		}
	}

	set := charged.NewSet(normalized...)
	if set.Len() == 0 {
		return charged.Set{}, domain.ErrEmptyDictionary
	}
	return set, nil
}

// SeedIfEmpty copies the words of from into repo when the Redis set is empty.
// It reports whether anything was written.
func SeedIfEmpty(ctx context.Context, repo *Repo, from Source) (bool, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	words, err := from.Words(ctx)
	if err != nil {
		return false, fmt.Errorf("read seed words: %w", err)
	}
	if err := repo.Seed(ctx, words); err != nil {
		return false, err
	}
	return len(words) > 0, nil
}
