package dictionary

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/jaundice/internal/db"
	"github.com/kailas-cloud/jaundice/internal/domain"
)

// DefaultKey is the Redis set holding charged words.
const DefaultKey = "jaundice:charged_words"

// store is the consumer interface for the Redis-backed dictionary (ISP).
type store interface {
	SMembers(ctx context.Context, key string) ([]string, error)
	SCard(ctx context.Context, key string) (int64, error)
	SAdd(ctx context.Context, key string, members ...string) error
}

// Repo keeps charged words in a Redis set.
type Repo struct {
	store store
	key   string
}

// New creates a Redis dictionary repository. An empty key selects DefaultKey.
func New(s store, key string) *Repo {
	if key == "" {
		key = DefaultKey
	}
	return &Repo{store: s, key: key}
}

// Key returns the Redis key of the set.
func (r *Repo) Key() string { return r.key }

// Words returns every member of the set.
func (r *Repo) Words(ctx context.Context) ([]string, error) {
	words, err := r.store.SMembers(ctx, r.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%s: %w", r.key, domain.ErrEmptyDictionary)
		}
		return nil, fmt.Errorf("load charged words: %w", err)
	}
	return words, nil
}

// Count returns the number of stored words.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	n, err := r.store.SCard(ctx, r.key)
	if err != nil {
		return 0, fmt.Errorf("count charged words: %w", err)
	}
	return n, nil
}

// Seed adds words to the set.
func (r *Repo) Seed(ctx context.Context, words []string) error {
	if len(words) == 0 {
		return nil
	}
	if err := r.store.SAdd(ctx, r.key, words...); err != nil {
		return fmt.Errorf("seed charged words: %w", err)
	}
	return nil
}
