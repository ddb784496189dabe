package redis

import (
	"context"

	"github.com/kailas-cloud/jaundice/internal/db"
)

// sAddChunk caps the number of members sent in one SADD.
const sAddChunk = 1000

// SMembers returns all members of the set at key.
// A missing key is reported as db.ErrKeyNotFound.
func (s *Store) SMembers(ctx context.Context, key string) ([]string, error) {
	cmd := s.b().Smembers().Key(key).Build()
	members, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpSMembers, Err: err}
	}
	if len(members) == 0 {
		return nil, db.ErrKeyNotFound
	}
	return members, nil
}

// SCard returns the number of members of the set at key.
func (s *Store) SCard(ctx context.Context, key string) (int64, error) {
	n, err := s.do(ctx, s.b().Scard().Key(key).Build()).AsInt64()
	if err != nil {
		return 0, &db.Error{Op: db.OpSCard, Err: err}
	}
	return n, nil
}

// SAdd adds members to the set at key, creating it if needed.
func (s *Store) SAdd(ctx context.Context, key string, members ...string) error {
	for start := 0; start < len(members); start += sAddChunk {
		end := min(start+sAddChunk, len(members))
		cmd := s.b().Sadd().Key(key).Member(members[start:end]...).Build()
		if err := s.do(ctx, cmd).Error(); err != nil {
			return &db.Error{Op: db.OpSAdd, Err: err}
		}
	}
	return nil
}
