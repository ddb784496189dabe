// Package db is the narrow storage facade behind the Redis-backed dictionary.
package db

import (
	"context"
	"time"
)

// Store is everything the service needs from Redis: connectivity checks and
// one string set per dictionary.
type Store interface {
	Pinger
	SetStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetStore provides unordered string set operations.
type SetStore interface {
	// SMembers returns every member; an empty or missing set is ErrKeyNotFound.
	SMembers(ctx context.Context, key string) ([]string, error)
	// SCard returns the set size; a missing set has size 0.
	SCard(ctx context.Context, key string) (int64, error)
	SAdd(ctx context.Context, key string, members ...string) error
}
