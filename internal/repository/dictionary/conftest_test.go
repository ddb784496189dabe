package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/jaundice/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	members map[string][]string
	readErr error
	saddErr error
	added   []string
}

func (m *mockStore) SMembers(_ context.Context, key string) ([]string, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if len(m.members[key]) == 0 {
		return nil, db.ErrKeyNotFound
	}
	return m.members[key], nil
}

func (m *mockStore) SCard(_ context.Context, key string) (int64, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return int64(len(m.members[key])), nil
}

func (m *mockStore) SAdd(_ context.Context, key string, members ...string) error {
	if m.saddErr != nil {
		return m.saddErr
	}
	if m.members == nil {
		m.members = map[string][]string{}
	}
	m.members[key] = append(m.members[key], members...)
	m.added = append(m.added, members...)
	return nil
}

type staticSource []string

func (s staticSource) Words(context.Context) ([]string, error) { return s, nil }

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
