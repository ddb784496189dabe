package dictionary

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/jaundice/internal/domain"
)

func TestRepo_DefaultKey(t *testing.T) {
	if got := New(&mockStore{}, "").Key(); got != DefaultKey {
		t.Errorf("Key() = %q, want %q", got, DefaultKey)
	}
}

func TestRepo_Words(t *testing.T) {
	s := &mockStore{members: map[string][]string{"k": {"шок"}}}
	got, err := New(s, "k").Words(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "шок" {
		t.Errorf("unexpected words: %v", got)
	}
}

func TestRepo_Words_Missing(t *testing.T) {
	_, err := New(&mockStore{}, "k").Words(context.Background())
	if !errors.Is(err, domain.ErrEmptyDictionary) {
		t.Fatalf("expected ErrEmptyDictionary, got %v", err)
	}
}

func TestRepo_Words_StoreError(t *testing.T) {
	cause := errors.New("timeout")
	_, err := New(&mockStore{readErr: cause}, "k").Words(context.Background())
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestRepo_Seed(t *testing.T) {
	s := &mockStore{}
	if err := New(s, "k").Seed(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.added) != 0 {
		t.Error("empty seed must not touch the store")
	}

	s.saddErr = errors.New("READONLY")
	if err := New(s, "k").Seed(context.Background(), []string{"шок"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRepo_Count(t *testing.T) {
	s := &mockStore{members: map[string][]string{"k": {"шок", "сенсация"}}}
	n, err := New(s, "k").Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}

	if _, err := New(&mockStore{readErr: errors.New("LOADING")}, "k").Count(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
