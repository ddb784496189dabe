package dictionary

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/jaundice/internal/domain"
	"github.com/kailas-cloud/jaundice/internal/domain/text"
)

func TestLoad_NormalizesWords(t *testing.T) {
	n := text.NewDictionaryNormalizer(text.NewLowercaseNormalizer(), map[string]string{"Скандалы": "скандал"})
	src := staticSource{"Скандалы", "«ШОК»", "скандал", "...", ""}

	set, err := Load(context.Background(), src, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"скандал", "шок"}; !reflect.DeepEqual(set.Words(), want) {
		t.Errorf("Words() = %v, want %v", set.Words(), want)
	}
}

func TestLoad_EmptySource(t *testing.T) {
	_, err := Load(context.Background(), staticSource{"", "!!!"}, text.NewLowercaseNormalizer())
	if !errors.Is(err, domain.ErrEmptyDictionary) {
		t.Fatalf("expected ErrEmptyDictionary, got %v", err)
	}
}

func TestLoad_FromRedis(t *testing.T) {
	s := &mockStore{members: map[string][]string{DefaultKey: {"Сенсация"}}}

	set, err := Load(context.Background(), New(s, ""), text.NewLowercaseNormalizer())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Contains("сенсация") {
		t.Error("expected normalized Redis member")
	}
}

func TestSeedIfEmpty(t *testing.T) {
	s := &mockStore{}
	repo := New(s, "k")

	seeded, err := SeedIfEmpty(context.Background(), repo, staticSource{"шок", "сенсация"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seeded {
		t.Error("expected empty set to be seeded")
	}

	seeded, err = SeedIfEmpty(context.Background(), repo, staticSource{"другое"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seeded {
		t.Error("expected populated set to be left alone")
	}
	if want := []string{"шок", "сенсация"}; !reflect.DeepEqual(s.added, want) {
		t.Errorf("added = %v, want %v", s.added, want)
	}
}

func TestSeedIfEmpty_StoreError(t *testing.T) {
	repo := New(&mockStore{readErr: errors.New("conn refused")}, "k")
	if _, err := SeedIfEmpty(context.Background(), repo, staticSource{"шок"}); err == nil {
		t.Fatal("expected error")
	}
}
