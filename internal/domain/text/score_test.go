package text

import (
	"testing"

	"github.com/kailas-cloud/jaundice/internal/domain/charged"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		charged charged.Set
		want    float64
	}{
		{"empty words", nil, charged.NewSet("шок"), 0},
		{"empty words and set", []string{}, charged.NewSet(), 0},
		{"empty set", []string{"a", "b"}, charged.NewSet(), 0},
		{"one of three", []string{"a", "b", "c"}, charged.NewSet("a"), 33.33},
		{"two of three", []string{"a", "b", "c"}, charged.NewSet("a", "c"), 66.67},
		{"all", []string{"шок", "шок"}, charged.NewSet("шок"), 100},
		{"duplicates count", []string{"шок", "шок", "тихо", "мирно"}, charged.NewSet("шок"), 50},
		{
			"original example",
			[]string{"все", "аутсайдер", "побег"},
			charged.NewSet("аутсайдер", "банкротство"),
			33.33,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.words, tc.charged); got != tc.want {
				t.Errorf("Score() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	words := []string{"скандал", "новость", "шок", "день"}
	set := charged.NewSet("скандал", "шок")
	first := Score(words, set)
	for i := 0; i < 10; i++ {
		if got := Score(words, set); got != first {
			t.Fatalf("Score is not deterministic: %v vs %v", got, first)
		}
	}
}
