package text

import (
	"sync"
	"testing"
)

func TestLowercaseNormalizer(t *testing.T) {
	n := NewLowercaseNormalizer()
	tests := map[string]string{
		"СКАНДАЛ": "скандал",
		"Шок":     "шок",
		"Trump":   "trump",
		"":        "",
	}
	for in, want := range tests {
		if got := n.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLowercaseNormalizer_NFC(t *testing.T) {
	// "й" written as "и" + combining breve.
	decomposed := "\u0438\u0306"
	if got := NewLowercaseNormalizer().Normalize(decomposed); got != "\u0439" {
		t.Errorf("expected composed form, got %q", got)
	}
}

func TestLowercaseNormalizer_Concurrent(t *testing.T) {
	n := NewLowercaseNormalizer()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := n.Normalize("СКАНДАЛ"); got != "скандал" {
					t.Errorf("got %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDictionaryNormalizer(t *testing.T) {
	n := NewDictionaryNormalizer(NewLowercaseNormalizer(), map[string]string{
		"Стало": "Стать",
	})

	if n.Len() != 1 {
		t.Errorf("Len() = %d", n.Len())
	}
	if got := n.Normalize("СТАЛО"); got != "стать" {
		t.Errorf("Normalize(СТАЛО) = %q, want стать", got)
	}
	if got := n.Normalize("Неизвестно"); got != "неизвестно" {
		t.Errorf("unknown form should be lowercased, got %q", got)
	}
}
