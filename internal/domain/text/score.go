package text

import (
	"math"

	"github.com/kailas-cloud/jaundice/internal/domain/charged"
)

// Score returns the share of charged words in words as a percentage rounded to
// two decimals. Words are counted with repetitions. An empty input scores 0.
func Score(words []string, chargedWords charged.Set) float64 {
	if len(words) == 0 {
		return 0
	}
	found := 0
	for _, w := range words {
		if chargedWords.Contains(w) {
			found++
		}
	}
	pct := float64(found) / float64(len(words)) * 100
	return math.Round(pct*100) / 100
}
