package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Analysis Prometheus metrics.
var (
	ArticlesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jaundice",
			Name:      "articles_total",
			Help:      "Total number of analyzed articles by outcome",
		},
		[]string{"status"}, // OK / FETCH_ERROR / PARSING_ERROR / TIMEOUT
	)

	StageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jaundice",
			Name:      "stage_duration_seconds",
			Help:      "Per-article pipeline stage duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"stage"}, // fetch / extract / analyze
	)

	BatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "jaundice",
			Name:      "batch_size",
			Help:      "Number of URLs per analysis batch",
			Buckets:   []float64{1, 2, 3, 5, 10, 20, 50},
		},
	)
)

// Pipeline stage label values.
const (
	StageFetch   = "fetch"
	StageExtract = "extract"
	StageAnalyze = "analyze"
)

var registerAnalysis sync.Once

// RegisterAnalysisMetrics registers analysis metrics on the default registry.
// Safe to call more than once.
func RegisterAnalysisMetrics() {
	registerAnalysis.Do(func() {
		prometheus.MustRegister(ArticlesTotal)
		prometheus.MustRegister(StageDuration)
		prometheus.MustRegister(BatchSize)
	})
}
