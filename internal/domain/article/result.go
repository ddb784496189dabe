package article

import "time"

// Result is the outcome of analyzing one submitted URL (immutable value object).
//
// Analysis fields (title, score, word count) exist only for StatusOK.
// Elapsed exists only when the analysis stage was entered.
type Result struct {
	index     int
	url       string
	status    Status
	title     string
	score     float64
	wordCount int
	elapsed   time.Duration
	analyzed  bool
}

// NewOK creates a successful result.
func NewOK(index int, url, title string, score float64, wordCount int, elapsed time.Duration) Result {
	return Result{
		index:     index,
		url:       url,
		status:    StatusOK,
		title:     title,
		score:     score,
		wordCount: wordCount,
		elapsed:   elapsed,
		analyzed:  true,
	}
}

// NewFetchError creates a result for an invalid URL or a failed download.
func NewFetchError(index int, url string) Result {
	return Result{index: index, url: url, status: StatusFetchError}
}

// NewParsingError creates a result for a failed body extraction.
func NewParsingError(index int, url string) Result {
	return Result{index: index, url: url, status: StatusParsingError}
}

// NewAnalysisError creates a parsing error for text the analysis stage failed on.
// Unlike NewParsingError it records the time spent in the analysis stage.
func NewAnalysisError(index int, url string, elapsed time.Duration) Result {
	return Result{index: index, url: url, status: StatusParsingError, elapsed: elapsed, analyzed: true}
}

// NewFetchTimeout creates a result for a download that missed its deadline.
func NewFetchTimeout(index int, url string) Result {
	return Result{index: index, url: url, status: StatusTimeout}
}

// NewAnalysisTimeout creates a result for an analysis that missed its deadline.
// elapsed is the time spent in the analysis stage before it was cancelled.
func NewAnalysisTimeout(index int, url string, elapsed time.Duration) Result {
	return Result{index: index, url: url, status: StatusTimeout, elapsed: elapsed, analyzed: true}
}

// Index returns the position of the URL in the submitted batch.
func (r Result) Index() int { return r.index }

// URL returns the submitted URL as given.
func (r Result) URL() string { return r.url }

// Status returns the terminal outcome.
func (r Result) Status() Status { return r.status }

// Title returns the article title; ok is false unless the status is OK.
func (r Result) Title() (string, bool) { return r.title, r.status == StatusOK }

// Score returns the charged-word percentage; ok is false unless the status is OK.
func (r Result) Score() (float64, bool) { return r.score, r.status == StatusOK }

// WordCount returns the number of analyzed words; ok is false unless the status is OK.
func (r Result) WordCount() (int, bool) { return r.wordCount, r.status == StatusOK }

// Elapsed returns the time spent in the analysis stage; ok is false if it was never entered.
func (r Result) Elapsed() (time.Duration, bool) { return r.elapsed, r.analyzed }
