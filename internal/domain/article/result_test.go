package article

import (
	"testing"
	"time"
)

func TestNewOK(t *testing.T) {
	r := NewOK(3, "https://inosmi.ru/a.html", "Title", 12.5, 40, 150*time.Millisecond)

	if r.Index() != 3 {
		t.Errorf("Index() = %d", r.Index())
	}
	if r.URL() != "https://inosmi.ru/a.html" {
		t.Errorf("URL() = %q", r.URL())
	}
	if r.Status() != StatusOK {
		t.Errorf("Status() = %q, want %q", r.Status(), StatusOK)
	}
	if title, ok := r.Title(); !ok || title != "Title" {
		t.Errorf("Title() = %q, %v", title, ok)
	}
	if score, ok := r.Score(); !ok || score != 12.5 {
		t.Errorf("Score() = %v, %v", score, ok)
	}
	if wc, ok := r.WordCount(); !ok || wc != 40 {
		t.Errorf("WordCount() = %d, %v", wc, ok)
	}
	if el, ok := r.Elapsed(); !ok || el != 150*time.Millisecond {
		t.Errorf("Elapsed() = %v, %v", el, ok)
	}
}

func TestFailedResults_HaveNoAnalysisFields(t *testing.T) {
	tests := []struct {
		name        string
		r           Result
		status      Status
		wantElapsed bool
	}{
		{"fetch error", NewFetchError(0, "u"), StatusFetchError, false},
		{"parsing error", NewParsingError(1, "u"), StatusParsingError, false},
		{"fetch timeout", NewFetchTimeout(2, "u"), StatusTimeout, false},
		{"analysis timeout", NewAnalysisTimeout(3, "u", time.Second), StatusTimeout, true},
		{"analysis error", NewAnalysisError(4, "u", time.Millisecond), StatusParsingError, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.r.Status() != tc.status {
				t.Errorf("Status() = %q, want %q", tc.r.Status(), tc.status)
			}
			if _, ok := tc.r.Title(); ok {
				t.Error("title must be absent")
			}
			if _, ok := tc.r.Score(); ok {
				t.Error("score must be absent")
			}
			if _, ok := tc.r.WordCount(); ok {
				t.Error("word count must be absent")
			}
			if _, ok := tc.r.Elapsed(); ok != tc.wantElapsed {
				t.Errorf("elapsed present = %v, want %v", ok, tc.wantElapsed)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Status("ERROR").IsValid() {
		t.Error("unknown status should be invalid")
	}
}
