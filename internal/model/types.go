// Package model defines shared data structures.
package model

import "time"

// Config defines settings for a single ladder search run.
type Config struct {
	DictionaryPath string
	Start          string
	Goal           string
	History        bool
	View           bool
}

// HistoryConfig defines filters for listing past searches.
type HistoryConfig struct {
	Word  string
	Since *time.Time
	Last  int
}

// SearchRecord captures a completed ladder search.
type SearchRecord struct {
	ID             int64
	StartedAt      time.Time
	EndedAt        time.Time
	DictionaryPath string
	DictionarySize int
	Start          string
	Goal           string
	Found          bool
	Path           []string
	Expanded       int
	DurationUs     int64
}

// Steps returns the number of changes in the recorded ladder.
func (r SearchRecord) Steps() int {
	if !r.Found || len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
