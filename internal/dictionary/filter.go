package dictionary

import (
	"sort"
	"unicode/utf8"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// LengthCount is the number of words sharing one length.
type LengthCount struct {
	Length int
	Count  int
}

// OfLength keeps words with exactly n characters.
func OfLength(n int) FilterFunc {
	return func(word string) bool {
		return utf8.RuneCountInString(word) == n
	}
}

// Alphabetic keeps non-empty words made only of the letters a-z.
func Alphabetic(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// All keeps words accepted by every filter.
func All(filters ...FilterFunc) FilterFunc {
	return func(word string) bool {
		for _, keep := range filters {
			if !keep(word) {
				return false
			}
		}
		return true
	}
}

// LengthCounts groups the dictionary by word length, shortest first.
func LengthCounts(d *Dictionary) []LengthCount {
	byLen := map[int]int{}
	for word := range d.words {
		byLen[utf8.RuneCountInString(word)]++
	}
	out := make([]LengthCount, 0, len(byLen))
	for length, count := range byLen {
		out = append(out, LengthCount{Length: length, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Length < out[j].Length
	})
	return out
}
