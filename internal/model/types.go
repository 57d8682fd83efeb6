// Package model defines shared data structures.
package model

// Config defines analysis settings for a single run.
type Config struct {
	FilePath      string
	MinLength     int
	StartsWith    rune
	HasStartsWith bool
}

// WordCount pairs a word with its number of occurrences.
type WordCount struct {
	Word  string
	Count uint64
}
