// Package wordlist tokenizes text and filters the resulting words.
package wordlist

import (
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/textstat/internal/model"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// MinLength keeps words with strictly more than n characters.
func MinLength(n int) FilterFunc {
	return func(word string) bool {
		return utf8.RuneCountInString(word) > n
	}
}

// StartsWith keeps words whose first character, lowercased, is letter.
func StartsWith(letter rune) FilterFunc {
	return func(word string) bool {
		first, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			return false
		}
		return unicode.ToLower(first) == letter
	}
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

// FilterForConfig returns the combined filter for the configured options.
func FilterForConfig(cfg model.Config) FilterFunc {
	filters := []FilterFunc{MinLength(cfg.MinLength)}
	if cfg.HasStartsWith {
		filters = append(filters, StartsWith(cfg.StartsWith))
	}
	return All(filters...)
}
