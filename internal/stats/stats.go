// Package stats contains statistics calculations and reporting.
package stats

import (
	"iter"
	"math"
	"unicode/utf8"

	"github.com/verte-zerg/textstat/internal/model"
)

// Frequencies maps each distinct word to its number of occurrences.
type Frequencies map[string]uint64

// Summary holds the aggregate statistics of an analysis run.
type Summary struct {
	TotalWords    uint64
	UniqueWords   int
	LengthSum     int
	AverageLength int
	MostCommon    model.WordCount
	HasMostCommon bool
}

// Aggregate consumes words once and returns their frequencies along with the
// summed character length of every word seen, repeats included.
func Aggregate(words iter.Seq[string]) (Frequencies, int) {
	freq := Frequencies{}
	lengthSum := 0
	for word := range words {
		freq[word]++
		lengthSum += utf8.RuneCountInString(word)
	}
	return freq, lengthSum
}

// Total returns the sum of all counts.
func (f Frequencies) Total() uint64 {
	var total uint64
	for _, count := range f {
		total += count
	}
	return total
}

// Summarize derives the report statistics from frequencies and their length sum.
func Summarize(freq Frequencies, lengthSum int) Summary {
	s := Summary{
		TotalWords:  freq.Total(),
		UniqueWords: len(freq),
		LengthSum:   lengthSum,
	}
	s.AverageLength = AverageLength(lengthSum, s.TotalWords)
	s.MostCommon, s.HasMostCommon = MostCommon(freq)
	return s
}

// AverageLength returns lengthSum/total rounded half away from zero, or 0
// when there are no words.
func AverageLength(lengthSum int, total uint64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(lengthSum) / float64(total)))
}
