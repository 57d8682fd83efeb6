package stats

import "github.com/verte-zerg/textstat/internal/model"

// MostCommon returns the word with the highest count. Among words sharing the
// highest count the lexicographically greatest one wins, so "a a b b" yields
// "b". The result is false for an empty map.
func MostCommon(freq Frequencies) (model.WordCount, bool) {
	var best model.WordCount
	found := false
	for word, count := range freq {
		if !found || ranksAbove(word, count, best) {
			best = model.WordCount{Word: word, Count: count}
			found = true
		}
	}
	return best, found
}

func ranksAbove(word string, count uint64, than model.WordCount) bool {
	if count == than.Count {
		return word > than.Word
	}
	return count > than.Count
}
