package stats

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/wordlist"
)

func TestAggregate(t *testing.T) {
	words := slices.Values([]string{"the", "quick", "the", "fox"})
	freq, lengthSum := Aggregate(words)

	want := Frequencies{"the": 2, "quick": 1, "fox": 1}
	if diff := cmp.Diff(want, freq); diff != "" {
		t.Fatalf("unexpected frequencies (-want +got):\n%s", diff)
	}
	if lengthSum != 14 {
		t.Fatalf("expected length sum 14, got %d", lengthSum)
	}
}

func TestAggregateCountsCharacters(t *testing.T) {
	_, lengthSum := Aggregate(slices.Values([]string{"naïve", "über"}))
	if lengthSum != 9 {
		t.Fatalf("expected length sum 9, got %d", lengthSum)
	}
}

func TestAggregateConsumesOnce(t *testing.T) {
	calls := 0
	words := func(yield func(string) bool) {
		calls++
		for _, w := range []string{"a", "b", "a"} {
			if !yield(w) {
				return
			}
		}
	}
	freq, _ := Aggregate(words)
	if calls != 1 {
		t.Fatalf("expected a single traversal, got %d", calls)
	}
	if freq.Total() != 3 {
		t.Fatalf("expected total 3, got %d", freq.Total())
	}
}

func TestSummarizeQuickBrownFox(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"
	freq, lengthSum := Aggregate(wordlist.Tokens(text, wordlist.FilterForConfig(model.Config{})))
	got := Summarize(freq, lengthSum)

	want := Summary{
		TotalWords:    9,
		UniqueWords:   8,
		LengthSum:     35,
		AverageLength: 4,
		MostCommon:    model.WordCount{Word: "the", Count: 2},
		HasMostCommon: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(Frequencies{}, 0)
	if diff := cmp.Diff(Summary{}, got); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
}

func TestSummarizeMinLengthExcludesAll(t *testing.T) {
	filter := wordlist.FilterForConfig(model.Config{MinLength: 4})
	freq, lengthSum := Aggregate(wordlist.Tokens("cat dog lion", filter))
	got := Summarize(freq, lengthSum)
	if got.TotalWords != 0 || got.UniqueWords != 0 || got.HasMostCommon {
		t.Fatalf("expected no words, got %+v", got)
	}
}

func TestTotalMatchesTokenCount(t *testing.T) {
	text := "one Two three two ONE one four"
	filter := wordlist.FilterForConfig(model.Config{MinLength: 2})
	tokens := slices.Collect(wordlist.Tokens(text, filter))
	freq, _ := Aggregate(slices.Values(tokens))
	if got := freq.Total(); got != uint64(len(tokens)) {
		t.Fatalf("expected total %d, got %d", len(tokens), got)
	}
	if len(freq) != 4 {
		t.Fatalf("expected 4 unique words, got %d", len(freq))
	}
}

func TestAverageLengthRounding(t *testing.T) {
	tests := []struct {
		sum   int
		total uint64
		want  int
	}{
		{0, 0, 0},
		{5, 2, 3},
		{7, 2, 4},
		{4, 3, 1},
		{5, 3, 2},
		{10, 4, 3},
	}
	for _, tt := range tests {
		if got := AverageLength(tt.sum, tt.total); got != tt.want {
			t.Fatalf("AverageLength(%d, %d): expected %d, got %d", tt.sum, tt.total, tt.want, got)
		}
	}
}
