package wordlist

import (
	"testing"

	"github.com/verte-zerg/textstat/internal/model"
)

func TestMinLengthBoundary(t *testing.T) {
	filter := MinLength(4)
	if filter("lion") {
		t.Fatalf("expected word of exactly min length to be rejected")
	}
	if !filter("tiger") {
		t.Fatalf("expected word of min length + 1 to pass")
	}
	if !MinLength(0)("a") {
		t.Fatalf("expected single char to pass min length 0")
	}
}

func TestMinLengthCountsCharacters(t *testing.T) {
	// "café" is 4 characters but 5 bytes.
	if MinLength(4)("café") {
		t.Fatalf("expected café to be rejected by min length 4")
	}
}

func TestStartsWith(t *testing.T) {
	filter := StartsWith('t')
	for _, word := range []string{"the", "The", "tiger"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass", word)
		}
	}
	for _, word := range []string{"", "at", "quick"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterForConfig(t *testing.T) {
	filter := FilterForConfig(model.Config{MinLength: 2, StartsWith: 'b', HasStartsWith: true})
	tests := map[string]bool{
		"brown": true,
		"by":    false,
		"dog":   false,
		"Bear":  true,
	}
	for word, want := range tests {
		if got := filter(word); got != want {
			t.Fatalf("filter(%q): expected %v, got %v", word, want, got)
		}
	}

	noPrefix := FilterForConfig(model.Config{})
	if !noPrefix("x") {
		t.Fatalf("expected default config to keep any non-empty word")
	}
}
