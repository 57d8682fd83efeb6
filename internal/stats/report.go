package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/textstat/internal/model"
)

// RenderReport prints the applied filters and the summary statistics.
func RenderReport(w io.Writer, cfg model.Config, s Summary) error {
	lines := []string{
		"=== Text Analyzer Results ===",
		fmt.Sprintf("File: %s", cfg.FilePath),
		"Filters Applied:",
		fmt.Sprintf("  Minimum length: %d", cfg.MinLength),
	}
	if cfg.HasStartsWith {
		lines = append(lines, fmt.Sprintf("  Starts with: %c", cfg.StartsWith))
	}
	lines = append(lines,
		"",
		"Stats:",
		fmt.Sprintf("  Total word count: %d", s.TotalWords),
		fmt.Sprintf("  Number of unique words: %d", s.UniqueWords),
		fmt.Sprintf("  Average word length: %d chars", s.AverageLength),
	)
	if s.HasMostCommon {
		lines = append(lines, fmt.Sprintf("  Most common word: \"%s\" with count %d", s.MostCommon.Word, s.MostCommon.Count))
	} else {
		lines = append(lines, "  No words found.")
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
