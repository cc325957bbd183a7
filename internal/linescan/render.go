package linescan

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

// Split cuts the match line into the text before the occurrence, the
// occurrence itself and the text after it. ok is false when the column does
// not address the keyword inside the line.
func Split(m kwsearch.MatchRecord, keyword string) (before, occurrence, after string, ok bool) {
	runes := []rune(m.Line)
	start := m.Column - 1
	end := start + utf8.RuneCountInString(keyword)
	if start < 0 || end > len(runes) {
		return "", "", "", false
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:]), true
}

// Highlight renders a match as "<line>: <prefix>[<occurrence>]<suffix>".
// The occurrence is taken from the original line at the match column, so it
// keeps the file's casing.
func Highlight(m kwsearch.MatchRecord, keyword string) string {
	before, occurrence, after, ok := Split(m, keyword)
	if !ok {
		return fmt.Sprintf("%d: %s", m.LineNumber, strings.TrimSpace(m.Line))
	}
	return fmt.Sprintf("%d: %s[%s]%s", m.LineNumber, before, occurrence, after)
}

// HighlightAll renders every match of result, one per line.
func HighlightAll(result kwsearch.SearchResult, keyword string) string {
	rendered := make([]string, 0, len(result.Matches))
	for _, m := range result.Matches {
		rendered = append(rendered, Highlight(m, keyword))
	}
	return strings.Join(rendered, "\n")
}

// Summary returns the one-line human-readable description of a search.
func Summary(result kwsearch.SearchResult, keyword, displayPath string, caseSensitive bool) string {
	if result.TotalMatches == 0 {
		mode := "insensitive"
		if caseSensitive {
			mode = "sensitive"
		}
		return fmt.Sprintf("No matches for '%s' in %s (case %s search).", keyword, displayPath, mode)
	}
	return fmt.Sprintf("Found %d match(es) for '%s' in %s.", result.TotalMatches, keyword, displayPath)
}
