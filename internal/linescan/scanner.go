package linescan

import (
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

// SplitLines splits content on "\n" with an optional preceding "\r", so Unix
// and Windows line endings produce the same lines. A trailing line break does
// not start an extra empty line, and empty content has zero lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Scan splits content into lines and scans them. See ScanLines.
func Scan(content string, req kwsearch.SearchRequest) kwsearch.SearchResult {
	return ScanLines(SplitLines(content), req)
}

// ScanLines collects up to req.MaxMatches non-overlapping occurrences of
// req.Keyword in lines, in (line, column) order.
//
// req is assumed to have passed Validate. An empty keyword or a non-positive
// cap yields an empty result rather than looping.
func ScanLines(lines []string, req kwsearch.SearchRequest) kwsearch.SearchResult {
	result := kwsearch.SearchResult{Matches: []kwsearch.MatchRecord{}}
	if req.Keyword == "" || req.MaxMatches < 1 {
		return result
	}

	needle := req.Keyword
	if !req.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	for i, line := range lines {
		haystack := line
		if !req.CaseSensitive {
			// strings.ToLower maps rune for rune, so rune offsets in the
			// folded line are valid in the original line.
			haystack = strings.ToLower(line)
		}

		offset := 0
		for offset <= len(haystack)-len(needle) {
			idx := strings.Index(haystack[offset:], needle)
			if idx < 0 {
				break
			}
			start := offset + idx
			result.Matches = append(result.Matches, kwsearch.MatchRecord{
				LineNumber:    i + 1,
				Column:        utf8.RuneCountInString(haystack[:start]) + 1,
				Line:          line,
				ContextBefore: contextBefore(lines, i, req.ContextLines),
				ContextAfter:  contextAfter(lines, i, req.ContextLines),
			})
			if len(result.Matches) == req.MaxMatches {
				result.TotalMatches = len(result.Matches)
				return result
			}
			offset = start + len(needle)
		}
	}

	result.TotalMatches = len(result.Matches)
	return result
}

func contextBefore(lines []string, i, radius int) []string {
	if radius <= 0 {
		return []string{}
	}
	start := i - radius
	if start < 0 {
		start = 0
	}
	return copyLines(lines[start:i])
}

func contextAfter(lines []string, i, radius int) []string {
	if radius <= 0 {
		return []string{}
	}
	end := i + 1 + radius
	if end > len(lines) {
		end = len(lines)
	}
	return copyLines(lines[i+1 : end])
}

func copyLines(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
