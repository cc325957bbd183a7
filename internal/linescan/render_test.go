package linescan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

func TestHighlight(t *testing.T) {
	result := Scan("beta MCP here", request("mcp"))
	require.Equal(t, 1, result.TotalMatches)

	assert.Equal(t, "1: beta [MCP] here", Highlight(result.Matches[0], "mcp"))
}

func TestHighlight_EachOccurrenceOnSameLine(t *testing.T) {
	result := Scan("go go", request("go"))
	require.Equal(t, 2, result.TotalMatches)

	assert.Equal(t, "1: [go] go\n1: go [go]", HighlightAll(result, "go"))
}

func TestHighlight_NonASCII(t *testing.T) {
	result := Scan("größe Größe", request("GRÖSSE"))
	assert.Equal(t, 0, result.TotalMatches)

	result = Scan("naïve café", request("café"))
	require.Equal(t, 1, result.TotalMatches)
	assert.Equal(t, "1: naïve [café]", Highlight(result.Matches[0], "café"))
}

func TestHighlight_OutOfRangeColumnFallsBack(t *testing.T) {
	m := kwsearch.MatchRecord{LineNumber: 3, Column: 40, Line: "  short  "}
	assert.Equal(t, "3: short", Highlight(m, "word"))
}

func TestSummary(t *testing.T) {
	found := kwsearch.SearchResult{TotalMatches: 2}
	none := kwsearch.SearchResult{}

	assert.Equal(t, "Found 2 match(es) for 'MCP' in docs/notes.txt.", Summary(found, "MCP", "docs/notes.txt", false))
	assert.Equal(t, "No matches for 'MCP' in notes.txt (case insensitive search).", Summary(none, "MCP", "notes.txt", false))
	assert.Equal(t, "No matches for 'MCP' in notes.txt (case sensitive search).", Summary(none, "MCP", "notes.txt", true))
}

func TestSplit(t *testing.T) {
	m := kwsearch.MatchRecord{LineNumber: 1, Column: 6, Line: "beta MCP here"}

	before, occurrence, after, ok := Split(m, "mcp")
	require.True(t, ok)
	assert.Equal(t, "beta ", before)
	assert.Equal(t, "MCP", occurrence)
	assert.Equal(t, " here", after)

	_, _, _, ok = Split(kwsearch.MatchRecord{Column: 0, Line: "x"}, "x")
	assert.False(t, ok)
}
