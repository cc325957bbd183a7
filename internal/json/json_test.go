package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

func TestMarshal_SearchResultShape(t *testing.T) {
	result := kwsearch.SearchResult{
		TotalMatches: 1,
		Matches: []kwsearch.MatchRecord{{
			LineNumber:    4,
			Column:        1,
			Line:          "MCP again",
			ContextBefore: []string{"gamma"},
			ContextAfter:  []string{},
		}},
	}

	data, err := Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"totalMatches": 1,
		"matches": [{
			"lineNumber": 4,
			"column": 1,
			"line": "MCP again",
			"contextBefore": ["gamma"],
			"contextAfter": []
		}]
	}`, string(data))
}

func TestMarshal_EmptyResultUsesEmptyArray(t *testing.T) {
	data, err := Marshal(kwsearch.SearchResult{Matches: []kwsearch.MatchRecord{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalMatches": 0, "matches": []}`, string(data))
}
