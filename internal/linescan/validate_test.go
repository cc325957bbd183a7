package linescan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

func TestValidate(t *testing.T) {
	limits := kwsearch.DefaultLimits()

	tests := []struct {
		name    string
		req     kwsearch.SearchRequest
		wantErr string
	}{
		{"valid defaults", kwsearch.SearchRequest{Keyword: "k", MaxMatches: 50}, ""},
		{"valid at ceilings", kwsearch.SearchRequest{Keyword: "k", MaxMatches: 500, ContextLines: 10}, ""},
		{"empty keyword", kwsearch.SearchRequest{MaxMatches: 1}, "keyword must not be empty"},
		{"zero max matches", kwsearch.SearchRequest{Keyword: "k"}, "max_matches must be at least 1"},
		{"negative max matches", kwsearch.SearchRequest{Keyword: "k", MaxMatches: -3}, "max_matches must be at least 1"},
		{"max matches above ceiling", kwsearch.SearchRequest{Keyword: "k", MaxMatches: 501}, "max_matches must be at most 500"},
		{"negative context", kwsearch.SearchRequest{Keyword: "k", MaxMatches: 1, ContextLines: -1}, "context_lines must not be negative"},
		{"context above ceiling", kwsearch.SearchRequest{Keyword: "k", MaxMatches: 1, ContextLines: 11}, "context_lines must be at most 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req, limits)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
			assert.True(t, errors.Is(err, kwsearch.ErrInvalidArgument), "expected ErrInvalidArgument, got: %v", err)
		})
	}
}

func TestValidate_CustomLimits(t *testing.T) {
	limits := kwsearch.Limits{MaxMatches: 5, MaxContextLines: 2}

	assert.NoError(t, Validate(kwsearch.SearchRequest{Keyword: "k", MaxMatches: 5, ContextLines: 2}, limits))
	assert.Error(t, Validate(kwsearch.SearchRequest{Keyword: "k", MaxMatches: 6}, limits))
	assert.Error(t, Validate(kwsearch.SearchRequest{Keyword: "k", MaxMatches: 1, ContextLines: 3}, limits))
}
