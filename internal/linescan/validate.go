package linescan

import (
	"fmt"

	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

// Validate checks req against limits before any scanning takes place.
// Every returned error wraps kwsearch.ErrInvalidArgument.
func Validate(req kwsearch.SearchRequest, limits kwsearch.Limits) error {
	if req.Keyword == "" {
		return fmt.Errorf("%w: keyword must not be empty", kwsearch.ErrInvalidArgument)
	}
	if req.MaxMatches < 1 {
		return fmt.Errorf("%w: max_matches must be at least 1, got %d", kwsearch.ErrInvalidArgument, req.MaxMatches)
	}
	if limits.MaxMatches > 0 && req.MaxMatches > limits.MaxMatches {
		return fmt.Errorf("%w: max_matches must be at most %d, got %d", kwsearch.ErrInvalidArgument, limits.MaxMatches, req.MaxMatches)
	}
	if req.ContextLines < 0 {
		return fmt.Errorf("%w: context_lines must not be negative, got %d", kwsearch.ErrInvalidArgument, req.ContextLines)
	}
	if req.ContextLines > limits.MaxContextLines {
		return fmt.Errorf("%w: context_lines must be at most %d, got %d", kwsearch.ErrInvalidArgument, limits.MaxContextLines, req.ContextLines)
	}
	return nil
}
