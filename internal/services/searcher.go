package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vvka-141/kwsearch/internal/linescan"
	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

// SearchService validates a request, loads the file through the provider,
// and scans it. It holds no per-call state and is safe for concurrent use.
type SearchService struct {
	files             kwsearch.FileProvider
	logger            kwsearch.Logger
	limits            kwsearch.Limits
	defaultMaxMatches int
	newID             func() string
}

// NewSearchService creates a SearchService.
// Panics on nil dependencies; these are wiring errors caught at startup.
// defaultMaxMatches <= 0 selects kwsearch.DefaultMaxMatches.
func NewSearchService(files kwsearch.FileProvider, logger kwsearch.Logger, limits kwsearch.Limits, defaultMaxMatches int) *SearchService {
	if files == nil {
		panic("files cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if defaultMaxMatches <= 0 {
		defaultMaxMatches = kwsearch.DefaultMaxMatches
	}
	return &SearchService{
		files:             files,
		logger:            logger,
		limits:            limits,
		defaultMaxMatches: defaultMaxMatches,
		newID:             func() string { return uuid.NewString() },
	}
}

// Limits returns the bounds requests are validated against.
func (s *SearchService) Limits() kwsearch.Limits {
	return s.limits
}

// NewRequest returns a request for keyword in path with every option at its
// default. Hosts override only the options the caller actually supplied, so
// an explicit zero still fails validation.
func (s *SearchService) NewRequest(path, keyword string) kwsearch.SearchRequest {
	return kwsearch.SearchRequest{
		FilePath:     path,
		Keyword:      keyword,
		MaxMatches:   s.defaultMaxMatches,
		ContextLines: kwsearch.DefaultContextLines,
	}
}

// Search runs one keyword search. Parameter errors wrap
// kwsearch.ErrInvalidArgument and are reported before the file is touched;
// file errors wrap kwsearch.ErrResourceUnavailable. Zero matches is success.
func (s *SearchService) Search(ctx context.Context, req kwsearch.SearchRequest) (*kwsearch.SearchOutcome, error) {
	id := s.newID()

	if req.FilePath == "" {
		return nil, fmt.Errorf("%w: file_path must not be empty", kwsearch.ErrInvalidArgument)
	}
	if err := linescan.Validate(req, s.limits); err != nil {
		s.logger.Verbose("search %s rejected: %v", id, err)
		return nil, err
	}

	file, err := s.files.Read(ctx, req.FilePath)
	if err != nil {
		s.logger.Verbose("search %s: %v", id, err)
		return nil, err
	}

	result := linescan.Scan(file.Content, req)
	s.logger.Verbose("search %s: %d match(es) for %q in %s (case_sensitive=%t, max_matches=%d, context_lines=%d)",
		id, result.TotalMatches, req.Keyword, file.DisplayPath, req.CaseSensitive, req.MaxMatches, req.ContextLines)

	file.Content = ""
	return &kwsearch.SearchOutcome{
		ID:      id,
		File:    file,
		Request: req,
		Result:  result,
	}, nil
}
