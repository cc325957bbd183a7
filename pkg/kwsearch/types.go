package kwsearch

import "context"

// SearchRequest holds the parameters of a single keyword search.
// FilePath is opaque to the scanner; the host resolves it before any
// content reaches the scan.
type SearchRequest struct {
	FilePath      string `json:"filePath,omitempty" yaml:"file_path,omitempty"`
	Keyword       string `json:"keyword" yaml:"keyword"`
	CaseSensitive bool   `json:"caseSensitive" yaml:"case_sensitive"`
	MaxMatches    int    `json:"maxMatches" yaml:"max_matches"`
	ContextLines  int    `json:"contextLines" yaml:"context_lines"`
}

// MatchRecord is one located occurrence of the keyword.
// LineNumber and Column are 1-based; Column counts characters, not bytes.
type MatchRecord struct {
	LineNumber    int      `json:"lineNumber"`
	Column        int      `json:"column"`
	Line          string   `json:"line"`
	ContextBefore []string `json:"contextBefore"`
	ContextAfter  []string `json:"contextAfter"`
}

// SearchResult is the ordered outcome of a scan.
// Matches are ordered by (LineNumber, Column) ascending.
type SearchResult struct {
	TotalMatches int           `json:"totalMatches"`
	Matches      []MatchRecord `json:"matches"`
}

// Limits bounds the values a SearchRequest may carry.
type Limits struct {
	MaxMatches      int
	MaxContextLines int
}

// DefaultLimits returns the built-in ceilings.
func DefaultLimits() Limits {
	return Limits{
		MaxMatches:      MaxMatchesCeiling,
		MaxContextLines: MaxContextLinesCeiling,
	}
}

// File is a resolved, decoded text file ready to be scanned.
type File struct {
	// Path is the absolute, cleaned path on disk.
	Path string `json:"path"`

	// DisplayPath is the path relative to the workspace root, slash separated.
	DisplayPath string `json:"displayPath"`

	// Size is the on-disk size in bytes.
	Size int64 `json:"size"`

	// Content is the UTF-8 text with any leading byte order mark removed.
	Content string `json:"-"`
}

// FileProvider resolves a path hint to UTF-8 text content.
// Implementations must be safe for concurrent use by multiple goroutines.
// All returned errors wrap ErrResourceUnavailable.
type FileProvider interface {
	Read(ctx context.Context, path string) (File, error)
}

// SearchOutcome bundles what a host needs to present a completed search.
type SearchOutcome struct {
	ID      string        `json:"id"`
	File    File          `json:"file"`
	Request SearchRequest `json:"request"`
	Result  SearchResult  `json:"result"`
}
