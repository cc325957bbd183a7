package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"

	"github.com/vvka-141/kwsearch/internal/json"
	"github.com/vvka-141/kwsearch/internal/linescan"
	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

// Argument names of the search_keyword tool.
const (
	ArgFilePath      = "file_path"
	ArgKeyword       = "keyword"
	ArgCaseSensitive = "case_sensitive"
	ArgMaxMatches    = "max_matches"
	ArgContextLines  = "context_lines"
)

const toolDescription = "Search for occurrences of a keyword in a UTF-8 text file. " +
	"Accepts relative paths and limits results to the configured workspace. " +
	"Returns each match with its 1-based line and column and optional surrounding context lines."

// Searcher is the operation the tool forwards to.
type Searcher interface {
	NewRequest(path, keyword string) kwsearch.SearchRequest
	Search(ctx context.Context, req kwsearch.SearchRequest) (*kwsearch.SearchOutcome, error)
	Limits() kwsearch.Limits
}

// NewTool declares the search_keyword tool and its input schema.
func NewTool(limits kwsearch.Limits, defaultMaxMatches int) mcp.Tool {
	return mcp.NewTool(kwsearch.ToolName,
		mcp.WithDescription(toolDescription),
		mcp.WithString(ArgFilePath,
			mcp.Required(),
			mcp.Description("Path of the file to search, relative to the workspace root or absolute within it"),
		),
		mcp.WithString(ArgKeyword,
			mcp.Required(),
			mcp.Description("Text to look for; matched literally"),
		),
		mcp.WithBoolean(ArgCaseSensitive,
			mcp.DefaultBool(false),
			mcp.Description("Match case exactly"),
		),
		mcp.WithNumber(ArgMaxMatches,
			mcp.DefaultNumber(float64(defaultMaxMatches)),
			mcp.Min(1),
			mcp.Max(float64(limits.MaxMatches)),
			mcp.Description("Stop after this many matches"),
		),
		mcp.WithNumber(ArgContextLines,
			mcp.DefaultNumber(float64(kwsearch.DefaultContextLines)),
			mcp.Min(0),
			mcp.Max(float64(limits.MaxContextLines)),
			mcp.Description("Lines of context to include before and after each match"),
		),
	)
}

// ParseArguments overlays the supplied tool arguments onto base.
// Absent arguments keep base's value; present ones must coerce cleanly.
func ParseArguments(args map[string]any, base kwsearch.SearchRequest) (kwsearch.SearchRequest, error) {
	req := base

	if v, ok := args[ArgFilePath]; ok && v != nil {
		s, err := cast.ToStringE(v)
		if err != nil {
			return req, fmt.Errorf("%w: %s must be a string", kwsearch.ErrInvalidArgument, ArgFilePath)
		}
		req.FilePath = s
	}
	if v, ok := args[ArgKeyword]; ok && v != nil {
		s, err := cast.ToStringE(v)
		if err != nil {
			return req, fmt.Errorf("%w: %s must be a string", kwsearch.ErrInvalidArgument, ArgKeyword)
		}
		req.Keyword = s
	}
	if v, ok := args[ArgCaseSensitive]; ok && v != nil {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return req, fmt.Errorf("%w: %s must be a boolean", kwsearch.ErrInvalidArgument, ArgCaseSensitive)
		}
		req.CaseSensitive = b
	}
	if v, ok := args[ArgMaxMatches]; ok && v != nil {
		n, err := toInt(v)
		if err != nil {
			return req, fmt.Errorf("%w: %s %v", kwsearch.ErrInvalidArgument, ArgMaxMatches, err)
		}
		req.MaxMatches = n
	}
	if v, ok := args[ArgContextLines]; ok && v != nil {
		n, err := toInt(v)
		if err != nil {
			return req, fmt.Errorf("%w: %s %v", kwsearch.ErrInvalidArgument, ArgContextLines, err)
		}
		req.ContextLines = n
	}
	return req, nil
}

// toInt accepts integers, integral floats (JSON numbers decode as float64),
// and numeric strings.
func toInt(v any) (int, error) {
	switch f := v.(type) {
	case bool:
		return 0, fmt.Errorf("must be an integer, got %v", f)
	case float64:
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("must be an integer, got %v", f)
		}
	case float32:
		if float64(f) != math.Trunc(float64(f)) {
			return 0, fmt.Errorf("must be an integer, got %v", f)
		}
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("must be an integer, got %v", v)
	}
	return n, nil
}

// Handler serves search_keyword calls.
type Handler struct {
	searcher Searcher
	logger   kwsearch.Logger
}

// NewHandler creates a Handler. Panics on nil dependencies.
func NewHandler(searcher Searcher, logger kwsearch.Logger) *Handler {
	if searcher == nil {
		panic("searcher cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Handler{searcher: searcher, logger: logger}
}

// Handle implements server.ToolHandlerFunc.
func (h *Handler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	base := h.searcher.NewRequest("", "")

	req, err := ParseArguments(args, base)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome, err := h.searcher.Search(ctx, req)
	if err != nil {
		if errors.Is(err, kwsearch.ErrInvalidArgument) || errors.Is(err, kwsearch.ErrResourceUnavailable) {
			h.logger.Verbose("%s: %v", kwsearch.ToolName, err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		h.logger.Error("%s failed: %v", kwsearch.ToolName, err)
		return nil, err
	}

	return RenderOutcome(outcome)
}

// RenderOutcome converts a completed search into tool result content: the
// summary line, the JSON document, and, when there are matches, the
// highlighted match lines.
func RenderOutcome(outcome *kwsearch.SearchOutcome) (*mcp.CallToolResult, error) {
	summary := linescan.Summary(outcome.Result, outcome.Request.Keyword, outcome.File.DisplayPath, outcome.Request.CaseSensitive)

	doc, err := json.MarshalIndent(outcome.Result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode search result: %w", err)
	}

	content := []mcp.Content{
		mcp.NewTextContent(summary),
		mcp.NewTextContent(string(doc)),
	}
	if outcome.Result.TotalMatches > 0 {
		content = append(content, mcp.NewTextContent(linescan.HighlightAll(outcome.Result, outcome.Request.Keyword)))
	}
	return &mcp.CallToolResult{Content: content}, nil
}
