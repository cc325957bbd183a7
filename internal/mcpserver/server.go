package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/vvka-141/kwsearch/internal/logging"
	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

const instructions = "Expose the `search_keyword` tool to look for keyword occurrences " +
	"inside files that live within the configured workspace root."

const shutdownTimeout = 5 * time.Second

// Options configures the MCP server identity and tool defaults.
type Options struct {
	Name              string
	Version           string
	DefaultMaxMatches int
}

// NewServer builds an MCP server exposing search_keyword backed by searcher.
func NewServer(searcher Searcher, opts Options, logger kwsearch.Logger) *server.MCPServer {
	if opts.Name == "" {
		opts.Name = kwsearch.DefaultServerName
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.DefaultMaxMatches <= 0 {
		opts.DefaultMaxMatches = kwsearch.DefaultMaxMatches
	}

	s := server.NewMCPServer(opts.Name, opts.Version,
		server.WithInstructions(instructions),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.AddTool(NewTool(searcher.Limits(), opts.DefaultMaxMatches), NewHandler(searcher, logger).Handle)
	return s
}

// ServeStdio serves s over in/out until ctx is cancelled or in reaches EOF.
// Transport errors are reported through logger; out carries protocol
// frames only.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, logger kwsearch.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(logging.StdLogger(logger))

	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

// ServeHTTP serves s as a streamable HTTP endpoint on addr until ctx is
// cancelled, then shuts down gracefully.
func ServeHTTP(ctx context.Context, s *server.MCPServer, addr string, logger kwsearch.Logger) error {
	httpSrv := server.NewStreamableHTTPServer(s)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.Start(addr)
	}()
	logger.Info("Serving %s over streamable HTTP on %s/mcp", kwsearch.ToolName, addr)

	select {
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	}
}
