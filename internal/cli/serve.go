package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/kwsearch/internal/logging"
	"github.com/vvka-141/kwsearch/internal/mcpserver"
	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the search_keyword MCP server",
	Long: `Serve exposes the search_keyword tool to MCP clients.

By default the server speaks MCP over stdio: requests on stdin, responses on
stdout, logs on stderr. With --http it serves the streamable HTTP transport
on the given address instead (endpoint /mcp).

Only files inside the workspace root can be searched.
Precedence: --workspace-root > $KWSEARCH_WORKSPACE_ROOT > kwsearch.yaml > current directory

Examples:
  # Register with an MCP client as a stdio server
  kwsearch serve --workspace-root ~/projects/site

  # Serve over HTTP
  kwsearch serve --http 127.0.0.1:8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

type serveFlagValues struct {
	workspaceRoot string
	httpAddr      string
}

var serveFlags serveFlagValues

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.workspaceRoot, "workspace-root", "r", "",
		"Directory files are resolved against and confined to")
	serveCmd.Flags().StringVar(&serveFlags.httpAddr, "http", "",
		"Serve streamable HTTP on this address instead of stdio (e.g. 127.0.0.1:8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if serveFlags.workspaceRoot != "" {
		cfg.WorkspaceRoot = serveFlags.workspaceRoot
	}
	if serveFlags.httpAddr != "" {
		cfg.Server.HTTPAddr = serveFlags.httpAddr
	}
	if err := finalizeConfig(cfg); err != nil {
		return err
	}

	svc, err := newSearchService(cfg, logger)
	if err != nil {
		return err
	}

	v, _, _ := resolveVersionInfo()
	s := mcpserver.NewServer(svc, mcpserver.Options{
		Name:              cfg.Server.Name,
		Version:           v,
		DefaultMaxMatches: cfg.Limits.DefaultMaxMatches,
	}, logger)

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.HTTPAddr != "" {
		return mcpserver.ServeHTTP(ctx, s, cfg.Server.HTTPAddr, logger)
	}
	logger.Verbose("Serving %s over stdio", kwsearch.ToolName)
	return mcpserver.ServeStdio(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
}
