package cli

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vvka-141/kwsearch/internal/json"
	"github.com/vvka-141/kwsearch/internal/linescan"
	"github.com/vvka-141/kwsearch/internal/logging"
	"github.com/vvka-141/kwsearch/internal/tui"
	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

var searchCmd = &cobra.Command{
	Use:   "search <file> <keyword>",
	Short: "Search a file for a keyword",
	Long: `Search prints every occurrence of <keyword> in <file> with its line
number, highlighting the occurrence. Matches never overlap and are reported
in file order, up to --max-matches.

Arguments:
  file       Path relative to the workspace root, or absolute within it
  keyword    Literal text to look for (no patterns)

Examples:
  # Case-insensitive search
  kwsearch search notes.md todo

  # Exact case with two lines of context
  kwsearch search src/main.go TODO -c -C 2

  # JSON result for scripts
  kwsearch search CHANGELOG.md fix --json -m 500

  # Browse the matches interactively
  kwsearch search server.log timeout -C 3 -i`,
	Args: RequireFileAndKeyword,
	RunE: runSearch,
}

type searchFlagValues struct {
	workspaceRoot string
	caseSensitive bool
	maxMatches    int
	contextLines  int
	jsonOutput    bool
	interactive   bool
}

var searchFlags searchFlagValues

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchFlags.workspaceRoot, "workspace-root", "r", "",
		"Directory files are resolved against and confined to\n"+
			"Precedence: --workspace-root > $KWSEARCH_WORKSPACE_ROOT > kwsearch.yaml > current directory")
	searchCmd.Flags().BoolVarP(&searchFlags.caseSensitive, "case-sensitive", "c", false,
		"Match case exactly")
	searchCmd.Flags().IntVarP(&searchFlags.maxMatches, "max-matches", "m", kwsearch.DefaultMaxMatches,
		fmt.Sprintf("Stop after this many matches (1-%d; default from limits.default_max_matches)", kwsearch.MaxMatchesCeiling))
	searchCmd.Flags().IntVarP(&searchFlags.contextLines, "context", "C", kwsearch.DefaultContextLines,
		fmt.Sprintf("Lines of context before and after each match (0-%d)", kwsearch.MaxContextLinesCeiling))
	searchCmd.Flags().BoolVar(&searchFlags.jsonOutput, "json", false,
		"Print the search result as JSON")
	searchCmd.Flags().BoolVarP(&searchFlags.interactive, "interactive", "i", false,
		"Browse the matches in a terminal UI")
}

func runSearch(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	if searchFlags.jsonOutput && searchFlags.interactive {
		return fmt.Errorf("%w: --json and --interactive cannot be combined", kwsearch.ErrInvalidArgument)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if searchFlags.workspaceRoot != "" {
		cfg.WorkspaceRoot = searchFlags.workspaceRoot
	}
	if err := finalizeConfig(cfg); err != nil {
		return err
	}

	svc, err := newSearchService(cfg, logger)
	if err != nil {
		return err
	}

	req := svc.NewRequest(args[0], args[1])
	req.CaseSensitive = searchFlags.caseSensitive
	if cmd.Flags().Changed("max-matches") {
		req.MaxMatches = searchFlags.maxMatches
	}
	if cmd.Flags().Changed("context") {
		req.ContextLines = searchFlags.contextLines
	}

	outcome, err := svc.Search(commandContext(cmd), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case searchFlags.jsonOutput:
		doc, err := json.MarshalIndent(outcome.Result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode search result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(doc))
		return err
	case searchFlags.interactive:
		if !tui.IsInteractive() {
			return fmt.Errorf("%w: --interactive requires a terminal", kwsearch.ErrInvalidArgument)
		}
		return tui.RunBrowser(outcome, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(out))
	default:
		return printOutcome(out, outcome, tui.IsTerminalWriter(out))
	}
}

// printOutcome writes the summary and one line per match. Context lines are
// marked with "-" instead of ":" and groups are separated by "--" when
// context was requested.
func printOutcome(w io.Writer, outcome *kwsearch.SearchOutcome, styled bool) error {
	var b strings.Builder

	summary := linescan.Summary(outcome.Result, outcome.Request.Keyword, outcome.File.DisplayPath, outcome.Request.CaseSensitive)
	if styled {
		summary = tui.TitleStyle.Render(summary)
	}
	b.WriteString(summary)
	b.WriteString("\n")

	withContext := outcome.Request.ContextLines > 0
	for i, m := range outcome.Result.Matches {
		if withContext && i > 0 {
			b.WriteString("--\n")
		}
		first := m.LineNumber - len(m.ContextBefore)
		for j, line := range m.ContextBefore {
			b.WriteString(contextLine(first+j, line, styled))
		}
		if styled {
			fmt.Fprintf(&b, "%s %s\n",
				tui.LocationStyle.Render(fmt.Sprintf("%d:%d:", m.LineNumber, m.Column)),
				tui.RenderMatchLine(m, outcome.Request.Keyword))
		} else {
			b.WriteString(linescan.Highlight(m, outcome.Request.Keyword))
			b.WriteString("\n")
		}
		for j, line := range m.ContextAfter {
			b.WriteString(contextLine(m.LineNumber+1+j, line, styled))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func contextLine(n int, text string, styled bool) string {
	line := fmt.Sprintf("%d- %s", n, text)
	if styled {
		line = tui.ContextStyle.Render(line)
	}
	return line + "\n"
}
