package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kwsearch",
	Short: "Keyword search over workspace files, as a CLI or an MCP tool",
	Long: `kwsearch finds every occurrence of a keyword in a UTF-8 text file and
reports the 1-based line and column of each match, with optional context
lines around it.

The same search is exposed to MCP clients as the search_keyword tool
(kwsearch serve) and to people at a terminal (kwsearch search).
Files are only read from inside the configured workspace root.

Exit Codes:
  0  - Success (including searches with no matches)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid search parameters or configuration
  11 - File missing, unreadable, not UTF-8, or outside the workspace root`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "",
		"Path to a kwsearch.yaml file (default: ./kwsearch.yaml when present)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return ""
	}
	return path
}
