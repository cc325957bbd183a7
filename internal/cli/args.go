package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireFileAndKeyword validates that exactly the <file> and <keyword>
// arguments are provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireFileAndKeyword(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		missing := "<file> <keyword>"
		if len(args) == 1 {
			missing = "<keyword>"
		}
		return fmt.Errorf(`missing required argument: %s

Usage: %s

Example:
  %s ./README.md TODO -C 2`, missing, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
	}
	return nil
}
