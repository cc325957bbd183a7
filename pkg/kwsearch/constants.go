package kwsearch

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess             = 0  // Search or server run completed successfully
	ExitGeneralError        = 1  // Unknown or unclassified error
	ExitUsageError          = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic               = 3  // Internal panic (unexpected crash)
	ExitInvalidArgument     = 10 // Invalid search parameters or configuration
	ExitResourceUnavailable = 11 // File missing, unreadable, or outside the workspace
)

const (
	// ToolName is the name the search operation is registered under by tool hosts.
	ToolName = "search_keyword"

	// DefaultServerName is the implementation name announced to MCP clients.
	DefaultServerName = "keyword-search-server"

	// DefaultMaxMatches is applied when a request leaves MaxMatches unset.
	DefaultMaxMatches = 50

	// MaxMatchesCeiling is the hard upper bound for MaxMatches.
	MaxMatchesCeiling = 500

	// DefaultContextLines is applied when a request leaves ContextLines unset.
	DefaultContextLines = 0

	// MaxContextLinesCeiling is the hard upper bound for ContextLines.
	MaxContextLinesCeiling = 10

	// DefaultMaxFileBytes caps the size of a file the provider will load.
	DefaultMaxFileBytes int64 = 32 << 20

	// WorkspaceRootEnv names the environment variable that overrides the workspace root.
	WorkspaceRootEnv = "KWSEARCH_WORKSPACE_ROOT"
)
