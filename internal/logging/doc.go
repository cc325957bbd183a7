// Package logging provides concrete implementations of the kwsearch.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to an io.Writer (stderr by default)
//   - NullLogger: Discards all messages (useful for testing)
//
// The MCP stdio transport owns stdout, so loggers never write there by default.
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
