// Package mcpserver exposes the keyword search as an MCP tool.
//
// The tool host is a thin adapter: it coerces the loosely typed tool
// arguments into a kwsearch.SearchRequest, hands it to a Searcher, and
// renders the outcome as text content (a summary line, the JSON result, and
// the highlighted matches). Search failures are reported as tool errors so
// the calling model sees the reason; only unexpected failures surface as
// protocol errors.
package mcpserver
