// Package workspace resolves path hints against a workspace root and loads
// them as UTF-8 text.
//
// Relative paths are joined onto the root; absolute paths are accepted only
// when they (and, after symlink resolution, their targets) stay inside it.
// Every failure wraps kwsearch.ErrResourceUnavailable so hosts can report it
// as a category distinct from invalid search parameters.
package workspace
