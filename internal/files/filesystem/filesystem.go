package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider is the read-only view of a filesystem used to load
// files for scanning.
type FileSystemProvider interface {
	// ReadFile reads the whole file at the given path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path, following symlinks.
	Stat(path string) (FileInfo, error)

	// EvalSymlinks returns the path with any symbolic links resolved.
	EvalSymlinks(path string) (string, error)
}
