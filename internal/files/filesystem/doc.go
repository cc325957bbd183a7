// Package filesystem provides the filesystem abstraction the file provider reads through.
//
// Key interface:
//   - FileSystemProvider: stat, read, and symlink resolution for a single path
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Missing paths are reported with errors that satisfy errors.Is(err, fs.ErrNotExist)
// in both implementations.
package filesystem
