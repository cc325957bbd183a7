package workspace

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/kwsearch/internal/files/filesystem"
	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

var (
	// ErrOutsideRoot indicates the path escapes the workspace root.
	ErrOutsideRoot = fmt.Errorf("%w: path outside workspace root", kwsearch.ErrResourceUnavailable)

	// ErrFileNotFound indicates nothing exists at the resolved path.
	ErrFileNotFound = fmt.Errorf("%w: file not found", kwsearch.ErrResourceUnavailable)

	// ErrNotRegularFile indicates the path names a directory or special file.
	ErrNotRegularFile = fmt.Errorf("%w: not a regular file", kwsearch.ErrResourceUnavailable)

	// ErrFileTooLarge indicates the file exceeds the configured size limit.
	ErrFileTooLarge = fmt.Errorf("%w: file too large", kwsearch.ErrResourceUnavailable)

	// ErrInvalidEncoding indicates the file content is not valid UTF-8.
	ErrInvalidEncoding = fmt.Errorf("%w: invalid encoding", kwsearch.ErrResourceUnavailable)
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Provider implements kwsearch.FileProvider for files under a single root.
// Provider is safe for concurrent use as long as the underlying
// filesystem provider is.
type Provider struct {
	root     string
	fsys     filesystem.FileSystemProvider
	maxBytes int64
}

var _ kwsearch.FileProvider = (*Provider)(nil)

// NewProvider creates a provider over the OS filesystem.
// maxBytes <= 0 selects kwsearch.DefaultMaxFileBytes.
func NewProvider(root string, maxBytes int64) (*Provider, error) {
	return NewProviderWithFS(root, filesystem.NewOSFileSystem(), maxBytes)
}

// NewProviderWithFS creates a provider with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsys is nil.
func NewProviderWithFS(root string, fsys filesystem.FileSystemProvider, maxBytes int64) (*Provider, error) {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if maxBytes <= 0 {
		maxBytes = kwsearch.DefaultMaxFileBytes
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: workspace root %q: %v", kwsearch.ErrInvalidConfig, root, err)
	}
	info, err := fsys.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: workspace root %q: %v", kwsearch.ErrInvalidConfig, absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: workspace root %q is not a directory", kwsearch.ErrInvalidConfig, absRoot)
	}
	realRoot, err := fsys.EvalSymlinks(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: workspace root %q: %v", kwsearch.ErrInvalidConfig, absRoot, err)
	}

	return &Provider{
		root:     filepath.Clean(realRoot),
		fsys:     fsys,
		maxBytes: maxBytes,
	}, nil
}

// Root returns the absolute, symlink-resolved workspace root.
func (p *Provider) Root() string {
	return p.root
}

// Resolve maps a path hint to an absolute path inside the root.
// The file itself need not exist.
func (p *Provider) Resolve(path string) (string, error) {
	candidate := filepath.FromSlash(path)
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(p.root, candidate)
	}
	candidate = filepath.Clean(candidate)

	if !p.contains(candidate) {
		return "", fmt.Errorf("%w: %s is outside the allowed workspace root %s", ErrOutsideRoot, candidate, p.root)
	}
	return candidate, nil
}

// Read resolves path, verifies it names a regular UTF-8 file within the
// size limit, and returns its content.
func (p *Provider) Read(ctx context.Context, path string) (kwsearch.File, error) {
	candidate, err := p.Resolve(path)
	if err != nil {
		return kwsearch.File{}, err
	}

	resolved, err := p.fsys.EvalSymlinks(candidate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return kwsearch.File{}, fmt.Errorf("%w: %s", ErrFileNotFound, candidate)
		}
		return kwsearch.File{}, fmt.Errorf("%w: %s: %v", kwsearch.ErrResourceUnavailable, candidate, err)
	}
	resolved = filepath.Clean(resolved)
	if !p.contains(resolved) {
		return kwsearch.File{}, fmt.Errorf("%w: %s is outside the allowed workspace root %s", ErrOutsideRoot, resolved, p.root)
	}

	info, err := p.fsys.Stat(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return kwsearch.File{}, fmt.Errorf("%w: %s", ErrFileNotFound, resolved)
		}
		return kwsearch.File{}, fmt.Errorf("%w: %s: %v", kwsearch.ErrResourceUnavailable, resolved, err)
	}
	if !info.Mode().IsRegular() {
		return kwsearch.File{}, fmt.Errorf("%w: expected a file path but received: %s", ErrNotRegularFile, resolved)
	}
	if info.Size() > p.maxBytes {
		return kwsearch.File{}, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, resolved, info.Size(), p.maxBytes)
	}

	if err := ctx.Err(); err != nil {
		return kwsearch.File{}, err
	}

	data, err := p.fsys.ReadFile(resolved)
	if err != nil {
		return kwsearch.File{}, fmt.Errorf("%w: failed to read %s: %v", kwsearch.ErrResourceUnavailable, resolved, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return kwsearch.File{}, fmt.Errorf("%w: could not decode %s using UTF-8, provide a UTF-8 encoded text file", ErrInvalidEncoding, resolved)
	}

	return kwsearch.File{
		Path:        resolved,
		DisplayPath: p.display(resolved),
		Size:        info.Size(),
		Content:     string(data),
	}, nil
}

func (p *Provider) contains(path string) bool {
	rel, err := filepath.Rel(p.root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (p *Provider) display(path string) string {
	rel, err := filepath.Rel(p.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
