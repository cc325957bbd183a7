package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "notes.txt")
	expected := "alpha\nbeta MCP here\n"
	if err := os.WriteFile(filePath, []byte(expected), 0644); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()

	data, err := fsys.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_ReadFile_Nonexistent(t *testing.T) {
	fsys := NewOSFileSystem()

	_, err := fsys.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(filePath, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()

	info, err := fsys.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.Mode().IsRegular() {
		t.Error("Stat() should report a regular file")
	}
	if info.Size() != 5 {
		t.Errorf("Stat().Size() = %d, want 5", info.Size())
	}
}

func TestOSFileSystem_Stat_Directory(t *testing.T) {
	fsys := NewOSFileSystem()

	info, err := fsys.Stat(t.TempDir())
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat() should report a directory")
	}
}

func TestOSFileSystem_EvalSymlinks(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link.txt")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	resolved, err := NewOSFileSystem().EvalSymlinks(link)
	if err != nil {
		t.Fatalf("EvalSymlinks() error = %v", err)
	}
	if resolved != target {
		t.Errorf("EvalSymlinks() = %q, want %q", resolved, target)
	}
}
