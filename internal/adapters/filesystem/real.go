// Package filesystem provides the os-backed ports.FileSystem.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// RealFileSystem implements ports.FileSystem on the local disk.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// ReadFile reads the contents of a file, expanding a leading ~.
func (fs *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(ports.ExpandPath(path))
}

// WriteFile replaces a file atomically: the data goes to a sibling temp file
// that is renamed over the target, so a crash never leaves a truncated
// progress file behind.
func (fs *RealFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	path = ports.ExpandPath(path)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	return os.Rename(tmpName, path)
}

// MkdirAll creates a directory and all parents.
func (fs *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(ports.ExpandPath(path), perm)
}

// Exists checks if a path exists.
func (fs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(ports.ExpandPath(path))
	return err == nil
}

var _ ports.FileSystem = (*RealFileSystem)(nil)
