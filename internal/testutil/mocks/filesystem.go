// Package mocks provides test doubles for the ports interfaces.
package mocks

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// FileSystem is a thread-safe in-memory ports.FileSystem.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	// WriteErr, when set, is returned by every WriteFile call.
	WriteErr error
}

var _ ports.FileSystem = (*FileSystem)(nil)

// NewFileSystem creates an empty FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddFile adds a file.
func (fs *FileSystem) AddFile(path, content string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[path] = []byte(content)
}

// ReadFile reads a file.
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if content, ok := fs.files[path]; ok {
		return content, nil
	}
	return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
}

// WriteFile writes a file.
func (fs *FileSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.WriteErr != nil {
		return fs.WriteErr
	}
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

// MkdirAll records a directory.
func (fs *FileSystem) MkdirAll(path string, _ os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.dirs[path] = true
	return nil
}

// Exists reports whether a file or directory was recorded.
func (fs *FileSystem) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	_, isFile := fs.files[path]
	return isFile || fs.dirs[path]
}

// Paths returns every file path in order.
func (fs *FileSystem) Paths() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make([]string, 0, len(fs.files))
	for p := range fs.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
