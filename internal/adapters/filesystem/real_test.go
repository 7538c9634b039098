package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealFileSystem_WriteAndRead(t *testing.T) {
	fs := NewRealFileSystem()
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")

	require.NoError(t, fs.WriteFile(path, []byte(`{"tours":{}}`), 0o600))
	require.NoError(t, fs.WriteFile(path, []byte(`{"tours":{"a":{}}}`), 0o600))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"tours":{"a":{}}}`, string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestRealFileSystem_WriteFile_MissingDir(t *testing.T) {
	fs := NewRealFileSystem()
	err := fs.WriteFile(filepath.Join(t.TempDir(), "missing", "x.json"), []byte("x"), 0o644)
	assert.Error(t, err)
}

func TestRealFileSystem_ReadFile_NotFound(t *testing.T) {
	fs := NewRealFileSystem()
	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRealFileSystem_MkdirAllAndExists(t *testing.T) {
	fs := NewRealFileSystem()
	dir := filepath.Join(t.TempDir(), "a", "b")

	assert.False(t, fs.Exists(dir))
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	assert.True(t, fs.Exists(dir))
}
