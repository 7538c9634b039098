package filewatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) *Watcher {
	t.Helper()

	w, err := New(path, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		_ = w.Close()
	})
	return w
}

func waitChange(t *testing.T, w *Watcher) bool {
	t.Helper()
	select {
	case <-w.Changes():
		return true
	case <-time.After(2 * time.Second):
		return false
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: a\n"), 0o644))

	w := startWatcher(t, path)
	assert.Equal(t, path, w.Path())

	require.NoError(t, os.WriteFile(path, []byte("id: b\n"), 0o644))
	assert.True(t, waitChange(t, w))
}

func TestWatcher_FollowsRenameReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: a\n"), 0o644))

	w := startWatcher(t, path)

	tmp := filepath.Join(dir, ".tour.yaml.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("id: c\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))
	assert.True(t, waitChange(t, w))
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: a\n"), 0o644))

	w := startWatcher(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	select {
	case <-w.Changes():
		t.Fatal("unexpected change for a sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "tour.yaml"))
	assert.Error(t, err)
}
