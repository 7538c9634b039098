package tour

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/tourguide/internal/testutil/mocks"
)

func TestNewProgress(t *testing.T) {
	p := NewProgress()

	assert.NotNil(t, p.Tours)
	assert.Empty(t, p.Tours)
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestProgress_StartRun(t *testing.T) {
	p := NewProgress()

	p.StartRun("intro", "run-1", 4)

	tp := p.Get("intro")
	require.NotNil(t, tp)
	assert.Equal(t, "intro", tp.ID)
	assert.Equal(t, 4, tp.TotalSteps)
	assert.Equal(t, 1, tp.Runs)
	assert.Empty(t, tp.SeenSteps)
	assert.False(t, tp.StartedAt.IsZero())
	assert.True(t, tp.CompletedAt.IsZero())
}

func TestProgress_StartRun_SameInstance(t *testing.T) {
	p := NewProgress()
	p.StartRun("intro", "run-1", 4)
	started := p.Get("intro").StartedAt

	p.StartRun("intro", "run-1", 4)
	assert.Equal(t, 1, p.Get("intro").Runs)

	p.StartRun("intro", "run-2", 0)
	assert.Equal(t, 2, p.Get("intro").Runs)
	assert.Equal(t, 4, p.Get("intro").TotalSteps, "zero total keeps the known count")
	assert.Equal(t, started, p.Get("intro").StartedAt)
}

func TestProgress_MarkSeen(t *testing.T) {
	p := NewProgress()
	p.StartRun("intro", "run-1", 4)

	p.MarkSeen("intro", 2)
	p.MarkSeen("intro", 0)
	p.MarkSeen("intro", 2)
	p.MarkSeen("intro", -1)
	p.MarkSeen("unknown", 1)

	assert.Equal(t, []int{0, 2}, p.Get("intro").SeenSteps)
	assert.Equal(t, 50, p.SeenPercent("intro"))
	assert.Nil(t, p.Get("unknown"))
}

func TestProgress_SeenPercent(t *testing.T) {
	p := NewProgress()
	assert.Zero(t, p.SeenPercent("intro"))

	p.StartRun("intro", "", 0)
	assert.Zero(t, p.SeenPercent("intro"), "unknown total")

	p.StartRun("tiny", "", 1)
	p.MarkSeen("tiny", 0)
	p.MarkSeen("tiny", 3)
	assert.Equal(t, 100, p.SeenPercent("tiny"), "capped at the total")
}

func TestProgress_CompleteAndDismiss(t *testing.T) {
	p := NewProgress()
	p.Complete("intro")
	assert.False(t, p.IsCompleted("intro"), "unknown tours are ignored")

	p.StartRun("intro", "run-1", 3)
	p.Dismiss("intro", 1)
	tp := p.Get("intro")
	assert.False(t, tp.DismissedAt.IsZero())
	assert.Equal(t, 1, tp.DismissedStep)
	assert.False(t, p.IsCompleted("intro"))

	p.Complete("intro")
	assert.True(t, p.IsCompleted("intro"))
}

func TestProgress_IDsForgetReset(t *testing.T) {
	p := NewProgress()
	p.StartRun("zeta", "", 1)
	p.StartRun("alpha", "", 1)
	assert.Equal(t, []string{"alpha", "zeta"}, p.IDs())

	p.Forget("zeta")
	assert.Equal(t, []string{"alpha"}, p.IDs())

	p.Reset()
	assert.Empty(t, p.IDs())
}

func TestProgressStore_SaveAndLoad(t *testing.T) {
	fs := mocks.NewFileSystem()
	store := NewProgressStore(fs, "/home/user/.tourguide/progress.json")

	p := NewProgress()
	p.StartRun("intro", "run-1", 3)
	p.MarkSeen("intro", 0)
	p.MarkSeen("intro", 1)
	p.Complete("intro")
	require.NoError(t, store.Save(p))

	assert.True(t, fs.Exists("/home/user/.tourguide"))

	loaded, err := store.Load()
	require.NoError(t, err)
	tp := loaded.Get("intro")
	require.NotNil(t, tp)
	assert.Equal(t, []int{0, 1}, tp.SeenSteps)
	assert.Equal(t, "run-1", tp.LastInstance)
	assert.True(t, loaded.IsCompleted("intro"))
}

func TestProgressStore_Load_FileNotExists(t *testing.T) {
	store := NewProgressStore(mocks.NewFileSystem(), "/nowhere/progress.json")

	p, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, p.Tours)
}

func TestProgressStore_Load_InvalidJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("/p.json", "{not json")

	_, err := NewProgressStore(fs, "/p.json").Load()
	assert.Error(t, err)
}

func TestProgressStore_Load_NullTours(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("/p.json", `{"tours":null}`)

	p, err := NewProgressStore(fs, "/p.json").Load()
	require.NoError(t, err)
	assert.NotNil(t, p.Tours)
}

func TestProgressStore_SaveError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteErr = errors.New("read-only")

	err := NewProgressStore(fs, "/p.json").Save(NewProgress())
	assert.EqualError(t, err, "read-only")
}

func TestNewProgressStore_DefaultPath(t *testing.T) {
	store := NewProgressStore(mocks.NewFileSystem(), "")
	assert.Contains(t, store.Path(), ".tourguide")
	assert.NotContains(t, store.Path(), "~")
}
