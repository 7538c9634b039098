package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/testutil"
	"github.com/felixgeelhaar/tourguide/internal/testutil/mocks"
)

const progressPath = "/home/test/.tourguide/progress.json"

func newTestApp(t *testing.T) (*Tourguide, *mocks.FileSystem, *bytes.Buffer) {
	t.Helper()
	fs := mocks.NewFileSystem()
	var out bytes.Buffer
	return New(&out, WithFileSystem(fs), WithProgressPath(progressPath)), fs, &out
}

func parseDef(t *testing.T, yaml string) *config.Definition {
	t.Helper()
	def, err := config.Parse([]byte(yaml), config.FormatYAML)
	require.NoError(t, err)
	return def
}

func threeSteps() *testutil.TourBuilder {
	return testutil.NewTourBuilder("intro").
		WithSpotlight().
		WithDialog("#a", "A", "").
		WithDialog("#b", "B", "").
		WithDialog("#c", "C", "").
		WithRegion("a", 0, 0, 5, 5).
		WithRegion("b", 6, 0, 5, 5).
		WithRegion("c", 12, 0, 5, 5)
}

func TestSession_RegistersStepsOnMount(t *testing.T) {
	a, _, _ := newTestApp(t)
	def := parseDef(t, threeSteps().ToYAML())

	s, err := a.Open(def, OpenOptions{SessionOptions: SessionOptions{Document: Screen(def)}})
	require.NoError(t, err)
	defer s.Unmount()

	assert.Equal(t, map[int]string{0: "#a", 1: "#b", 2: "#c"}, s.Controller().Registry())

	snap := s.Snapshot()
	assert.True(t, snap.IsActive)
	assert.Equal(t, 3, snap.TotalSteps)
	require.True(t, snap.HasTarget())
	assert.Equal(t, "#a", snap.Target.Locator())

	d, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "A", d.Title)
}

func TestSession_ReloadUnregistersRemovedSteps(t *testing.T) {
	a, _, _ := newTestApp(t)
	def := parseDef(t, threeSteps().ToYAML())
	s, err := a.Open(def, OpenOptions{SessionOptions: SessionOptions{Document: Screen(def)}})
	require.NoError(t, err)
	defer s.Unmount()

	s.Handle().GoToStep(2)

	shorter := parseDef(t, testutil.NewTourBuilder("intro").
		WithDialog("#a", "A", "").
		WithDialog("#z", "Z", "").
		ToYAML())
	s.Reload(shorter)

	assert.Equal(t, map[int]string{0: "#a", 1: "#z"}, s.Controller().Registry())
	snap := s.Snapshot()
	assert.Equal(t, 2, snap.CurrentStep, "the cursor is not clamped")
	assert.Nil(t, snap.Target)
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Same(t, shorter, s.Definition())
}

func TestSession_RecordsProgress(t *testing.T) {
	a, fs, _ := newTestApp(t)
	def := parseDef(t, threeSteps().ToYAML())

	completed := 0
	s, err := a.Open(def, OpenOptions{SessionOptions: SessionOptions{OnComplete: func() { completed++ }}})
	require.NoError(t, err)

	h := s.Handle()
	h.NextStep()
	h.NextStep()
	h.NextStep()
	s.Unmount()

	assert.Equal(t, 1, completed)
	require.True(t, fs.Exists(progressPath))

	p, err := a.Progress()
	require.NoError(t, err)
	assert.True(t, p.IsCompleted("intro"))
	assert.Equal(t, []int{0, 1, 2}, p.Get("intro").SeenSteps)
	assert.Equal(t, 1, p.Get("intro").Runs)
	assert.NotEmpty(t, p.Get("intro").LastInstance)
}

func TestSession_RecordsDismiss(t *testing.T) {
	a, _, _ := newTestApp(t)
	def := parseDef(t, threeSteps().ToYAML())

	var dismissedAt []int
	s, err := a.Open(def, OpenOptions{SessionOptions: SessionOptions{OnDismiss: func(step int) {
		dismissedAt = append(dismissedAt, step)
	}}})
	require.NoError(t, err)
	s.Handle().NextStep()
	s.Handle().Dismiss()
	s.Unmount()

	assert.Equal(t, []int{1}, dismissedAt)
	p, err := a.Progress()
	require.NoError(t, err)
	assert.Equal(t, 1, p.Get("intro").DismissedStep)
	assert.False(t, p.IsCompleted("intro"))
}

func TestSession_InactiveUntilStarted(t *testing.T) {
	a, _, _ := newTestApp(t)
	def := parseDef(t, threeSteps().Inactive().WithInitialStep(1).ToYAML())

	s, err := a.Open(def, OpenOptions{})
	require.NoError(t, err)
	defer s.Unmount()

	assert.False(t, s.Snapshot().IsActive)
	p, _ := a.Progress()
	assert.Nil(t, p.Get("intro"), "nothing is recorded before the tour is shown")

	s.Handle().Start()
	assert.True(t, s.Snapshot().IsActive)
	assert.Equal(t, 1, s.Snapshot().CurrentStep)
	p, _ = a.Progress()
	require.NotNil(t, p.Get("intro"))
	assert.Equal(t, []int{1}, p.Get("intro").SeenSteps)
}

func TestSession_InitialStepOverride(t *testing.T) {
	a, _, _ := newTestApp(t)
	def := parseDef(t, threeSteps().ToYAML())
	step := 2

	s, err := a.Open(def, OpenOptions{SessionOptions: SessionOptions{InitialStep: &step}})
	require.NoError(t, err)
	defer s.Unmount()
	assert.Equal(t, 2, s.Snapshot().CurrentStep)
}

func TestSession_SaveFailureIsTolerated(t *testing.T) {
	a, fs, _ := newTestApp(t)
	fs.WriteErr = assert.AnError
	def := parseDef(t, threeSteps().ToYAML())

	s, err := a.Open(def, OpenOptions{})
	require.NoError(t, err)
	s.Handle().NextStep()
	s.Unmount()
	assert.False(t, fs.Exists(progressPath))
}
