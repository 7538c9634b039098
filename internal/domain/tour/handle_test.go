package tour

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_Unbound(t *testing.T) {
	h := &Handle{}
	assert.False(t, h.Bound())
	assert.Equal(t, PhaseInactive, h.Snapshot().Phase)

	h.NextStep()
	h.PrevStep()
	h.GoToStep(1)
	h.Dismiss()
	h.Complete()
	h.Start()
}

func TestHandle_MirrorsController(t *testing.T) {
	h := &Handle{}
	c := newTestController(t, Options{Handle: h})
	c.Render(Frame{Children: steps("#a", "#b", "#c")})

	h.Start()
	assert.Equal(t, c.Snapshot(), h.Snapshot())

	h.NextStep()
	h.NextStep()
	h.PrevStep()
	assert.Equal(t, 1, h.Snapshot().CurrentStep)

	h.GoToStep(2)
	assert.Equal(t, 2, c.Snapshot().CurrentStep)

	h.Dismiss()
	assert.False(t, c.Snapshot().IsActive)

	h.Complete()
	assert.True(t, c.Snapshot().IsCompleted)
}

func TestHandle_RebindToNewController(t *testing.T) {
	h := &Handle{}
	old, err := New(Options{ID: "old", Handle: h})
	require.NoError(t, err)
	newTestController(t, Options{ID: "fresh", Handle: h})

	old.Unmount()
	assert.True(t, h.Bound(), "unmounting a stale controller keeps the new binding")
	assert.Equal(t, "fresh", h.Snapshot().TourID)
}

func TestHandle_Concurrent(t *testing.T) {
	h := &Handle{}
	c := newTestController(t, Options{DefaultIsActive: true, Handle: h})
	c.Render(Frame{Children: steps("#a", "#b", "#c", "#d")})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				h.NextStep()
			case 1:
				h.PrevStep()
			default:
				_ = h.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	snap := h.Snapshot()
	assert.GreaterOrEqual(t, snap.CurrentStep, 0)
	assert.Less(t, snap.CurrentStep, 4)
}
