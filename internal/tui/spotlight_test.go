package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
	"github.com/felixgeelhaar/tourguide/internal/ports"
	"github.com/felixgeelhaar/tourguide/internal/testutil/mocks"
)

func TestSpotlightHole(t *testing.T) {
	t.Parallel()

	doc := mocks.NewDocument()
	el := doc.Add("#a", ports.Rect{Left: 10, Top: 2, Width: 10, Height: 4})
	active := tour.Snapshot{IsActive: true, Target: el}

	tests := []struct {
		name   string
		sp     config.Spotlight
		snap   tour.Snapshot
		boxes  ports.BoxReader
		want   cellRect
		wantOK bool
	}{
		{"spacing grows the box", config.Spotlight{Spacing: 1}, active, doc, cellRect{9, 1, 12, 6}, true},
		{"no spacing", config.Spotlight{}, active, doc, cellRect{10, 2, 10, 4}, true},
		{"inactive tour", config.Spotlight{}, tour.Snapshot{Target: el}, doc, cellRect{}, false},
		{"no target", config.Spotlight{}, tour.Snapshot{IsActive: true}, doc, cellRect{}, false},
		{"no box reader", config.Spotlight{}, active, nil, cellRect{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := spotlightHole(tt.sp, tt.snap, tt.boxes)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpotlightHole_RemovedElement(t *testing.T) {
	t.Parallel()

	doc := mocks.NewDocument()
	el := doc.Add("#a", ports.Rect{Left: 1, Top: 1, Width: 3, Height: 3})
	doc.Remove("#a")

	_, ok := spotlightHole(config.Spotlight{}, tour.Snapshot{IsActive: true, Target: el}, doc)
	assert.False(t, ok)
}

func TestApplySpotlight(t *testing.T) {
	t.Parallel()

	hole := cellRect{left: 2, top: 1, width: 4, height: 3}

	t.Run("dims outside and rings the hole", func(t *testing.T) {
		c := newCanvas(10, 6)
		applySpotlight(c, config.Spotlight{}, hole, true)

		assert.Equal(t, cellDimmed, c.kinds[0][0])
		assert.Equal(t, cellHighlight, c.kinds[1][2])
		assert.Equal(t, '╭', c.runes[1][2])
		assert.Equal(t, cellPlain, c.kinds[2][3])
	})

	t.Run("hide overlay keeps the ring only", func(t *testing.T) {
		c := newCanvas(10, 6)
		applySpotlight(c, config.Spotlight{HideOverlay: true}, hole, true)

		assert.Equal(t, cellPlain, c.kinds[0][0])
		assert.Equal(t, cellHighlight, c.kinds[3][5])
	})

	t.Run("no target dims everything", func(t *testing.T) {
		c := newCanvas(4, 2)
		applySpotlight(c, config.Spotlight{}, cellRect{}, false)

		for y := range c.kinds {
			for x := range c.kinds[y] {
				assert.Equal(t, cellDimmed, c.kinds[y][x])
			}
		}
	})
}

func TestClickDismisses_HoleInterior(t *testing.T) {
	t.Parallel()

	hole := cellRect{left: 2, top: 2, width: 3, height: 3}
	closing := config.Spotlight{CloseOnClick: true}

	assert.False(t, clickDismisses(config.Spotlight{}, hole, true, 0, 0))
	assert.True(t, clickDismisses(closing, hole, true, 0, 0))
	assert.False(t, clickDismisses(closing, hole, true, 3, 3))
	assert.True(t, clickDismisses(closing, cellRect{}, false, 3, 3))
}
