package tui

import (
	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// spotlightHole returns the highlighted area around the current target:
// its bounding box grown by the spotlight spacing. Geometry comes from the
// box reader only.
func spotlightHole(sp config.Spotlight, snap tour.Snapshot, boxes ports.BoxReader) (cellRect, bool) {
	if !snap.IsActive || snap.Target == nil || boxes == nil {
		return cellRect{}, false
	}
	box, ok := boxes.BoundingBox(snap.Target)
	if !ok || box.Empty() {
		return cellRect{}, false
	}
	return cells(box.Inset(float64(sp.Spacing))), true
}

// applySpotlight dims the canvas outside the hole and rings the hole.
func applySpotlight(c *canvas, sp config.Spotlight, hole cellRect, hasHole bool) {
	if !sp.HideOverlay {
		c.dim(hole, hasHole)
	}
	if hasHole {
		c.box(hole, cellHighlight)
	}
}

// clickDismisses reports whether a click at (x, y) should close the tour.
func clickDismisses(sp config.Spotlight, hole cellRect, hasHole bool, x, y int) bool {
	if !sp.CloseOnClick {
		return false
	}
	return !hasHole || !hole.contains(x, y)
}
