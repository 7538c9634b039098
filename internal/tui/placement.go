package tui

import (
	"math"

	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// Position is where a dialog lands on screen, in cells.
type Position struct {
	X, Y      int
	Placement config.Placement
}

// autoOrder is the preference order for PlacementAuto.
var autoOrder = []config.Placement{
	config.PlacementBottom,
	config.PlacementTop,
	config.PlacementRight,
	config.PlacementLeft,
}

// Place positions a w×h box next to anchor on a screen of sw×sh cells.
// The requested side flips to the opposite one when it lacks room and the
// opposite side has it; the result is then shifted to stay on screen.
func Place(anchor ports.Rect, w, h int, placement config.Placement, offset, sw, sh int) Position {
	a := cells(anchor)

	side := placement
	switch side {
	case config.PlacementAuto:
		side = bestSide(a, w, h, offset, sw, sh)
	case config.PlacementBottom, config.PlacementTop, config.PlacementLeft, config.PlacementRight:
		if room(a, side, offset, sw, sh) < need(side, w, h) {
			if opp := opposite(side); room(a, opp, offset, sw, sh) >= need(opp, w, h) {
				side = opp
			}
		}
	default:
		side = config.PlacementBottom
	}

	var x, y int
	switch side {
	case config.PlacementTop:
		x = a.left + (a.width-w)/2
		y = a.top - offset - h
	case config.PlacementLeft:
		x = a.left - offset - w
		y = a.top + (a.height-h)/2
	case config.PlacementRight:
		x = a.right() + offset
		y = a.top + (a.height-h)/2
	default:
		x = a.left + (a.width-w)/2
		y = a.bottom() + offset
	}

	return Position{X: clamp(x, 0, sw-w), Y: clamp(y, 0, sh-h), Placement: side}
}

// Center positions a w×h box in the middle of the screen. Dialogs without a
// resolved target use it.
func Center(w, h, sw, sh int) Position {
	return Position{
		X:         clamp((sw-w)/2, 0, sw-w),
		Y:         clamp((sh-h)/2, 0, sh-h),
		Placement: config.PlacementAuto,
	}
}

func bestSide(a cellRect, w, h, offset, sw, sh int) config.Placement {
	best, bestSpare := config.PlacementBottom, math.MinInt
	for _, side := range autoOrder {
		spare := room(a, side, offset, sw, sh) - need(side, w, h)
		if spare >= 0 {
			return side
		}
		if spare > bestSpare {
			best, bestSpare = side, spare
		}
	}
	return best
}

// room is the free space between the anchor and the screen edge on side.
func room(a cellRect, side config.Placement, offset, sw, sh int) int {
	switch side {
	case config.PlacementTop:
		return a.top - offset
	case config.PlacementLeft:
		return a.left - offset
	case config.PlacementRight:
		return sw - a.right() - offset
	default:
		return sh - a.bottom() - offset
	}
}

func need(side config.Placement, w, h int) int {
	if side == config.PlacementLeft || side == config.PlacementRight {
		return w
	}
	return h
}

func opposite(side config.Placement) config.Placement {
	switch side {
	case config.PlacementTop:
		return config.PlacementBottom
	case config.PlacementLeft:
		return config.PlacementRight
	case config.PlacementRight:
		return config.PlacementLeft
	default:
		return config.PlacementTop
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

// cellRect is a rectangle snapped to whole cells.
type cellRect struct {
	left, top, width, height int
}

func cells(r ports.Rect) cellRect {
	left := int(math.Floor(r.Left))
	top := int(math.Floor(r.Top))
	right := int(math.Ceil(r.Right()))
	bottom := int(math.Ceil(r.Bottom()))
	return cellRect{left: left, top: top, width: max(right-left, 0), height: max(bottom-top, 0)}
}

func (c cellRect) right() int  { return c.left + c.width }
func (c cellRect) bottom() int { return c.top + c.height }

func (c cellRect) contains(x, y int) bool {
	return x >= c.left && x < c.right() && y >= c.top && y < c.bottom()
}
