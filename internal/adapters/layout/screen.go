// Package layout is a ports.Document over named rectangles of a terminal
// screen. Tours running in the terminal point their dialogs at these regions
// instead of DOM elements.
package layout

import (
	"strings"
	"sync"

	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// Region is a named rectangle in cell coordinates.
type Region struct {
	ID    string
	Label string
	Box   ports.Rect
}

// Element is the ElementRef for a region. It stays valid across resizes;
// BoundingBox always reports the region's current box.
type Element struct {
	id string
}

// Locator implements ports.ElementRef.
func (e Element) Locator() string {
	return "#" + e.id
}

// ID returns the region id.
func (e Element) ID() string {
	return e.id
}

// Screen holds the regions of one host screen. It is safe for concurrent
// use: the overlay reads it while the host updates it on resize.
type Screen struct {
	mu      sync.RWMutex
	regions map[string]Region
	order   []string
	width   float64
	height  float64
}

var _ ports.Document = (*Screen)(nil)

// NewScreen creates a screen with the given regions.
func NewScreen(regions ...Region) *Screen {
	s := &Screen{}
	s.Set(regions)
	return s
}

// Set replaces every region. Later duplicates win.
func (s *Screen) Set(regions []Region) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.regions = make(map[string]Region, len(regions))
	s.order = s.order[:0]
	for _, r := range regions {
		if _, dup := s.regions[r.ID]; !dup {
			s.order = append(s.order, r.ID)
		}
		s.regions[r.ID] = r
	}
}

// Put adds or moves one region.
func (s *Screen) Put(r Region) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.regions[r.ID]; !ok {
		s.order = append(s.order, r.ID)
	}
	s.regions[r.ID] = r
}

// Remove deletes a region. Elements handed out for it stop resolving.
func (s *Screen) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.regions[id]; !ok {
		return
	}
	delete(s.regions, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Regions returns the regions in insertion order, clipped to the screen
// size when one is set.
func (s *Screen) Regions() []Region {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Region, 0, len(s.order))
	for _, id := range s.order {
		r := s.regions[id]
		r.Box = s.clip(r.Box)
		out = append(out, r)
	}
	return out
}

// Resize records the visible screen size. Boxes are clipped to it; regions
// that fall entirely outside stop resolving.
func (s *Screen) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = float64(width), float64(height)
}

// Size returns the last size passed to Resize.
func (s *Screen) Size() (width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(s.width), int(s.height)
}

// FindElement resolves "#id" or a bare "id".
func (s *Screen) FindElement(locator string) (ports.ElementRef, bool) {
	id := strings.TrimPrefix(strings.TrimSpace(locator), "#")
	if id == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.regions[id]
	if !ok || s.clip(r.Box).Empty() {
		return nil, false
	}
	return Element{id: id}, true
}

// BoundingBox implements ports.BoxReader.
func (s *Screen) BoundingBox(ref ports.ElementRef) (ports.Rect, bool) {
	el, ok := ref.(Element)
	if !ok {
		return ports.Rect{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.regions[el.id]
	if !ok {
		return ports.Rect{}, false
	}
	box := s.clip(r.Box)
	if box.Empty() {
		return ports.Rect{}, false
	}
	return box, true
}

// HitTest returns the topmost region containing the cell (x, y). Regions
// added later are on top.
func (s *Screen) HitTest(x, y int) (Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.order) - 1; i >= 0; i-- {
		r := s.regions[s.order[i]]
		if s.clip(r.Box).Contains(float64(x), float64(y)) {
			return r, true
		}
	}
	return Region{}, false
}

// Label returns the display label of the region behind ref.
func (s *Screen) Label(ref ports.ElementRef) string {
	el, ok := ref.(Element)
	if !ok {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.regions[el.id]; ok {
		if r.Label != "" {
			return r.Label
		}
		return r.ID
	}
	return ""
}

func (s *Screen) clip(box ports.Rect) ports.Rect {
	if s.width <= 0 || s.height <= 0 {
		return box
	}
	right := min(box.Right(), s.width)
	bottom := min(box.Bottom(), s.height)
	left := max(box.Left, 0)
	top := max(box.Top, 0)
	if right <= left || bottom <= top {
		return ports.Rect{Left: left, Top: top}
	}
	return ports.Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}
