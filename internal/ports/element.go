package ports

import "fmt"

// ElementRef is an opaque handle to a live element in the host surface.
// Implementations decide what the handle carries (a DOM node id, a
// terminal region); consumers only compare and pass it back.
type ElementRef interface {
	// Locator returns the locator the element was found by.
	Locator() string
}

// Rect is an element bounding box in host units (CSS pixels in a browser,
// cells in a terminal).
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset grows (positive n) or shrinks (negative n) the rectangle on every side.
func (r Rect) Inset(n float64) Rect {
	return Rect{
		Left:   r.Left - n,
		Top:    r.Top - n,
		Width:  r.Width + 2*n,
		Height: r.Height + 2*n,
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Left, r.Top, r.Width, r.Height)
}

// ElementFinder locates live elements by locator.
type ElementFinder interface {
	// FindElement returns the first element matching locator.
	// A missing match is not an error: ok is false.
	FindElement(locator string) (ElementRef, bool)
}

// BoxReader reads element geometry. The tour core never calls it; the
// spotlight and placement layers do.
type BoxReader interface {
	BoundingBox(ref ElementRef) (Rect, bool)
}

// Document is a host surface that can both find elements and measure them.
type Document interface {
	ElementFinder
	BoxReader
}
