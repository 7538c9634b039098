package mocks

import (
	"sync"

	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// Element is the ElementRef handed out by Document.
type Element struct {
	Selector string
	Box      ports.Rect
}

// Locator implements ports.ElementRef.
func (e *Element) Locator() string {
	return e.Selector
}

// Document is an in-memory ports.Document keyed by exact locator.
// It counts FindElement calls so tests can check how often the tour queries
// the host.
type Document struct {
	mu       sync.Mutex
	elements map[string]*Element
	queries  []string
}

var _ ports.Document = (*Document)(nil)

// NewDocument creates a document containing the given locators, each with an
// empty box.
func NewDocument(locators ...string) *Document {
	d := &Document{elements: make(map[string]*Element)}
	for _, l := range locators {
		d.Add(l, ports.Rect{})
	}
	return d
}

// Add inserts or replaces an element.
func (d *Document) Add(locator string, box ports.Rect) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	el := &Element{Selector: locator, Box: box}
	d.elements[locator] = el
	return el
}

// Remove deletes an element.
func (d *Document) Remove(locator string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.elements, locator)
}

// Element returns the element stored for locator, or nil.
func (d *Document) Element(locator string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.elements[locator]
}

// FindElement implements ports.ElementFinder.
func (d *Document) FindElement(locator string) (ports.ElementRef, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queries = append(d.queries, locator)
	el, ok := d.elements[locator]
	if !ok {
		return nil, false
	}
	return el, true
}

// BoundingBox implements ports.BoxReader.
func (d *Document) BoundingBox(ref ports.ElementRef) (ports.Rect, bool) {
	el, ok := ref.(*Element)
	if !ok || el == nil {
		return ports.Rect{}, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.elements[el.Selector] != el {
		return ports.Rect{}, false
	}
	return el.Box, true
}

// Queries returns the locators looked up so far.
func (d *Document) Queries() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.queries...)
}
