package tour

import "sync"

// Handle lets code outside the rendered tree drive a tour. The host creates
// an empty Handle, passes it in Options, and the controller binds itself to
// it until unmount. An unbound handle reports a zero snapshot and ignores
// every call.
type Handle struct {
	mu sync.RWMutex
	c  *Controller
}

var _ API = (*Handle)(nil)

func (h *Handle) bind(c *Controller) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.c = c
}

func (h *Handle) unbind(c *Controller) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.c == c {
		h.c = nil
	}
}

func (h *Handle) controller() *Controller {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.c
}

// Bound reports whether a mounted controller is behind the handle.
func (h *Handle) Bound() bool {
	return h.controller() != nil
}

// Snapshot returns the controller's latest snapshot.
func (h *Handle) Snapshot() Snapshot {
	if c := h.controller(); c != nil {
		return c.Snapshot()
	}
	return Snapshot{Phase: PhaseInactive}
}

// NextStep advances the tour.
func (h *Handle) NextStep() {
	if c := h.controller(); c != nil {
		c.NextStep()
	}
}

// PrevStep moves the tour back.
func (h *Handle) PrevStep() {
	if c := h.controller(); c != nil {
		c.PrevStep()
	}
}

// GoToStep jumps to index.
func (h *Handle) GoToStep(index int) {
	if c := h.controller(); c != nil {
		c.GoToStep(index)
	}
}

// Dismiss closes the tour.
func (h *Handle) Dismiss() {
	if c := h.controller(); c != nil {
		c.Dismiss()
	}
}

// Complete finishes the tour.
func (h *Handle) Complete() {
	if c := h.controller(); c != nil {
		c.Complete()
	}
}

// Start (re)starts the tour.
func (h *Handle) Start() {
	if c := h.controller(); c != nil {
		c.Start()
	}
}
