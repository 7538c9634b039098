package tour

import "sort"

// Registry maps step indexes to target locators. Steps add themselves when
// they mount and remove themselves when they unmount, in any order.
//
// Registry is not safe for concurrent use; the Controller serializes access.
type Registry struct {
	steps   map[int]string
	version uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{steps: make(map[int]string)}
}

// Register upserts the locator for index. Negative indexes are ignored.
// Registering the same entry twice is expected under re-render and does not
// count as a change.
func (r *Registry) Register(index int, locator string) bool {
	if index < 0 {
		return false
	}
	if prev, ok := r.steps[index]; ok && prev == locator {
		return false
	}
	r.steps[index] = locator
	r.version++
	return true
}

// Unregister removes index. Removing an absent index is a no-op.
func (r *Registry) Unregister(index int) bool {
	if _, ok := r.steps[index]; !ok {
		return false
	}
	delete(r.steps, index)
	r.version++
	return true
}

// Lookup returns the locator registered for index.
func (r *Registry) Lookup(index int) (string, bool) {
	locator, ok := r.steps[index]
	return locator, ok
}

// Len returns the number of registered steps.
func (r *Registry) Len() int {
	return len(r.steps)
}

// Version increases on every observable change.
func (r *Registry) Version() uint64 {
	return r.version
}

// Snapshot returns a copy of the current entries.
func (r *Registry) Snapshot() map[int]string {
	out := make(map[int]string, len(r.steps))
	for k, v := range r.steps {
		out[k] = v
	}
	return out
}

// Indexes returns the registered indexes in ascending order.
func (r *Registry) Indexes() []int {
	out := make([]int, 0, len(r.steps))
	for k := range r.steps {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Reset drops every entry.
func (r *Registry) Reset() {
	if len(r.steps) == 0 {
		return
	}
	r.steps = make(map[int]string)
	r.version++
}
