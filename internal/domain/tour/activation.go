package tour

// EffectiveActive merges a controlled activation value with the internally
// tracked one. A controlled value, when present, is the answer.
func EffectiveActive(controlled *bool, internal bool) bool {
	if controlled != nil {
		return *controlled
	}
	return internal
}

// Activation holds the host's side of the activation state: the value it
// supplied on the latest render (nil when uncontrolled) and the hook used to
// tell it about requested changes.
type Activation struct {
	controlled *bool
	onChange   func(bool)
}

// NewActivation creates an uncontrolled activation that reports requested
// changes to onChange (which may be nil).
func NewActivation(onChange func(bool)) *Activation {
	return &Activation{onChange: onChange}
}

// Control records the value supplied by the host for this render.
// Passing nil switches back to uncontrolled mode.
func (a *Activation) Control(value *bool) {
	if value == nil {
		a.controlled = nil
		return
	}
	v := *value
	a.controlled = &v
}

// Controlled reports whether the host owns the value.
func (a *Activation) Controlled() bool {
	return a.controlled != nil
}

// Value returns the effective value given the internal one.
func (a *Activation) Value(internal bool) bool {
	return EffectiveActive(a.controlled, internal)
}

// Request computes what a transition wants the activation to become.
// It returns whether the internal store may apply the change itself and the
// notification to deliver to the host, if any. Under control the internal
// store is never written; the host is told instead.
func (a *Activation) Request(want, internal bool) (applyInternally bool, notify func()) {
	if a.controlled != nil {
		if a.onChange == nil {
			return false, nil
		}
		cb := a.onChange
		return false, func() { cb(want) }
	}
	if want == internal || a.onChange == nil {
		return true, nil
	}
	cb := a.onChange
	return true, func() { cb(want) }
}
