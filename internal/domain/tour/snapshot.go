package tour

import "github.com/felixgeelhaar/tourguide/internal/ports"

// Snapshot is the state published to steps, the spotlight and handle
// holders. It is recomputed after every transition.
type Snapshot struct {
	TourID          string
	InstanceID      string
	Phase           Phase
	IsActive        bool
	IsCompleted     bool
	Controlled      bool
	CurrentStep     int
	TotalSteps      int
	Locator         string
	Target          ports.ElementRef
	RegistryVersion uint64
}

// IsFirst reports whether the previous action should be disabled.
func (s Snapshot) IsFirst() bool {
	return s.CurrentStep == 0
}

// IsLast reports whether next will complete the tour.
func (s Snapshot) IsLast() bool {
	return s.TotalSteps > 0 && s.CurrentStep == s.TotalSteps-1
}

// HasTarget reports whether the current step resolved to a live element.
func (s Snapshot) HasTarget() bool {
	return s.Target != nil
}

// API is the imperative surface shared by the published context and the
// handle.
type API interface {
	Snapshot() Snapshot
	NextStep()
	PrevStep()
	GoToStep(index int)
	Dismiss()
	Complete()
	Start()
}

// Scope is what step components see: the API plus registration.
type Scope interface {
	API
	RegisterStep(index int, locator string)
	UnregisterStep(index int)
}
