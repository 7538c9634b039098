package tour

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Phase is the lifecycle phase of a tour.
type Phase string

const (
	// PhaseInactive means the tour is not being shown.
	PhaseInactive Phase = "inactive"
	// PhaseActive means a step is being shown.
	PhaseActive Phase = "active"
	// PhaseCompleted means the tour ran to its end or was completed early.
	PhaseCompleted Phase = "completed"
)

// Event types for the navigation state machine.
const (
	EventStart    = "START"
	EventDismiss  = "DISMISS"
	EventComplete = "COMPLETE"
)

const (
	stateInactive  = "inactive"
	stateActive    = "active"
	stateCompleted = "completed"
)

// Lifecycle is the statekit context of the navigation machine.
type Lifecycle struct {
	Runs        int
	Completions int
}

// Navigator owns the step cursor and the internal lifecycle phase.
//
// It does not know about controlled activation; the Controller decides
// whether a transition may touch the internal phase.
type Navigator struct {
	interp      *statekit.Interpreter[Lifecycle]
	lifecycle   *Lifecycle
	initialStep int
	step        int
}

// NewNavigator builds the navigation machine. When active is true the tour
// starts in the active phase at initialStep.
func NewNavigator(initialStep int, active bool) (*Navigator, error) {
	if initialStep < 0 {
		return nil, fmt.Errorf("initial step must be >= 0, got %d", initialStep)
	}

	n := &Navigator{
		lifecycle:   &Lifecycle{},
		initialStep: initialStep,
		step:        initialStep,
	}

	initial := stateInactive
	if active {
		initial = stateActive
	}

	interp, err := buildNavigationMachine(n.lifecycle, initial)
	if err != nil {
		return nil, fmt.Errorf("failed to build navigation machine: %w", err)
	}
	n.interp = interp
	n.interp.Start()
	return n, nil
}

// buildNavigationMachine wires the three lifecycle phases. Restarting from
// any phase is allowed; dismissal only leaves the active phase.
func buildNavigationMachine(lc *Lifecycle, initial string) (*statekit.Interpreter[Lifecycle], error) {
	machine, err := statekit.NewMachine[Lifecycle]("tour-navigation").
		WithInitial(statekit.StateID(initial)).
		WithContext(*lc).
		WithAction("recordRun", func(_ *Lifecycle, _ statekit.Event) {
			lc.Runs++
		}).
		WithAction("recordCompletion", func(_ *Lifecycle, _ statekit.Event) {
			lc.Completions++
		}).
		State(stateInactive).
		On(EventStart).Target(stateActive).
		On(EventComplete).Target(stateCompleted).Done().
		State(stateActive).
		OnEntry("recordRun").
		On(EventDismiss).Target(stateInactive).
		On(EventComplete).Target(stateCompleted).Done().
		State(stateCompleted).
		OnEntry("recordCompletion").
		On(EventStart).Target(stateActive).Done().
		Build()
	if err != nil {
		return nil, err
	}
	return statekit.NewInterpreter(machine), nil
}

// Phase returns the internal lifecycle phase.
func (n *Navigator) Phase() Phase {
	return Phase(n.interp.State().Value)
}

// Step returns the current step index.
func (n *Navigator) Step() int {
	return n.step
}

// InitialStep returns the step Start rewinds to.
func (n *Navigator) InitialStep() int {
	return n.initialStep
}

// Completed reports whether the tour is in the completed phase.
func (n *Navigator) Completed() bool {
	return n.Phase() == PhaseCompleted
}

// Runs returns how many times the tour entered the active phase.
func (n *Navigator) Runs() int {
	return n.lifecycle.Runs
}

// Start rewinds to the initial step and enters the active phase.
// Calling Start while already active only rewinds.
func (n *Navigator) Start() {
	n.step = n.initialStep
	if n.Phase() != PhaseActive {
		n.send(EventStart)
		return
	}
	n.lifecycle.Runs++
}

// Next advances one step. On the last step it completes the tour and
// returns true. With no steps it does nothing.
func (n *Navigator) Next(total int) (completed bool) {
	if total <= 0 {
		return false
	}
	if n.step < total-1 {
		n.step++
		return false
	}
	n.Complete()
	return true
}

// Prev moves back one step. It does nothing on the first step.
func (n *Navigator) Prev() bool {
	if n.step <= 0 {
		return false
	}
	n.step--
	return true
}

// GoTo jumps to index when it lies in [0, total). Other requests are
// ignored because total moves as steps mount and unmount.
func (n *Navigator) GoTo(index, total int) bool {
	if index < 0 || index >= total || index == n.step {
		return false
	}
	n.step = index
	return true
}

// Dismiss leaves the active phase. It is a no-op in any other phase.
func (n *Navigator) Dismiss() {
	if n.Phase() == PhaseActive {
		n.send(EventDismiss)
	}
}

// Complete enters the completed phase from any phase.
func (n *Navigator) Complete() {
	if n.Phase() != PhaseCompleted {
		n.send(EventComplete)
		return
	}
	n.lifecycle.Completions++
}

// Clamp pulls the cursor back inside [0, total) and reports whether it moved.
func (n *Navigator) Clamp(total int) bool {
	if total <= 0 || n.step < total {
		return false
	}
	n.step = total - 1
	return true
}

// Stop releases the interpreter.
func (n *Navigator) Stop() {
	if n.interp != nil {
		n.interp.Stop()
	}
}

func (n *Navigator) send(event string) {
	n.interp.Send(statekit.Event{Type: statekit.EventType(event)})
}
