// Package tour implements the guided-tour controller: step registration,
// navigation, controlled/uncontrolled activation and target resolution.
//
// The controller renders nothing. Presentational code reads the published
// Snapshot and calls the navigation methods; hosts that live outside the
// rendered tree drive the same controller through a Handle.
package tour

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// Options configures a Controller.
type Options struct {
	// ID names the tour in logs and progress records.
	ID string
	// DefaultIsActive activates an uncontrolled tour on creation.
	DefaultIsActive bool
	// InitialStep is where the tour opens and where Start rewinds to.
	InitialStep int
	// ClampOnShrink pulls the cursor back in range when steps unmount while
	// the tour is active. Off by default: the cursor is left alone and the
	// resolved target simply becomes nil.
	ClampOnShrink bool

	OnComplete     func()
	OnDismiss      func(step int)
	OnActiveChange func(active bool)
	OnStepChange   func(from, to int)

	// Handle, when set, is bound to the controller until Unmount.
	Handle *Handle
	// Finder locates step targets. A nil finder resolves nothing.
	Finder ports.ElementFinder
	Logger ports.Logger
}

// Frame is the host input for one render.
type Frame struct {
	// Active is the controlled activation value; nil means uncontrolled.
	Active   *bool
	Children []Child
}

// Controller is the composition root of a tour instance.
type Controller struct {
	mu         sync.Mutex
	opts       Options
	logger     ports.Logger
	registry   *Registry
	nav        *Navigator
	activation *Activation
	totalSteps int
	instanceID string
	snapshot   Snapshot
	mounted    bool
}

var _ Scope = (*Controller)(nil)

// New creates a mounted controller.
func New(opts Options) (*Controller, error) {
	nav, err := NewNavigator(opts.InitialStep, opts.DefaultIsActive)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	if opts.ID != "" {
		logger = logger.With(ports.F("tour", opts.ID))
	}

	c := &Controller{
		opts:       opts,
		logger:     logger,
		registry:   NewRegistry(),
		nav:        nav,
		activation: NewActivation(opts.OnActiveChange),
		mounted:    true,
	}
	c.snapshot = Snapshot{TourID: opts.ID, CurrentStep: opts.InitialStep, Phase: PhaseInactive}

	var n notifier
	c.refresh(&n)

	if opts.Handle != nil {
		opts.Handle.bind(c)
	}
	return c, nil
}

// Render recomputes the step count from children, records the controlled
// activation value and returns the annotated children.
func (c *Controller) Render(frame Frame) []Annotated {
	var n notifier
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return Annotate(frame.Children, -1, false)
	}

	c.activation.Control(frame.Active)
	c.totalSteps = CountSteps(frame.Children)
	if c.opts.ClampOnShrink && c.isActive() && c.nav.Clamp(c.totalSteps) {
		c.logger.Debug(context.Background(), "step clamped after shrink",
			ports.F("step", c.nav.Step()), ports.F("total", c.totalSteps))
	}
	c.refresh(&n)
	out := Annotate(frame.Children, c.snapshot.CurrentStep, c.snapshot.IsActive)
	c.mu.Unlock()

	n.flush()
	return out
}

// Snapshot returns the state published after the latest transition.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Mounted reports whether the controller still owns its state.
func (c *Controller) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

// Registry returns a copy of the registered step locators.
func (c *Controller) Registry() map[int]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.Snapshot()
}

// RegisterStep binds a mounted step to its target locator.
func (c *Controller) RegisterStep(index int, locator string) {
	c.transition(func(_ *notifier) {
		if c.registry.Register(index, locator) {
			c.logger.Debug(context.Background(), "step registered",
				ports.F("step", index), ports.F("locator", locator))
		}
	})
}

// UnregisterStep drops a step that unmounted.
func (c *Controller) UnregisterStep(index int) {
	c.transition(func(_ *notifier) {
		if c.registry.Unregister(index) {
			c.logger.Debug(context.Background(), "step unregistered", ports.F("step", index))
		}
	})
}

// NextStep advances, completing the tour from the last step.
func (c *Controller) NextStep() {
	c.transition(func(n *notifier) {
		if !c.isActive() {
			return
		}
		wasActive := c.internalActive()
		if c.nav.Next(c.totalSteps) {
			c.finish(n, wasActive)
		}
	})
}

// PrevStep moves back one step; it does nothing on the first step.
func (c *Controller) PrevStep() {
	c.transition(func(_ *notifier) {
		if c.isActive() {
			c.nav.Prev()
		}
	})
}

// GoToStep jumps to index. Out-of-range requests are ignored.
func (c *Controller) GoToStep(index int) {
	c.transition(func(_ *notifier) {
		if c.isActive() {
			c.nav.GoTo(index, c.totalSteps)
		}
	})
}

// Dismiss closes the tour and reports the step that was showing. It fires
// the dismissal notification on every call, including on an inactive tour.
func (c *Controller) Dismiss() {
	c.transition(func(n *notifier) {
		step := c.nav.Step()
		apply, notify := c.activation.Request(false, c.internalActive())
		if apply {
			c.nav.Dismiss()
		}
		n.add(notify)
		c.logger.Info(context.Background(), "tour dismissed",
			ports.F("step", step), ports.F("instance", c.instanceID))
		if cb := c.opts.OnDismiss; cb != nil {
			n.add(func() { cb(step) })
		}
	})
}

// Complete finishes the tour from any step.
func (c *Controller) Complete() {
	c.transition(func(n *notifier) {
		wasActive := c.internalActive()
		c.nav.Complete()
		c.finish(n, wasActive)
	})
}

// Start rewinds to the initial step and activates the tour.
func (c *Controller) Start() {
	c.transition(func(n *notifier) {
		_, notify := c.activation.Request(true, c.internalActive())
		c.nav.Start()
		c.instanceID = ""
		n.add(notify)
	})
}

// Unmount discards registry and navigation state and releases the handle.
// The controller ignores every later call.
func (c *Controller) Unmount() {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	c.registry.Reset()
	c.nav.Stop()
	c.snapshot = Snapshot{TourID: c.opts.ID, Phase: PhaseInactive}
	c.mu.Unlock()

	if c.opts.Handle != nil {
		c.opts.Handle.unbind(c)
	}
}

// finish runs the shared tail of both completion paths. wasActive is the
// internal activation before the machine entered the completed phase.
func (c *Controller) finish(n *notifier, wasActive bool) {
	_, notify := c.activation.Request(false, wasActive)
	n.add(notify)
	c.logger.Info(context.Background(), "tour completed", ports.F("instance", c.instanceID))
	if cb := c.opts.OnComplete; cb != nil {
		n.add(cb)
	}
}

func (c *Controller) transition(fn func(n *notifier)) {
	var n notifier
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	fn(&n)
	c.refresh(&n)
	c.mu.Unlock()
	n.flush()
}

func (c *Controller) internalActive() bool {
	return c.nav.Phase() == PhaseActive
}

func (c *Controller) isActive() bool {
	return c.activation.Value(c.internalActive())
}

// refresh derives the snapshot from registry, navigation and activation. It
// is the only writer of c.snapshot.
func (c *Controller) refresh(n *notifier) {
	prev := c.snapshot
	active := c.isActive()
	step := c.nav.Step()

	if active && (!prev.IsActive || c.instanceID == "") {
		c.instanceID = uuid.NewString()
		c.logger.Info(context.Background(), "tour activated",
			ports.F("instance", c.instanceID), ports.F("step", step), ports.F("total", c.totalSteps))
	}

	phase := PhaseInactive
	switch {
	case active:
		phase = PhaseActive
	case c.nav.Completed():
		phase = PhaseCompleted
	}

	locator, _ := c.registry.Lookup(step)
	next := Snapshot{
		TourID:          c.opts.ID,
		InstanceID:      c.instanceID,
		Phase:           phase,
		IsActive:        active,
		IsCompleted:     c.nav.Completed(),
		Controlled:      c.activation.Controlled(),
		CurrentStep:     step,
		TotalSteps:      c.totalSteps,
		Locator:         locator,
		Target:          ResolveTarget(c.registry, step, active, c.opts.Finder),
		RegistryVersion: c.registry.Version(),
	}
	if !active {
		next.Locator = ""
	}
	c.snapshot = next

	if prev.CurrentStep != step {
		c.logger.Debug(context.Background(), "step changed",
			ports.F("from", prev.CurrentStep), ports.F("to", step), ports.F("total", c.totalSteps))
		if cb := c.opts.OnStepChange; cb != nil {
			from := prev.CurrentStep
			n.add(func() { cb(from, step) })
		}
	}
}

// String describes the controller for debugging.
func (c *Controller) String() string {
	s := c.Snapshot()
	return fmt.Sprintf("tour(%s phase=%s step=%d/%d)", s.TourID, s.Phase, s.CurrentStep, s.TotalSteps)
}

// notifier queues host callbacks so they run after the lock is released.
type notifier []func()

func (n *notifier) add(fn func()) {
	if fn != nil {
		*n = append(*n, fn)
	}
}

func (n notifier) flush() {
	for _, fn := range n {
		fn()
	}
}

// nopLogger is the fallback when Options.Logger is nil. Domain packages do
// not import adapters, so logging.NopLogger is out of reach here.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...ports.Field) {}
func (nopLogger) Info(context.Context, string, ...ports.Field)  {}
func (nopLogger) Warn(context.Context, string, ...ports.Field)  {}
func (nopLogger) Error(context.Context, string, ...ports.Field) {}
func (l nopLogger) With(...ports.Field) ports.Logger            { return l }
func (nopLogger) Level() ports.Level                            { return ports.LevelError }
func (nopLogger) SetLevel(ports.Level)                          {}
