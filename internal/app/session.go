package app

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	// Document resolves step targets. Nil resolves nothing.
	Document ports.Document
	// InitialStep overrides the definition's initial step when set.
	InitialStep *int
	// Active starts the tour regardless of the definition's default.
	Active bool
	// OnComplete and OnDismiss are called after progress is recorded.
	OnComplete func()
	OnDismiss  func(step int)
}

// Session is one mounted tour: the controller plus the host-side
// bookkeeping a component tree would otherwise do. It registers dialog steps
// as they appear, unregisters them when a reload drops them, and records
// progress from the controller's notifications.
type Session struct {
	mu         sync.Mutex
	def        *config.Definition
	children   []tour.Child
	annotated  []tour.Annotated
	mounted    map[int]string
	controller *tour.Controller
	handle     *tour.Handle
	doc        ports.Document

	progress *tour.Progress
	store    *tour.ProgressStore
	logger   ports.Logger
	opts     SessionOptions
}

func newSession(def *config.Definition, store *tour.ProgressStore, progress *tour.Progress, logger ports.Logger, opts SessionOptions) (*Session, error) {
	s := &Session{
		def:      def,
		children: def.BuildChildren(),
		mounted:  make(map[int]string),
		handle:   &tour.Handle{},
		doc:      opts.Document,
		progress: progress,
		store:    store,
		logger:   logger,
		opts:     opts,
	}

	topts := def.TourOptions()
	if opts.InitialStep != nil {
		topts.InitialStep = *opts.InitialStep
	}
	if opts.Active {
		topts.DefaultIsActive = true
	}
	topts.Handle = s.handle
	topts.Logger = logger
	if opts.Document != nil {
		topts.Finder = opts.Document
	}
	topts.OnActiveChange = s.onActiveChange
	topts.OnStepChange = s.onStepChange
	topts.OnComplete = s.onComplete
	topts.OnDismiss = s.onDismiss

	c, err := tour.New(topts)
	if err != nil {
		return nil, err
	}
	s.controller = c

	s.Sync()
	if snap := c.Snapshot(); snap.IsActive {
		s.recordStart(snap)
	}
	return s, nil
}

// Definition returns the definition currently rendered.
func (s *Session) Definition() *config.Definition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.def
}

// Controller returns the tour controller.
func (s *Session) Controller() *tour.Controller {
	return s.controller
}

// Handle returns the imperative handle bound to the controller.
func (s *Session) Handle() *tour.Handle {
	return s.handle
}

// Document returns the element document steps resolve against.
func (s *Session) Document() ports.Document {
	return s.doc
}

// Snapshot returns the controller snapshot.
func (s *Session) Snapshot() tour.Snapshot {
	return s.controller.Snapshot()
}

// Annotated returns the children as of the last Sync.
func (s *Session) Annotated() []tour.Annotated {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]tour.Annotated(nil), s.annotated...)
}

// Current returns the dialog of the current step when the tour is active.
func (s *Session) Current() (config.Dialog, bool) {
	for _, a := range s.Annotated() {
		if a.IsCurrent {
			if d, ok := a.Child.(config.Dialog); ok {
				return d, true
			}
		}
	}
	return config.Dialog{}, false
}

// Sync renders the children through the controller and mirrors mount and
// unmount of dialog steps into the registry.
func (s *Session) Sync() []tour.Annotated {
	s.mu.Lock()
	children := s.children
	s.mu.Unlock()

	annotated := s.controller.Render(tour.Frame{Children: children})

	present := make(map[int]string)
	for _, a := range annotated {
		if a.IsStep {
			present[a.Index] = a.Locator()
		}
	}

	s.mu.Lock()
	var gone []int
	for index := range s.mounted {
		if _, ok := present[index]; !ok {
			gone = append(gone, index)
		}
	}
	var changed map[int]string
	for index, locator := range present {
		if prev, ok := s.mounted[index]; !ok || prev != locator {
			if changed == nil {
				changed = make(map[int]string)
			}
			changed[index] = locator
		}
	}
	s.mounted = present
	s.mu.Unlock()

	for _, index := range gone {
		s.controller.UnregisterStep(index)
	}
	for index, locator := range changed {
		s.controller.RegisterStep(index, locator)
	}

	if len(gone) > 0 || len(changed) > 0 {
		// The registry moved after Render; annotate again so IsCurrent and
		// the resolved target agree.
		annotated = s.controller.Render(tour.Frame{Children: children})
	}

	s.mu.Lock()
	s.annotated = annotated
	s.mu.Unlock()
	return annotated
}

// Reload swaps in a new definition while keeping the tour's position.
func (s *Session) Reload(def *config.Definition) {
	s.mu.Lock()
	s.def = def
	s.children = def.BuildChildren()
	s.mu.Unlock()

	s.logger.Info(context.Background(), "definition reloaded",
		ports.F("tour", def.ID), ports.F("steps", def.StepCount()))
	s.Sync()
}

// Unmount tears the controller down and flushes progress.
func (s *Session) Unmount() {
	s.controller.Unmount()
	s.save()
}

func (s *Session) onActiveChange(active bool) {
	if active {
		s.recordStart(s.controller.Snapshot())
	}
}

func (s *Session) onStepChange(_, to int) {
	snap := s.controller.Snapshot()
	if !snap.IsActive {
		return
	}
	s.mu.Lock()
	s.progress.MarkSeen(s.def.ID, to)
	s.mu.Unlock()
	s.save()
}

func (s *Session) onComplete() {
	s.mu.Lock()
	s.progress.Complete(s.def.ID)
	s.mu.Unlock()
	s.save()
	if s.opts.OnComplete != nil {
		s.opts.OnComplete()
	}
}

func (s *Session) onDismiss(step int) {
	s.mu.Lock()
	s.progress.Dismiss(s.def.ID, step)
	s.mu.Unlock()
	s.save()
	if s.opts.OnDismiss != nil {
		s.opts.OnDismiss(step)
	}
}

func (s *Session) recordStart(snap tour.Snapshot) {
	s.mu.Lock()
	s.progress.StartRun(s.def.ID, snap.InstanceID, snap.TotalSteps)
	s.progress.MarkSeen(s.def.ID, snap.CurrentStep)
	s.mu.Unlock()
	s.save()
}

func (s *Session) save() {
	if s.store == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(s.progress); err != nil {
		s.logger.Warn(context.Background(), "failed to save progress",
			ports.F("path", s.store.Path()), ports.F("error", err))
	}
}
