// Package app wires definitions, tour controllers, progress and element
// documents together for the CLI, the terminal overlay and the MCP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/tourguide/internal/adapters/filesystem"
	"github.com/felixgeelhaar/tourguide/internal/adapters/layout"
	"github.com/felixgeelhaar/tourguide/internal/adapters/logging"
	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// ErrAlreadyCompleted is returned by Open when the tour was completed
// before and the caller did not force a rerun.
var ErrAlreadyCompleted = errors.New("tour already completed")

// Tourguide is the application service behind every command.
type Tourguide struct {
	fs        ports.FileSystem
	loader    *config.Loader
	validator *config.Validator
	store     *tour.ProgressStore
	logger    ports.Logger
	out       io.Writer
}

// Option configures a Tourguide.
type Option func(*Tourguide)

// WithFileSystem replaces the os-backed file system.
func WithFileSystem(fs ports.FileSystem) Option {
	return func(t *Tourguide) {
		t.fs = fs
	}
}

// WithLogger sets the logger.
func WithLogger(l ports.Logger) Option {
	return func(t *Tourguide) {
		t.logger = l
	}
}

// WithProgressPath moves the progress file.
func WithProgressPath(path string) Option {
	return func(t *Tourguide) {
		t.store = tour.NewProgressStore(t.fs, path)
	}
}

// New creates the service. Options apply in order, so WithFileSystem must
// precede WithProgressPath.
func New(out io.Writer, opts ...Option) *Tourguide {
	t := &Tourguide{
		fs:     filesystem.NewRealFileSystem(),
		logger: logging.NewNopLogger(),
		out:    out,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.store == nil {
		t.store = tour.NewProgressStore(t.fs, tour.DefaultProgressPath)
	}
	t.loader = config.NewLoader(t.fs)
	t.validator = config.NewValidator()
	return t
}

// FileSystem returns the file system in use.
func (t *Tourguide) FileSystem() ports.FileSystem {
	return t.fs
}

// Load reads and validates a definition.
func (t *Tourguide) Load(path string) (*config.Definition, error) {
	def, err := t.loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := t.validator.Validate(def).AsError(); err != nil {
		return nil, err
	}
	t.logger.Debug(context.Background(), "definition loaded",
		ports.F("path", path), ports.F("tour", def.ID), ports.F("steps", def.StepCount()))
	return def, nil
}

// Validate checks several files concurrently.
func (t *Tourguide) Validate(ctx context.Context, paths []string) ([]config.FileResult, error) {
	return config.ValidateFiles(ctx, t.loader, paths, 4)
}

// PrintValidation writes one line per file plus details for failures and
// returns the number of failed files.
func (t *Tourguide) PrintValidation(results []config.FileResult, verbose bool) int {
	failed := 0
	for _, r := range results {
		if r.Err == nil {
			t.printf("✓ %s: %s, %d step(s)\n", r.Path, r.Definition, r.Definition.StepCount())
			continue
		}
		failed++
		t.printf("✗ %s\n", r.Path)

		var list *config.ErrorList
		switch {
		case errors.As(r.Err, &list):
			for _, e := range list.Errors() {
				t.printf("  %s\n", indent(e.Format(), "  "))
			}
		case config.GetUserError(r.Err) != nil:
			ue := config.GetUserError(r.Err)
			t.printf("  %s\n", indent(ue.Format(), "  "))
			if verbose && ue.Underlying != nil {
				t.printf("  Underlying: %v\n", ue.Underlying)
			}
		default:
			t.printf("  %v\n", r.Err)
		}
	}
	return failed
}

// PrintSteps lists the dialog steps of def.
func (t *Tourguide) PrintSteps(def *config.Definition) {
	t.printf("%s\n", def)
	if def.Description != "" {
		t.printf("%s\n", def.Description)
	}
	for i, d := range def.Dialogs() {
		marker := " "
		if i == def.InitialStep {
			marker = "▸"
		}
		title := d.Title
		if title == "" {
			title = "(untitled)"
		}
		t.printf("%s %d. %-24s %-16s %s\n", marker, i+1, title, d.Target, d.Placement)
	}
}

// Screen builds the terminal document from the definition's layout.
func Screen(def *config.Definition) *layout.Screen {
	return layout.NewScreen(Regions(def)...)
}

// Regions converts the definition's layout into screen regions.
func Regions(def *config.Definition) []layout.Region {
	regions := make([]layout.Region, 0, len(def.Layout))
	for _, r := range def.Layout {
		regions = append(regions, layout.Region{
			ID:    r.ID,
			Label: r.Label,
			Box: ports.Rect{
				Left:   float64(r.Left),
				Top:    float64(r.Top),
				Width:  float64(r.Width),
				Height: float64(r.Height),
			},
		})
	}
	return regions
}

// OpenOptions configures Open.
type OpenOptions struct {
	SessionOptions
	// Force reruns a tour that was already completed.
	Force bool
}

// Open mounts a session for def with progress tracking.
func (t *Tourguide) Open(def *config.Definition, opts OpenOptions) (*Session, error) {
	progress, err := t.store.Load()
	if err != nil {
		t.logger.Warn(context.Background(), "ignoring unreadable progress",
			ports.F("path", t.store.Path()), ports.F("error", err))
		progress = tour.NewProgress()
	}
	if progress.IsCompleted(def.ID) && !opts.Force {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, def.ID)
	}
	return newSession(def, t.store, progress, t.logger, opts.SessionOptions)
}

// Progress returns the recorded progress.
func (t *Tourguide) Progress() (*tour.Progress, error) {
	return t.store.Load()
}

// ResetProgress forgets one tour, or every tour when id is empty.
func (t *Tourguide) ResetProgress(id string) error {
	p, err := t.store.Load()
	if err != nil {
		return err
	}
	if id == "" {
		p.Reset()
	} else {
		p.Forget(id)
	}
	return t.store.Save(p)
}

// PrintProgress writes a table of recorded tours.
func (t *Tourguide) PrintProgress(p *tour.Progress) {
	ids := p.IDs()
	if len(ids) == 0 {
		t.printf("No tours recorded yet.\n")
		return
	}
	for _, id := range ids {
		tp := p.Get(id)
		status := "in progress"
		switch {
		case p.IsCompleted(id):
			status = "completed"
		case !tp.DismissedAt.IsZero():
			status = fmt.Sprintf("dismissed at step %d", tp.DismissedStep+1)
		}
		t.printf("%-24s %3d%% seen  %d run(s)  %s\n", id, p.SeenPercent(id), tp.Runs, status)
	}
}

func (t *Tourguide) printf(format string, args ...interface{}) {
	if t.out != nil {
		_, _ = fmt.Fprintf(t.out, format, args...)
	}
}

func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
