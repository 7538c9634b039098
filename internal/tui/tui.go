// Package tui provides the terminal overlay that plays a tour over a host
// screen made of named regions.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/tourguide/internal/adapters/layout"
	"github.com/felixgeelhaar/tourguide/internal/app"
	"github.com/felixgeelhaar/tourguide/internal/domain/config"
)

// TourOptions configures the overlay.
type TourOptions struct {
	// Session is the mounted tour to play. Required.
	Session *app.Session
	// Screen is the session's document. Required.
	Screen *layout.Screen
	// Changes signals that the definition changed on disk; Reload reads it
	// again. Both are optional.
	Changes <-chan struct{}
	Reload  func() (*config.Definition, error)
	// ExitOnFinish ends the program when the tour completes or is dismissed.
	ExitOnFinish bool
	// AltScreen runs the overlay on the alternate screen.
	AltScreen bool
}

// TourResult describes where the user left the tour.
type TourResult struct {
	Completed bool
	Active    bool
	Step      int
	// Quit is true when the user quit before the tour finished.
	Quit bool
}

// ErrNoSession is returned when TourOptions lacks a session or screen.
var ErrNoSession = errors.New("tui: session and screen are required")

// RunTour plays the tour until the user quits or, with ExitOnFinish, until
// the tour is over.
func RunTour(ctx context.Context, opts TourOptions) (*TourResult, error) {
	if opts.Session == nil || opts.Screen == nil {
		return nil, ErrNoSession
	}

	model := newTourModel(opts)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	// Run the program
	p := tea.NewProgram(model, progOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tour failed: %w", err)
	}

	m, ok := finalModel.(tourModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	result := m.Result()
	return &result, nil
}
