package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/felixgeelhaar/tourguide/internal/domain/config"
)

// ReloadMsg carries a definition that changed on disk.
type ReloadMsg struct {
	Definition *config.Definition
}

// ErrorMsg represents an error that occurred during processing.
type ErrorMsg struct {
	Err error
}

func (e ErrorMsg) Error() string {
	return e.Err.Error()
}

// StatusMsg shows a transient line on the help bar.
type StatusMsg struct {
	Message string
}

// ClearStatusMsg removes the status line.
type ClearStatusMsg struct{}

// FinishedMsg is sent when the tour is no longer active.
type FinishedMsg struct {
	Completed bool
	Step      int
}

// NewReloadMsg creates a reload message, or an error message when the
// definition could not be loaded.
func NewReloadMsg(def *config.Definition, err error) tea.Msg {
	if err != nil {
		return ErrorMsg{Err: err}
	}
	return ReloadMsg{Definition: def}
}

// NewErrorMsg creates a new error message.
func NewErrorMsg(err error) tea.Msg {
	return ErrorMsg{Err: err}
}

// NewStatusMsg creates a new status message.
func NewStatusMsg(message string) tea.Msg {
	return StatusMsg{Message: message}
}
