// Package ui provides shared styles, key bindings, and messages for the tour overlay.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Catppuccin Mocha inspired).
var (
	ColorPrimary    = lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"} // Blue
	ColorSecondary  = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#cba6f7"} // Mauve
	ColorSuccess    = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"} // Green
	ColorWarning    = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"} // Yellow
	ColorError      = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"} // Red
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"} // Overlay0
	ColorText       = lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"} // Text
	ColorSubtle     = lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#a6adc8"} // Subtext0
	ColorBackground = lipgloss.AdaptiveColor{Light: "#eff1f5", Dark: "#1e1e2e"} // Base
	ColorSurface    = lipgloss.AdaptiveColor{Light: "#e6e9ef", Dark: "#313244"} // Surface0
	ColorDim        = lipgloss.AdaptiveColor{Light: "#bcc0cc", Dark: "#45475a"} // Surface1
)

// Styles contains reusable lipgloss styles for the overlay.
type Styles struct {
	// Host screen
	Region      lipgloss.Style
	RegionLabel lipgloss.Style
	Dimmed      lipgloss.Style
	Highlight   lipgloss.Style

	// Dialog
	Dialog         lipgloss.Style
	DialogTitle    lipgloss.Style
	DialogProgress lipgloss.Style
	DialogBody     lipgloss.Style

	// Buttons
	Button         lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Status line
	Status  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Help text
	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

// DefaultStyles returns the default overlay styles.
func DefaultStyles() Styles {
	return Styles{
		Region: lipgloss.NewStyle().
			Foreground(ColorSubtle),

		RegionLabel: lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true),

		Dimmed: lipgloss.NewStyle().
			Foreground(ColorDim),

		Highlight: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		DialogProgress: lipgloss.NewStyle().
			Foreground(ColorMuted),

		DialogBody: lipgloss.NewStyle().
			Foreground(ColorText),

		// Buttons are single-line so the dialog stays compact on small
		// terminals.
		Button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorText).
			Background(ColorSurface),

		ButtonActive: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true),

		ButtonDisabled: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorMuted).
			Background(ColorSurface),

		Status: lipgloss.NewStyle().
			Foreground(ColorSecondary),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Error: lipgloss.NewStyle().
			Foreground(ColorError),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
	}
}

// WithWidth returns styles adapted for a specific dialog width.
func (s Styles) WithWidth(width int) Styles {
	s.Dialog = s.Dialog.Width(width)
	return s
}
