package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
	"github.com/felixgeelhaar/tourguide/internal/tui/ui"
)

// button is one action in the dialog footer.
type button struct {
	Label    string
	Disabled bool
	Primary  bool
}

// dialogButtons returns the footer for the current step: Prev is disabled on
// the first step and Next becomes Finish on the last one.
func dialogButtons(snap tour.Snapshot) []button {
	next := "Next →"
	if snap.IsLast() {
		next = "Finish"
	}
	return []button{
		{Label: "← Prev", Disabled: snap.IsFirst()},
		{Label: "Skip"},
		{Label: next, Primary: true},
	}
}

// renderDialog draws d as a bordered box of the given outer width and returns
// its lines.
func renderDialog(styles ui.Styles, md *markdown, d config.Dialog, snap tour.Snapshot, width int) []string {
	inner := max(width-4, 1)

	title := d.Title
	if title == "" {
		title = d.Target
	}
	progress := fmt.Sprintf("%d/%d", snap.CurrentStep+1, snap.TotalSteps)
	closeHint := "×"
	gap := inner - lipgloss.Width(title) - lipgloss.Width(progress) - lipgloss.Width(closeHint) - 2
	header := styles.DialogTitle.Render(title) +
		strings.Repeat(" ", max(gap, 1)) +
		styles.DialogProgress.Render(progress) + " " +
		styles.DialogProgress.Render(closeHint)

	sections := []string{header}
	if body := md.render(d.Body, inner); body != "" {
		sections = append(sections, "", styles.DialogBody.Render(body))
	}

	var footer []string
	for _, b := range dialogButtons(snap) {
		style := styles.Button
		switch {
		case b.Disabled:
			style = styles.ButtonDisabled
		case b.Primary:
			style = styles.ButtonActive
		}
		footer = append(footer, style.Render(b.Label))
	}
	sections = append(sections, "", strings.Join(footer, " "))

	box := styles.WithWidth(width - 2).Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return strings.Split(box, "\n")
}
