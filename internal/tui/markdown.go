package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// markdown renders dialog bodies, reusing one renderer per wrap width.
type markdown struct {
	width    int
	renderer *glamour.TermRenderer
}

func (m *markdown) render(body string, width int) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	width = max(width, 10)

	if m.renderer == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return plain(body, width)
		}
		m.renderer, m.width = r, width
	}

	out, err := m.renderer.Render(body)
	if err != nil {
		return plain(body, width)
	}
	return tidy(out)
}

// tidy drops the blank margin glamour puts around a document.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

func plain(body string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(body))
}
