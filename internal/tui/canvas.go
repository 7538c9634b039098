package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/tourguide/internal/tui/ui"
)

type cellKind uint8

const (
	cellPlain cellKind = iota
	cellRegion
	cellLabel
	cellDimmed
	cellHighlight
)

// canvas is a grid of single-width cells that renders runs of equally
// styled cells with one lipgloss call each.
type canvas struct {
	width, height int
	runes         [][]rune
	kinds         [][]cellKind
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	c.runes = make([][]rune, c.height)
	c.kinds = make([][]cellKind, c.height)
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", c.width))
		c.kinds[y] = make([]cellKind, c.width)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, kind cellKind) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.runes[y][x] = r
	c.kinds[y][x] = kind
}

func (c *canvas) text(x, y int, s string, kind cellKind) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, kind)
	}
}

// box draws a rounded outline along the edge of r.
func (c *canvas) box(r cellRect, kind cellKind) {
	if r.width <= 0 || r.height <= 0 {
		return
	}
	x1, y1 := r.right()-1, r.bottom()-1
	for x := r.left; x <= x1; x++ {
		c.set(x, r.top, '─', kind)
		c.set(x, y1, '─', kind)
	}
	for y := r.top; y <= y1; y++ {
		c.set(r.left, y, '│', kind)
		c.set(x1, y, '│', kind)
	}
	if r.width == 1 || r.height == 1 {
		return
	}
	c.set(r.left, r.top, '╭', kind)
	c.set(x1, r.top, '╮', kind)
	c.set(r.left, y1, '╰', kind)
	c.set(x1, y1, '╯', kind)
}

// region draws a labelled host region.
func (c *canvas) region(r cellRect, label string) {
	c.box(r, cellRegion)
	if label == "" || r.width < 3 {
		return
	}
	runes := []rune(label)
	if len(runes) > r.width-2 {
		runes = runes[:r.width-2]
	}
	c.text(r.left+1, r.top, string(runes), cellLabel)
}

// dim marks every cell outside hole as dimmed.
func (c *canvas) dim(hole cellRect, hasHole bool) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if hasHole && hole.contains(x, y) {
				continue
			}
			c.kinds[y][x] = cellDimmed
		}
	}
}

// render returns the canvas with overlay lines placed at (ox, oy).
func (c *canvas) render(styles ui.Styles, overlay []string, ox, oy int) string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		i := y - oy
		if i < 0 || i >= len(overlay) {
			lines[y] = c.renderRow(styles, y, 0, c.width)
			continue
		}
		line := overlay[i]
		w := lipgloss.Width(line)
		from := clamp(ox, 0, c.width)
		to := clamp(ox+w, 0, c.width)
		lines[y] = c.renderRow(styles, y, 0, from) + line + c.renderRow(styles, y, to, c.width)
	}
	return strings.Join(lines, "\n")
}

func (c *canvas) renderRow(styles ui.Styles, y, from, to int) string {
	var b strings.Builder
	for x := from; x < to; {
		kind := c.kinds[y][x]
		end := x
		for end < to && c.kinds[y][end] == kind {
			end++
		}
		b.WriteString(styleFor(styles, kind).Render(string(c.runes[y][x:end])))
		x = end
	}
	return b.String()
}

func styleFor(styles ui.Styles, kind cellKind) lipgloss.Style {
	switch kind {
	case cellRegion:
		return styles.Region
	case cellLabel:
		return styles.RegionLabel
	case cellDimmed:
		return styles.Dimmed
	case cellHighlight:
		return styles.Highlight
	default:
		return lipgloss.NewStyle()
	}
}

// String returns the canvas without styling.
func (c *canvas) String() string {
	lines := make([]string, c.height)
	for y := range c.runes {
		lines[y] = string(c.runes[y])
	}
	return strings.Join(lines, "\n")
}
