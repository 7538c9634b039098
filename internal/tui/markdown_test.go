package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdown_Render(t *testing.T) {
	var md markdown

	assert.Empty(t, md.render("   ", 30))

	out := stripANSI(md.render("Open the **sidebar** to browse files.", 30))
	assert.Contains(t, out, "sidebar")
	assert.NotEqual(t, '\n', rune(out[0]))

	first := md.renderer
	md.render("again", 30)
	assert.Same(t, first, md.renderer)

	md.render("narrow", 3)
	assert.Equal(t, 10, md.width)
}

func TestTidy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  a\n  b", tidy("\n\n  a   \n  b \n\n"))
}
