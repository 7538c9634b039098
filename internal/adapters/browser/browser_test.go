package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!doctype html>
<html><body style="margin:0">
<div id="sidebar" style="position:absolute;left:0;top:0;width:200px;height:100px">files</div>
<div class="a'b" style="width:10px;height:10px"></div>
</body></html>`

func findChrome(t *testing.T) {
	t.Helper()
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return
		}
	}
	t.Skip("no Chrome binary available")
}

func TestPage_ResolvesSelectors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	findChrome(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testPage))
	}))
	defer srv.Close()

	page, err := Open(context.Background(), srv.URL, Options{Headless: true})
	require.NoError(t, err)
	defer page.Close()

	ref, ok := page.FindElement("#sidebar")
	require.True(t, ok)
	assert.Equal(t, "#sidebar", ref.Locator())

	box, ok := page.BoundingBox(ref)
	require.True(t, ok)
	assert.Equal(t, float64(200), box.Width)
	assert.Equal(t, float64(100), box.Height)

	_, ok = page.FindElement("#missing")
	assert.False(t, ok)

	_, ok = page.FindElement(`.a\'b`)
	assert.True(t, ok, "selectors are passed to the page as JSON strings")
}

func TestPage_MeasureEmptySelector(t *testing.T) {
	p := &Page{}
	_, _, err := p.Measure("")
	assert.Error(t, err)
}
