package testutil

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAssertFileHelpers(t *testing.T) {
	t.Parallel()

	path := WriteTempFile(t, t.TempDir(), "tour.yaml", "id: intro\n")
	AssertFileExists(t, path)
	AssertFileContains(t, path, "intro")
}

func TestAssertYAMLEquals(t *testing.T) {
	t.Parallel()

	AssertYAMLEquals(t, "id: intro\ntitle: Intro\n", "title: Intro\nid: intro\n")
}

func TestAssertEventually(t *testing.T) {
	t.Parallel()

	var ready atomic.Bool
	go func() {
		time.Sleep(20 * time.Millisecond)
		ready.Store(true)
	}()
	AssertEventually(t, ready.Load, time.Second)
}
