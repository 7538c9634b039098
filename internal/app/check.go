package app

import (
	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// CheckResult is the outcome of resolving one step against a document.
type CheckResult struct {
	Step   int
	Title  string
	Target string
	Found  bool
	Box    ports.Rect
}

// Check resolves every dialog of def against doc, the way an active tour
// would when it reaches each step.
func Check(def *config.Definition, doc ports.Document) []CheckResult {
	dialogs := def.Dialogs()
	out := make([]CheckResult, 0, len(dialogs))
	for i, d := range dialogs {
		res := CheckResult{Step: i, Title: d.Title, Target: d.Target}
		if ref, ok := doc.FindElement(d.Target); ok {
			res.Found = true
			if box, ok := doc.BoundingBox(ref); ok {
				res.Box = box
			}
		}
		out = append(out, res)
	}
	return out
}

// PrintCheck writes the results and returns how many targets are missing.
func (t *Tourguide) PrintCheck(results []CheckResult) int {
	missing := 0
	for _, r := range results {
		if r.Found {
			t.printf("✓ step %d %-20s %s %s\n", r.Step+1, r.Target, r.Box, r.Title)
			continue
		}
		missing++
		t.printf("✗ step %d %-20s not found %s\n", r.Step+1, r.Target, r.Title)
	}
	return missing
}
