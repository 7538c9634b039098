package testutil

import (
	"fmt"
	"strings"
)

type testDialog struct {
	target    string
	title     string
	body      string
	placement string
}

type testRegion struct {
	id                       string
	left, top, width, height int
}

// TourBuilder writes tour definition YAML for tests.
type TourBuilder struct {
	id            string
	title         string
	initialStep   int
	defaultActive bool
	spotlight     bool
	dialogs       []testDialog
	regions       []testRegion
}

// NewTourBuilder starts a definition with the given id, active by default.
func NewTourBuilder(id string) *TourBuilder {
	return &TourBuilder{id: id, defaultActive: true}
}

// WithTitle sets the title.
func (b *TourBuilder) WithTitle(title string) *TourBuilder {
	b.title = title
	return b
}

// WithInitialStep sets the initial step.
func (b *TourBuilder) WithInitialStep(step int) *TourBuilder {
	b.initialStep = step
	return b
}

// Inactive makes the tour start dismissed.
func (b *TourBuilder) Inactive() *TourBuilder {
	b.defaultActive = false
	return b
}

// WithSpotlight adds a spotlight child before the dialogs.
func (b *TourBuilder) WithSpotlight() *TourBuilder {
	b.spotlight = true
	return b
}

// WithDialog adds a dialog step.
func (b *TourBuilder) WithDialog(target, title, body string) *TourBuilder {
	b.dialogs = append(b.dialogs, testDialog{target: target, title: title, body: body})
	return b
}

// WithPlacedDialog adds a dialog step with an explicit placement.
func (b *TourBuilder) WithPlacedDialog(target, title, placement string) *TourBuilder {
	b.dialogs = append(b.dialogs, testDialog{target: target, title: title, placement: placement})
	return b
}

// WithRegion adds a layout region.
func (b *TourBuilder) WithRegion(id string, left, top, width, height int) *TourBuilder {
	b.regions = append(b.regions, testRegion{id, left, top, width, height})
	return b
}

// ToYAML renders the definition.
func (b *TourBuilder) ToYAML() string {
	var sb strings.Builder

	sb.WriteString("schema: v1.0.0\n")
	fmt.Fprintf(&sb, "id: %s\n", b.id)
	if b.title != "" {
		fmt.Fprintf(&sb, "title: %q\n", b.title)
	}
	fmt.Fprintf(&sb, "initial_step: %d\n", b.initialStep)
	fmt.Fprintf(&sb, "default_active: %t\n", b.defaultActive)

	sb.WriteString("children:\n")
	if b.spotlight {
		sb.WriteString("  - kind: spotlight\n")
	}
	for _, d := range b.dialogs {
		sb.WriteString("  - kind: dialog\n")
		fmt.Fprintf(&sb, "    target: %q\n", d.target)
		if d.title != "" {
			fmt.Fprintf(&sb, "    title: %q\n", d.title)
		}
		if d.body != "" {
			fmt.Fprintf(&sb, "    body: %q\n", d.body)
		}
		if d.placement != "" {
			fmt.Fprintf(&sb, "    placement: %s\n", d.placement)
		}
	}

	if len(b.regions) > 0 {
		sb.WriteString("layout:\n")
		for _, r := range b.regions {
			fmt.Fprintf(&sb, "  - id: %s\n    left: %d\n    top: %d\n    width: %d\n    height: %d\n",
				r.id, r.left, r.top, r.width, r.height)
		}
	}

	return sb.String()
}
