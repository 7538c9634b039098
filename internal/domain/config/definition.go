// Package config loads and validates tour definitions: the file that lists a
// tour's dialogs, its spotlight and, for headless hosts, the screen regions
// the dialogs point at.
package config

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
)

// SchemaVersion is the definition schema this build writes.
const SchemaVersion = "v1.0.0"

// DefaultDefinitionFile is looked up in the working directory when no path
// is given.
const DefaultDefinitionFile = "tourguide.yaml"

// Child kinds.
const (
	KindDialog    = "dialog"
	KindSpotlight = "spotlight"
)

// Kinds lists every child kind.
var Kinds = []string{KindDialog, KindSpotlight}

// Placement says on which side of its target a dialog opens.
type Placement string

// Placements.
const (
	PlacementBottom Placement = "bottom"
	PlacementTop    Placement = "top"
	PlacementLeft   Placement = "left"
	PlacementRight  Placement = "right"
	PlacementAuto   Placement = "auto"
)

// Placements lists every placement.
var Placements = []Placement{PlacementBottom, PlacementTop, PlacementLeft, PlacementRight, PlacementAuto}

// ParsePlacement parses a placement name. The empty string is the default.
func ParsePlacement(s string) (Placement, bool) {
	if s == "" {
		return PlacementBottom, true
	}
	p := Placement(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Placements {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// Defaults applied by the loader.
const (
	DefaultDialogOffset     = 1
	DefaultSpotlightSpacing = 1
)

// Definition is a parsed tour definition file.
type Definition struct {
	Schema        string      `yaml:"schema" toml:"schema"`
	ID            string      `yaml:"id" toml:"id"`
	Title         string      `yaml:"title,omitempty" toml:"title,omitempty"`
	Description   string      `yaml:"description,omitempty" toml:"description,omitempty"`
	InitialStep   int         `yaml:"initial_step" toml:"initial_step"`
	DefaultActive bool        `yaml:"default_active" toml:"default_active"`
	ClampOnShrink bool        `yaml:"clamp_on_shrink,omitempty" toml:"clamp_on_shrink,omitempty"`
	Children      []ChildSpec `yaml:"children" toml:"children"`
	Layout        []Region    `yaml:"layout,omitempty" toml:"layout,omitempty"`

	// Source is the file the definition was loaded from.
	Source string `yaml:"-" toml:"-"`
}

// ChildSpec is one entry of the children list. Which fields apply depends on
// Kind.
type ChildSpec struct {
	Kind string `yaml:"kind" toml:"kind"`

	// dialog
	Target    string `yaml:"target,omitempty" toml:"target,omitempty"`
	Title     string `yaml:"title,omitempty" toml:"title,omitempty"`
	Body      string `yaml:"body,omitempty" toml:"body,omitempty"`
	Placement string `yaml:"placement,omitempty" toml:"placement,omitempty"`
	Offset    *int   `yaml:"offset,omitempty" toml:"offset,omitempty"`

	// spotlight
	Spacing      *int `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	CloseOnClick bool `yaml:"close_on_click,omitempty" toml:"close_on_click,omitempty"`
	HideOverlay  bool `yaml:"hide_overlay,omitempty" toml:"hide_overlay,omitempty"`
}

// Region is a named rectangle on the host screen that dialogs can target.
type Region struct {
	ID     string `yaml:"id" toml:"id"`
	Label  string `yaml:"label,omitempty" toml:"label,omitempty"`
	Left   int    `yaml:"left" toml:"left"`
	Top    int    `yaml:"top" toml:"top"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// Dialog is a step-bearing child: a dialog anchored to a target element.
type Dialog struct {
	Target    string
	Title     string
	Body      string
	Placement Placement
	Offset    int
}

// StepTarget implements tour.Stepper.
func (d Dialog) StepTarget() string {
	return d.Target
}

// Spotlight is the decorative child that highlights the current target.
type Spotlight struct {
	Spacing      int
	CloseOnClick bool
	HideOverlay  bool
}

// StepCount returns the number of dialog children.
func (d *Definition) StepCount() int {
	n := 0
	for _, c := range d.Children {
		if c.Kind == KindDialog {
			n++
		}
	}
	return n
}

// Dialogs returns the dialog children in step order.
func (d *Definition) Dialogs() []Dialog {
	var out []Dialog
	for _, c := range d.BuildChildren() {
		if dlg, ok := c.(Dialog); ok {
			out = append(out, dlg)
		}
	}
	return out
}

// BuildChildren converts the children list into the values a tour renders.
// Entries of unknown kind are skipped; Validate reports them.
func (d *Definition) BuildChildren() []tour.Child {
	out := make([]tour.Child, 0, len(d.Children))
	for _, c := range d.Children {
		switch c.Kind {
		case KindDialog:
			placement, ok := ParsePlacement(c.Placement)
			if !ok {
				placement = PlacementBottom
			}
			out = append(out, Dialog{
				Target:    c.Target,
				Title:     c.Title,
				Body:      c.Body,
				Placement: placement,
				Offset:    intOr(c.Offset, DefaultDialogOffset),
			})
		case KindSpotlight:
			out = append(out, Spotlight{
				Spacing:      intOr(c.Spacing, DefaultSpotlightSpacing),
				CloseOnClick: c.CloseOnClick,
				HideOverlay:  c.HideOverlay,
			})
		}
	}
	return out
}

// Spotlight returns the first spotlight child, if any.
func (d *Definition) Spotlight() (Spotlight, bool) {
	for _, c := range d.BuildChildren() {
		if s, ok := c.(Spotlight); ok {
			return s, true
		}
	}
	return Spotlight{}, false
}

// TourOptions maps the definition onto controller options. Hooks, finder,
// handle and logger are left to the caller.
func (d *Definition) TourOptions() tour.Options {
	return tour.Options{
		ID:              d.ID,
		DefaultIsActive: d.DefaultActive,
		InitialStep:     d.InitialStep,
		ClampOnShrink:   d.ClampOnShrink,
	}
}

// String identifies the definition in messages.
func (d *Definition) String() string {
	if d.Title != "" {
		return fmt.Sprintf("%s (%s)", d.Title, d.ID)
	}
	return d.ID
}

// normalizeSchema accepts "1", "1.2" and "v1.2.0" alike.
func normalizeSchema(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return SchemaVersion
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// SupportedSchema reports whether this build reads schema version v.
func SupportedSchema(v string) bool {
	v = normalizeSchema(v)
	return semver.IsValid(v) && semver.Major(v) == semver.Major(SchemaVersion)
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
