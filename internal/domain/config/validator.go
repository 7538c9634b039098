package config

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Validator checks a parsed definition for problems the decoder cannot see.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns every problem found in def. The list is empty when the
// definition is usable.
func (v *Validator) Validate(def *Definition) *ErrorList {
	errs := NewErrorList()

	if !SupportedSchema(def.Schema) {
		errs.Add(NewSchemaError(def.Schema))
	}
	if strings.TrimSpace(def.ID) == "" {
		errs.AddValidation("id", "tour id is required", "Add 'id: my-tour'; progress is recorded per id.")
	}

	v.validateChildren(def, errs)
	v.validateLayout(def, errs)

	steps := def.StepCount()
	switch {
	case def.InitialStep < 0:
		errs.AddValidation("initial_step", "must not be negative", "")
	case steps > 0 && def.InitialStep >= steps:
		errs.Add(NewStepOutOfRangeError(def.InitialStep, steps))
	}

	return errs
}

func (v *Validator) validateChildren(def *Definition, errs *ErrorList) {
	if def.StepCount() == 0 {
		errs.AddValidation("children", "a tour needs at least one dialog", "Add an entry with 'kind: dialog' and a 'target'.")
	}

	placements := make([]string, len(Placements))
	for i, p := range Placements {
		placements[i] = string(p)
	}

	spotlights := 0
	for i, c := range def.Children {
		field := fmt.Sprintf("children[%d]", i)
		switch c.Kind {
		case KindDialog:
			if strings.TrimSpace(c.Target) == "" {
				errs.AddValidation(field+".target", "dialog has no target",
					`Set the locator of the element it points at, quoted: target: "#sidebar".`)
			}
			if _, ok := ParsePlacement(c.Placement); !ok {
				errs.Add(NewUnknownValueError(field+".placement", c.Placement, placements))
			}
			if c.Offset != nil && *c.Offset < 0 {
				errs.AddValidation(field+".offset", "must not be negative", "")
			}
		case KindSpotlight:
			spotlights++
			if c.Spacing != nil && *c.Spacing < 0 {
				errs.AddValidation(field+".spacing", "must not be negative", "")
			}
			if spotlights > 1 {
				errs.AddValidation(field, "only one spotlight is rendered", "Remove the extra spotlight entries.")
			}
		case "":
			errs.AddValidation(field+".kind", "kind is required", "Use 'kind: dialog' or 'kind: spotlight'.")
		default:
			errs.Add(NewUnknownValueError(field+".kind", c.Kind, Kinds))
		}
	}
}

func (v *Validator) validateLayout(def *Definition, errs *ErrorList) {
	seen := make(map[string]bool, len(def.Layout))
	for i, r := range def.Layout {
		field := fmt.Sprintf("layout[%d]", i)
		if r.ID == "" {
			errs.AddValidation(field+".id", "region id is required", "")
			continue
		}
		if seen[r.ID] {
			errs.AddValidation(field+".id", fmt.Sprintf("duplicate region id %q", r.ID), "")
		}
		seen[r.ID] = true
		if r.Width <= 0 || r.Height <= 0 {
			errs.AddValidation(field, "width and height must be positive", "")
		}
		if r.Left < 0 || r.Top < 0 {
			errs.AddValidation(field, "left and top must not be negative", "")
		}
	}

	if len(def.Layout) == 0 {
		return
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for i, c := range def.Children {
		if c.Kind != KindDialog || c.Target == "" {
			continue
		}
		id := strings.TrimPrefix(c.Target, "#")
		if seen[id] {
			continue
		}
		e := NewUserError(ErrCodeValidationFailed,
			fmt.Sprintf("children[%d].target: no layout region %q", i, id)).
			WithContext(fmt.Sprintf("children[%d].target", i))
		if guess := Suggest(id, ids); guess != "" {
			e = e.WithSuggestion(fmt.Sprintf("Did you mean %q?", "#"+guess))
		}
		errs.Add(e)
	}
}

// FileResult is the outcome of validating one file.
type FileResult struct {
	Path       string
	Definition *Definition
	Err        error
}

// ValidateFiles loads and validates several definitions concurrently.
// Results keep the order of paths; the returned error is only set when ctx
// is cancelled.
func ValidateFiles(ctx context.Context, loader *Loader, paths []string, limit int) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	v := NewValidator()
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := FileResult{Path: path}
			def, err := loader.Load(path)
			if err != nil {
				res.Err = err
			} else {
				res.Definition = def
				res.Err = v.Validate(def).AsError()
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
