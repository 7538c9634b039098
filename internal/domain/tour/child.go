package tour

// Child is anything placed inside a tour: dialogs, the spotlight, or any
// other host element.
type Child = any

// Stepper is the marker implemented by step-bearing children. Children that
// do not implement it (the spotlight, decorations) take no step position.
type Stepper interface {
	// StepTarget returns the locator of the element the step anchors to.
	StepTarget() string
}

// Annotated is a child as handed back to the presentational layer after a
// render: its step index (-1 for decorative children) and whether its step is
// the one being shown.
type Annotated struct {
	Child     Child
	Index     int
	IsStep    bool
	IsCurrent bool
}

// Locator returns the step's target locator, or "" for decorative children.
func (a Annotated) Locator() string {
	if s, ok := a.Child.(Stepper); ok {
		return s.StepTarget()
	}
	return ""
}

// CountSteps returns the number of step-bearing children.
func CountSteps(children []Child) int {
	total := 0
	for _, c := range children {
		if _, ok := c.(Stepper); ok {
			total++
		}
	}
	return total
}

// Annotate numbers step-bearing children in declaration order and flags the
// current one. Decorative children keep their position in the output with
// Index -1.
func Annotate(children []Child, currentStep int, isActive bool) []Annotated {
	out := make([]Annotated, 0, len(children))
	index := 0
	for _, c := range children {
		if c == nil {
			continue
		}
		if _, ok := c.(Stepper); !ok {
			out = append(out, Annotated{Child: c, Index: -1})
			continue
		}
		out = append(out, Annotated{
			Child:     c,
			Index:     index,
			IsStep:    true,
			IsCurrent: isActive && index == currentStep,
		})
		index++
	}
	return out
}
