package tour

import "github.com/felixgeelhaar/tourguide/internal/ports"

// ResolveTarget returns the live element for the current step, or nil.
//
// A dormant tour holds no target whatever the registry says. An active tour
// looks up the current step's locator and queries the finder once; a missing
// registration (the step has not mounted yet) or a missing element both
// yield nil.
func ResolveTarget(registry *Registry, currentStep int, isActive bool, finder ports.ElementFinder) ports.ElementRef {
	if !isActive || registry == nil || finder == nil {
		return nil
	}
	locator, ok := registry.Lookup(currentStep)
	if !ok || locator == "" {
		return nil
	}
	ref, ok := finder.FindElement(locator)
	if !ok {
		return nil
	}
	return ref
}
