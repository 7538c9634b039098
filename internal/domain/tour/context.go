package tour

import (
	"context"
	"errors"
	"fmt"
)

// ErrOutsideTour is returned when a step or spotlight looks up its tour but
// no mounted controller was published on the context.
var ErrOutsideTour = errors.New("tour scope used outside a mounted tour controller: render the component inside a tour, or pass the controller's context to it")

type controllerKey struct{}

// WithController publishes c to everything rendered with the returned context.
func WithController(ctx context.Context, c *Controller) context.Context {
	return context.WithValue(ctx, controllerKey{}, c)
}

// FromContext returns the scope published by the nearest controller.
func FromContext(ctx context.Context) (Scope, error) {
	c, ok := ctx.Value(controllerKey{}).(*Controller)
	if !ok || c == nil || !c.Mounted() {
		return nil, ErrOutsideTour
	}
	return c, nil
}

// MustFromContext is FromContext for component code where a missing tour is
// a programming error.
func MustFromContext(ctx context.Context) Scope {
	s, err := FromContext(ctx)
	if err != nil {
		panic(fmt.Errorf("tour: %w", err))
	}
	return s
}
