package mcp

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
)

// ErrTourInactive is returned by tools that need an active tour.
var ErrTourInactive = errors.New("tour is not active; call tour_start first")

// ErrConfirmationRequired is returned when a destructive tool is called
// without confirm=true.
var ErrConfirmationRequired = errors.New("confirm must be true")

// ValidateGotoInput checks the step against the live tour. The controller
// ignores out-of-range jumps; agents get an error instead.
func ValidateGotoInput(in *GotoInput, snap tour.Snapshot) error {
	if !snap.IsActive {
		return ErrTourInactive
	}
	if in.Step < 0 || in.Step >= snap.TotalSteps {
		return config.NewUserError(config.ErrCodeStepOutOfRange,
			fmt.Sprintf("step %d is outside the %d dialog step(s)", in.Step, snap.TotalSteps)).
			WithContext("step").
			WithSuggestion(fmt.Sprintf("Use a value between 0 and %d.", max(snap.TotalSteps-1, 0)))
	}
	return nil
}

// ValidateCompleteInput validates CompleteInput fields.
func ValidateCompleteInput(in *CompleteInput) error {
	if !in.Confirm {
		return ErrConfirmationRequired
	}
	return nil
}
