package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
)

func TestValidateGotoInput(t *testing.T) {
	t.Parallel()

	active := tour.Snapshot{IsActive: true, TotalSteps: 3}

	tests := []struct {
		name string
		step int
		snap tour.Snapshot
		code string
		err  error
	}{
		{name: "first step", step: 0, snap: active},
		{name: "last step", step: 2, snap: active},
		{name: "negative", step: -1, snap: active, code: config.ErrCodeStepOutOfRange},
		{name: "past the end", step: 3, snap: active, code: config.ErrCodeStepOutOfRange},
		{name: "inactive tour", step: 0, snap: tour.Snapshot{TotalSteps: 3}, err: ErrTourInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := GotoInput{Step: tt.step}
			err := ValidateGotoInput(&in, tt.snap)
			switch {
			case tt.code != "":
				assert.True(t, config.IsUserError(err, tt.code))
				assert.Equal(t, "Use a value between 0 and 2.", config.GetUserError(err).Suggestion)
			case tt.err != nil:
				assert.ErrorIs(t, err, tt.err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCompleteInput(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ValidateCompleteInput(&CompleteInput{}), ErrConfirmationRequired)
	assert.NoError(t, ValidateCompleteInput(&CompleteInput{Confirm: true}))
}
