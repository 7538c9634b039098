package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/domain/tour"
)

func intPtr(v int) *int { return &v }

func TestParsePlacement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want config.Placement
		ok   bool
	}{
		{"", config.PlacementBottom, true},
		{"top", config.PlacementTop, true},
		{" Right ", config.PlacementRight, true},
		{"auto", config.PlacementAuto, true},
		{"middle", "", false},
	}
	for _, tt := range tests {
		got, ok := config.ParsePlacement(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSupportedSchema(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "1", "v1", "1.2.0", "v1.0.0"} {
		assert.True(t, config.SupportedSchema(v), v)
	}
	for _, v := range []string{"v2.0.0", "0.9", "banana"} {
		assert.False(t, config.SupportedSchema(v), v)
	}
}

func TestDefinition_BuildChildren(t *testing.T) {
	t.Parallel()

	def := &config.Definition{
		ID: "intro",
		Children: []config.ChildSpec{
			{Kind: config.KindSpotlight, HideOverlay: true},
			{Kind: config.KindDialog, Target: "#a", Title: "A"},
			{Kind: "mystery"},
			{Kind: config.KindDialog, Target: "#b", Placement: "left", Offset: intPtr(3)},
		},
	}

	children := def.BuildChildren()
	require.Len(t, children, 3)
	assert.Equal(t, config.Spotlight{Spacing: config.DefaultSpotlightSpacing, HideOverlay: true}, children[0])
	assert.Equal(t, config.Dialog{Target: "#a", Title: "A", Placement: config.PlacementBottom, Offset: config.DefaultDialogOffset}, children[1])
	assert.Equal(t, config.Dialog{Target: "#b", Placement: config.PlacementLeft, Offset: 3}, children[2])

	assert.Equal(t, 2, def.StepCount())
	assert.Equal(t, 2, tour.CountSteps(children), "dialogs are the step-bearing children")

	dialogs := def.Dialogs()
	require.Len(t, dialogs, 2)
	assert.Equal(t, "#b", dialogs[1].StepTarget())

	spot, ok := def.Spotlight()
	assert.True(t, ok)
	assert.True(t, spot.HideOverlay)
}

func TestDefinition_TourOptions(t *testing.T) {
	t.Parallel()

	def := &config.Definition{ID: "intro", InitialStep: 2, DefaultActive: true, ClampOnShrink: true}
	opts := def.TourOptions()

	assert.Equal(t, "intro", opts.ID)
	assert.Equal(t, 2, opts.InitialStep)
	assert.True(t, opts.DefaultIsActive)
	assert.True(t, opts.ClampOnShrink)
}

func TestDefinition_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "intro", (&config.Definition{ID: "intro"}).String())
	assert.Equal(t, "Intro (intro)", (&config.Definition{ID: "intro", Title: "Intro"}).String())
}
