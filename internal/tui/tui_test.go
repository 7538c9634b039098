package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunTour_RequiresSessionAndScreen(t *testing.T) {
	session, opts := gettingStarted(t)

	tests := []struct {
		name string
		opts TourOptions
	}{
		{"empty options", TourOptions{}},
		{"missing screen", TourOptions{Session: session}},
		{"missing session", TourOptions{Screen: opts.Screen}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RunTour(context.Background(), tt.opts)
			assert.ErrorIs(t, err, ErrNoSession)
			assert.Nil(t, result)
		})
	}
}

func TestTourModel_Result(t *testing.T) {
	_, opts := gettingStarted(t)
	m := newTourModel(opts)

	assert.Equal(t, TourResult{Active: true, Step: 0}, m.Result())

	m, _ = press(m, runes("n"))
	assert.Equal(t, TourResult{Active: true, Step: 1}, m.Result())

	m, _ = press(m, runes("f"))
	got := m.Result()
	assert.True(t, got.Completed)
	assert.False(t, got.Active)
	assert.False(t, got.Quit)

	m, _ = press(m, runes("q"))
	assert.True(t, m.Result().Quit)
}
