package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTourBuilder_ToYAML(t *testing.T) {
	t.Parallel()

	got := NewTourBuilder("intro").
		WithTitle("Intro").
		WithSpotlight().
		WithDialog("#a", "First", "Hello").
		WithPlacedDialog("#b", "Second", "top").
		WithRegion("a", 0, 0, 10, 5).
		ToYAML()

	AssertYAMLEquals(t, `
schema: v1.0.0
id: intro
title: Intro
initial_step: 0
default_active: true
children:
  - kind: spotlight
  - kind: dialog
    target: "#a"
    title: First
    body: Hello
  - kind: dialog
    target: "#b"
    title: Second
    placement: top
layout:
  - id: a
    left: 0
    top: 0
    width: 10
    height: 5
`, got)
}

func TestTourBuilder_Inactive(t *testing.T) {
	t.Parallel()

	got := NewTourBuilder("x").Inactive().WithInitialStep(2).ToYAML()
	assert.Contains(t, got, "default_active: false")
	assert.Contains(t, got, "initial_step: 2")
}
