package ui

import "time"

// Default overlay dimensions.
const (
	// DefaultWidth and DefaultHeight size the screen until the terminal
	// reports its real size.
	DefaultWidth  = 80
	DefaultHeight = 24

	// DialogWidth is the preferred dialog width including its border.
	DialogWidth = 44

	// DialogMinWidth is the narrowest dialog that still fits its buttons.
	DialogMinWidth = 28

	// StatusTTL is how long a status message stays on the help line.
	StatusTTL = 3 * time.Second
)
