package domain

import (
	"image"

	"boxgrip/internal/selection"
)

// Box is a rectangular element placed on the canvas
type Box struct {
	ID     selection.ElementID
	Label  string
	Bounds image.Rectangle // canvas cells, Max exclusive

	Selected bool             // selection indicator as last displayed
	Cursor   selection.Cursor // cursor requested for the box
}

// Layout is a snapshot of every box, in stacking order (bottom first)
type Layout struct {
	Boxes []Box
}

// Find returns the box with the given id
func (l Layout) Find(id selection.ElementID) (Box, bool) {
	for _, b := range l.Boxes {
		if b.ID == id {
			return b, true
		}
	}
	return Box{}, false
}

// Status summarizes the canvas for the status line
type Status struct {
	Managed  int
	Selected int
	Gesture  string // "idle", "rectangle", "pressed <id>" or "dragging <id>"
}
