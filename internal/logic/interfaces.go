package logic

import (
	"errors"
	"image"

	"boxgrip/internal/domain"
	"boxgrip/internal/selection"
)

// ErrDuplicateBox is returned when a box id is already in the store
var ErrDuplicateBox = errors.New("box already exists")

// ErrUnknownBox is returned for ids that are not in the store
var ErrUnknownBox = errors.New("unknown box")

// ElementStore provides access to the boxes placed on the canvas. It is the
// geometry registry the selection engine translates elements in.
type ElementStore interface {
	selection.Geometry

	Get(id selection.ElementID) (domain.Box, bool)
	Layout() domain.Layout
	IDs() []selection.ElementID
	Add(box domain.Box) error
	Remove(id selection.ElementID) error
	HitTest(p image.Point) (selection.ElementID, bool)
	SetSelected(id selection.ElementID, selected bool)
	SetCursor(id selection.ElementID, c selection.Cursor)
	Len() int
}
