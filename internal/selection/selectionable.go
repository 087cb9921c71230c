package selection

import "image"

// Selectionable is implemented by the host to render what the manager
// decides. Rectangles are always normalized: Min is the top-left corner and
// Max the bottom-right one.
type Selectionable interface {
	// ChangeSelectionRect reports the rubber band of an active rectangle
	// gesture. It must be drawn until KillSelectionRect is called.
	ChangeSelectionRect(r image.Rectangle)

	// KillSelectionRect reports that there is no rubber band to draw.
	KillSelectionRect()

	// Translate moves one element by (dx, dy).
	Translate(id ElementID, dx, dy int)

	// DisplaySelectionStatus updates the selection indicator of one element.
	DisplaySelectionStatus(id ElementID, selected bool)

	// SelectComponentsInSelectionRectangle commits a rectangle gesture by
	// adding the elements it covers to the selection. See Adapter for the
	// default policy.
	SelectComponentsInSelectionRectangle(r image.Rectangle)

	// WorkFor is called once by New so that the implementation can reach
	// back into its manager. It may do nothing.
	WorkFor(m *Manager)
}

// Cursor is the pointer appearance requested for an element.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	// CursorMove is shown while the pointer hovers a managed element.
	CursorMove
	// CursorPressed is shown while a press on the element is in progress.
	CursorPressed
)

func (c Cursor) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorPressed:
		return "pressed"
	default:
		return "default"
	}
}

// CursorSetter is an optional capability of a Selectionable. When present,
// element controllers use it to update cursor appearance.
type CursorSetter interface {
	SetCursor(id ElementID, c Cursor)
}

// GestureState is the state of one element's gesture controller.
type GestureState uint8

const (
	GestureIdle GestureState = iota
	// GesturePressed means the primary button went down on the element.
	GesturePressed
	// GestureDragging means at least one non-zero motion was applied.
	GestureDragging
)

func (s GestureState) String() string {
	switch s {
	case GesturePressed:
		return "pressed"
	case GestureDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// FullyInside reports whether b lies entirely within r, edges included.
func FullyInside(b, r image.Rectangle) bool {
	return b.Min.X >= r.Min.X && b.Min.Y >= r.Min.Y &&
		b.Max.X <= r.Max.X && b.Max.Y <= r.Max.Y
}
