package coordinator

import (
	"image"

	"boxgrip/internal/logic"
	"boxgrip/internal/selection"
)

// Canvas renders manager decisions into the element store. Rubber band,
// containment and translation come from the embedded Adapter; Canvas
// records what changed so the coordinator can publish domain events once
// per pointer event.
type Canvas struct {
	selection.Adapter

	store logic.ElementStore

	selectionChanged bool
	moved            []selection.ElementID
	dx, dy           int
	layoutDirty      bool
}

// NewCanvas creates a canvas over store
func NewCanvas(store logic.ElementStore) *Canvas {
	c := &Canvas{store: store}
	c.Geometry = store
	return c
}

func (c *Canvas) DisplaySelectionStatus(id selection.ElementID, selected bool) {
	if b, ok := c.store.Get(id); ok && b.Selected != selected {
		c.selectionChanged = true
	}
	c.store.SetSelected(id, selected)
}

// SelectComponentsInSelectionRectangle commits the band as drawn: both
// corner cells belong to it, so Max grows by one cell.
func (c *Canvas) SelectComponentsInSelectionRectangle(r image.Rectangle) {
	c.Adapter.SelectComponentsInSelectionRectangle(CellRect(r))
}

// CellRect converts a band between two corner cells into the rectangle of
// cells it covers.
func CellRect(r image.Rectangle) image.Rectangle {
	return image.Rectangle{Min: r.Min, Max: r.Max.Add(image.Pt(1, 1))}
}

func (c *Canvas) Translate(id selection.ElementID, dx, dy int) {
	c.Adapter.Translate(id, dx, dy)
	c.moved = append(c.moved, id)
	c.dx, c.dy = dx, dy
	c.layoutDirty = true
}

func (c *Canvas) SetCursor(id selection.ElementID, cur selection.Cursor) {
	c.store.SetCursor(id, cur)
}

// changes is what happened on the canvas since the last drain
type changes struct {
	selection bool
	moved     []selection.ElementID
	dx, dy    int
	layout    bool
}

// drain returns and clears the recorded changes. The layout flag is kept
// while a gesture is in progress so that a drag reports one layout change
// when it ends.
func (c *Canvas) drain(busy bool) changes {
	ch := changes{
		selection: c.selectionChanged,
		moved:     c.moved,
		dx:        c.dx,
		dy:        c.dy,
		layout:    c.layoutDirty && !busy,
	}
	c.selectionChanged = false
	c.moved = nil
	c.dx, c.dy = 0, 0
	if ch.layout {
		c.layoutDirty = false
	}
	return ch
}

func (c *Canvas) markLayoutDirty() {
	c.layoutDirty = true
}
