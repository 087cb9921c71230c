package selection

import "image"

// Geometry gives the Adapter access to element bounds in the host registry.
type Geometry interface {
	Bounds(id ElementID) (image.Rectangle, bool)
	Move(id ElementID, dx, dy int)
}

// Adapter is a partial Selectionable meant to be embedded. It keeps the
// rubber band for the host's renderer, commits rectangle selections with
// the fully-inside policy and translates elements through Geometry.
// Embedders provide DisplaySelectionStatus.
type Adapter struct {
	Geometry Geometry

	manager *Manager
	active  bool
	rect    image.Rectangle
}

// WorkFor remembers the manager; SelectComponentsInSelectionRectangle needs it.
func (a *Adapter) WorkFor(m *Manager) {
	a.manager = m
}

// Manager returns the manager set by WorkFor.
func (a *Adapter) Manager() *Manager {
	return a.manager
}

func (a *Adapter) ChangeSelectionRect(r image.Rectangle) {
	a.active = true
	a.rect = r
}

func (a *Adapter) KillSelectionRect() {
	a.active = false
	a.rect = image.Rectangle{}
}

// SelectionRect returns the rubber band to draw, if one is active.
func (a *Adapter) SelectionRect() (image.Rectangle, bool) {
	return a.rect, a.active
}

// SelectComponentsInSelectionRectangle adds every managed element whose
// bounds are fully inside r to the selection. Elements that only intersect
// r are left alone.
func (a *Adapter) SelectComponentsInSelectionRectangle(r image.Rectangle) {
	if a.manager == nil {
		fail("SelectComponentsInSelectionRectangle", "", "adapter is not bound to a manager, WorkFor was not called")
	}
	for _, id := range a.manager.Managed() {
		b, ok := a.Geometry.Bounds(id)
		if ok && FullyInside(b, r) {
			a.manager.AddToSelection(id)
		}
	}
}

func (a *Adapter) Translate(id ElementID, dx, dy int) {
	a.Geometry.Move(id, dx, dy)
}
