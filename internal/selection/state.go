package selection

import "boxgrip/internal/pointer"

// Manage puts id under the manager's responsibility and attaches its
// element listener. An element may be managed by at most one manager.
func (m *Manager) Manage(id ElementID) {
	m.mustBeLive("Manage", id)
	if m.managed.Has(id) {
		fail("Manage", id, "element is already managed")
	}
	c := &elementController{m: m, id: id}
	if err := m.binder.Attach(pointer.ElementTarget(string(id)), m.tag, c); err != nil {
		fail("Manage", id, err.Error())
	}
	m.managed.Add(id)
	m.elements[id] = c
}

// Unmanage withdraws id from the manager: it is deselected, its gesture is
// dropped and its listener detached.
func (m *Manager) Unmanage(id ElementID) {
	if !m.managed.Has(id) {
		fail("Unmanage", id, "element is not managed")
	}
	m.release(id)
	m.managed.Remove(id)
}

// UnmanageAll unmanages every element and detaches the container listener.
// The manager cannot be used afterwards.
func (m *Manager) UnmanageAll() {
	if m.discarded {
		fail("UnmanageAll", "", "manager was already discarded")
	}
	for _, id := range m.managedSorted() {
		m.release(id)
	}
	m.managed = make(Set)

	if m.band.active {
		m.band.reset()
		m.ui.KillSelectionRect()
	}
	if !m.binder.Detach(m.container, m.tag) {
		fail("UnmanageAll", "", "container listener was detached by someone else")
	}
	m.discarded = true
}

// mustBeLive rejects mutations of a manager discarded by UnmanageAll.
func (m *Manager) mustBeLive(op string, id ElementID) {
	if m.discarded {
		fail(op, id, "manager was discarded by UnmanageAll")
	}
}

func (m *Manager) release(id ElementID) {
	m.RemoveFromSelection(id)

	c := m.elements[id]
	if c.state != GestureIdle {
		c.finish()
	}
	if !m.binder.Detach(pointer.ElementTarget(string(id)), m.tag) {
		fail("Unmanage", id, "element listener was detached by someone else")
	}
	delete(m.elements, id)
}

// AddToSelection selects a managed element.
func (m *Manager) AddToSelection(id ElementID) {
	if !m.managed.Has(id) {
		fail("AddToSelection", id, "cannot select an unmanaged element")
	}
	m.selected.Add(id)
	m.ui.DisplaySelectionStatus(id, true)
}

// RemoveFromSelection deselects a managed element. The display is refreshed
// even if the element was not selected.
func (m *Manager) RemoveFromSelection(id ElementID) {
	if !m.managed.Has(id) {
		fail("RemoveFromSelection", id, "cannot deselect an unmanaged element")
	}
	m.selected.Remove(id)
	m.ui.DisplaySelectionStatus(id, false)
}

// ToggleSelection flips the selection membership of a managed element.
func (m *Manager) ToggleSelection(id ElementID) {
	if !m.managed.Has(id) {
		fail("ToggleSelection", id, "cannot toggle an unmanaged element")
	}
	if m.selected.Has(id) {
		m.RemoveFromSelection(id)
	} else {
		m.AddToSelection(id)
	}
}

// SelectAll selects every managed element.
func (m *Manager) SelectAll() {
	m.mustBeLive("SelectAll", "")
	for _, id := range m.managedSorted() {
		m.AddToSelection(id)
	}
}

// DeselectAll clears the selection.
func (m *Manager) DeselectAll() {
	m.mustBeLive("DeselectAll", "")
	for _, id := range m.selected.Sorted() {
		m.ui.DisplaySelectionStatus(id, false)
	}
	m.selected = make(Set)
}

// IsManaged reports whether id is managed.
func (m *Manager) IsManaged(id ElementID) bool {
	return m.managed.Has(id)
}

// IsSelected reports whether id is selected.
func (m *Manager) IsSelected(id ElementID) bool {
	return m.selected.Has(id)
}

// Managed returns the managed elements, sorted.
func (m *Manager) Managed() []ElementID {
	return m.managed.Sorted()
}

// Selected returns the selected elements, sorted.
func (m *Manager) Selected() []ElementID {
	return m.selected.Sorted()
}

// applySelection moves the selection to next through the primitives so that
// every change is displayed. Removals are applied before additions.
func (m *Manager) applySelection(next Set) {
	for _, id := range m.selected.Minus(next) {
		m.RemoveFromSelection(id)
	}
	for _, id := range next.Minus(m.selected) {
		m.AddToSelection(id)
	}
}
