package selection

import (
	"image"

	"boxgrip/internal/pointer"
)

// elementController is the per-element listener. It resolves click
// selection on press and, while its tracker is armed, turns motion into
// incremental group translations.
type elementController struct {
	m     *Manager
	id    ElementID
	state GestureState

	// drag tracker, armed only while the element is dragged
	armed bool
	last  image.Point
}

func (c *elementController) HandlePointer(ev pointer.Event) {
	switch ev.Action {
	case pointer.ActionPress:
		c.press(ev)
	case pointer.ActionMotion:
		c.motion(ev)
	case pointer.ActionRelease:
		c.release()
	case pointer.ActionEnter:
		if c.state != GestureIdle {
			c.m.setCursor(c.id, CursorPressed)
		} else {
			c.m.setCursor(c.id, CursorMove)
		}
	case pointer.ActionExit:
		c.m.setCursor(c.id, CursorDefault)
	}
}

func (c *elementController) press(ev pointer.Event) {
	if ev.Button != pointer.ButtonPrimary {
		return
	}
	c.m.setCursor(c.id, CursorPressed)
	c.state = GesturePressed

	c.m.applySelection(ResolveClick(c.m.selected, c.id, ev.Mods))

	if c.m.selected.Has(c.id) {
		c.arm(ev.Pos)
	}
}

func (c *elementController) arm(p image.Point) {
	if d := c.m.dragging; d != nil && d != c {
		// only one group drag per manager
		c.m.logger.Printf("selection: dropping stale drag of %s", d.id)
		d.finish()
	}
	c.armed = true
	c.last = p
	c.m.dragging = c
}

func (c *elementController) motion(ev pointer.Event) {
	if !c.armed {
		return
	}
	d := ev.Pos.Sub(c.last)
	if d.X == 0 && d.Y == 0 {
		return
	}
	c.m.translateSelection(d.X, d.Y)
	c.last = ev.Pos
	c.state = GestureDragging
}

func (c *elementController) release() {
	if c.state == GestureIdle {
		return
	}
	c.finish()
}

// finish disarms the tracker and restores the idle cursor.
func (c *elementController) finish() {
	c.armed = false
	c.last = image.Point{}
	c.state = GestureIdle
	if c.m.dragging == c {
		c.m.dragging = nil
	}
	c.m.setCursor(c.id, CursorMove)
}
