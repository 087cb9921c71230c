package selection

import (
	"image"

	"boxgrip/internal/pointer"
)

// containerController drives rubber-band selection on the container
// background: idle until a primary press, then active until the release.
type containerController struct {
	m      *Manager
	active bool
	origin image.Point
	rect   image.Rectangle
}

func (c *containerController) HandlePointer(ev pointer.Event) {
	switch ev.Action {
	case pointer.ActionPress:
		c.press(ev)
	case pointer.ActionMotion:
		c.motion(ev)
	case pointer.ActionRelease:
		c.release(ev)
	}
}

func (c *containerController) press(ev pointer.Event) {
	if ev.Button != pointer.ButtonPrimary {
		return
	}
	if c.m.discarded {
		return
	}
	if !ev.Mods.Has(pointer.ModAdditive) {
		c.m.DeselectAll()
	}
	c.active = true
	c.origin = ev.Pos
	c.rect = image.Rectangle{Min: ev.Pos, Max: ev.Pos}
	c.m.logger.Printf("selection: rectangle started at %v", ev.Pos)
	c.m.ui.ChangeSelectionRect(c.rect)
}

func (c *containerController) motion(ev pointer.Event) {
	if !c.active {
		return
	}
	c.rect = normalize(c.origin, ev.Pos)
	c.m.ui.ChangeSelectionRect(c.rect)
}

func (c *containerController) release(ev pointer.Event) {
	if !c.active {
		return
	}
	r := normalize(c.origin, ev.Pos)
	c.reset()
	c.m.logger.Printf("selection: rectangle committed %v", r)
	c.m.ui.SelectComponentsInSelectionRectangle(r)
	c.m.ui.KillSelectionRect()
}

func (c *containerController) reset() {
	c.active = false
	c.origin = image.Point{}
	c.rect = image.Rectangle{}
}

// normalize returns the rectangle spanned by two corners with Min top-left.
func normalize(a, b image.Point) image.Rectangle {
	return image.Rectangle{Min: a, Max: b}.Canon()
}
