package input

import (
	"image"

	"boxgrip/internal/pointer"

	"github.com/gdamore/tcell/v2"
)

// TcellDecoder turns tcell mouse events, which only carry the current
// button mask, into press, motion and release transitions.
type TcellDecoder struct {
	Modifiers ModifierMap

	prev tcell.ButtonMask
}

// NewTcellDecoder creates a decoder with the given modifier map
func NewTcellDecoder(mm ModifierMap) *TcellDecoder {
	return &TcellDecoder{Modifiers: mm}
}

var tcellButtons = []struct {
	mask   tcell.ButtonMask
	button pointer.Button
}{
	{tcell.ButtonPrimary, pointer.ButtonPrimary},
	{tcell.ButtonMiddle, pointer.ButtonMiddle},
	{tcell.ButtonSecondary, pointer.ButtonSecondary},
}

// Decode returns the pointer events for ev in cell coordinates. A mask
// change can produce a release and a press in the same call.
func (d *TcellDecoder) Decode(ev *tcell.EventMouse) []pointer.Event {
	x, y := ev.Position()
	m := ev.Modifiers()
	base := pointer.Event{
		Pos:  image.Pt(x, y),
		Mods: d.Modifiers.Resolve(m&tcell.ModShift != 0, m&tcell.ModCtrl != 0, m&tcell.ModAlt != 0),
	}

	cur := ev.Buttons() & (tcell.ButtonPrimary | tcell.ButtonMiddle | tcell.ButtonSecondary)
	prev := d.prev
	d.prev = cur

	var out []pointer.Event
	for _, b := range tcellButtons {
		if prev&b.mask != 0 && cur&b.mask == 0 {
			e := base
			e.Button, e.Action = b.button, pointer.ActionRelease
			out = append(out, e)
		}
	}
	for _, b := range tcellButtons {
		if prev&b.mask == 0 && cur&b.mask != 0 {
			e := base
			e.Button, e.Action = b.button, pointer.ActionPress
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		e := base
		e.Action = pointer.ActionMotion
		for _, b := range tcellButtons {
			if cur&b.mask != 0 {
				e.Button = b.button
				break
			}
		}
		out = append(out, e)
	}
	return out
}
