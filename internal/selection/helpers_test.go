package selection

import (
	"fmt"
	"image"
	"testing"

	"boxgrip/internal/pointer"

	"github.com/stretchr/testify/require"
)

// board is a Selectionable backed by an in-memory geometry that records
// every callback it receives.
type board struct {
	Adapter

	bounds    map[ElementID]image.Rectangle
	displayed map[ElementID]bool
	cursors   map[ElementID]Cursor
	moves     []move
	rects     []image.Rectangle
	kills     int
	workedFor *Manager
}

type move struct {
	id     ElementID
	dx, dy int
}

func newBoard() *board {
	b := &board{
		bounds:    make(map[ElementID]image.Rectangle),
		displayed: make(map[ElementID]bool),
		cursors:   make(map[ElementID]Cursor),
	}
	b.Geometry = b
	return b
}

func (b *board) Bounds(id ElementID) (image.Rectangle, bool) {
	r, ok := b.bounds[id]
	return r, ok
}

func (b *board) Move(id ElementID, dx, dy int) {
	b.bounds[id] = b.bounds[id].Add(image.Pt(dx, dy))
}

func (b *board) Translate(id ElementID, dx, dy int) {
	b.moves = append(b.moves, move{id, dx, dy})
	b.Adapter.Translate(id, dx, dy)
}

func (b *board) ChangeSelectionRect(r image.Rectangle) {
	b.rects = append(b.rects, r)
	b.Adapter.ChangeSelectionRect(r)
}

func (b *board) KillSelectionRect() {
	b.kills++
	b.Adapter.KillSelectionRect()
}

func (b *board) DisplaySelectionStatus(id ElementID, selected bool) {
	b.displayed[id] = selected
}

func (b *board) SetCursor(id ElementID, c Cursor) {
	b.cursors[id] = c
}

func (b *board) WorkFor(m *Manager) {
	b.workedFor = m
	b.Adapter.WorkFor(m)
}

func (b *board) hit(p image.Point) (string, bool) {
	var found ElementID
	ok := false
	for _, id := range keysOf(b.bounds) {
		if p.In(b.bounds[id]) {
			found, ok = id, true
		}
	}
	return string(found), ok
}

func keysOf[V any](m map[ElementID]V) []ElementID {
	s := make(Set, len(m))
	for id := range m {
		s.Add(id)
	}
	return s.Sorted()
}

type fixture struct {
	t      *testing.T
	router *pointer.Router
	board  *board
	m      *Manager
}

// newFixture manages one element per entry of boxes, given as x, y, w, h.
func newFixture(t *testing.T, boxes map[ElementID][4]int) *fixture {
	t.Helper()
	b := newBoard()
	r := pointer.NewRouter(pointer.ContainerTarget("canvas"), b.hit)
	m := New(r, b)
	for _, id := range keysOf(boxes) {
		v := boxes[id]
		b.bounds[id] = image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3])
		m.Manage(id)
	}
	return &fixture{t: t, router: r, board: b, m: m}
}

func (f *fixture) press(x, y int, mods pointer.Modifiers) {
	f.router.Dispatch(pointer.Event{Pos: image.Pt(x, y), Button: pointer.ButtonPrimary, Action: pointer.ActionPress, Mods: mods})
}

func (f *fixture) moveTo(x, y int) {
	f.router.Dispatch(pointer.Event{Pos: image.Pt(x, y), Button: pointer.ButtonPrimary, Action: pointer.ActionMotion})
}

func (f *fixture) release(x, y int) {
	f.router.Dispatch(pointer.Event{Pos: image.Pt(x, y), Button: pointer.ButtonPrimary, Action: pointer.ActionRelease})
}

// requireSubset checks that every selected element is managed.
func (f *fixture) requireSubset() {
	f.t.Helper()
	for _, id := range f.m.Selected() {
		require.True(f.t, f.m.IsManaged(id), fmt.Sprintf("%s selected but not managed", id))
	}
}

func requireProgrammingError(t *testing.T, fn func()) *ProgrammingError {
	t.Helper()
	var got *ProgrammingError
	require.Panics(t, func() {
		defer func() {
			if r := recover(); r != nil {
				got, _ = r.(*ProgrammingError)
				panic(r)
			}
		}()
		fn()
	})
	require.NotNil(t, got, "panic value should be a *ProgrammingError")
	return got
}
