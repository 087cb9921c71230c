package views

import (
	"image"
	"strings"
	"testing"

	"boxgrip/internal/domain"
	"boxgrip/internal/selection"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func render(l domain.Layout, band image.Rectangle, active bool, size image.Point) []string {
	out := NewCanvasRenderer(NewStyles()).Render(l, band, active, size)
	return strings.Split(ansi.Strip(out), "\n")
}

func TestRenderBox(t *testing.T) {
	l := domain.Layout{Boxes: []domain.Box{{ID: "a", Label: "ab", Bounds: image.Rect(0, 0, 4, 3)}}}

	rows := render(l, image.Rectangle{}, false, image.Pt(6, 3))

	assert.Equal(t, []string{
		"╭──╮  ",
		"│ab│  ",
		"╰──╯  ",
	}, rows)
}

func TestRenderSelectedBoxUsesThickBorder(t *testing.T) {
	l := domain.Layout{Boxes: []domain.Box{{ID: "a", Label: "abc", Bounds: image.Rect(1, 0, 5, 3), Selected: true}}}

	rows := render(l, image.Rectangle{}, false, image.Pt(5, 3))

	assert.Equal(t, []string{
		" ┏━━┓",
		" ┃ab┃",
		" ┗━━┛",
	}, rows, "label is truncated to the inner width")
}

func TestRenderBandOverBoxes(t *testing.T) {
	l := domain.Layout{Boxes: []domain.Box{{ID: "a", Bounds: image.Rect(0, 0, 4, 3)}}}

	rows := render(l, image.Rect(2, 1, 5, 2), true, image.Pt(6, 3))

	assert.Equal(t, []string{
		"╭──╮  ",
		"│ ┌──┐",
		"╰─└──┘",
	}, rows)
}

func TestRenderClipsAndStacks(t *testing.T) {
	l := domain.Layout{Boxes: []domain.Box{
		{ID: "bottom", Label: "xx", Bounds: image.Rect(0, 0, 4, 3)},
		{ID: "top", Bounds: image.Rect(2, 1, 8, 4), Cursor: selection.CursorMove},
	}}

	rows := render(l, image.Rectangle{}, false, image.Pt(5, 3))

	assert.Equal(t, []string{
		"╭──╮ ",
		"│x╭──",
		"╰─│  ",
	}, rows)
}

func TestRenderEmptySize(t *testing.T) {
	assert.Empty(t, NewCanvasRenderer(NewStyles()).Render(domain.Layout{}, image.Rectangle{}, false, image.Pt(0, 5)))
}
