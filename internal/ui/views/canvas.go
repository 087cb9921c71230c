package views

import (
	"image"
	"strings"
	"unicode/utf8"

	"boxgrip/internal/domain"
	"boxgrip/internal/selection"

	"github.com/charmbracelet/lipgloss"
)

type cellStyle uint8

const (
	styleBackground cellStyle = iota
	styleBox
	styleBoxHover
	styleBoxPressed
	styleBoxSelected
	styleLabel
	styleBand
)

type cell struct {
	r     rune
	style cellStyle
}

// CanvasRenderer draws boxes and the rubber band into a fixed cell grid
type CanvasRenderer struct {
	styles *Styles
}

// NewCanvasRenderer creates a canvas renderer
func NewCanvasRenderer(styles *Styles) *CanvasRenderer {
	return &CanvasRenderer{styles: styles}
}

// Render draws the layout clipped to size. Boxes are drawn bottom first.
// The band, when active, is drawn over the boxes with its corners on the
// press and pointer cells.
func (r *CanvasRenderer) Render(l domain.Layout, band image.Rectangle, bandActive bool, size image.Point) string {
	if size.X <= 0 || size.Y <= 0 {
		return ""
	}
	grid := newGrid(size)

	for _, b := range l.Boxes {
		border, style := r.styles.BoxBorder, boxStyle(b)
		if b.Selected {
			border = r.styles.SelectedBorder
		}
		grid.frame(b.Bounds.Min, b.Bounds.Max.Sub(image.Pt(1, 1)), border, style, true)
		grid.text(b.Bounds.Min.Add(image.Pt(1, 1)), b.Bounds.Dx()-2, b.Label, styleLabel)
	}
	if bandActive {
		grid.frame(band.Min, band.Max, r.styles.BandBorder, styleBand, false)
	}
	return grid.render(r.styleFor)
}

func boxStyle(b domain.Box) cellStyle {
	switch {
	case b.Cursor == selection.CursorPressed:
		return styleBoxPressed
	case b.Selected:
		return styleBoxSelected
	case b.Cursor == selection.CursorMove:
		return styleBoxHover
	}
	return styleBox
}

func (r *CanvasRenderer) styleFor(s cellStyle) lipgloss.Style {
	switch s {
	case styleBox:
		return r.styles.Box
	case styleBoxHover:
		return r.styles.BoxHover
	case styleBoxPressed:
		return r.styles.BoxPressed
	case styleBoxSelected:
		return r.styles.BoxSelected
	case styleLabel:
		return r.styles.Label
	case styleBand:
		return r.styles.Band
	}
	return r.styles.Background
}

type grid struct {
	size  image.Point
	cells [][]cell
}

func newGrid(size image.Point) *grid {
	g := &grid{size: size, cells: make([][]cell, size.Y)}
	for y := range g.cells {
		row := make([]cell, size.X)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		g.cells[y] = row
	}
	return g
}

func (g *grid) set(x, y int, r rune, s cellStyle) {
	if x < 0 || y < 0 || x >= g.size.X || y >= g.size.Y {
		return
	}
	g.cells[y][x] = cell{r: r, style: s}
}

func glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// frame draws a border with corners at min and max, both inclusive. A
// filled frame clears its inside so lower boxes do not show through.
func (g *grid) frame(min, max image.Point, b lipgloss.Border, s cellStyle, filled bool) {
	if max.X < min.X || max.Y < min.Y {
		return
	}
	if filled {
		for y := min.Y + 1; y < max.Y; y++ {
			for x := min.X + 1; x < max.X; x++ {
				g.set(x, y, ' ', styleBackground)
			}
		}
	}
	for x := min.X + 1; x < max.X; x++ {
		g.set(x, min.Y, glyph(b.Top), s)
		g.set(x, max.Y, glyph(b.Bottom), s)
	}
	for y := min.Y + 1; y < max.Y; y++ {
		g.set(min.X, y, glyph(b.Left), s)
		g.set(max.X, y, glyph(b.Right), s)
	}
	g.set(min.X, min.Y, glyph(b.TopLeft), s)
	g.set(max.X, min.Y, glyph(b.TopRight), s)
	g.set(min.X, max.Y, glyph(b.BottomLeft), s)
	g.set(max.X, max.Y, glyph(b.BottomRight), s)
}

// text writes s from p, truncated to width cells
func (g *grid) text(p image.Point, width int, s string, style cellStyle) {
	i := 0
	for _, r := range s {
		if i >= width {
			return
		}
		g.set(p.X+i, p.Y, r, style)
		i++
	}
}

// render joins runs of equally styled cells so each run is styled once
func (g *grid) render(styleFor func(cellStyle) lipgloss.Style) string {
	var out strings.Builder
	var run strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		cur := row[0].style
		for _, c := range row {
			if c.style != cur {
				out.WriteString(styleFor(cur).Render(run.String()))
				run.Reset()
				cur = c.style
			}
			run.WriteRune(c.r)
		}
		out.WriteString(styleFor(cur).Render(run.String()))
		run.Reset()
	}
	return out.String()
}
