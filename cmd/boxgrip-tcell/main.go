// Command boxgrip-tcell hosts the box canvas directly on a tcell screen.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"boxgrip/internal/config"
	"boxgrip/internal/domain"
	"boxgrip/internal/logic"
	"boxgrip/internal/selection"
	"boxgrip/internal/ui/coordinator"
	"boxgrip/internal/ui/input"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "c", config.DefaultPath(), "Path to the layout file")
	flag.Parse()

	if err := run(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	svc := config.NewConfigServiceAt(configPath)
	cfg, err := svc.Load()
	if err != nil {
		return err
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	mods, err := input.NewModifierMap(cfg.Canvas.AdditiveModifier, cfg.Canvas.ToggleModifier)
	if err != nil {
		return err
	}

	coord := coordinator.NewCoordinator(nil, logic.NewMemoryElementStore(), selection.WithLogger(log.Default()))
	if err := coord.Load(cfg.Layout()); err != nil {
		return err
	}
	defer coord.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	decoder := input.NewTcellDecoder(mods)
	for {
		draw(screen, coord)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventMouse:
			for _, pe := range decoder.Decode(ev) {
				coord.Dispatch(pe)
			}
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				if cfg.Canvas.AutosaveLayout {
					cfg.SetLayout(coord.Layout())
					if err := svc.Save(cfg); err != nil {
						log.Printf("Failed to save layout: %v", err)
					}
				}
				return nil
			case ev.Key() == tcell.KeyEscape:
				coord.Escape()
			case ev.Rune() == 'a':
				coord.SelectAll()
			case ev.Rune() == 'x':
				coord.RemoveSelected()
			case ev.Rune() == 'n':
				if _, err := coord.AddBox("", image.Pt(1, 1)); err != nil {
					log.Printf("Failed to add box: %v", err)
				}
			}
		}
	}
}

var (
	boxStyle      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	hoverStyle    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	bandStyle     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

func draw(s tcell.Screen, coord *coordinator.Coordinator) {
	s.Clear()
	for _, b := range coord.Layout().Boxes {
		style, border := boxStyle, lipgloss.RoundedBorder()
		switch {
		case b.Selected:
			style, border = selectedStyle, lipgloss.ThickBorder()
		case b.Cursor == selection.CursorMove:
			style = hoverStyle
		}
		frame(s, b.Bounds.Min, b.Bounds.Max.Sub(image.Pt(1, 1)), border, style, true)
		label(s, b)
	}
	if r, ok := coord.SelectionRect(); ok {
		frame(s, r.Min, r.Max, lipgloss.NormalBorder(), bandStyle, false)
	}

	st := coord.Status()
	_, h := s.Size()
	status := fmt.Sprintf("%d boxes | %d selected | %s | a:all n:new x:remove esc:cancel q:quit", st.Managed, st.Selected, st.Gesture)
	for i, r := range status {
		s.SetContent(i, h-1, r, nil, tcell.StyleDefault.Dim(true))
	}
	s.Show()
}

func frame(s tcell.Screen, min, max image.Point, b lipgloss.Border, style tcell.Style, filled bool) {
	glyph := func(g string) rune { return []rune(g)[0] }
	if filled {
		for y := min.Y + 1; y < max.Y; y++ {
			for x := min.X + 1; x < max.X; x++ {
				s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
			}
		}
	}
	for x := min.X + 1; x < max.X; x++ {
		s.SetContent(x, min.Y, glyph(b.Top), nil, style)
		s.SetContent(x, max.Y, glyph(b.Bottom), nil, style)
	}
	for y := min.Y + 1; y < max.Y; y++ {
		s.SetContent(min.X, y, glyph(b.Left), nil, style)
		s.SetContent(max.X, y, glyph(b.Right), nil, style)
	}
	s.SetContent(min.X, min.Y, glyph(b.TopLeft), nil, style)
	s.SetContent(max.X, min.Y, glyph(b.TopRight), nil, style)
	s.SetContent(min.X, max.Y, glyph(b.BottomLeft), nil, style)
	s.SetContent(max.X, max.Y, glyph(b.BottomRight), nil, style)
}

func label(s tcell.Screen, b domain.Box) {
	i := 0
	for _, r := range b.Label {
		if i >= b.Bounds.Dx()-2 {
			return
		}
		s.SetContent(b.Bounds.Min.X+1+i, b.Bounds.Min.Y+1, r, nil, tcell.StyleDefault)
		i++
	}
}
