package ui

import (
	"fmt"
	"image"
	"log"
	"os"
	"strings"
	"time"

	"boxgrip/internal/config"
	"boxgrip/internal/eventbus"
	"boxgrip/internal/pointer"
	"boxgrip/internal/ui/coordinator"
	"boxgrip/internal/ui/input"
	inputtypes "boxgrip/internal/ui/input/types"
	"boxgrip/internal/ui/views"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// E2EEnv makes the model print a ready marker once it has a size
const E2EEnv = "BOXGRIP_E2E_TEST"

// canvasOrigin is the screen cell of canvas (0,0): the title takes row 0
var canvasOrigin = image.Pt(0, 1)

// rows used around the canvas: title, status message and help
const chromeRows = 3

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	coord     *coordinator.Coordinator

	width  int
	height int
	help   help.Model

	inputHandler *input.Handler
	mods         input.ModifierMap
	styles       *views.Styles
	canvas       *views.CanvasRenderer
	helpRender   *HelpRenderer

	statusMessage string
	statusIsError bool
	inPagerMode   bool
	lastPointer   image.Point // canvas coordinates
	readyMarker   bool

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates a new UI model. The modifier names in cfg must be valid.
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService, coord *coordinator.Coordinator) (*Model, error) {
	mods, err := input.NewModifierMap(cfg.Canvas.AdditiveModifier, cfg.Canvas.ToggleModifier)
	if err != nil {
		return nil, fmt.Errorf("invalid canvas modifiers: %w", err)
	}
	styles := views.NewStyles()
	handler := input.New()

	return &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		coord:        coord,
		help:         help.New(),
		inputHandler: handler,
		mods:         mods,
		styles:       styles,
		canvas:       views.NewCanvasRenderer(styles),
		helpRender:   NewHelpRenderer(handler.Keys(), mods),
		readyMarker:  os.Getenv(E2EEnv) == "1",
	}, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if m.inPagerMode {
			return m, nil
		}
		m.handleMouse(msg)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
	}

	return m, nil
}

// canvasSize is the area left for the canvas
func (m *Model) canvasSize() image.Point {
	h := m.height - chromeRows
	if h < 0 {
		h = 0
	}
	return image.Pt(m.width, h)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ev, ok := input.FromTeaMouse(msg, m.mods)
	if !ok {
		return
	}
	ev.Pos = ev.Pos.Sub(canvasOrigin)

	// presses on the title or the help line do not start gestures
	if ev.Action == pointer.ActionPress {
		if _, captured := m.coord.Router.Captured(); !captured && !ev.Pos.In(image.Rectangle{Max: m.canvasSize()}) {
			return
		}
	}
	m.lastPointer = ev.Pos
	m.coord.Dispatch(ev)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch action := action.(type) {
	case inputtypes.QuitAction:
		if m.config.Canvas.AutosaveLayout && !action.Force {
			if err := m.saveLayout(); err != nil {
				log.Printf("Failed to save layout on exit: %v", err)
			}
		}
		return tea.Quit

	case inputtypes.SelectAllAction:
		m.coord.SelectAll()

	case inputtypes.EscapeAction:
		if m.coord.Escape() {
			return m.setStatus("Gesture cancelled", false)
		}

	case inputtypes.NewBoxAction:
		id, err := m.coord.AddBox("", m.newBoxPosition())
		if err != nil {
			return m.setStatus(fmt.Sprintf("Failed to add box: %v", err), true)
		}
		return m.setStatus(fmt.Sprintf("Added %s", id), false)

	case inputtypes.RemoveSelectedAction:
		removed := m.coord.RemoveSelected()
		if len(removed) > 0 {
			return m.setStatus(fmt.Sprintf("Removed %d box(es)", len(removed)), false)
		}

	case inputtypes.SaveLayoutAction:
		if err := m.saveLayout(); err != nil {
			return m.setStatus(fmt.Sprintf("Failed to save layout: %v", err), true)
		}

	case inputtypes.ShowHelpAction:
		if m.helpOps == nil {
			return m.setStatus("Help pager unavailable", true)
		}
		return m.fetchHelpPager(m.helpRender.RenderHelpContent())
	}
	return nil
}

// newBoxPosition places new boxes at the last pointer position, kept on
// the canvas
func (m *Model) newBoxPosition() image.Point {
	p := m.lastPointer
	size := m.canvasSize()
	maxX := size.X - coordinator.DefaultBoxSize.X
	maxY := size.Y - coordinator.DefaultBoxSize.Y
	p.X = max(0, min(p.X, maxX))
	p.Y = max(0, min(p.Y, maxY))
	return p
}

func (m *Model) saveLayout() error {
	m.config.SetLayout(m.coord.Layout())
	return m.configSvc.Save(m.config)
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LayoutChangedEvent:
		if m.config.Canvas.AutosaveLayout {
			m.config.SetLayout(e.Layout)
			if err := m.configSvc.Save(m.config); err != nil {
				return m.setStatus(fmt.Sprintf("Autosave failed: %v", err), true)
			}
		}
	case eventbus.ConfigSavedEvent:
		return m.setStatus(fmt.Sprintf("Layout saved to %s", e.Path), false)
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	}
	return nil
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusMessage = text
	m.statusIsError = isError
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	m.inPagerMode = true
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	var content strings.Builder

	// Title with right-aligned status
	logo := m.styles.Title.Render("boxgrip")
	st := m.coord.Status()
	right := m.styles.Dim.Render(fmt.Sprintf("%d boxes | %d selected | %s", st.Managed, st.Selected, st.Gesture))
	if m.readyMarker {
		right += " __READY__"
	}
	padding := m.width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	content.WriteString(logo + strings.Repeat(" ", padding) + right)
	content.WriteString("\n")

	band, active := m.coord.SelectionRect()
	content.WriteString(m.canvas.Render(m.coord.Layout(), band, active, m.canvasSize()))
	content.WriteString("\n")

	if m.statusMessage != "" {
		style := m.styles.Status
		if m.statusIsError {
			style = m.styles.StatusError
		}
		content.WriteString(style.Render(m.statusMessage))
	}
	content.WriteString("\n")
	content.WriteString(m.styles.Help.Render(m.help.View(m.inputHandler.Keys())))

	return content.String()
}
