package ui

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/chathead/internal/chathead"
	"github.com/olivier-w/chathead/internal/drawer"
	"github.com/olivier-w/chathead/internal/frame"
	"github.com/olivier-w/chathead/internal/geometry"
	"github.com/olivier-w/chathead/internal/logging"
	"github.com/olivier-w/chathead/internal/sound"
	"github.com/olivier-w/chathead/internal/store"
)

// Terminal cells are mapped onto logical pixels so a 64px bubble is 8x4
// cells.
const (
	CellWidth  = 8.0
	CellHeight = 16.0

	bubbleCols  = 8
	bubbleRows  = 4
	bubbleGlyph = "🍒"
)

// cellMeasurer reports the terminal viewport and the rendered bubble in
// pixels. The bubble is unmeasured until the first layout.
type cellMeasurer struct {
	cols, rows int
	bubble     string
}

func (c *cellMeasurer) ViewportSize() (float64, float64) {
	return float64(c.cols) * CellWidth, float64(c.rows) * CellHeight
}

func (c *cellMeasurer) WidgetSize() (float64, float64) {
	if c.cols == 0 || c.bubble == "" {
		return 0, 0
	}
	w, h := lipgloss.Size(c.bubble)
	return float64(w) * CellWidth, float64(h) * CellHeight
}

// inbox collects widget callbacks so Update can act on them after the
// widget call returns.
type inbox struct {
	tapped  bool
	settled []bool // persisted flag per settle
}

// Options configures New.
type Options struct {
	Store   *store.PositionStore
	Clicker sound.Clicker
	Logger  *slog.Logger
	// Clock overrides time.Now for tap timing.
	Clock func() time.Time
}

// Model is the Bubbletea model hosting the bubble, the demo page and the
// drawer.
type Model struct {
	widget  *chathead.Widget
	measure *cellMeasurer
	events  *inbox
	clicker sound.Clicker
	log     *slog.Logger

	drawer     drawer.Model
	drawerOpen bool

	ticking  frame.Coalescer
	frameSeq uint64

	keys keyMap
	help help.Model

	width     int
	height    int
	mounted   bool
	quitting  bool
	status    string
	statusSeq uint64
}

// New creates the model. The bubble mounts on the first WindowSizeMsg.
func New(opts Options) Model {
	if opts.Store == nil {
		opts.Store = store.NewPositionStore(store.NewMemoryKV())
	}
	if opts.Clicker == nil {
		opts.Clicker = sound.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Logger()
	}

	measure := &cellMeasurer{}
	events := &inbox{}
	widgetOpts := []chathead.Option{
		chathead.WithLogger(opts.Logger),
		chathead.WithOnTap(func() { events.tapped = true }),
		chathead.WithOnSettle(func(_ geometry.Point, persisted bool) {
			events.settled = append(events.settled, persisted)
		}),
	}
	if opts.Clock != nil {
		widgetOpts = append(widgetOpts, chathead.WithClock(opts.Clock))
	}

	m := Model{
		widget:  chathead.New(measure, opts.Store, widgetOpts...),
		measure: measure,
		events:  events,
		clicker: opts.Clicker,
		log:     opts.Logger,
		drawer:  drawer.New(),
		keys:    newKeyMap(),
		help:    help.New(),
	}
	measure.bubble = m.bubbleView()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("chathead")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.measure.cols = msg.Width
		m.measure.rows = m.pageRows()
		m.drawer.SetSize(msg.Width, m.pageRows())
		if !m.mounted {
			m.mounted = true
			m.widget.Mount()
		} else {
			m.widget.Resize()
		}
		return m, m.afterInput()

	case frame.TickMsg:
		if msg.Seq != m.frameSeq {
			return m, nil
		}
		m.ticking.Fire()
		m.widget.Frame()
		m.drawer.Frame()
		return m, m.afterInput()

	case tea.MouseMsg:
		if m.drawerOpen {
			var cmd tea.Cmd
			m.drawer, cmd = m.drawer.Update(msg)
			return m, cmd
		}
		m.handleMouse(msg)
		return m, m.afterInput()

	case tea.BlurMsg:
		m.widget.PointerCancel()
		return m, m.afterInput()

	case tea.KeyMsg:
		if isForceQuit(msg) {
			return m.quit()
		}
		if m.drawerOpen {
			var cmd tea.Cmd
			m.drawer, cmd = m.drawer.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Open):
			// The drawer captures the mouse, so a drag in progress would
			// never see its release.
			m.widget.PointerCancel()
			m.setDrawer(true)
			return m, m.afterInput()
		}
		return m, nil

	case drawer.CloseRequestedMsg:
		m.setDrawer(false)
		return m, m.afterInput()

	case drawer.SelectedMsg:
		m.setDrawer(false)
		return m, tea.Batch(m.setStatus("Launching "+msg.Game.Name+"..."), m.afterInput())

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := toPixels(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.hitBubble(msg.X, msg.Y) {
			m.widget.PointerDown(p)
		} else if m.widget.Dragging() {
			// Lost release: the press elsewhere ends the old drag.
			m.widget.PointerCancel()
		}
	case tea.MouseActionMotion:
		m.widget.PointerMove(p)
	case tea.MouseActionRelease:
		m.widget.PointerUp(p)
	}
}

// afterInput reacts to widget callbacks and keeps exactly one frame tick in
// flight while anything is moving.
func (m *Model) afterInput() tea.Cmd {
	if m.events.tapped {
		m.events.tapped = false
		m.setDrawer(true)
	}
	for _, persisted := range m.events.settled {
		if persisted {
			m.clicker.Click()
		}
	}
	m.events.settled = m.events.settled[:0]

	if !m.widget.NeedsFrame() && !m.drawer.Animating() {
		return nil
	}
	if !m.ticking.Request() {
		return nil
	}
	m.frameSeq++
	return frame.Tick(m.frameSeq)
}

func (m *Model) setDrawer(open bool) {
	m.drawerOpen = open
	m.keys.drawerOpen = open
	m.drawer.SetOpen(open)
	m.log.Debug("drawer", "open", open)
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	return statusExpiryCmd(m.statusSeq)
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.widget.Unmount()
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

// pageRows is the height available to the bubble; the last row holds help.
func (m Model) pageRows() int {
	if m.height < 2 {
		return m.height
	}
	return m.height - 1
}

func (m Model) hitBubble(x, y int) bool {
	col, row := toCell(m.widget.Rendered())
	return x >= col && x < col+bubbleCols && y >= row && y < row+bubbleRows
}

func (m Model) bubbleView() string {
	style := bubbleStyle
	if m.widget != nil && m.widget.Dragging() {
		style = bubbleDragStyle
	}
	return style.Width(bubbleCols - 2).Height(bubbleRows - 2).Render(bubbleGlyph)
}

// DrawerOpen reports whether the drawer is open.
func (m Model) DrawerOpen() bool { return m.drawerOpen }

// Position returns the bubble's current position in pixels.
func (m Model) Position() geometry.Point { return m.widget.Position() }

func (m Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}
	rows := m.pageRows()
	lines := fitLines(renderPage(m.width), m.width, rows)

	col, row := toCell(m.widget.Rendered())
	overlay(lines, m.bubbleView(), col, row, m.width)
	if m.drawer.Visible() {
		overlay(lines, m.drawer.View(), 0, m.drawer.Top(), m.width)
	}

	if rows < m.height {
		footer := m.help.View(m.keys)
		if m.status != "" {
			footer = statusStyle.Render(m.status)
		}
		lines = append(lines, fitWidth(" "+footer, m.width))
	}
	return strings.Join(lines, "\n")
}

// toPixels maps a cell to the pixel at its center.
func toPixels(x, y int) geometry.Point {
	return geometry.Point{
		X: (float64(x) + 0.5) * CellWidth,
		Y: (float64(y) + 0.5) * CellHeight,
	}
}

// toCell maps a pixel offset to the nearest cell.
func toCell(p geometry.Point) (col, row int) {
	return int(math.Floor(p.X/CellWidth + 0.5)), int(math.Floor(p.Y/CellHeight + 0.5))
}
