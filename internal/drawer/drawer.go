// Package drawer is the bottom sheet listing the arcade games. Its parent
// owns whether it is open; the drawer only animates and asks to be closed.
package drawer

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// CloseRequestedMsg asks the parent to close the drawer.
type CloseRequestedMsg struct{}

// SelectedMsg reports a chosen game.
type SelectedMsg struct {
	Game Game
}

// Slide spring parameters.
const (
	slideFPS       = 60
	slideFrequency = 7.0
	slideDamping   = 0.9
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}).
			Padding(0, 1)

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	closeKey = key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close"))
	pickKey  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play"))
)

// Model is the drawer. The zero value is not usable; call New.
type Model struct {
	list   list.Model
	spring harmonica.Spring

	open     bool
	offset   float64 // rows hidden below the screen edge
	velocity float64

	width  int
	height int
}

// New creates a closed drawer.
func New() Model {
	items := make([]list.Item, 0, len(Games()))
	for _, g := range Games() {
		items = append(items, gameItem{game: g})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"})

	l := list.New(items, delegate, 40, 10)
	l.Title = "Mini Arcade"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"})

	m := Model{
		list:   l,
		spring: harmonica.NewSpring(harmonica.FPS(slideFPS), slideFrequency, slideDamping),
	}
	m.offset = float64(m.PanelHeight())
	return m
}

// SetSize lays the drawer out for a width x height screen.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 4
	if w < 10 {
		w = 10
	}
	h := m.PanelHeight() - 2
	if h < 1 {
		h = 1
	}
	m.list.SetSize(w, h)
	if !m.open {
		m.offset = float64(m.PanelHeight())
		m.velocity = 0
	}
}

// PanelHeight is the drawer's full height in rows: 60% of the screen.
func (m Model) PanelHeight() int {
	h := m.height * 6 / 10
	if h < 4 {
		h = 4
	}
	return h
}

// SetOpen starts sliding the drawer in or out.
func (m *Model) SetOpen(open bool) {
	if open == m.open {
		return
	}
	m.open = open
	if open {
		m.list.ResetSelected()
	}
}

// Open reports the drawer's open state as last set by the parent.
func (m Model) Open() bool { return m.open }

func (m Model) target() float64 {
	if m.open {
		return 0
	}
	return float64(m.PanelHeight())
}

// Animating reports whether the slide has not yet come to rest.
func (m Model) Animating() bool {
	return math.Abs(m.offset-m.target()) >= 0.01 || math.Abs(m.velocity) >= 0.01
}

// Frame advances the slide one frame.
func (m *Model) Frame() {
	if !m.Animating() {
		return
	}
	t := m.target()
	m.offset, m.velocity = m.spring.Update(m.offset, m.velocity, t)
	if math.Abs(m.offset-t) < 0.01 && math.Abs(m.velocity) < 0.01 {
		m.offset, m.velocity = t, 0
	}
}

// Visible reports whether any part of the drawer is on screen.
func (m Model) Visible() bool {
	return m.open || m.offset < float64(m.PanelHeight())-0.5
}

// Top is the screen row of the drawer's top edge.
func (m Model) Top() int {
	return m.height - m.PanelHeight() + int(math.Round(m.offset))
}

// Update handles input while the drawer is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, closeKey):
			return m, requestClose
		case key.Matches(msg, pickKey):
			if item, ok := m.list.SelectedItem().(gameItem); ok {
				g := item.game
				return m, func() tea.Msg { return SelectedMsg{Game: g} }
			}
			return m, nil
		}
	case tea.MouseMsg:
		// A press on the backdrop above the panel closes, like tapping the
		// dimmed page.
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y < m.Top() {
			return m, requestClose
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func requestClose() tea.Msg { return CloseRequestedMsg{} }

// View renders the full panel. The caller positions it at Top.
func (m Model) View() string {
	w := m.width - 2
	if w < 12 {
		w = 12
	}
	handle := lipgloss.PlaceHorizontal(w-2, lipgloss.Center, handleStyle.Render("────"))
	body := handle + "\n" + m.list.View()
	return panelStyle.Width(w).Height(m.PanelHeight() - 1).MaxHeight(m.PanelHeight()).Render(body)
}

// HelpKeys lists the drawer's bindings for the help line.
func HelpKeys() []key.Binding {
	return []key.Binding{pickKey, closeKey}
}
