package ui

import (
	"fmt"
	"regexp"
	"strings"

	"gohow/internal/logging"
	"gohow/internal/report"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const footerHeight = 1

// categoryHeader matches the "i/n NAME" line that opens each category.
var categoryHeader = regexp.MustCompile(`^\d+/\d+ \S`)

type keyMap struct {
	Quit   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Next   key.Binding
	Prev   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next category"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous category"),
		),
	}
}

func (k keyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Quit, k.Next, k.Prev, k.Top, k.Bottom} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// Model is a scrollable view of one rendered report.
// Scrolling keys (arrows, j/k, pgup/pgdn, space) are handled by the viewport.
type Model struct {
	viewport viewport.Model
	keys     keyMap
	styles   Styles
	unit     string
	headers  []int // line index of each category header
}

// NewModel creates a pager for overstrike-styled report text.
func NewModel(unit, text string, styles Styles) Model {
	m := Model{
		viewport: viewport.New(80, 20),
		keys:     defaultKeyMap(),
		styles:   styles,
		unit:     unit,
		headers:  categoryLines(text),
	}
	m.viewport.SetContent(Translate(text, styles))
	return m
}

func categoryLines(text string) []int {
	var lines []int
	for i, line := range strings.Split(report.Strip(text), "\n") {
		if categoryHeader.MatchString(line) {
			lines = append(lines, i)
		}
	}
	return lines
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resize and key messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - footerHeight
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			logging.PagerDebug("quit %s at offset %d", m.unit, m.viewport.YOffset)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			if line, ok := m.nextCategory(); ok {
				m.viewport.SetYOffset(line)
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if line, ok := m.prevCategory(); ok {
				m.viewport.SetYOffset(line)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) nextCategory() (int, bool) {
	for _, line := range m.headers {
		if line > m.viewport.YOffset {
			return line, true
		}
	}
	return 0, false
}

func (m Model) prevCategory() (int, bool) {
	for i := len(m.headers) - 1; i >= 0; i-- {
		if m.headers[i] < m.viewport.YOffset {
			return m.headers[i], true
		}
	}
	return 0, false
}

// View renders the viewport and a one-line footer.
func (m Model) View() string {
	return m.viewport.View() + "\n" + m.footer()
}

func (m Model) footer() string {
	unit := m.styles.Unit.Render(m.unit)
	pct := m.styles.Percent.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	help := m.styles.Help.Render(m.keys.help())

	gap := m.viewport.Width - lipgloss.Width(unit) - lipgloss.Width(help) - lipgloss.Width(pct)
	if gap < 1 {
		gap = 1
	}
	return m.styles.Footer.Render(unit + help + strings.Repeat(" ", gap) + pct)
}

// Run shows text in a full-screen pager until the user quits.
func Run(unit, text string) error {
	logging.Pager("opening tui pager for %s", unit)
	p := tea.NewProgram(NewModel(unit, text, StylesFor(DetectPalette())), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}
	return nil
}
