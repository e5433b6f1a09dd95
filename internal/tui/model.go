// Package tui provides the Bubble Tea ladder viewer.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordladder/internal/ladder"
)

var (
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea ladder viewer.
type Model struct {
	start  string
	goal   string
	result ladder.Result
	cursor int

	width  int
	height int
}

// NewModel constructs a viewer for a found ladder.
func NewModel(start, goal string, res ladder.Result) *Model {
	return &Model{start: start, goal: goal, result: res}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j", "enter", " ":
			m.move(1)
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.result.Path) - 1
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) move(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.result.Path) {
		return
	}
	m.cursor = next
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.result.Path) == 0 {
		return ""
	}
	content := m.renderLadder()
	footer := footerStyle.Render(m.renderFooter())
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderLadder() string {
	lines := make([][]styledRune, len(m.result.Path))
	maxWidth := 0
	for i, word := range m.result.Path {
		changed := -1
		if i > 0 {
			changed = ladder.ChangedIndex(m.result.Path[i-1], word)
		}
		lines[i] = buildStyledRunes(word, changed, i == m.cursor)
		if w := lineWidthOf(lines[i]); w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s → %s", m.start, m.goal)))
	b.WriteString("\n\n")
	for i, line := range lines {
		marker := "  "
		if i == m.cursor {
			marker = markerStyle.Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(padStyled(line, maxWidth))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Step %d/%d", m.cursor+1, len(m.result.Path)),
		fmt.Sprintf("%d changes", m.result.Steps()),
		fmt.Sprintf("%d words expanded", m.result.Expanded),
		"j/k move · q quit",
	}
	return strings.Join(segments, "  ")
}
