// Package historyui provides the Bubble Tea search history browser.
package historyui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordladder/internal/model"
	"github.com/verte-zerg/wordladder/internal/report"
)

var (
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	detailStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Lister loads recorded searches.
type Lister interface {
	ListSearches(ctx context.Context, cfg model.HistoryConfig) ([]model.SearchRecord, error)
}

// Model implements the Bubble Tea history UI.
type Model struct {
	store Lister
	cfg   model.HistoryConfig

	records []model.SearchRecord
	errMsg  string

	table table.Model

	width  int
	height int

	filterMode  bool
	filterInput textinput.Model
}

// NewModel constructs a history UI model and loads the first page of records.
func NewModel(st Lister, cfg model.HistoryConfig) *Model {
	m := &Model{store: st, cfg: cfg}
	m.filterInput = newFilterInput("Word: ")
	m.table = table.New(
		table.WithColumns(buildColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m.table.SetStyles(tableStyles())
	m.refresh()
	return m
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
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "/":
			m.filterMode = true
			m.filterInput.SetValue(m.cfg.Word)
			return m, m.filterInput.Focus()
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{m.renderHeader()}
	if m.filterMode {
		lines = append(lines, m.filterInput.View())
	}
	switch {
	case m.errMsg != "":
		lines = append(lines, errorStyle.Render(m.errMsg))
	case len(m.records) == 0:
		lines = append(lines, "No searches found.")
	default:
		lines = append(lines, tableMutedStyle.Render(m.table.View()))
		if detail := m.renderDetail(); detail != "" {
			lines = append(lines, detail)
		}
	}
	lines = append(lines, m.renderHelp())
	return strings.Join(lines, "\n")
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.cfg.Word = strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
		m.filterMode = false
		m.filterInput.Blur()
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	records, err := m.store.ListSearches(context.Background(), m.cfg)
	if err != nil {
		m.errMsg = fmt.Sprintf("Failed to load history: %v", err)
		m.records = nil
		m.table.SetRows(nil)
		return
	}
	m.errMsg = ""
	m.records = records
	rows := make([]table.Row, 0, len(records))
	// Newest first so the latest search is selected on open.
	cells := report.HistoryRows(records)
	for i := len(cells) - 1; i >= 0; i-- {
		rows = append(rows, table.Row(cells[i]))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.table.SetColumns(buildColumns(m.width))
	m.table.SetWidth(m.width)
	// header, help, detail and the table's own header line
	m.table.SetHeight(maxInt(1, m.height-5))
	m.filterInput.Width = maxInt(10, m.width-lipgloss.Width(m.filterInput.Prompt)-2)
}

func (m *Model) selectedRecord() (model.SearchRecord, bool) {
	row := m.table.SelectedRow()
	if row == nil {
		return model.SearchRecord{}, false
	}
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return model.SearchRecord{}, false
	}
	for _, rec := range m.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return model.SearchRecord{}, false
}

func (m *Model) renderHeader() string {
	word := m.cfg.Word
	if word == "" {
		word = "any"
	}
	since := "any"
	if m.cfg.Since != nil {
		since = m.cfg.Since.Format("2006-01-02")
	}
	last := "all"
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	summary := fmt.Sprintf("History: %d searches  word=%s  since=%s  last=%s", len(m.records), word, since, last)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderDetail() string {
	rec, ok := m.selectedRecord()
	if !ok {
		return ""
	}
	text := fmt.Sprintf("%s → %s: %s", rec.Start, rec.Goal, report.NoPathMessage)
	if rec.Found {
		text = fmt.Sprintf("%s → %s: %s (%d steps)", rec.Start, rec.Goal, strings.Join(rec.Path, " → "), rec.Steps())
	}
	return detailStyle.Render(truncateLine(text, m.width))
}

func (m *Model) renderHelp() string {
	if m.filterMode {
		return headerStyle.Render("enter: apply  esc: cancel")
	}
	return headerStyle.Render("Scroll: up/down/pgup/pgdn  Filter: /  Quit: q")
}

func buildColumns(width int) []table.Column {
	headers := report.HistoryHeaders()
	fixed := []int{5, 16, 10, 10, 5, 8, 8}
	used := 0
	columns := make([]table.Column, 0, len(headers))
	for i, w := range fixed {
		columns = append(columns, table.Column{Title: headers[i], Width: w})
		used += w + 1
	}
	columns = append(columns, table.Column{Title: headers[len(headers)-1], Width: maxInt(10, width-used-1)})
	return columns
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "cat"
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
