package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pond/internal/storage"
)

const maxSessions = 200

// historyFilters are the history tabs; "" shows every mode.
var historyFilters = []string{"", "recall", "spelling", "matching"}

// HistoryModel lists recent study rounds, filterable by mode.
type HistoryModel struct {
	store     *storage.Store
	filter    int
	sessions  []storage.StudySession
	totals    []storage.StudyTotals
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates the study history screen.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	wordWidth := max(m.width-50, 12)
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Mode", Width: 9},
		{Title: "Page", Width: 5},
		{Title: "Word", Width: min(wordWidth, 24)},
		{Title: "Result", Width: 9},
		{Title: "Errors", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	t.SetStyles(tableStyles())
	return t
}

func (m *HistoryModel) load() {
	m.sessions, m.totals = nil, nil
	if m.store != nil {
		if s, err := m.store.RecentStudySessions(historyFilters[m.filter], maxSessions); err == nil {
			m.sessions = s
		}
		if t, err := m.store.StudySummary(); err == nil {
			m.totals = t
		}
	}

	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		result := "left"
		if s.Completed {
			result = "done"
		}
		word := s.Word
		if word == "" {
			word = "-"
		}
		rows[i] = table.Row{
			s.CreatedAt.Format("Jan 02 15:04"),
			s.Mode,
			strconv.Itoa(s.Page),
			word,
			result,
			strconv.Itoa(s.Errors),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextBoard), key.Matches(msg, m.keys.Right):
			m.filter = (m.filter + 1) % len(historyFilters)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard), key.Matches(msg, m.keys.Left):
			m.filter = (m.filter + len(historyFilters) - 1) % len(historyFilters)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// filterTitle names a history tab.
func filterTitle(mode string) string {
	if mode == "" {
		return "All"
	}
	return strings.ToUpper(mode[:1]) + mode[1:]
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("STUDY HISTORY", m.width)))
	b.WriteString("\n\n")

	titles := make([]string, len(historyFilters))
	for i, f := range historyFilters {
		titles[i] = filterTitle(f)
	}
	b.WriteString(renderTabs(titles, m.filter, m.width))
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		empty := dimStyle.Italic(true).Padding(2, 4).
			Render("No study rounds yet.\nPick a word on the word wall to start one.")
		b.WriteString(centerText(boxStyle().Render(empty), m.width))
	} else {
		b.WriteString(centerText(boxStyle().Render(m.table.View()), m.width))
	}
	b.WriteString("\n")

	parts := make([]string, 0, len(m.totals))
	for _, t := range m.totals {
		parts = append(parts, fmt.Sprintf("%s %d/%d done, %d errors", t.Mode, t.Completed, t.Rounds, t.Errors))
	}
	if len(parts) > 0 {
		b.WriteString(dimStyle.Render("  " + strings.Join(parts, "  |  ")))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the study history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewHistoryModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
