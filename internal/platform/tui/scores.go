package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/antonvlasov/tui-pong/internal/config"
	"github.com/antonvlasov/tui-pong/internal/storage"
)

// maxSessions is the most history rows loaded into the table.
const maxSessions = 100

// ScoresKeyMap defines the key bindings for the session history view.
type ScoresKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoresKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoresKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultScoresKeyMap returns default key bindings.
func DefaultScoresKeyMap() ScoresKeyMap {
	return ScoresKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "t"),
			key.WithHelp("tab", "recent/best"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoresModel is the Bubble Tea model for the session history screen.
type ScoresModel struct {
	store     *storage.Store
	sessions  []storage.SessionEntry
	table     table.Model
	help      help.Model
	keys      ScoresKeyMap
	width     int
	height    int
	showBest  bool // Sort by player score instead of recency
	goingBack bool // True if user pressed back (not quit)
	quitting  bool
}

// NewScoresModel creates a new session history model.
func NewScoresModel(store *storage.Store, width, height int) ScoresModel {
	h := help.New()
	h.ShowAll = false

	m := ScoresModel{
		store:  store,
		keys:   DefaultScoresKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadSessions()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoresModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Difficulty", Width: 10},
		{Title: "Score", Width: 9},
		{Title: "Duration", Width: 9},
		{Title: "Date", Width: 17},
	}

	height := m.height - 7 // Leave room for title, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads the session history in the current sort order.
func (m *ScoresModel) loadSessions() {
	if m.store == nil {
		m.sessions = nil
		m.updateTableRows()
		return
	}

	var (
		sessions []storage.SessionEntry
		err      error
	)
	if m.showBest {
		sessions, err = m.store.TopSessions(maxSessions)
	} else {
		sessions, err = m.store.RecentSessions(maxSessions)
	}
	if err != nil {
		m.sessions = nil
	} else {
		m.sessions = sessions
	}
	m.updateTableRows()
}

// updateTableRows refreshes the table contents from the loaded sessions.
func (m *ScoresModel) updateTableRows() {
	rows := make([]table.Row, 0, len(m.sessions))
	for i, s := range m.sessions {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			config.Difficulty(s.Difficulty).Title(),
			fmt.Sprintf("%d : %d", s.PlayerScore, s.CPUScore),
			formatDuration(s.DurationSecs),
			s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func formatDuration(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}

// Init initializes the scores model.
func (m ScoresModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scores screen.
func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.showBest = !m.showBest
			m.loadSessions()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the session history screen.
func (m ScoresModel) View() string {
	if m.quitting {
		return ""
	}

	order := "recent"
	if m.showBest {
		order = "best"
	}
	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Session History (%s)", order))

	body := m.table.View()
	if len(m.sessions) == 0 {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Render("No sessions recorded yet. Play a game first!")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		"  "+title,
		"",
		body,
		"",
		"  "+m.help.View(m.keys),
	)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m ScoresModel) IsQuitting() bool {
	return m.quitting
}

// GoingBack returns true if the user asked to return to the menu.
func (m ScoresModel) GoingBack() bool {
	return m.goingBack
}
