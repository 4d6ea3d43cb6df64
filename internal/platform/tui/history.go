package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-defender/internal/storage"
)

const maxHistoryRows = 100

// HistoryView selects which runs the history table lists.
type HistoryView int

const (
	HistoryTop HistoryView = iota
	HistoryRecent
)

// String returns the tab title.
func (v HistoryView) String() string {
	if v == HistoryRecent {
		return "Recent runs"
	}
	return "Top runs"
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Switch}, {k.Back, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top/recent"),
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

// HistoryModel shows recorded runs in a table.
type HistoryModel struct {
	store     *storage.Store
	view      HistoryView
	runs      []storage.Run
	summary   *storage.Summary
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	embedded  bool // Back returns to the game instead of quitting the program
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history screen. When embedded, Back hands control
// back to the caller instead of ending the program.
func NewHistoryModel(store *storage.Store, width, height int, embedded bool) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		store:    store,
		keys:     DefaultHistoryKeyMap(),
		help:     h,
		width:    width,
		height:   height,
		embedded: embedded,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Kills", Width: 6},
		{Title: "Acc", Width: 5},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// load refreshes runs and the summary for the current view.
func (m *HistoryModel) load() {
	m.runs, m.summary, m.loadErr = nil, nil, nil
	if m.store != nil {
		var runs []storage.Run
		var err error
		if m.view == HistoryRecent {
			runs, err = m.store.RecentRuns(maxHistoryRows)
		} else {
			runs, err = m.store.TopRuns(maxHistoryRows)
		}
		if err == nil {
			m.summary, err = m.store.Summary()
		}
		m.runs, m.loadErr = runs, err
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = HistoryRow(i+1, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// HistoryRow formats one run as a table row.
func HistoryRow(rank int, r storage.Run) table.Row {
	acc := "-"
	if r.ShotsFired > 0 {
		acc = fmt.Sprintf("%d%%", r.Kills*100/r.ShotsFired)
	}
	player := r.Player
	if player == "" {
		player = "anon"
	}
	return table.Row{
		fmt.Sprintf("%d", rank),
		player,
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%ds", r.Ticks/60),
		fmt.Sprintf("%d", r.Kills),
		acc,
		r.CreatedAt.Local().Format("Jan 02 15:04"),
	}
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
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.view = 1 - m.view
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("SPACE DEFENDER · "+m.view.String()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.summaryLine(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) summaryLine() string {
	if m.summary == nil || m.summary.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  best %d  avg %.0f  kills %d",
		m.summary.Runs, m.summary.BestScore, m.summary.AvgScore, m.summary.TotalKills)
}

// renderTableContent renders the table or an explanation of why it is empty.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Run history is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to make history!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen as its own program.
func RunHistory(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(
		NewHistoryModel(store, width, height, false),
		tea.WithAltScreen(),
	).Run()
	return err
}
