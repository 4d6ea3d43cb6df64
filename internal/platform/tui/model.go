package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

// Model is the Bubble Tea model for a Space Defender session.
// The game owns menu, play and game-over; the model forwards input, runs the
// tick chain while playing and records finished runs.
type Model struct {
	game      *defender.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	player    string
	keyMapper *KeyMapper
	help      help.Model
	history   *HistoryModel

	phase    defender.Phase // Last phase seen, to detect transitions
	gen      int            // Current tick chain
	drag     dragState
	quitting bool
}

// dragState tracks a left-button gesture in screen cells.
type dragState struct {
	active bool
	lastX  int
	moved  bool
}

// NewModel creates a model around game. A nil store disables run history;
// a nil logger discards log output.
func NewModel(game *defender.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) Model {
	cfg = cfg.Normalized()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		store:     store,
		logger:    logger,
		config:    cfg,
		player:    player,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		phase:     game.Phase(),
	}
	m.help.Width = cfg.ScreenW
	m.reportViewport()
	return m
}

// playRows leaves the bottom row for the help line.
func playRows(height int) int {
	return max(height-1, 1)
}

// Init initializes the model. Ticks start once a run begins.
func (m Model) Init() tea.Cmd {
	if m.game.ShouldContinue() {
		return tickCmd(m.gen, m.interval())
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.history != nil {
		return m.updateHistory(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.IsHistory(msg) && m.phase != defender.PhasePlaying {
		h := NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH, true)
		m.history = &h
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}
	m.game.Apply(frame)

	return m.sync()
}

// handleMouse turns a left-button drag into movement and a click into a tap.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drag = dragState{active: true, lastX: msg.X}
		}
		return m, nil

	case tea.MouseActionMotion:
		if !m.drag.active {
			return m, nil
		}
		dx := msg.X - m.drag.lastX
		if dx == 0 {
			return m, nil
		}
		m.drag.lastX = msg.X
		m.drag.moved = true
		frame.Drag(float64(dx) * m.game.Config().Display.CellWidth)

	case tea.MouseActionRelease:
		if !m.drag.active {
			return m, nil
		}
		if !m.drag.moved {
			frame.Set(defender.TapAction(m.game.Phase()))
		}
		m.drag = dragState{}
	}

	m.game.Apply(frame)
	return m.sync()
}

// handleResize processes window resize events. The run keeps going; the
// game re-clamps the ship to the new field.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	m.reportViewport()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.phase != defender.PhasePlaying {
		return m, nil
	}

	m.game.Tick()

	next, cmd := m.sync()
	if cmd == nil && next.phase == defender.PhasePlaying {
		cmd = tickCmd(next.gen, next.interval())
	}
	return next, cmd
}

// sync reacts to phase changes: a new run starts a fresh tick chain and a
// finished run is recorded.
func (m Model) sync() (Model, tea.Cmd) {
	phase := m.game.Phase()
	if phase == m.phase {
		return m, nil
	}

	m.logger.Debug("phase changed", "from", m.phase, "to", phase)
	m.phase = phase

	switch phase {
	case defender.PhasePlaying:
		m.gen++
		return m, tickCmd(m.gen, m.interval())
	case defender.PhaseGameOver:
		m.recordRun()
	}
	return m, nil
}

// recordRun logs a finished run and saves it to the history (best effort).
func (m Model) recordRun() {
	snap := m.game.Snapshot()
	m.logger.Info("run finished",
		"player", m.player,
		"score", snap.Score,
		"high", snap.HighScore,
		"ticks", snap.Stats.Ticks,
		"kills", snap.Stats.EnemiesDestroyed,
	)

	if m.store == nil || snap.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Player:     m.player,
		Score:      snap.Score,
		Ticks:      snap.Stats.Ticks,
		ShotsFired: snap.Stats.ShotsFired,
		Kills:      snap.Stats.EnemiesDestroyed,
		Escaped:    snap.Stats.EnemiesEscaped,
		Seed:       m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// updateHistory forwards messages to the history screen until it is closed.
func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		next, _ := m.handleResize(wsm)
		m = next.(Model)
	}

	updated, cmd := m.history.Update(msg)
	h := updated.(HistoryModel)
	switch {
	case h.IsQuitting():
		m.quitting = true
		m.history = nil
		return m, tea.Quit
	case h.IsGoingBack():
		m.history = nil
		return m, nil
	}
	m.history = &h
	return m, cmd
}

func (m Model) reportViewport() {
	display := m.game.Config().Display
	m.game.ReportViewport(
		float64(m.screen.Width())*display.CellWidth,
		float64(m.screen.Height())*display.CellHeight,
	)
}

func (m Model) interval() time.Duration {
	return defender.IntervalFor(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", defender.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	m.game.Render(m.screen)
	return renderFrame(m.screen, m.help.View(m.keyMapper.Keys()))
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(game *defender.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	p := tea.NewProgram(
		NewModel(game, store, logger, cfg, player),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
