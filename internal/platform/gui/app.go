// Package gui is the ebiten front end for Space Defender: a resizable window
// (or mobile view) driven at the simulation tick rate, with drag-to-move and
// tap-to-shoot for mouse and touch.
package gui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

// Window defaults in device-independent pixels.
const (
	DefaultWidth  = 480
	DefaultHeight = 800

	pauseButtonSize = 40
	pauseButtonPad  = 8
)

// Options configures an App.
type Options struct {
	Game   *defender.Game
	Store  *storage.Store // Optional run history
	Prefs  *PrefsStore    // Optional settings persistence
	Logger *log.Logger
	Player string
	Seed   int64
}

// App adapts a defender.Game to ebiten.Game.
type App struct {
	game   *defender.Game
	store  *storage.Store
	prefs  *PrefsStore
	logger *log.Logger
	player string
	seed   int64

	settings Prefs
	phase    defender.Phase
	width    int
	height   int

	mouse    *Gesture
	touch    *Gesture
	touchID  ebiten.TouchID
	touching bool
	touchBuf []ebiten.TouchID

	quit bool
}

// NewApp creates the ebiten adapter. Saved prefs are loaded when available.
func NewApp(o Options) *App {
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	settings, err := o.Prefs.Load()
	if err != nil {
		logger.Warn("could not load settings", "error", err)
	}

	return &App{
		game:     o.Game,
		store:    o.Store,
		prefs:    o.Prefs,
		logger:   logger,
		player:   o.Player,
		seed:     o.Seed,
		settings: settings,
		phase:    o.Game.Phase(),
		mouse:    NewGesture(DefaultTapSlop),
		touch:    NewGesture(DefaultTapSlop),
	}
}

// Settings returns the current GUI settings.
func (a *App) Settings() Prefs {
	return a.settings
}

// Update reads input, advances the simulation one tick while playing and
// records finished runs.
func (a *App) Update() error {
	frame := a.readKeys()
	a.readMouse(&frame)
	a.readTouch(&frame)

	if a.quit {
		return ebiten.Termination
	}
	a.step(frame)
	return nil
}

// step applies one frame of input and runs one tick. Idle frames only tick.
func (a *App) step(frame core.InputFrame) {
	if !frame.Empty() {
		a.game.Apply(frame)
	}
	if a.game.ShouldContinue() {
		a.game.Tick()
	}
	a.sync()
}

// readKeys maps the keyboard onto an input frame. Held arrows steer smoothly;
// everything else fires once per press.
func (a *App) readKeys() core.InputFrame {
	frame := core.NewInputFrame()
	step := a.game.Config().Player.MoveStep / 4

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		frame.Drag(-step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		frame.Drag(step)
	}

	pressed := []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeySpace, core.ActionFire},
		{ebiten.KeyArrowUp, core.ActionFire},
		{ebiten.KeyEnter, core.ActionConfirm},
		{ebiten.KeyR, core.ActionRestart},
		{ebiten.KeyM, core.ActionMenu},
		{ebiten.KeyP, core.ActionPause},
		{ebiten.KeyEscape, core.ActionPause},
		{ebiten.KeyEscape, core.ActionMenu},
	}
	for _, p := range pressed {
		if inpututil.IsKeyJustPressed(p.key) {
			frame.Set(p.action)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.ToggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.ToggleStars()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && a.phase != defender.PhasePlaying {
		a.quit = true
	}
	return frame
}

func (a *App) readMouse(frame *core.InputFrame) {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		a.mouse.Press(fx, fy)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		sx, sy := a.mouse.StartPoint()
		if a.mouse.Release() {
			a.tapAt(sx, sy, frame)
		}
	case a.mouse.Active():
		frame.Drag(a.mouse.Move(fx, fy))
	}
}

// readTouch follows the first finger down until it lifts.
func (a *App) readTouch(frame *core.InputFrame) {
	if !a.touching {
		a.touchBuf = inpututil.AppendJustPressedTouchIDs(a.touchBuf[:0])
		if len(a.touchBuf) == 0 {
			return
		}
		a.touchID, a.touching = a.touchBuf[0], true
		x, y := ebiten.TouchPosition(a.touchID)
		a.touch.Press(float64(x), float64(y))
		return
	}

	if inpututil.IsTouchJustReleased(a.touchID) {
		a.touching = false
		sx, sy := a.touch.StartPoint()
		if a.touch.Release() {
			a.tapAt(sx, sy, frame)
		}
		return
	}

	x, y := ebiten.TouchPosition(a.touchID)
	frame.Drag(a.touch.Move(float64(x), float64(y)))
}

// tapAt handles a tap: the pause button while playing, otherwise whatever a
// tap means in the current phase.
func (a *App) tapAt(x, y float64, frame *core.InputFrame) {
	phase := a.game.Phase()
	if phase == defender.PhasePlaying && a.pauseButton().Contains(int(x), int(y)) {
		frame.Set(core.ActionPause)
		return
	}
	frame.Set(defender.TapAction(phase))
}

// pauseButton is the top-right pause control in screen pixels.
func (a *App) pauseButton() core.Rect {
	return core.NewRect(a.width-pauseButtonSize-pauseButtonPad, pauseButtonPad, pauseButtonSize, pauseButtonSize)
}

// ToggleFullscreen flips fullscreen mode and saves the choice.
func (a *App) ToggleFullscreen() {
	a.settings.Fullscreen = !a.settings.Fullscreen
	ebiten.SetFullscreen(a.settings.Fullscreen)
	a.savePrefs()
}

// ToggleStars shows or hides the starfield and saves the choice.
func (a *App) ToggleStars() {
	a.settings.Stars = !a.settings.Stars
	a.savePrefs()
}

func (a *App) savePrefs() {
	if err := a.prefs.Save(a.settings); err != nil {
		a.logger.Warn("could not save settings", "error", err)
	}
}

// sync logs phase changes and records a run when it ends.
func (a *App) sync() {
	phase := a.game.Phase()
	if phase == a.phase {
		return
	}
	a.logger.Debug("phase changed", "from", a.phase, "to", phase)
	a.phase = phase

	if phase != defender.PhaseGameOver {
		return
	}

	snap := a.game.Snapshot()
	a.logger.Info("run finished", "player", a.player, "score", snap.Score, "high", snap.HighScore)
	if a.store == nil || snap.Score <= 0 {
		return
	}
	if _, err := a.store.SaveRun(storage.Run{
		Player:     a.player,
		Score:      snap.Score,
		Ticks:      snap.Stats.Ticks,
		ShotsFired: snap.Stats.ShotsFired,
		Kills:      snap.Stats.EnemiesDestroyed,
		Escaped:    snap.Stats.EnemiesEscaped,
		Seed:       a.seed,
	}); err != nil {
		a.logger.Warn("could not save run", "error", err)
	}
}

// Layout uses the window size as the play field, one world unit per pixel.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.game.ReportViewport(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(o Options, tickRate int) error {
	app := NewApp(o)

	ebiten.SetWindowTitle(defender.Title)
	ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tickRate)
	ebiten.SetFullscreen(app.settings.Fullscreen)

	return ebiten.RunGame(app)
}
