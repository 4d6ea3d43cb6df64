// Package defender implements Space Defender: a ship at the bottom of the
// screen dodges and shoots enemies descending from the top.
//
// Game owns all simulation state. Presentation layers push commands in
// (MovePlayer, Shoot, StartGame, ...), call Tick on a fixed cadence while
// ShouldContinue reports true, and read state back through Snapshot. Every
// exported method takes the game's lock, so input and ticks may come from
// different goroutines.
package defender

import (
	"math"
	"sync"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
)

// ID is the identifier used for run history and logs.
const ID = "defender"

// Title is the display name.
const Title = "Space Defender"

const starTwinkleTicks = 30

// Game implements the Space Defender simulation.
type Game struct {
	mu sync.Mutex

	cfg     config.DefenderConfig
	runtime core.RuntimeConfig
	rng     Source

	phase     Phase
	width     float64 // Viewport in world units, 0 until reported
	height    float64
	player    Player
	enemies   []Enemy
	bullets   []Bullet
	score     int
	highScore int
	newHigh   bool // The last finished run raised highScore
	stats     RunStats

	stars     *Starfield
	starEpoch int
}

// New creates a game in the menu phase seeded from runtime.Seed.
func New(cfg config.DefenderConfig, runtime core.RuntimeConfig) *Game {
	return NewWithSource(cfg, runtime, NewSource(runtime.Seed))
}

// NewWithSource creates a game whose simulation draws from src.
// The starfield uses its own source so rendering never perturbs the simulation.
func NewWithSource(cfg config.DefenderConfig, runtime core.RuntimeConfig, src Source) *Game {
	runtime = runtime.Normalized()
	return &Game{
		cfg:     cfg,
		runtime: runtime,
		rng:     src,
		phase:   PhaseMenu,
		player:  Player{Size: cfg.Player.Size},
		enemies: make([]Enemy, 0, cfg.Enemy.MaxAlive+1),
		stars:   NewStarfield(NewSource(runtime.Seed+1), cfg.Display.Stars),
	}
}

// Config returns the game configuration.
func (g *Game) Config() config.DefenderConfig {
	return g.cfg
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// ShouldContinue reports whether the tick loop should keep running.
func (g *Game) ShouldContinue() bool {
	return g.Phase() == PhasePlaying
}

// StartGame begins a run from the menu.
// Returns false (and does nothing) in any other phase.
func (g *Game) StartGame() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseMenu {
		return false
	}
	g.resetRun()
	return true
}

// Replay begins a new run from the game-over screen.
// Returns false (and does nothing) in any other phase.
func (g *Game) Replay() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseGameOver {
		return false
	}
	g.resetRun()
	return true
}

// PauseOrExit abandons a running game and returns to the menu.
// The high score is not updated. Returns false outside of play.
func (g *Game) PauseOrExit() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying {
		return false
	}
	g.phase = PhaseMenu
	return true
}

// ReturnToMenu leaves the game-over screen for the menu.
// Returns false (and does nothing) in any other phase.
func (g *Game) ReturnToMenu() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseGameOver {
		return false
	}
	g.phase = PhaseMenu
	return true
}

// MovePlayer shifts the ship horizontally by dx, clamped to the viewport.
// Ignored outside of play.
func (g *Game) MovePlayer(dx float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying || math.IsNaN(dx) || !g.ensurePlaced() {
		return
	}
	g.player.X = core.ClampF(g.player.X+dx, 0, g.width-g.player.Size)
}

// Shoot fires a bullet from the ship's nose. Ignored outside of play.
func (g *Game) Shoot() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying || !g.ensurePlaced() {
		return
	}
	g.bullets = append(g.bullets, Bullet{
		X:      g.player.X + g.player.Size/2,
		Y:      g.player.Y,
		Size:   g.cfg.Bullet.Size,
		Active: true,
	})
	g.stats.ShotsFired++
}

// ReportViewport sets the play field size in world units.
// Non-positive or non-finite sizes are ignored.
func (g *Game) ReportViewport(width, height float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return
	}
	if width == g.width && height == g.height {
		g.ensurePlaced()
		return
	}

	g.width, g.height = width, height
	g.stars.Twinkle()
	if g.player.Placed {
		// Keep the ship on screen and anchored to the bottom edge.
		g.player.X = core.ClampF(g.player.X, 0, g.width-g.player.Size)
		g.player.Y = g.homeY()
		return
	}
	g.ensurePlaced()
}

// Viewport returns the play field size, zero until reported.
func (g *Game) Viewport() (width, height float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.width, g.height
}

// Stars returns a copy of the background starfield. The field is re-rolled
// every starTwinkleTicks ticks of play.
func (g *Game) Stars() []Star {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Star(nil), g.currentStars()...)
}

// currentStars twinkles the field when a new epoch starts. Caller holds the lock.
func (g *Game) currentStars() []Star {
	if epoch := g.stats.Ticks / starTwinkleTicks; epoch != g.starEpoch {
		g.starEpoch = epoch
		g.stars.Twinkle()
	}
	return g.stars.Stars()
}

// Apply translates an input frame into commands.
// Transitions are applied before movement and firing.
func (g *Game) Apply(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		g.StartGame()
	}
	if in.Has(core.ActionRestart) {
		g.Replay()
	}
	if in.Has(core.ActionMenu) {
		g.ReturnToMenu()
	}
	if in.Has(core.ActionPause) {
		g.PauseOrExit()
	}

	dx := in.DragX
	if in.Has(core.ActionLeft) {
		dx -= g.cfg.Player.MoveStep
	}
	if in.Has(core.ActionRight) {
		dx += g.cfg.Player.MoveStep
	}
	if dx != 0 {
		g.MovePlayer(dx)
	}
	if in.Has(core.ActionFire) {
		g.Shoot()
	}
}

// resetRun empties the field and starts playing. Caller holds the lock.
func (g *Game) resetRun() {
	g.phase = PhasePlaying
	g.score = 0
	g.newHigh = false
	g.stats = RunStats{}
	g.enemies = g.enemies[:0]
	g.bullets = nil
	g.player = Player{Size: g.cfg.Player.Size}
}

// ensurePlaced positions an unplaced ship once the viewport is known.
// Reports whether the ship is placed. Caller holds the lock.
func (g *Game) ensurePlaced() bool {
	if g.player.Placed {
		return true
	}
	if g.width <= 0 || g.height <= 0 {
		return false
	}
	g.player.X = core.ClampF(g.width/2-g.player.Size/2, 0, g.width-g.player.Size)
	g.player.Y = g.homeY()
	g.player.Placed = true
	return true
}

func (g *Game) homeY() float64 {
	return math.Max(g.height-g.cfg.Player.BottomOffset, 0)
}

// endRun records the high score and moves to game over. Caller holds the lock.
func (g *Game) endRun() {
	g.newHigh = g.score > g.highScore
	if g.newHigh {
		g.highScore = g.score
	}
	g.phase = PhaseGameOver
}
