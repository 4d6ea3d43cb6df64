package defender

import (
	"fmt"
	"hash/fnv"
)

// Snapshot is a read-only copy of the game state for presentation layers.
type Snapshot struct {
	Phase     Phase
	Score     int
	HighScore int
	Player    Player
	Enemies   []Enemy
	Bullets   []Bullet
	Width     float64
	Height    float64
	Stats     RunStats
	NewHigh   bool // Set on game over when the run beat the previous high score
}

// Snapshot copies the current state. The returned slices are not shared
// with the game.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Snapshot{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Player:    g.player,
		Enemies:   append([]Enemy(nil), g.enemies...),
		Bullets:   append([]Bullet(nil), g.bullets...),
		Width:     g.width,
		Height:    g.height,
		Stats:     g.stats,
		NewHigh:   g.newHigh,
	}
}

// NewHighScore reports whether a finished run beat the previous high score.
// Tying it does not count.
func (s Snapshot) NewHighScore() bool {
	return s.Phase == PhaseGameOver && s.NewHigh
}

// Hash returns a digest of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "P:%d;S:%d;H:%d,%t;", s.Phase, s.Score, s.HighScore, s.NewHigh)
	fmt.Fprintf(h, "V:%g,%g;", s.Width, s.Height)
	fmt.Fprintf(h, "S:%g,%g,%t;", s.Player.X, s.Player.Y, s.Player.Placed)
	for _, e := range s.Enemies {
		fmt.Fprintf(h, "E:%g,%g;", e.X, e.Y)
	}
	for _, b := range s.Bullets {
		fmt.Fprintf(h, "B:%g,%g;", b.X, b.Y)
	}
	fmt.Fprintf(h, "T:%d,%d,%d,%d", s.Stats.Ticks, s.Stats.ShotsFired,
		s.Stats.EnemiesDestroyed, s.Stats.EnemiesEscaped)

	return h.Sum64()
}
