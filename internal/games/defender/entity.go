package defender

// Player is the ship. Exactly one exists per game.
type Player struct {
	X, Y float64 // Top-left corner in world units
	Size float64

	// Placed is false until the ship has been positioned from the viewport.
	Placed bool
}

// Enemy descends from the top of the play field.
type Enemy struct {
	X, Y  float64
	Size  float64
	Alive bool
}

// Bullet travels straight up from the ship. X is the bullet's centre line.
type Bullet struct {
	X, Y   float64
	Size   float64
	Active bool
}

// RunStats counts what happened during the current run.
type RunStats struct {
	Ticks            int // Simulation ticks while playing
	ShotsFired       int
	EnemiesDestroyed int
	EnemiesEscaped   int // Left through the bottom edge
}

// Accuracy returns destroyed enemies per shot, or 0 before the first shot.
func (s RunStats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.EnemiesDestroyed) / float64(s.ShotsFired)
}
