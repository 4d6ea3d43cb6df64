package defender

import (
	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
)

// Autopilot is a deterministic player used by headless simulation.
//
// It chases the lowest enemy, shoots when lined up, and sidesteps any enemy
// about to reach the ship.
type Autopilot struct {
	step      float64
	maxFlight int
}

// NewAutopilot creates an autopilot that moves at most one move step per tick.
func NewAutopilot(cfg config.DefenderConfig) *Autopilot {
	return &Autopilot{step: cfg.Player.MoveStep, maxFlight: 1}
}

// Decide returns the input for the next tick. Outside of play it returns
// an empty frame.
func (a *Autopilot) Decide(s Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if s.Phase != PhasePlaying || !s.Player.Placed {
		return in
	}

	p := s.Player
	nose := p.X + p.Size/2

	if threat, ok := a.threat(s); ok {
		dir := 1.0
		if nose < threat.X+threat.Size/2 {
			dir = -1
		}
		// Pinned against a wall: go the other way.
		if (dir < 0 && p.X <= 0) || (dir > 0 && p.X >= s.Width-p.Size) {
			dir = -dir
		}
		in.Drag(dir * a.step)
		return in
	}

	target, ok := lowestEnemy(s.Enemies)
	if !ok {
		// Drift back to the middle while the sky is empty.
		in.Drag(core.ClampF(s.Width/2-nose, -a.step, a.step))
		return in
	}

	// Bullets leave from the nose and are tested against the enemy's X.
	offset := target.X - nose
	in.Drag(core.ClampF(offset, -a.step, a.step))
	if core.AbsF(offset) < target.Size/2 && len(s.Bullets) <= a.maxFlight {
		in.Set(core.ActionFire)
	}
	return in
}

// threat returns the nearest enemy within two enemy sizes above the ship
// that overlaps it horizontally.
func (a *Autopilot) threat(s Snapshot) (Enemy, bool) {
	var (
		found Enemy
		ok    bool
	)
	p := s.Player
	for _, e := range s.Enemies {
		if e.Y+e.Size < p.Y-2*e.Size {
			continue
		}
		if core.AbsF(e.X-p.X) >= (e.Size+p.Size)/2 {
			continue
		}
		if !ok || e.Y > found.Y {
			found, ok = e, true
		}
	}
	return found, ok
}

// lowestEnemy returns the enemy closest to the bottom edge.
func lowestEnemy(enemies []Enemy) (Enemy, bool) {
	if len(enemies) == 0 {
		return Enemy{}, false
	}
	low := enemies[0]
	for _, e := range enemies[1:] {
		if e.Y > low.Y {
			low = e
		}
	}
	return low, true
}
