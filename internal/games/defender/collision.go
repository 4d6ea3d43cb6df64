package defender

import "github.com/vovakirdan/space-defender/internal/core"

// Near reports whether two entities at (x1, y1) and (x2, y2) with sizes s1
// and s2 are within half their combined size on both axes.
func Near(x1, y1, s1, x2, y2, s2 float64) bool {
	reach := (s1 + s2) / 2
	return core.AbsF(x1-x2) < reach && core.AbsF(y1-y2) < reach
}

// Hits reports whether the bullet touches the enemy.
func (b Bullet) Hits(e Enemy) bool {
	return Near(b.X, b.Y, b.Size, e.X, e.Y, e.Size)
}

// HitsPlayer reports whether the enemy's lower edge has reached the ship's
// top while the two overlap horizontally.
func HitsPlayer(e Enemy, p Player) bool {
	return e.Y+e.Size > p.Y && core.AbsF(e.X-p.X) < (e.Size+p.Size)/2
}
