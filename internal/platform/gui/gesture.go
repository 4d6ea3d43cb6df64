package gui

import "math"

// DefaultTapSlop is how far a pointer may travel, in pixels, and still count
// as a tap.
const DefaultTapSlop = 8.0

// Gesture turns one pointer's press, moves and release into horizontal drag
// deltas and taps. It is fed by both mouse and touch input.
type Gesture struct {
	slop float64

	active         bool
	startX, startY float64
	lastX          float64
	dragging       bool
}

// NewGesture creates a gesture tracker with the given tap slop.
func NewGesture(slop float64) *Gesture {
	if slop < 0 {
		slop = 0
	}
	return &Gesture{slop: slop}
}

// Active reports whether a pointer is down.
func (g *Gesture) Active() bool {
	return g.active
}

// Press starts a gesture at (x, y).
func (g *Gesture) Press(x, y float64) {
	*g = Gesture{slop: g.slop, active: true, startX: x, startY: y, lastX: x}
}

// Move reports the horizontal distance since the last call. Nothing is
// reported until the pointer leaves the tap slop, so a shaky tap stays a tap.
func (g *Gesture) Move(x, y float64) float64 {
	if !g.active {
		return 0
	}
	if !g.dragging {
		if math.Hypot(x-g.startX, y-g.startY) <= g.slop {
			return 0
		}
		g.dragging = true
	}
	dx := x - g.lastX
	g.lastX = x
	return dx
}

// Release ends the gesture and reports whether it was a tap.
func (g *Gesture) Release() bool {
	tap := g.active && !g.dragging
	*g = Gesture{slop: g.slop}
	return tap
}

// StartPoint returns where the current gesture began.
func (g *Gesture) StartPoint() (x, y float64) {
	return g.startX, g.startY
}
