// Package core holds the small presentation-neutral pieces shared by the
// simulation and its front ends: cell geometry, the Screen buffer, colors,
// input actions and runtime settings. It has no external dependencies.
package core

import "math"

// Rect is an axis-aligned box in integer units (screen cells or pixels).
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ToCell maps a world coordinate onto the cell grid.
func ToCell(v, cellSize float64) int {
	return int(math.Floor(v / cellSize))
}

// CellSpan returns how many cells a world length covers, at least one.
func CellSpan(length, cellSize float64) int {
	return Max(int(math.Round(length/cellSize)), 1)
}

// ClampF restricts val to [lo, hi]. When hi < lo the range collapses to lo.
func ClampF(val, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Min(math.Max(val, lo), hi)
}

// AbsF returns |x|.
func AbsF(x float64) float64 {
	return math.Abs(x)
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	return min(a, b)
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	return max(a, b)
}
