package defender

// Star is a background point in unit coordinates, both axes in [0, 1).
type Star struct {
	X, Y float64
}

// Starfield is a decorative background drawn from its own Source.
type Starfield struct {
	src   Source
	stars []Star
}

// NewStarfield creates count stars drawn from src.
func NewStarfield(src Source, count int) *Starfield {
	if count < 0 {
		count = 0
	}
	f := &Starfield{src: src, stars: make([]Star, count)}
	f.Twinkle()
	return f
}

// Twinkle re-rolls every star position.
func (f *Starfield) Twinkle() {
	for i := range f.stars {
		f.stars[i] = Star{X: f.src.Float64(), Y: f.src.Float64()}
	}
}

// Stars returns the current star positions.
func (f *Starfield) Stars() []Star {
	return f.stars
}

// Len returns the number of stars.
func (f *Starfield) Len() int {
	return len(f.stars)
}
