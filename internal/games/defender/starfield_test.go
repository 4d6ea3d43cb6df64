package defender

import (
	"testing"

	"github.com/vovakirdan/space-defender/internal/config"
)

func TestStarfield(t *testing.T) {
	f := NewStarfield(NewSource(1), 50)

	if f.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", f.Len())
	}
	for i, s := range f.Stars() {
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Errorf("star %d at (%v,%v), want unit square", i, s.X, s.Y)
		}
	}

	same := NewStarfield(NewSource(1), 50)
	for i := range f.Stars() {
		if f.Stars()[i] != same.Stars()[i] {
			t.Fatalf("star %d differs for the same seed", i)
		}
	}

	first := f.Stars()[0]
	f.Twinkle()
	if f.Stars()[0] == first {
		t.Error("Twinkle should move stars")
	}
}

func TestStarfieldNegativeCount(t *testing.T) {
	if n := NewStarfield(NewSource(1), -3).Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestStarsDoNotTouchSimulationSource(t *testing.T) {
	src := neverSpawn()
	g := NewWithSource(config.DefaultDefenderConfig(), testRuntime(), src)
	g.ReportViewport(testWidth, testHeight)
	g.ReportViewport(testWidth+10, testHeight)
	_ = g.Stars()

	if src.calls != 0 {
		t.Errorf("simulation source used %d times by the starfield", src.calls)
	}
}
