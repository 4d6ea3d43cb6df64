package core

import "testing"

func TestRectContains(t *testing.T) {
	button := NewRect(352, 8, 40, 40)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 352, 8, true},
		{"inside", 370, 30, true},
		{"last pixel", 391, 47, true},
		{"right edge is exclusive", 392, 20, false},
		{"bottom edge is exclusive", 370, 48, false},
		{"left of rect", 351, 20, false},
		{"above rect", 370, 7, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := button.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, want 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, want 7", r.Bottom())
	}
}

func TestToCell(t *testing.T) {
	tests := []struct {
		v, cell float64
		want    int
	}{
		{0, 10, 0},
		{9.99, 10, 0},
		{10, 10, 1},
		{395, 10, 39},
		{-0.5, 10, -1}, // Just above the field
		{-30, 20, -2},
	}

	for _, tc := range tests {
		if got := ToCell(tc.v, tc.cell); got != tc.want {
			t.Errorf("ToCell(%v, %v) = %d, want %d", tc.v, tc.cell, got, tc.want)
		}
	}
}

func TestCellSpan(t *testing.T) {
	tests := []struct {
		length, cell float64
		want         int
	}{
		{40, 10, 4},
		{30, 10, 3},
		{8, 10, 1},
		{1, 20, 1}, // Never vanishes
		{35, 10, 4},
	}

	for _, tc := range tests {
		if got := CellSpan(tc.length, tc.cell); got != tc.want {
			t.Errorf("CellSpan(%v, %v) = %d, want %d", tc.length, tc.cell, got, tc.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
		{5, 3, 1, 3}, // Collapsed range pins to lo
		{360, 0, 360, 360},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestAbsF(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{{2.5, 2.5}, {-2.5, 2.5}, {0, 0}} {
		if got := AbsF(tc.in); got != tc.want {
			t.Errorf("AbsF(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightYellow, "11"},
		{ColorOrange, "208"},
		{ColorGray, "240"},
		{Color(200), ""},
	}

	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestColorsExcludesDefault(t *testing.T) {
	colors := Colors()
	if len(colors) != int(ColorGray) {
		t.Fatalf("Colors() returned %d colors, want %d", len(colors), ColorGray)
	}
	for _, c := range colors {
		if c == ColorDefault || c.ANSI() == "" {
			t.Errorf("Colors() contains %d without a code", c)
		}
	}
}
