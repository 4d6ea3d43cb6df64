package defender

import "testing"

func TestBulletHits(t *testing.T) {
	tests := []struct {
		name string
		b    Bullet
		e    Enemy
		want bool
	}{
		{"overlapping", bulletAt(50, 50), enemyAt(52, 52), true},
		{"just inside reach", bulletAt(0, 0), enemyAt(18.9, 0), true},
		{"exactly at reach", bulletAt(0, 0), enemyAt(19, 0), false},
		{"far right", bulletAt(0, 0), enemyAt(100, 0), false},
		{"vertical miss", bulletAt(50, 100), enemyAt(50, 50), false},
		{"negative offsets", bulletAt(50, 50), enemyAt(40, 40), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Hits(tt.e); got != tt.want {
				t.Errorf("Hits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNearIsSymmetric(t *testing.T) {
	pairs := [][6]float64{
		{0, 0, 8, 10, 10, 30},
		{100, 5, 40, 70, 30, 30},
		{-20, 0, 8, 0, 0, 8},
	}
	for _, p := range pairs {
		a := Near(p[0], p[1], p[2], p[3], p[4], p[5])
		b := Near(p[3], p[4], p[5], p[0], p[1], p[2])
		if a != b {
			t.Errorf("Near not symmetric for %v: %v vs %v", p, a, b)
		}
	}
}

func TestHitsPlayer(t *testing.T) {
	player := Player{X: 100, Y: 700, Size: 40, Placed: true}

	tests := []struct {
		name string
		e    Enemy
		want bool
	}{
		{"below ship top", enemyAt(110, 705), true},
		{"lower edge crosses ship top", enemyAt(100, 671), true},
		{"lower edge touches ship top", enemyAt(100, 670), false},
		{"well above", enemyAt(100, 300), false},
		{"to the side", enemyAt(135, 705), false},
		{"left overlap", enemyAt(66, 705), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitsPlayer(tt.e, player); got != tt.want {
				t.Errorf("HitsPlayer() = %v, want %v", got, tt.want)
			}
		})
	}
}
