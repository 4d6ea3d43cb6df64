package defender

import (
	"testing"

	"github.com/vovakirdan/space-defender/internal/config"
)

// setField replaces entities and the ship while holding the lock.
func setField(g *Game, player *Player, enemies []Enemy, bullets []Bullet) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if player != nil {
		g.player = *player
	}
	g.enemies = append(g.enemies[:0], enemies...)
	g.bullets = append([]Bullet(nil), bullets...)
}

func enemyAt(x, y float64) Enemy {
	return Enemy{X: x, Y: y, Size: 30, Alive: true}
}

func bulletAt(x, y float64) Bullet {
	return Bullet{X: x, Y: y, Size: 8, Active: true}
}

func TestBulletsMoveUp(t *testing.T) {
	g := newPlayingGame(t, neverSpawn())
	setField(g, nil, nil, []Bullet{bulletAt(10, 300), bulletAt(30, 10), bulletAt(50, 5)})

	g.Tick()

	bullets := g.Snapshot().Bullets
	if len(bullets) != 1 {
		t.Fatalf("bullets = %d, want 1 (y<=0 dropped)", len(bullets))
	}
	if bullets[0].Y != 290 {
		t.Errorf("bullet Y = %v, want 290", bullets[0].Y)
	}
}

func TestEnemiesMoveDown(t *testing.T) {
	g := newPlayingGame(t, neverSpawn())
	setField(g, nil, []Enemy{enemyAt(0, 100), enemyAt(300, -30)}, nil)

	g.Tick()

	enemies := g.Snapshot().Enemies
	if len(enemies) != 2 {
		t.Fatalf("enemies = %d, want 2", len(enemies))
	}
	if enemies[0].Y != 103 || enemies[1].Y != -27 {
		t.Errorf("enemy Y = %v, %v, want 103, -27", enemies[0].Y, enemies[1].Y)
	}
}

func TestSpawn(t *testing.T) {
	t.Run("spawns above the field", func(t *testing.T) {
		src := &scriptedSource{values: []float64{0.01, 0.5}, fallback: 0.99}
		g := newPlayingGame(t, src)

		g.Tick()

		enemies := g.Snapshot().Enemies
		if len(enemies) != 1 {
			t.Fatalf("enemies = %d, want 1", len(enemies))
		}
		e := enemies[0]
		if e.X != 0.5*(testWidth-30) || e.Y != -30 {
			t.Errorf("spawned at (%v,%v), want (%v,-30)", e.X, e.Y, 0.5*(testWidth-30))
		}
		if !e.Alive || e.Size != 30 {
			t.Errorf("spawned enemy = %+v", e)
		}
	})

	t.Run("roll above chance", func(t *testing.T) {
		src := &scriptedSource{values: []float64{0.02}, fallback: 0.99}
		g := newPlayingGame(t, src)

		g.Tick()

		if n := len(g.Snapshot().Enemies); n != 0 {
			t.Errorf("enemies = %d, want 0", n)
		}
	})

	t.Run("no spawn at cap", func(t *testing.T) {
		src := &scriptedSource{fallback: 0}
		g := newPlayingGame(t, src)
		full := make([]Enemy, 8)
		for i := range full {
			full[i] = enemyAt(float64(i)*45, 0)
		}
		setField(g, nil, full, nil)

		g.Tick()

		if n := len(g.Snapshot().Enemies); n != 8 {
			t.Errorf("enemies = %d, want 8", n)
		}
	})

	t.Run("one roll per tick", func(t *testing.T) {
		src := neverSpawn()
		g := newPlayingGame(t, src)

		for range 5 {
			g.Tick()
		}

		if src.calls != 5 {
			t.Errorf("source calls = %d, want 5", src.calls)
		}
	})
}

func TestEnemyCountNeverExceedsCap(t *testing.T) {
	g := newPlayingGame(t, &scriptedSource{fallback: 0.01})

	for i := range 2000 {
		g.Tick()
		snap := g.Snapshot()
		if len(snap.Enemies) > 8 {
			t.Fatalf("tick %d: enemies = %d, want <= 8", i, len(snap.Enemies))
		}
		if snap.Phase != PhasePlaying {
			break
		}
	}
}

func TestBulletHitsOneEnemy(t *testing.T) {
	g := newPlayingGame(t, neverSpawn())
	// After one tick the pair sits at bullet (50,50) and enemy (52,55).
	setField(g, nil, []Enemy{enemyAt(52, 52)}, []Bullet{bulletAt(50, 60)})

	g.Tick()

	snap := g.Snapshot()
	if snap.Score != 10 {
		t.Errorf("score = %d, want 10", snap.Score)
	}
	if len(snap.Enemies) != 0 || len(snap.Bullets) != 0 {
		t.Errorf("left %d enemies and %d bullets, want none", len(snap.Enemies), len(snap.Bullets))
	}
	if snap.Stats.EnemiesDestroyed != 1 {
		t.Errorf("destroyed = %d, want 1", snap.Stats.EnemiesDestroyed)
	}
}

func TestBulletOverTwoEnemiesPaysTwice(t *testing.T) {
	g := newPlayingGame(t, neverSpawn())
	setField(g, nil, []Enemy{enemyAt(52, 62), enemyAt(45, 58)}, []Bullet{bulletAt(50, 60)})

	g.Tick()

	snap := g.Snapshot()
	if snap.Score != 20 {
		t.Errorf("score = %d, want 20", snap.Score)
	}
	if len(snap.Enemies) != 0 || len(snap.Bullets) != 0 {
		t.Errorf("left %d enemies and %d bullets, want none", len(snap.Enemies), len(snap.Bullets))
	}
	if snap.Stats.EnemiesDestroyed != 2 {
		t.Errorf("destroyed = %d, want 2", snap.Stats.EnemiesDestroyed)
	}
}

func TestBulletMissLeavesBoth(t *testing.T) {
	g := newPlayingGame(t, neverSpawn())
	setField(g, nil, []Enemy{enemyAt(200, 52)}, []Bullet{bulletAt(50, 60)})

	g.Tick()

	snap := g.Snapshot()
	if snap.Score != 0 || len(snap.Enemies) != 1 || len(snap.Bullets) != 1 {
		t.Errorf("score %d, %d enemies, %d bullets; want 0, 1, 1",
			snap.Score, len(snap.Enemies), len(snap.Bullets))
	}
}

func TestPlayerHitEndsRun(t *testing.T) {
	g := newPlayingGame(t, neverSpawn())
	player := Player{X: 100, Y: 700, Size: 40, Placed: true}
	setField(g, &player, []Enemy{enemyAt(110, player.Y+5)}, []Bullet{bulletAt(300, 400)})
	g.mu.Lock()
	g.score = 50
	g.highScore = 20
	g.mu.Unlock()

	g.Tick()

	snap := g.Snapshot()
	if snap.Phase != PhaseGameOver {
		t.Fatalf("phase = %s, want game_over", snap.Phase)
	}
	if snap.HighScore != 50 {
		t.Errorf("high score = %d, want 50", snap.HighScore)
	}
	if len(snap.Enemies) != 1 {
		t.Errorf("enemies = %d, want the colliding enemy retained", len(snap.Enemies))
	}
	if g.ShouldContinue() {
		t.Error("ShouldContinue should be false after game over")
	}

	// The loop is stopped: later ticks change nothing.
	before := snap.Hash()
	g.Tick()
	if g.Snapshot().Hash() != before {
		t.Error("tick after game over changed state")
	}
}

func TestPlayerHitTickCompletes(t *testing.T) {
	g := newPlayingGame(t, neverSpawn())
	player := Player{X: 100, Y: 700, Size: 40, Placed: true}
	setField(g, &player,
		[]Enemy{enemyAt(110, 690), enemyAt(300, 300)},
		[]Bullet{bulletAt(300, 310)},
	)

	g.Tick()

	snap := g.Snapshot()
	if snap.Phase != PhaseGameOver {
		t.Fatalf("phase = %s, want game_over", snap.Phase)
	}
	// The bullet pass still runs after the hit, scoring above the
	// high score taken when the run ended.
	if snap.Score != 10 {
		t.Errorf("score = %d, want 10 from the same-tick kill", snap.Score)
	}
	if snap.HighScore != 0 {
		t.Errorf("high score = %d, want 0 (taken before the kill)", snap.HighScore)
	}
	if len(snap.Enemies) != 1 || len(snap.Bullets) != 0 {
		t.Errorf("enemies, bullets = %d, %d, want 1, 0", len(snap.Enemies), len(snap.Bullets))
	}
	if snap.Stats.EnemiesDestroyed != 1 {
		t.Errorf("destroyed = %d, want 1", snap.Stats.EnemiesDestroyed)
	}
}

func TestPlayerHitTickStillRollsSpawn(t *testing.T) {
	src := &scriptedSource{values: []float64{0.01, 0.5}, fallback: 0.99}
	g := newPlayingGame(t, src)
	player := Player{X: 100, Y: 700, Size: 40, Placed: true}
	setField(g, &player, []Enemy{enemyAt(110, 690)}, nil)

	g.Tick()

	snap := g.Snapshot()
	if snap.Phase != PhaseGameOver {
		t.Fatalf("phase = %s, want game_over", snap.Phase)
	}
	if src.calls != 2 {
		t.Errorf("source calls = %d, want 2 (roll and position)", src.calls)
	}
	if len(snap.Enemies) != 2 {
		t.Errorf("enemies = %d, want colliding enemy plus spawn", len(snap.Enemies))
	}
}

func TestPlayerHitKeepsHigherHighScore(t *testing.T) {
	g := newPlayingGame(t, neverSpawn())
	player := Player{X: 100, Y: 700, Size: 40, Placed: true}
	setField(g, &player, []Enemy{enemyAt(110, 690)}, nil)
	g.mu.Lock()
	g.score = 10
	g.highScore = 90
	g.mu.Unlock()

	g.Tick()

	snap := g.Snapshot()
	if snap.Phase != PhaseGameOver || snap.HighScore != 90 {
		t.Errorf("phase %s high %d, want game_over 90", snap.Phase, snap.HighScore)
	}
}

func TestEnemyBesideShipIsSafe(t *testing.T) {
	g := newPlayingGame(t, neverSpawn())
	player := Player{X: 100, Y: 700, Size: 40, Placed: true}
	setField(g, &player, []Enemy{enemyAt(140, 705)}, nil)

	g.Tick()

	if phase := g.Phase(); phase != PhasePlaying {
		t.Errorf("phase = %s, want playing", phase)
	}
}

func TestEnemyBelowFieldIsDropped(t *testing.T) {
	g := newPlayingGame(t, neverSpawn())
	setField(g, nil, []Enemy{enemyAt(0, 850)}, nil)
	g.mu.Lock()
	g.score = 30
	g.mu.Unlock()

	g.Tick()

	snap := g.Snapshot()
	if len(snap.Enemies) != 0 {
		t.Errorf("enemies = %d, want 0", len(snap.Enemies))
	}
	if snap.Score != 30 || snap.Phase != PhasePlaying {
		t.Errorf("score %d phase %s, want 30 playing", snap.Score, snap.Phase)
	}
	if snap.Stats.EnemiesEscaped != 1 {
		t.Errorf("escaped = %d, want 1", snap.Stats.EnemiesEscaped)
	}
}

func TestFieldStaysConsistentOverLongRun(t *testing.T) {
	cfg := config.DefaultDefenderConfig()
	g := NewWithSource(cfg, testRuntime(), NewSource(7))
	g.ReportViewport(testWidth, testHeight)
	g.StartGame()
	pilot := NewAutopilot(cfg)

	for i := range 5000 {
		if !g.ShouldContinue() {
			g.Replay()
		}
		g.Apply(pilot.Decide(g.Snapshot()))
		g.Tick()

		snap := g.Snapshot()
		if snap.Player.X < 0 || snap.Player.X > testWidth-snap.Player.Size {
			t.Fatalf("tick %d: player X %v out of bounds", i, snap.Player.X)
		}
		for _, e := range snap.Enemies {
			if !e.Alive {
				t.Fatalf("tick %d: dead enemy kept", i)
			}
		}
		for _, b := range snap.Bullets {
			if !b.Active || b.Y <= 0 {
				t.Fatalf("tick %d: stale bullet kept: %+v", i, b)
			}
		}
		if snap.Score < 0 || snap.HighScore < 0 {
			t.Fatalf("tick %d: negative score", i)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := config.DefaultDefenderConfig()
		g := New(cfg, testRuntime())
		g.ReportViewport(testWidth, testHeight)
		g.StartGame()
		pilot := NewAutopilot(cfg)
		for range 1000 {
			if !g.ShouldContinue() {
				break
			}
			g.Apply(pilot.Decide(g.Snapshot()))
			g.Tick()
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Stats != b.Stats {
		t.Errorf("determinism failed: %+v vs %+v", a.Stats, b.Stats)
	}
}
