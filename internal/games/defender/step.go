package defender

import "math"

// Tick advances the simulation by one fixed step.
// Does nothing unless the game is playing and the viewport is known.
func (g *Game) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying || !g.ensurePlaced() {
		return
	}
	g.stats.Ticks++

	g.advanceBullets()
	g.advanceEnemies()
	g.resolvePlayerHits()
	g.resolveBulletHits()
	g.spawnEnemy()
}

// advanceBullets moves bullets up and drops those that reached the top.
func (g *Game) advanceBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y -= g.cfg.Bullet.Speed
		if b.Y > 0 {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// advanceEnemies moves every enemy down.
func (g *Game) advanceEnemies() {
	for i := range g.enemies {
		g.enemies[i].Y += g.cfg.Enemy.Speed
	}
}

// resolvePlayerHits drops enemies below the field and checks the rest against
// the ship. A hit ends the run but the tick still completes, so bullets
// landing in the same tick score after the high score was taken. Enemies
// touching the ship stay.
func (g *Game) resolvePlayerHits() {
	hit := false
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Y > g.height {
			g.stats.EnemiesEscaped++
			continue
		}
		if HitsPlayer(e, g.player) {
			hit = true
		}
		kept = append(kept, e)
	}
	g.enemies = kept

	if hit {
		g.endRun()
	}
}

// resolveBulletHits checks every bullet against every enemy. Each matching
// pair pays the kill reward, so a bullet overlapping two enemies pays twice.
func (g *Game) resolveBulletHits() {
	for bi := range g.bullets {
		for ei := range g.enemies {
			if g.bullets[bi].Hits(g.enemies[ei]) {
				g.bullets[bi].Active = false
				g.enemies[ei].Alive = false
				g.score += g.cfg.Scoring.KillReward
			}
		}
	}

	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Active {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets

	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive {
			enemies = append(enemies, e)
		} else {
			g.stats.EnemiesDestroyed++
		}
	}
	g.enemies = enemies
}

// spawnEnemy rolls once per tick and adds an enemy just above the field when
// the roll succeeds and the population is below the cap.
func (g *Game) spawnEnemy() {
	roll := g.rng.Float64()
	if roll >= g.cfg.Enemy.SpawnChance || len(g.enemies) >= g.cfg.Enemy.MaxAlive {
		return
	}

	size := g.cfg.Enemy.Size
	g.enemies = append(g.enemies, Enemy{
		X:     g.rng.Float64() * math.Max(g.width-size, 0),
		Y:     -size,
		Size:  size,
		Alive: true,
	})
}
