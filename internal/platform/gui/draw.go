package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-defender/internal/games/defender"
)

// DebugPrintAt glyphs are 6x16 pixels.
const (
	glyphW = 6
	glyphH = 16
)

var (
	colorSpace      = color.RGBA{R: 6, G: 8, B: 20, A: 255}
	colorStar       = color.RGBA{R: 150, G: 150, B: 170, A: 255}
	colorShip       = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	colorShipNose   = color.RGBA{R: 230, G: 245, B: 255, A: 255}
	colorFlame      = color.RGBA{R: 255, G: 150, B: 40, A: 255}
	colorEnemy      = color.RGBA{R: 170, G: 40, B: 60, A: 255}
	colorEnemyCore  = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	colorBullet     = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	colorPanel      = color.RGBA{R: 10, G: 10, B: 25, A: 210}
	colorPanelFrame = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	colorButton     = color.RGBA{R: 220, G: 220, B: 230, A: 160}
)

// Draw renders the current game state.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorSpace)
	snap := a.game.Snapshot()

	if a.settings.Stars {
		a.drawStars(screen)
	}
	for _, e := range snap.Enemies {
		drawEnemy(screen, e)
	}
	for _, b := range snap.Bullets {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Size/2), colorBullet, true)
	}

	switch snap.Phase {
	case defender.PhaseMenu:
		a.drawPanel(screen, []string{
			defender.Title,
			"",
			"Press ENTER or tap to start",
			"Drag or arrows to move, SPACE to fire",
		})
	case defender.PhasePlaying:
		drawShip(screen, snap.Player)
		a.drawHUD(screen, snap)
	case defender.PhaseGameOver:
		drawShip(screen, snap.Player)
		a.drawHUD(screen, snap)
		a.drawPanel(screen, gameOverLines(snap))
	}
}

func (a *App) drawStars(screen *ebiten.Image) {
	for _, s := range a.game.Stars() {
		vector.DrawFilledRect(screen, float32(s.X*float64(a.width)), float32(s.Y*float64(a.height)), 2, 2, colorStar, false)
	}
}

// drawShip draws a triangular hull over a body block with an exhaust flame.
func drawShip(screen *ebiten.Image, p defender.Player) {
	if !p.Placed {
		return
	}
	x, y, s := float32(p.X), float32(p.Y), float32(p.Size)

	vector.DrawFilledRect(screen, x+s/4, y+s/3, s/2, s/2, colorShip, false)
	vector.StrokeLine(screen, x+s/2, y, x, y+s, 3, colorShip, true)
	vector.StrokeLine(screen, x+s/2, y, x+s, y+s, 3, colorShip, true)
	vector.StrokeLine(screen, x, y+s, x+s, y+s, 3, colorShip, true)
	vector.DrawFilledCircle(screen, x+s/2, y+s/6, s/10, colorShipNose, true)
	vector.DrawFilledCircle(screen, x+s/2, y+s+s/8, s/8, colorFlame, true)
}

func drawEnemy(screen *ebiten.Image, e defender.Enemy) {
	x, y, s := float32(e.X), float32(e.Y), float32(e.Size)
	vector.DrawFilledRect(screen, x, y+s/4, s, s/2, colorEnemy, false)
	vector.DrawFilledCircle(screen, x+s/2, y+s/2, s/3, colorEnemyCore, true)
}

func (a *App) drawHUD(screen *ebiten.Image, snap defender.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Hi: %d", snap.HighScore), 8, 8+glyphH)

	if snap.Phase != defender.PhasePlaying {
		return
	}
	b := a.pauseButton()
	bar := float32(b.W) / 5
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, colorButton, false)
	vector.DrawFilledRect(screen, float32(b.X)+bar, float32(b.Y)+bar, bar, float32(b.H)-2*bar, colorButton, false)
	vector.DrawFilledRect(screen, float32(b.X)+3*bar, float32(b.Y)+bar, bar, float32(b.H)-2*bar, colorButton, false)
}

func gameOverLines(snap defender.Snapshot) []string {
	best := fmt.Sprintf("High score: %d", snap.HighScore)
	if snap.NewHighScore() {
		best = "NEW HIGH SCORE!"
	}
	return []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", snap.Score),
		best,
		fmt.Sprintf("Kills %d  Escaped %d  Accuracy %.0f%%",
			snap.Stats.EnemiesDestroyed, snap.Stats.EnemiesEscaped, snap.Stats.Accuracy()*100),
		"",
		"Tap or R to replay, M for menu",
	}
}

// drawPanel draws centred text lines on a framed backdrop.
func (a *App) drawPanel(screen *ebiten.Image, lines []string) {
	widest := 0
	for _, l := range lines {
		widest = max(widest, len(l))
	}
	w := widest*glyphW + 4*glyphW
	h := len(lines)*glyphH + 2*glyphH
	x := (a.width - w) / 2
	y := (a.height - h) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorPanel, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, colorPanelFrame, false)
	for i, l := range lines {
		lx := (a.width - len(l)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, l, lx, y+glyphH+i*glyphH)
	}
}
