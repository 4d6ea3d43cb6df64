package defender

import (
	"fmt"

	"github.com/vovakirdan/space-defender/internal/core"
)

// Sprite runes.
const (
	ShipNose   = '▲'
	ShipBody   = '█'
	ShipWingL  = '◢'
	ShipWingR  = '◣'
	ShipFlame  = '▀'
	EnemyCore  = '◆'
	EnemyWingL = '◥'
	EnemyWingR = '◤'
	BulletRune = '|'
	StarRune   = '.'
)

// Render draws the play field, HUD and phase overlay onto dst. World units
// map to cells through the display cell size.
func (g *Game) Render(dst *core.Screen) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dst.Clear()

	g.renderStars(dst)
	if g.phase != PhaseMenu {
		for _, e := range g.enemies {
			g.renderEnemy(dst, e)
		}
		for _, b := range g.bullets {
			col, row := g.cell(b.X, b.Y)
			dst.SetColored(col, row, BulletRune, core.ColorBrightYellow)
		}
		if g.player.Placed {
			g.renderShip(dst)
		}
	}
	g.renderHUD(dst)

	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst)
	case PhaseGameOver:
		g.renderGameOver(dst)
	}
}

// cell converts world coordinates to a screen cell.
func (g *Game) cell(x, y float64) (int, int) {
	return core.ToCell(x, g.cfg.Display.CellWidth), core.ToCell(y, g.cfg.Display.CellHeight)
}

func (g *Game) renderStars(dst *core.Screen) {
	w, h := float64(dst.Width()), float64(dst.Height())
	for _, s := range g.currentStars() {
		dst.SetColored(int(s.X*w), int(s.Y*h), StarRune, core.ColorGray)
	}
}

// renderShip draws the nose above a winged body with an engine flame below.
//
//	 ▲
//	◢██◣
//	 ▀▀
func (g *Game) renderShip(dst *core.Screen) {
	p := g.player
	col, row := g.cell(p.X, p.Y)
	width := core.CellSpan(p.Size, g.cfg.Display.CellWidth)

	dst.SetColored(col+width/2, row, ShipNose, core.ColorBrightCyan)

	body := row + 1
	if width == 1 {
		dst.SetColored(col, body, ShipBody, core.ColorCyan)
	} else {
		dst.SetColored(col, body, ShipWingL, core.ColorCyan)
		for x := col + 1; x < col+width-1; x++ {
			dst.SetColored(x, body, ShipBody, core.ColorCyan)
		}
		dst.SetColored(col+width-1, body, ShipWingR, core.ColorCyan)
	}

	for x := col + 1; x < col+width-1; x++ {
		dst.SetColored(x, body+1, ShipFlame, core.ColorYellow)
	}
}

func (g *Game) renderEnemy(dst *core.Screen, e Enemy) {
	col, row := g.cell(e.X, e.Y)
	width := core.CellSpan(e.Size, g.cfg.Display.CellWidth)
	if width < 3 {
		dst.SetColored(col, row, EnemyCore, core.ColorBrightRed)
		return
	}
	dst.SetColored(col, row, EnemyWingL, core.ColorRed)
	for x := col + 1; x < col+width-1; x++ {
		dst.SetColored(x, row, EnemyCore, core.ColorBrightRed)
	}
	dst.SetColored(col+width-1, row, EnemyWingR, core.ColorRed)
}

// renderHUD draws score and high score on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(0, fmt.Sprintf("Hi: %d", g.highScore), core.ColorBrightYellow)
	if g.phase == PhasePlaying {
		hint := "[P] Pause"
		dst.DrawTextColored(dst.Width()-len(hint)-1, 0, hint, core.ColorGray)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	lines := []panelLine{
		{"SPACE DEFENDER", core.ColorBrightCyan},
		{"", core.ColorDefault},
		{"Drag or ←/→ to move, SPACE to shoot", core.ColorWhite},
		{"Press ENTER to start", core.ColorBrightGreen},
	}
	if g.highScore > 0 {
		lines = append(lines, panelLine{fmt.Sprintf("High score: %d", g.highScore), core.ColorBrightYellow})
	}
	drawPanel(dst, lines)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []panelLine{
		{"GAME OVER", core.ColorBrightRed},
		{fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite},
	}
	if g.newHigh {
		lines = append(lines, panelLine{"NEW HIGH SCORE!", core.ColorBrightYellow})
	} else {
		lines = append(lines, panelLine{fmt.Sprintf("High score: %d", g.highScore), core.ColorYellow})
	}

	seconds := float64(g.stats.Ticks) / float64(g.runtime.TickRate)
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{fmt.Sprintf("Survived %.1fs  Kills %d  Escaped %d", seconds, g.stats.EnemiesDestroyed, g.stats.EnemiesEscaped), core.ColorWhite},
		panelLine{fmt.Sprintf("Shots %d  Accuracy %.0f%%", g.stats.ShotsFired, g.stats.Accuracy()*100), core.ColorWhite},
		panelLine{"", core.ColorDefault},
		panelLine{"R replay  M menu", core.ColorBrightGreen},
	)
	drawPanel(dst, lines)
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a framed box in the middle of the screen with one centered
// line of text per row.
func drawPanel(dst *core.Screen, lines []panelLine) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l.text)))
	}

	boxW := inner + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCenteredColored(box.Y+1+i, l.text, l.color)
	}
}
