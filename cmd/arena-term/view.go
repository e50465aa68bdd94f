// cmd/arena-term/view.go
package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"karai-survival/internal/app"
	"karai-survival/internal/camera"
	"karai-survival/internal/defs"
	"karai-survival/internal/entity"
	"karai-survival/internal/types"
)

const hudRows = 2

var (
	styleGround  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(40, 70, 40))
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleHurt    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleXP      = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHeal    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	stylePanel   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(30, 40, 50))
)

// viewport переводит видимую область камеры в клетки терминала.
type viewport struct {
	cols, rows int
}

// cell возвращает клетку для мировой точки и видна ли она.
func (v viewport) cell(cam *camera.Camera, p types.Vec2) (int, int, bool) {
	s := cam.WorldToScreen(p)
	if s.X < 0 || s.Y < 0 || s.X >= cam.ViewWidth || s.Y >= cam.ViewHeight {
		return 0, 0, false
	}
	x := int(s.X / cam.ViewWidth * float64(v.cols))
	y := int(s.Y / cam.ViewHeight * float64(v.rows))
	return x, y + hudRows, true
}

func enemyGlyph(def defs.EnemyDefinition) rune {
	if def.Boss {
		return 'W'
	}
	if def.ID == "" {
		return '?'
	}
	return rune(strings.ToLower(def.ID)[0])
}

func enemyStyle(def defs.EnemyDefinition) tcell.Style {
	c := def.Visuals.RGBA()
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	if def.Boss {
		st = st.Bold(true)
	}
	return st
}

func drawString(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

// hudLine - строка состояния над полем.
func hudLine(g *app.Game) string {
	p := g.Player
	w := g.SpawnSystem.Waves()
	_, near := g.Threat()
	return fmt.Sprintf(" HP %3.0f/%-3.0f  LV %d  XP %.0f/%.0f  %s #%d (%.0fs)  T %s  K %d  near %d",
		p.Health.Current, p.Health.Max, p.Level, p.XP, p.RequiredXP,
		w.Current().Name, w.Cycle(), w.PhaseRemaining(), formatClock(p.SurvivalTime), p.Kills, near)
}

func formatClock(sec float64) string {
	t := int(sec)
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

func drawWorld(s tcell.Screen, v viewport, g *app.Game) {
	cam := g.Camera
	// редкая «трава» по мировой сетке, чтобы движение было заметно
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			wx := cam.Offset.X + float64(x)/float64(v.cols)*cam.ViewWidth
			wy := cam.Offset.Y + float64(y)/float64(v.rows)*cam.ViewHeight
			if (int(wx)/128+int(wy)/128)%7 == 0 {
				s.SetContent(x, y+hudRows, '.', nil, styleGround)
			}
		}
	}
	for _, p := range g.CombatSystem.Pickups() {
		if x, y, ok := v.cell(cam, p.Pos); ok && !p.Collected {
			if p.Kind == entity.PickupHealth {
				s.SetContent(x, y, '+', nil, styleHeal)
			} else {
				s.SetContent(x, y, '·', nil, styleXP)
			}
		}
	}
	for _, e := range g.SpawnSystem.Enemies() {
		if x, y, ok := v.cell(cam, e.Pos); ok && e.IsAlive() {
			s.SetContent(x, y, enemyGlyph(e.Def), nil, enemyStyle(e.Def))
		}
	}
	for _, w := range g.Player.Weapons {
		for _, pr := range w.Projectiles() {
			if x, y, ok := v.cell(cam, pr.Pos); ok {
				s.SetContent(x, y, '*', nil, styleShot)
			}
		}
	}
	if x, y, ok := v.cell(cam, g.Player.Pos); ok {
		st := stylePlayer
		if g.Player.IsInvulnerable() {
			st = styleHurt
		}
		s.SetContent(x, y, '@', nil, st)
	}
}

func drawPanel(s tcell.Screen, cols, rows int, lines []string) {
	width := 0
	for _, l := range lines {
		if len([]rune(l)) > width {
			width = len([]rune(l))
		}
	}
	width += 4
	x0 := (cols - width) / 2
	y0 := (rows - len(lines)) / 2
	for y := y0 - 1; y <= y0+len(lines); y++ {
		for x := x0; x < x0+width; x++ {
			s.SetContent(x, y, ' ', nil, stylePanel)
		}
	}
	for i, l := range lines {
		drawString(s, x0+2, y0+i, l, stylePanel)
	}
}

func upgradeLines(g *app.Game) []string {
	lines := []string{fmt.Sprintf("LEVEL UP! now level %d", g.Player.Level), ""}
	for i, u := range g.UpgradeChoices() {
		lines = append(lines, fmt.Sprintf("%d) %s - %s", i+1, u.Title, u.Description))
	}
	return lines
}

func gameOverLines(sum app.Summary) []string {
	return []string{
		"GAME OVER",
		"",
		"time   " + formatClock(sum.SurvivalTime),
		fmt.Sprintf("level  %d", sum.Level),
		fmt.Sprintf("kills  %d", sum.Kills),
		fmt.Sprintf("dealt  %.0f", sum.DamageDealt),
		"",
		"r: restart   q: quit",
	}
}

func draw(s tcell.Screen, g *app.Game) {
	s.Clear()
	cols, rows := s.Size()
	v := viewport{cols: cols, rows: rows - hudRows}
	drawWorld(s, v, g)
	drawString(s, 0, 0, padRight(hudLine(g), cols), styleHUD)

	switch {
	case g.IsOver():
		drawPanel(s, cols, rows, gameOverLines(g.Summary()))
	case g.AwaitingUpgrade():
		drawPanel(s, cols, rows, upgradeLines(g))
	case g.IsPaused():
		drawPanel(s, cols, rows, []string{"PAUSED", "", "p: resume   q: quit"})
	}
	s.Show()
}

func padRight(s string, n int) string {
	if l := len([]rune(s)); l < n {
		return s + strings.Repeat(" ", n-l)
	}
	return s
}
