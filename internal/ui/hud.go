// internal/ui/hud.go
package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"karai-survival/internal/app"
	"karai-survival/internal/assets"
	"karai-survival/internal/config"
	"karai-survival/internal/types"
	"karai-survival/internal/weapon"
)

const (
	slotSize = 40
	slotGap  = 6

	threatInset  = 24
	threatRadius = 6
)

// HUD собирает все игровые индикаторы поверх мира.
type HUD struct {
	health  *PlayerHealthIndicator
	level   *PlayerLevelIndicator
	wave    *WaveIndicator
	pause   *PauseButton
	sprites *assets.SpriteManager
}

func NewHUD(sprites *assets.SpriteManager) *HUD {
	return &HUD{
		health:  NewPlayerHealthIndicator(16, 16),
		level:   NewPlayerLevelIndicator(config.ScreenHeight-xpBarHeight, config.ScreenWidth),
		wave:    NewWaveIndicator(config.ScreenWidth/2, 16),
		pause:   NewPauseButton(config.ScreenWidth-32, 32, 12),
		sprites: sprites,
	}
}

// PauseButton - кнопка паузы в правом верхнем углу.
func (h *HUD) PauseButton() *PauseButton { return h.pause }

// Draw рисует HUD для текущего состояния сессии.
func (h *HUD) Draw(screen *ebiten.Image, g *app.Game) {
	p := g.Player
	h.health.Draw(screen, p.Health.Current, p.Health.Max, p.IsRegenerating())
	h.level.Draw(screen, p.Level, p.XP, p.RequiredXP)

	waves := g.SpawnSystem.Waves()
	phase := waves.Current()
	remaining := 0.0
	if phase.Duration > 0 {
		remaining = waves.PhaseRemaining() / phase.Duration
	}
	h.wave.Draw(screen, phase.Name, waves.Cycle(), remaining)
	if interval := g.Lib.Spawning.BossWaveInterval; interval > 0 {
		elapsed := g.SpawnSystem.Elapsed()
		next := float64(int(elapsed/interval)+1) * interval
		h.wave.DrawBossWarning(screen, next-elapsed)
	}

	DrawText(screen, FormatTime(p.SurvivalTime), config.ScreenWidth-60, 16, 2, config.TextLightColor, AlignRight)
	DrawText(screen, fmt.Sprintf("KILLS %d", p.Kills), 16, 40, 1, config.TextLightColor, AlignLeft)
	DrawText(screen, fmt.Sprintf("ENEMIES %d", len(g.SpawnSystem.Enemies())), 16, 56, 1, config.TextLightColor, AlignLeft)

	h.drawThreat(screen, g)
	h.drawWeaponSlots(screen, p.Weapons)
	h.pause.Draw(screen)
}

func (h *HUD) drawWeaponSlots(screen *ebiten.Image, weapons []*weapon.Weapon) {
	y := float32(config.ScreenHeight - xpBarHeight - 30 - slotSize)
	for i, w := range weapons {
		x := float32(16 + i*(slotSize+slotGap))
		vector.DrawFilledRect(screen, x, y, slotSize, slotSize, config.PanelColor, false)
		if img, ok := h.sprites.Get(w.Def.Sprite); ok {
			op := &ebiten.DrawImageOptions{}
			b := img.Bounds()
			op.GeoM.Scale(float64(slotSize-8)/float64(b.Dx()), float64(slotSize-8)/float64(b.Dy()))
			op.GeoM.Translate(float64(x+4), float64(y+4))
			screen.DrawImage(img, op)
		} else {
			vector.DrawFilledRect(screen, x+8, y+8, slotSize-16, slotSize-16, w.Def.Visuals.RGBA(), false)
		}
		// полоса перезарядки
		vector.DrawFilledRect(screen, x, y+slotSize-4, float32(slotSize*w.CooldownProgress()), 4, config.CooldownBarColor, false)
		vector.StrokeRect(screen, x, y, slotSize, slotSize, 1, config.IndicatorStroke, false)
		DrawText(screen, toRoman(w.Level), float64(x+2), float64(y), 1, config.TextLightColor, AlignLeft)
		if w.IsManual() {
			DrawText(screen, "SPC", float64(x+slotSize/2), float64(y-14), 1, config.TextLightColor, AlignCenter)
		}
	}
}

// drawThreat - счётчик врагов рядом с игроком и метка на краю экрана
// в сторону ближайшего врага, если он за кадром.
func (h *HUD) drawThreat(screen *ebiten.Image, g *app.Game) {
	nearest, near := g.Threat()
	clr := config.TextLightColor
	if near > 0 {
		clr = config.HealthBarColor
	}
	DrawText(screen, fmt.Sprintf("NEAR %d", near), 16, 72, 1, clr, AlignLeft)

	if nearest == nil || g.Camera.IsVisible(nearest.Pos, 0) {
		return
	}
	center := types.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	d := g.Camera.WorldToScreen(nearest.Pos).Sub(center)
	x, y := edgePoint(d.X, d.Y, config.ScreenWidth, config.ScreenHeight, threatInset)
	vector.DrawFilledCircle(screen, float32(x), float32(y), threatRadius, config.BossWaveColor, true)
	vector.StrokeCircle(screen, float32(x), float32(y), threatRadius, 1, config.IndicatorStroke, true)
}

// edgePoint - точка на рамке экрана w×h (с отступом inset) по лучу из центра
// в направлении (dx, dy). Нулевое направление даёт центр.
func edgePoint(dx, dy, w, h, inset float64) (float64, float64) {
	cx, cy := w/2, h/2
	k := math.Inf(1)
	if dx != 0 {
		k = math.Min(k, (cx-inset)/math.Abs(dx))
	}
	if dy != 0 {
		k = math.Min(k, (cy-inset)/math.Abs(dy))
	}
	if math.IsInf(k, 1) {
		return cx, cy
	}
	return cx + dx*k, cy + dy*k
}
