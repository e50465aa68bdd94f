// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"karai-survival/internal/config"
)

const (
	healthBarWidth  = 220
	healthBarHeight = 16
)

// PlayerHealthIndicator - полоса здоровья в левом верхнем углу.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует полосу и подпись «текущее/максимум».
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, current, maxHealth float64, regenerating bool) {
	ratio := 0.0
	if maxHealth > 0 {
		ratio = current / maxHealth
	}
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.HealthBarBack, false)
	fill := config.HealthBarColor
	if regenerating {
		fill = config.RegenColor
	}
	vector.DrawFilledRect(screen, i.X, i.Y, float32(healthBarWidth*ratio), healthBarHeight, fill, false)
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, 1, config.IndicatorStroke, false)

	label := fmt.Sprintf("%d/%d", int(current+0.5), int(maxHealth+0.5))
	DrawText(screen, label, float64(i.X+healthBarWidth/2), float64(i.Y+1), 1, config.TextLightColor, AlignCenter)
}
