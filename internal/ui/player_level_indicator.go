// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"karai-survival/internal/config"
)

const (
	xpBarHeight = 10
	borderWidth = 1
)

// PlayerLevelIndicator - полоса опыта во всю ширину экрана и номер уровня.
type PlayerLevelIndicator struct {
	Y     float32
	Width float32
}

func NewPlayerLevelIndicator(y, width float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{Y: y, Width: width}
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level int, currentXP, xpToNext float64) {
	vector.DrawFilledRect(screen, 0, i.Y, i.Width, xpBarHeight, config.XPBarBack, false)

	fillRatio := 0.0
	if xpToNext > 0 {
		fillRatio = currentXP / xpToNext
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	if level >= config.MaxLevel {
		fillRatio = 1.0
	}
	if w := float32(float64(i.Width) * fillRatio); w > 0 {
		vector.DrawFilledRect(screen, 0, i.Y, w, xpBarHeight, config.XPBarColor, false)
	}
	vector.StrokeRect(screen, 0, i.Y, i.Width, xpBarHeight, borderWidth, config.IndicatorStroke, false)

	DrawTextOutlined(screen, fmt.Sprintf("LV %d", level), float64(i.Width)/2, float64(i.Y)+xpBarHeight+4, 1.5,
		config.TextLightColor, config.TextDarkColor, AlignCenter)
}
