// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"karai-survival/internal/config"
	"karai-survival/internal/defs"
)

const waveBarWidth = 160

// WaveIndicator показывает фазу волны, номер цикла римскими цифрами
// и сколько осталось до конца фазы.
type WaveIndicator struct {
	X, Y float32 // центр верхнего края
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// PhaseColor - цвет фазы волны.
func PhaseColor(phase string) color.RGBA {
	switch phase {
	case defs.PhaseHorde:
		return config.HordePhaseColor
	case defs.PhaseRest:
		return config.RestPhaseColor
	default:
		return config.CalmPhaseColor
	}
}

// Draw отрисовывает индикатор. remaining в [0, 1] - доля оставшейся фазы.
func (i *WaveIndicator) Draw(screen *ebiten.Image, phase string, cycle int, remaining float64) {
	clr := PhaseColor(phase)
	DrawTextOutlined(screen, phase+" "+toRoman(cycle), float64(i.X), float64(i.Y), 2, clr, config.TextDarkColor, AlignCenter)

	barY := i.Y + 30
	x := i.X - waveBarWidth/2
	vector.DrawFilledRect(screen, x, barY, waveBarWidth, 4, config.PanelColor, false)
	vector.DrawFilledRect(screen, x, barY, float32(waveBarWidth*remaining), 4, clr, false)
}

// DrawBossWarning - мигающее предупреждение перед босс-волной.
func (i *WaveIndicator) DrawBossWarning(screen *ebiten.Image, secondsLeft float64) {
	if secondsLeft > 10 || secondsLeft <= 0 {
		return
	}
	if int(secondsLeft*4)%2 == 1 {
		return
	}
	DrawTextOutlined(screen, "!! BOSS WAVE !!", float64(i.X), float64(i.Y)+44, 1.5, config.BossWaveColor, config.TextDarkColor, AlignCenter)
}
