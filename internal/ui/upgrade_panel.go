// internal/ui/upgrade_panel.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"karai-survival/internal/config"
	"karai-survival/internal/entity"
)

const (
	cardWidth  = 260
	cardHeight = 180
	cardGap    = 30
)

// CardRects раскладывает n карточек улучшений в ряд по центру экрана.
func CardRects(n int) []image.Rectangle {
	total := n*cardWidth + (n-1)*cardGap
	x := (config.ScreenWidth - total) / 2
	y := (config.ScreenHeight - cardHeight) / 2
	rects := make([]image.Rectangle, n)
	for i := range rects {
		rects[i] = image.Rect(x, y, x+cardWidth, y+cardHeight)
		x += cardWidth + cardGap
	}
	return rects
}

// CardAt - индекс карточки под точкой или -1.
func CardAt(rects []image.Rectangle, x, y int) int {
	p := image.Pt(x, y)
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// UpgradePanel - экран выбора улучшения при повышении уровня.
type UpgradePanel struct {
	Hover int
}

func NewUpgradePanel() *UpgradePanel {
	return &UpgradePanel{Hover: -1}
}

func (p *UpgradePanel) Draw(screen *ebiten.Image, level int, choices []entity.Upgrade) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)
	DrawTextOutlined(screen, "LEVEL UP!", config.ScreenWidth/2, 120, 3, config.XPBarColor, config.TextDarkColor, AlignCenter)
	DrawText(screen, "LEVEL "+toRoman(level), config.ScreenWidth/2, 170, 1.5, config.TextLightColor, AlignCenter)

	rects := CardRects(len(choices))
	for i, u := range choices {
		r := rects[i]
		bg := config.CardColor
		if i == p.Hover {
			bg = config.CardHoverColor
		}
		x, y := float32(r.Min.X), float32(r.Min.Y)
		vector.DrawFilledRect(screen, x, y, cardWidth, cardHeight, bg, false)
		vector.StrokeRect(screen, x, y, cardWidth, cardHeight, 2, config.IndicatorStroke, false)

		cx := float64(r.Min.X + cardWidth/2)
		DrawText(screen, u.Title, cx, float64(r.Min.Y+20), 1.5, config.TextLightColor, AlignCenter)
		DrawText(screen, u.Description, cx, float64(r.Min.Y+70), 1, config.TextLightColor, AlignCenter)
		DrawText(screen, "["+string(rune('1'+i))+"]", cx, float64(r.Max.Y-30), 1.5, config.CooldownBarColor, AlignCenter)
	}
}
