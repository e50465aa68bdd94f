// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Align - выравнивание текста по горизонтали относительно x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// face - встроенный моноширинный шрифт, файлов шрифтов не нужно.
var face = text.NewGoXFace(basicfont.Face7x13)

// DrawText рисует строку с масштабом scale; y - верх строки.
func DrawText(screen *ebiten.Image, s string, x, y float64, scale float64, clr color.Color, align Align) {
	op := &text.DrawOptions{}
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// DrawTextOutlined рисует текст с обводкой толщиной в один пиксель.
func DrawTextOutlined(screen *ebiten.Image, s string, x, y, scale float64, clr, outline color.Color, align Align) {
	for dy := -1.0; dy <= 1; dy++ {
		for dx := -1.0; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, s, x+dx, y+dy, scale, outline, align)
		}
	}
	DrawText(screen, s, x, y, scale, clr, align)
}

// MeasureText - ширина и высота строки при масштабе scale.
func MeasureText(s string, scale float64) (float64, float64) {
	w, h := text.Measure(s, face, 0)
	return w * scale, h * scale
}
