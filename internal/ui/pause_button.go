// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"karai-survival/internal/config"
)

var whiteImage *ebiten.Image

func fillImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// PauseButton - кнопка паузы: две полосы или треугольник «play».
type PauseButton struct {
	X, Y          float32
	Size          float32
	IsPaused      bool
	LastClickTime time.Time
	PauseColor    color.RGBA
	PlayColor     color.RGBA

	vs []ebiten.Vertex
	is []uint16
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: config.CalmPhaseColor,
		PlayColor:  config.RestPhaseColor,
		vs:         make([]ebiten.Vertex, 0, 3),
		is:         make([]uint16, 0, 3),
	}
}

// Contains - попадает ли точка экрана в кнопку.
func (b *PauseButton) Contains(x, y int) bool {
	dx := float64(x) - float64(b.X)
	dy := float64(y) - float64(b.Y)
	r := float64(b.Size) * 1.5
	return dx*dx+dy*dy <= r*r
}

// Toggle переключает состояние и запускает анимацию нажатия.
func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	if b.IsPaused {
		b.drawTriangle(screen, s)
		return
	}
	width := s * 0.6
	height := s * 2.0
	spacing := s * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	vector.StrokeRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, 1, config.IndicatorStroke, false)
	vector.StrokeRect(screen, b.X+spacing/2, b.Y-height/2, width, height, 1, config.IndicatorStroke, false)
}

func (b *PauseButton) drawTriangle(screen *ebiten.Image, s float32) {
	r, g, bl, a := float32(b.PlayColor.R)/255, float32(b.PlayColor.G)/255, float32(b.PlayColor.B)/255, float32(b.PlayColor.A)/255
	pts := [3][2]float32{
		{b.X - s, b.Y - s*1.2},
		{b.X - s, b.Y + s*1.2},
		{b.X + s, b.Y},
	}
	b.vs = b.vs[:0]
	b.is = b.is[:0]
	for i, p := range pts {
		b.vs = append(b.vs, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: bl, ColorA: a,
		})
		b.is = append(b.is, uint16(i))
	}
	screen.DrawTriangles(b.vs, b.is, fillImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	for i := range pts {
		p, q := pts[i], pts[(i+1)%3]
		vector.StrokeLine(screen, p[0], p[1], q[0], q[1], 1, config.IndicatorStroke, true)
	}
}
