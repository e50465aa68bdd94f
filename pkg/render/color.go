// pkg/render/color.go
package render

import "image/color"

// MapColors - цвета фона карты.
type MapColors struct {
	GrassColor     color.RGBA
	GrassTallColor color.RGBA
	FlowerColor    color.RGBA
	DirtColor      color.RGBA
	PebbleColor    color.RGBA
	StrokeWidth    float32
}

// DefaultMapColors - палитра по умолчанию: тёмная трава и глина.
func DefaultMapColors() MapColors {
	return MapColors{
		GrassColor:     color.RGBA{52, 94, 48, 255},
		GrassTallColor: color.RGBA{44, 84, 40, 255},
		FlowerColor:    color.RGBA{230, 200, 90, 255},
		DirtColor:      color.RGBA{118, 84, 52, 255},
		PebbleColor:    color.RGBA{150, 120, 90, 255},
		StrokeWidth:    1.5,
	}
}

// DarkenColor уменьшает яркость цвета вдвое.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с альфой a в [0, 1], сохраняя premultiplied-вид.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// LerpColor смешивает a и b, t в [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
