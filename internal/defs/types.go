// internal/defs/types.go
package defs

import "image/color"

// Visuals holds presentation hints shared by enemies, weapons and pickups.
type Visuals struct {
	Color        [4]uint8 `yaml:"color"`
	RadiusFactor float64  `yaml:"radius_factor"`
	StrokeWidth  float64  `yaml:"stroke_width"`
}

// RGBA converts the stored color to the image/color form used by renderers.
// A zero alpha is treated as fully opaque.
func (v Visuals) RGBA() color.RGBA {
	a := v.Color[3]
	if a == 0 {
		a = 255
	}
	return color.RGBA{R: v.Color[0], G: v.Color[1], B: v.Color[2], A: a}
}
