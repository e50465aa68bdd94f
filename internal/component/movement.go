// component/movement.go
package component

import (
	"image"
	"math"

	"karai-survival/internal/types"
)

// Hitbox возвращает прямоугольник w×h, центрированный на позиции,
// округлённой до целых пикселей.
func Hitbox(pos types.Vec2, w, h int) image.Rectangle {
	cx := int(math.Round(pos.X))
	cy := int(math.Round(pos.Y))
	min := image.Pt(cx-w/2, cy-h/2)
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(w, h))}
}

// ClampToWorld удерживает точку в пределах мира [0, w] × [0, h].
func ClampToWorld(pos types.Vec2, w, h float64) types.Vec2 {
	return types.Vec2{X: math.Max(0, math.Min(pos.X, w)), Y: math.Max(0, math.Min(pos.Y, h))}
}
