// internal/camera/camera.go
package camera

import (
	"math"

	"karai-survival/internal/types"
	"karai-survival/internal/utils"
)

// Target - всё, за чем может следовать камера.
type Target interface {
	Position() types.Vec2
}

// Camera хранит смещение видимой области в мировых координатах.
// Смещение всегда лежит в [0, world - viewport] по каждой оси.
type Camera struct {
	Offset      types.Vec2
	ViewWidth   float64
	ViewHeight  float64
	WorldWidth  float64
	WorldHeight float64
	FollowRate  float64

	target Target
	shake  shake
}

// shake - затухающая тряска. На Offset не влияет, только на отрисовку.
type shake struct {
	intensity float64
	duration  float64
	left      float64
	phase     float64
}

// New создаёт камеру для окна заданного размера над миром заданного размера.
func New(viewW, viewH, worldW, worldH, followRate float64) *Camera {
	return &Camera{
		ViewWidth:   viewW,
		ViewHeight:  viewH,
		WorldWidth:  worldW,
		WorldHeight: worldH,
		FollowRate:  followRate,
	}
}

// SetTarget задаёт сущность, за которой следует камера. Камера ей не владеет.
func (c *Camera) SetTarget(t Target) {
	c.target = t
}

// Update плавно подтягивает смещение к цели (экспоненциальное сглаживание).
func (c *Camera) Update(dt float64) {
	if c.target != nil {
		desired := c.centeredOffset(c.target.Position())
		k := c.FollowRate * dt
		if k > 1 {
			k = 1 // большой dt не должен перелетать цель
		}
		c.Offset.X = utils.Lerp(c.Offset.X, desired.X, k)
		c.Offset.Y = utils.Lerp(c.Offset.Y, desired.Y, k)
	}
	c.clamp()
	if c.shake.left > 0 {
		c.shake.left = math.Max(0, c.shake.left-dt)
		c.shake.phase += dt
	}
}

// Shake запускает тряску. Более слабая тряска не перебивает текущую.
func (c *Camera) Shake(intensity, duration float64) {
	if duration <= 0 || intensity <= 0 {
		return
	}
	if c.shake.left > 0 && c.shakeAmplitude() > intensity {
		return
	}
	c.shake = shake{intensity: intensity, duration: duration, left: duration}
}

// IsShaking - идёт ли тряска.
func (c *Camera) IsShaking() bool { return c.shake.left > 0 }

func (c *Camera) shakeAmplitude() float64 {
	if c.shake.left <= 0 {
		return 0
	}
	return c.shake.intensity * c.shake.left / c.shake.duration
}

// ShakeOffset - дополнительное экранное смещение от тряски.
// Модуль по каждой оси не превышает текущей амплитуды.
func (c *Camera) ShakeOffset() types.Vec2 {
	a := c.shakeAmplitude()
	if a == 0 {
		return types.Vec2{}
	}
	return types.Vec2{X: a * math.Sin(c.shake.phase*53), Y: a * math.Cos(c.shake.phase*41)}
}

// CenterOn мгновенно центрирует камеру на точке, без сглаживания.
func (c *Camera) CenterOn(x, y float64) {
	c.Offset = c.centeredOffset(types.Vec2{X: x, Y: y})
	c.clamp()
}

func (c *Camera) centeredOffset(p types.Vec2) types.Vec2 {
	return types.Vec2{X: p.X - c.ViewWidth/2, Y: p.Y - c.ViewHeight/2}
}

func (c *Camera) clamp() {
	maxX := math.Max(0, c.WorldWidth-c.ViewWidth)
	maxY := math.Max(0, c.WorldHeight-c.ViewHeight)
	c.Offset.X = utils.Clamp(c.Offset.X, 0, maxX)
	c.Offset.Y = utils.Clamp(c.Offset.Y, 0, maxY)
}

// WorldToScreen переводит мировые координаты в экранные.
func (c *Camera) WorldToScreen(p types.Vec2) types.Vec2 {
	return p.Sub(c.Offset)
}

// ScreenToWorld переводит экранные координаты в мировые.
func (c *Camera) ScreenToWorld(p types.Vec2) types.Vec2 {
	return p.Add(c.Offset)
}

// IsVisible - попадает ли точка на экран с запасом margin с каждой стороны.
func (c *Camera) IsVisible(p types.Vec2, margin float64) bool {
	s := c.WorldToScreen(p)
	return s.X >= -margin && s.X <= c.ViewWidth+margin &&
		s.Y >= -margin && s.Y <= c.ViewHeight+margin
}

// View возвращает видимую область в мировых координатах: левый верхний
// и правый нижний углы.
func (c *Camera) View() (min, max types.Vec2) {
	return c.Offset, c.Offset.Add(types.Vec2{X: c.ViewWidth, Y: c.ViewHeight})
}
