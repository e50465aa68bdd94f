// internal/types/types.go
package types

import "math"

// EntityID - дескриптор сущности. Используется там, где нужна ссылка
// без владения (например, множество уже поражённых врагов у снаряда).
type EntityID uint64

// Vec2 - точка или вектор в мировых координатах.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len возвращает длину вектора.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero сообщает, нулевой ли вектор.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора возвращается нулевой вектор.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dist - евклидово расстояние между двумя точками.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }

// DirTo - единичный вектор от v к o (нулевой, если точки совпадают).
func (v Vec2) DirTo(o Vec2) Vec2 { return o.Sub(v).Normalize() }
