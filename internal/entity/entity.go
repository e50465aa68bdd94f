// internal/entity/entity.go
package entity

import (
	"image"

	"karai-survival/internal/component"
	"karai-survival/internal/types"
)

// Entity - общее поведение всего, что живёт в мире и обновляется каждый тик.
type Entity interface {
	Position() types.Vec2
	Hitbox() image.Rectangle
	IsAlive() bool
	Update(dt float64)
}

// Убеждаемся, что игрок, враги и предметы соответствуют интерфейсу Entity
var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Pickup)(nil)
)

// Positioned - всё, у чего есть позиция.
type Positioned interface {
	Position() types.Vec2
}

// Collider - всё, у чего есть хитбокс.
type Collider interface {
	Hitbox() image.Rectangle
}

// Base - общее состояние сущности: позиция, направление, скорость,
// здоровье и хитбокс. Игрок и враги отличаются только управлением
// и тем, что происходит при смерти.
type Base struct {
	Pos    types.Vec2
	Dir    types.Vec2
	Speed  float64
	Health component.Health

	hitW, hitH int
	hitbox     image.Rectangle
	onDeath    func()
}

// NewBase создаёт базовое состояние с полным здоровьем.
func NewBase(pos types.Vec2, speed, maxHealth float64, hitW, hitH int) Base {
	b := Base{
		Pos:    pos,
		Speed:  speed,
		Health: component.NewHealth(maxHealth),
		hitW:   hitW,
		hitH:   hitH,
	}
	b.syncHitbox()
	return b
}

func (b *Base) syncHitbox() {
	b.hitbox = component.Hitbox(b.Pos, b.hitW, b.hitH)
}

// Position возвращает позицию в мировых координатах.
func (b *Base) Position() types.Vec2 { return b.Pos }

// SetPosition переносит сущность и обновляет хитбокс.
func (b *Base) SetPosition(p types.Vec2) {
	b.Pos = p
	b.syncHitbox()
}

// Hitbox возвращает прямоугольник столкновений.
func (b *Base) Hitbox() image.Rectangle { return b.hitbox }

// IsAlive - alive == (health > 0).
func (b *Base) IsAlive() bool { return b.Health.Alive() }

// Move смещает сущность вдоль нормализованного направления.
// Нулевое направление означает «стоять на месте».
func (b *Base) Move(dt float64) {
	dir := b.Dir.Normalize()
	if dir.IsZero() {
		return
	}
	b.Pos = b.Pos.Add(dir.Scale(b.Speed * dt))
	b.syncHitbox()
}

// TakeDamage снимает здоровье и возвращает фактически снятое значение.
// Хук смерти вызывается ровно один раз, на переходе в мёртвое состояние.
func (b *Base) TakeDamage(amount float64) float64 {
	applied, died := b.Health.Damage(amount)
	if died && b.onDeath != nil {
		b.onDeath()
	}
	return applied
}

// Heal лечит живую сущность, не выше максимума.
func (b *Base) Heal(amount float64) float64 {
	if !b.IsAlive() {
		return 0
	}
	return b.Health.Heal(amount)
}

// ReceiveKnockback мгновенно смещает сущность на direction * force.
func (b *Base) ReceiveKnockback(direction types.Vec2, force float64) {
	if direction.IsZero() || force == 0 {
		return
	}
	b.Pos = b.Pos.Add(direction.Scale(force))
	b.syncHitbox()
}

// DistanceTo - евклидово расстояние до другой сущности.
func (b *Base) DistanceTo(o Positioned) float64 {
	return b.Pos.Dist(o.Position())
}

// DirectionTo - единичный вектор к другой сущности (нулевой при совпадении).
func (b *Base) DirectionTo(o Positioned) types.Vec2 {
	return b.Pos.DirTo(o.Position())
}

// CollidesWith - пересекаются ли хитбоксы. Касание краями не считается.
func (b *Base) CollidesWith(o Collider) bool {
	return b.hitbox.Overlaps(o.Hitbox())
}
