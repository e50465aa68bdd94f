// internal/entity/pickup.go
package entity

import (
	"image"
	"math"

	"karai-survival/internal/component"
	"karai-survival/internal/config"
	"karai-survival/internal/types"
)

// PickupKind - что даёт подобранный предмет.
type PickupKind int

const (
	PickupXP PickupKind = iota
	PickupHealth
)

// Pickup - пассивный предмет, выпадающий из врагов: сфера опыта или аптечка.
type Pickup struct {
	Kind      PickupKind
	Pos       types.Vec2
	Value     int
	Phase     float64 // фаза «парения», только для отрисовки
	Collected bool
}

// NewXPOrb создаёт сферу опыта.
func NewXPOrb(pos types.Vec2, value int) *Pickup {
	return &Pickup{Kind: PickupXP, Pos: pos, Value: value}
}

// NewHealthDrop создаёт аптечку.
func NewHealthDrop(pos types.Vec2, value int) *Pickup {
	return &Pickup{Kind: PickupHealth, Pos: pos, Value: value}
}

func (p *Pickup) Position() types.Vec2 { return p.Pos }

func (p *Pickup) Hitbox() image.Rectangle {
	return component.Hitbox(p.Pos, config.PickupHitboxSize, config.PickupHitboxSize)
}

func (p *Pickup) IsAlive() bool { return !p.Collected }

// Update продвигает анимацию парения.
func (p *Pickup) Update(dt float64) {
	p.Phase += dt
}

// FloatOffset - вертикальное смещение спрайта.
func (p *Pickup) FloatOffset() float64 {
	return math.Sin(p.Phase*config.PickupFloatSpeed) * config.PickupFloatHeight
}
