// internal/weapon/projectile.go
package weapon

import (
	"image"

	"karai-survival/internal/component"
	"karai-survival/internal/config"
	"karai-survival/internal/types"
	"karai-survival/internal/utils"
)

// Projectile летит по прямой до предельной дальности и может ранить
// каждого врага не более одного раза.
type Projectile struct {
	Pos       types.Vec2
	Dir       types.Vec2
	Speed     float64
	Damage    float64
	Knockback float64
	Traveled  float64
	MaxRange  float64
	Rotation  float64 // радианы в [-π, π], только для отрисовки

	hit     map[types.EntityID]struct{}
	removed bool
}

// NewProjectile создаёт снаряд с дальностью и скоростью по умолчанию.
func NewProjectile(pos, dir types.Vec2, damage, knockback float64) *Projectile {
	return &Projectile{
		Pos:       pos,
		Dir:       dir.Normalize(),
		Speed:     config.ProjectileSpeed,
		Damage:    damage,
		Knockback: knockback,
		MaxRange:  config.ProjectileMaxRange,
		hit:       make(map[types.EntityID]struct{}),
	}
}

// Update продвигает снаряд; после предельной дальности он помечается на удаление.
func (p *Projectile) Update(dt float64) {
	if p.removed {
		return
	}
	step := p.Speed * dt
	p.Pos = p.Pos.Add(p.Dir.Scale(step))
	p.Traveled += step
	p.Rotation = utils.NormalizeAngle(p.Rotation + config.ProjectileSpin*dt)
	if p.Traveled >= p.MaxRange {
		p.removed = true
	}
}

func (p *Projectile) Position() types.Vec2 { return p.Pos }

func (p *Projectile) Hitbox() image.Rectangle {
	return component.Hitbox(p.Pos, config.ProjectileHitboxSize, config.ProjectileHitboxSize)
}

func (p *Projectile) ShouldRemove() bool { return p.removed }

// HasHit - был ли уже поражён враг с данным ID.
func (p *Projectile) HasHit(id types.EntityID) bool {
	_, ok := p.hit[id]
	return ok
}

// TryHit наносит урон цели при первом пересечении.
func (p *Projectile) TryHit(t Target) (float64, bool) {
	if p.removed || !t.IsAlive() || p.HasHit(t.ID()) {
		return 0, false
	}
	if !p.Hitbox().Overlaps(t.Hitbox()) {
		return 0, false
	}
	p.hit[t.ID()] = struct{}{}
	dmg := t.TakeDamage(p.Damage)
	if t.IsAlive() {
		t.ReceiveKnockback(p.Dir, p.Knockback)
	}
	return dmg, true
}
