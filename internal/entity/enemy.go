// internal/entity/enemy.go
package entity

import (
	"karai-survival/internal/component"
	"karai-survival/internal/config"
	"karai-survival/internal/defs"
	"karai-survival/internal/types"
)

// StatScale - множители характеристик врага (сложность, босс-волна).
type StatScale struct {
	Health float64
	Damage float64
	Speed  float64
}

// UnitScale не меняет характеристики.
var UnitScale = StatScale{Health: 1, Damage: 1, Speed: 1}

// Enemy преследует игрока и атакует при контакте с перезарядкой.
type Enemy struct {
	Base

	Def     defs.EnemyDefinition
	Damage  float64
	XPValue int

	id           types.EntityID
	attack       component.Cooldown
	player       *Player // не владеет: игроком владеет сессия
	deathClaimed bool
}

// NewEnemy создаёт врага по определению, умножая характеристики на scale.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, pos types.Vec2, player *Player, scale StatScale) *Enemy {
	size := config.EnemyHitboxSize
	if def.Boss {
		size = config.BossHitboxSize
	}
	e := &Enemy{
		Base:    NewBase(pos, def.Speed*scale.Speed, def.Health*scale.Health, size, size),
		Def:     def,
		Damage:  def.Damage * scale.Damage,
		XPValue: def.XP,
		id:      id,
		attack:  component.NewCooldown(config.EnemyAttackCooldown),
		player:  player,
	}
	e.onDeath = e.handleDeath
	return e
}

// ID - дескриптор врага.
func (e *Enemy) ID() types.EntityID { return e.id }

// Update: направление на игрока, движение, попытка атаки, перезарядка.
func (e *Enemy) Update(dt float64) {
	if !e.IsAlive() {
		return
	}
	if e.player != nil {
		e.Dir = e.DirectionTo(e.player)
		e.Move(dt)
		e.tryAttack()
	}
	e.attack.Tick(dt)
}

func (e *Enemy) tryAttack() {
	if !e.attack.Ready || !e.player.IsAlive() || !e.CollidesWith(e.player) {
		return
	}
	e.player.TakeDamage(e.Damage)
	e.attack.Trigger()
}

func (e *Enemy) handleDeath() {
	if e.player != nil {
		e.player.RegisterKill()
	}
}

// ClaimDeath возвращает true ровно один раз для мёртвого врага:
// тот, кто получил true, отвечает за последствия смерти (сфера опыта).
func (e *Enemy) ClaimDeath() bool {
	if e.IsAlive() || e.deathClaimed {
		return false
	}
	e.deathClaimed = true
	return true
}

// DeathResolved - обработаны ли последствия смерти.
func (e *Enemy) DeathResolved() bool { return e.deathClaimed }
