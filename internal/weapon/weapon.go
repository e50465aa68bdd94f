// internal/weapon/weapon.go
package weapon

import (
	"image"

	"karai-survival/internal/component"
	"karai-survival/internal/defs"
	"karai-survival/internal/effect"
	"karai-survival/internal/types"
)

// Target - враг с точки зрения оружия.
type Target interface {
	ID() types.EntityID
	Position() types.Vec2
	Hitbox() image.Rectangle
	IsAlive() bool
	TakeDamage(amount float64) float64
	ReceiveKnockback(direction types.Vec2, force float64)
}

// Owner - носитель оружия. Оружие им не владеет.
type Owner interface {
	Position() types.Vec2
	StartRegeneration(rate, duration float64)
}

// Report - итог одного прохода оружия.
type Report struct {
	Fired  bool
	Damage float64
	Hits   int
}

// Weapon - состояние одного оружия: уровень, перезарядка и
// принадлежащие ему снаряды и эффекты. Поведение атаки выбирается
// по архетипу из определения.
type Weapon struct {
	Def   defs.WeaponDefinition
	Level int

	cooldown    component.Cooldown
	owner       Owner
	projectiles []*Projectile
	effects     []effect.Effect
}

// New создаёт оружие первого уровня, готовое к атаке.
func New(def defs.WeaponDefinition, owner Owner) *Weapon {
	cd := def.Cooldown
	if lvl := def.Level(1); lvl.Cooldown > 0 {
		cd = lvl.Cooldown
	}
	return &Weapon{
		Def:      def,
		Level:    1,
		cooldown: component.NewCooldown(cd),
		owner:    owner,
	}
}

func (w *Weapon) ID() string { return w.Def.ID }

func (w *Weapon) MaxLevel() int { return w.Def.MaxLevel() }

// Stats - характеристики текущего уровня.
func (w *Weapon) Stats() defs.WeaponLevel { return w.Def.Level(w.Level) }

// IsManual - стреляет ли оружие только по команде игрока.
func (w *Weapon) IsManual() bool { return w.Def.Trigger == defs.TriggerManual }

func (w *Weapon) Ready() bool { return w.cooldown.Ready }

func (w *Weapon) CooldownProgress() float64 { return w.cooldown.Progress() }

func (w *Weapon) Cooldown() float64 { return w.cooldown.Duration }

func (w *Weapon) Projectiles() []*Projectile { return w.projectiles }

func (w *Weapon) Effects() []effect.Effect { return w.effects }

// LevelUp повышает уровень; на максимуме ничего не делает.
// Если у нового уровня своя перезарядка, она вступает в силу.
func (w *Weapon) LevelUp() bool {
	if w.Level >= w.MaxLevel() {
		return false
	}
	w.Level++
	if cd := w.Stats().Cooldown; cd > 0 {
		w.cooldown.Duration = cd
	}
	return true
}

// Update: перезарядка, выстрел (если готово и условия выполнены),
// затем продвижение снарядов и эффектов.
func (w *Weapon) Update(dt float64, targets []Target, triggered bool) Report {
	w.cooldown.Tick(dt)

	var r Report
	if w.cooldown.Ready && w.shouldFire(targets, triggered) {
		r = w.fire(targets)
		r.Fired = true
		w.cooldown.Trigger()
	}

	kept := w.projectiles[:0]
	for _, p := range w.projectiles {
		p.Update(dt)
		if !p.ShouldRemove() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(w.projectiles); i++ {
		w.projectiles[i] = nil
	}
	w.projectiles = kept
	w.effects = effect.UpdateAll(w.effects, dt)
	return r
}

// ResolveProjectiles наносит урон при первом пересечении каждой пары
// снаряд-враг. Повторные пересечения той же пары игнорируются.
func (w *Weapon) ResolveProjectiles(targets []Target) Report {
	var r Report
	for _, p := range w.projectiles {
		for _, t := range targets {
			if dmg, ok := p.TryHit(t); ok {
				r.Damage += dmg
				r.Hits++
			}
		}
	}
	return r
}

func (w *Weapon) shouldFire(targets []Target, triggered bool) bool {
	if w.IsManual() {
		return triggered
	}
	for _, t := range targets {
		if t.IsAlive() {
			return true
		}
	}
	return false
}

func (w *Weapon) fire(targets []Target) Report {
	switch w.Def.Archetype {
	case defs.ArchetypeMelee:
		return w.fireMelee(targets)
	case defs.ArchetypeProjectile:
		return w.fireProjectiles(targets)
	case defs.ArchetypeArea:
		return w.fireArea(targets)
	case defs.ArchetypeBuff:
		return w.fireBuff()
	}
	return Report{}
}
