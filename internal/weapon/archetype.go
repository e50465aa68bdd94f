// internal/weapon/archetype.go
package weapon

import (
	"sort"

	"karai-survival/internal/config"
	"karai-survival/internal/effect"
	"karai-survival/internal/types"
)

// strike наносит урон всем живым целям в радиусе от владельца
// и отталкивает выживших от него.
func (w *Weapon) strike(targets []Target, radius, damage float64) Report {
	var r Report
	origin := w.owner.Position()
	for _, t := range targets {
		if !t.IsAlive() || origin.Dist(t.Position()) > radius {
			continue
		}
		r.Damage += t.TakeDamage(damage)
		r.Hits++
		if t.IsAlive() {
			t.ReceiveKnockback(origin.DirTo(t.Position()), w.Def.Knockback)
		}
	}
	return r
}

// Взмах ближнего боя: круг радиуса Range вокруг владельца.
func (w *Weapon) fireMelee(targets []Target) Report {
	stats := w.Stats()
	w.effects = append(w.effects, effect.NewRing(w.owner.Position(), stats.Range, w.Def.Visuals.RGBA()))
	return w.strike(targets, stats.Range, stats.Damage)
}

// Удар по площади: урон и сильное отбрасывание в радиусе, плюс кольцо.
func (w *Weapon) fireArea(targets []Target) Report {
	stats := w.Stats()
	w.effects = append(w.effects, effect.NewRing(w.owner.Position(), stats.Radius, w.Def.Visuals.RGBA()))
	return w.strike(targets, stats.Radius, stats.Damage)
}

// Снаряды летят по прямой к ближайшим живым целям, по одному на цель.
func (w *Weapon) fireProjectiles(targets []Target) Report {
	stats := w.Stats()
	origin := w.owner.Position()

	alive := make([]Target, 0, len(targets))
	for _, t := range targets {
		if t.IsAlive() {
			alive = append(alive, t)
		}
	}
	sort.Slice(alive, func(i, j int) bool {
		return origin.Dist(alive[i].Position()) < origin.Dist(alive[j].Position())
	})

	count := stats.Count
	if count < 1 {
		count = 1
	}
	for i := 0; i < count && i < len(alive); i++ {
		if len(w.projectiles) >= config.MaxProjectiles {
			break
		}
		dir := origin.DirTo(alive[i].Position())
		if dir.IsZero() {
			dir = types.Vec2{X: 1}
		}
		w.projectiles = append(w.projectiles, NewProjectile(origin, dir, stats.Damage, w.Def.Knockback))
	}
	return Report{}
}

// Бафф не наносит урона: включает регенерацию владельца.
func (w *Weapon) fireBuff() Report {
	stats := w.Stats()
	w.owner.StartRegeneration(stats.HealPerSec, stats.Duration)
	w.effects = append(w.effects, effect.NewRing(w.owner.Position(), config.PlayerHitboxSize, w.Def.Visuals.RGBA()))
	return Report{}
}
