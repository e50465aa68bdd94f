// internal/system/combat.go
package system

import (
	"karai-survival/internal/config"
	"karai-survival/internal/effect"
	"karai-survival/internal/entity"
	"karai-survival/internal/event"
	"karai-survival/internal/utils"
	"karai-survival/internal/weapon"
)

// EnemySource - владелец коллекции врагов (только чтение).
type EnemySource interface {
	Enemies() []*entity.Enemy
}

// CombatStats - агрегированные счётчики забега. Только растут,
// сбрасываются при новой игре.
type CombatStats struct {
	DamageDealt      float64
	XPCollected      float64
	PickupsCollected int
	EnemiesKilled    int
	PickupsEvicted   int
}

// CombatSystem применяет оружие к врагам, превращает смерти в сферы
// опыта и ведёт притяжение и сбор предметов. Владеет коллекцией предметов.
type CombatSystem struct {
	player     *entity.Player
	enemies    EnemySource
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher

	// HealthDropChance - вероятность аптечки вдобавок к сфере опыта.
	HealthDropChance float64

	pickups []*entity.Pickup
	effects []effect.Effect
	targets []weapon.Target
	stats   CombatStats
}

// NewCombatSystem создаёт боевую систему для игрока и источника врагов.
func NewCombatSystem(player *entity.Player, enemies EnemySource, rng *utils.PRNGService, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		player:           player,
		enemies:          enemies,
		rng:              rng,
		dispatcher:       dispatcher,
		HealthDropChance: config.HealthDropChance,
	}
}

// Update - один проход боя в три фазы: урон, последствия смертей, предметы.
// Удаление мёртвых врагов - отдельный шаг после этого прохода.
func (s *CombatSystem) Update(dt float64, triggered bool) {
	s.applyWeapons(dt, triggered)
	s.resolveDeaths()
	s.updatePickups(dt)
	s.effects = effect.UpdateAll(s.effects, dt)
}

func (s *CombatSystem) applyWeapons(dt float64, triggered bool) {
	s.targets = s.targets[:0]
	for _, e := range s.enemies.Enemies() {
		s.targets = append(s.targets, e)
	}
	for _, w := range s.player.Weapons {
		r := w.Update(dt, s.targets, triggered)
		hits := w.ResolveProjectiles(s.targets)
		s.stats.DamageDealt += r.Damage + hits.Damage
		if r.Fired {
			s.dispatcher.Dispatch(event.Event{
				Type: event.WeaponFired,
				Data: event.WeaponData{WeaponID: w.ID(), Hits: r.Hits},
			})
		}
		if n := r.Hits + hits.Hits; n > 0 {
			s.dispatcher.Dispatch(event.Event{
				Type: event.EnemyHit,
				Data: event.WeaponData{WeaponID: w.ID(), Hits: n},
			})
		}
	}
}

// resolveDeaths создаёт ровно одну сферу опыта на каждую смерть.
func (s *CombatSystem) resolveDeaths() {
	for _, e := range s.enemies.Enemies() {
		if !e.ClaimDeath() {
			continue
		}
		s.stats.EnemiesKilled++
		s.AddPickup(entity.NewXPOrb(e.Pos, e.XPValue))
		if s.HealthDropChance > 0 && s.rng.Chance(s.HealthDropChance) {
			s.AddPickup(entity.NewHealthDrop(e.Pos, int(config.HealthDropValue)))
		}
		s.effects = append(s.effects, effect.NewBurst(s.rng, e.Pos, 8, 160, 0.5, e.Def.Visuals.RGBA()))
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: e})
	}
}

// AddPickup добавляет предмет. Если коллекция полна, сначала вытесняется
// самый старый (FIFO), так что размер никогда не превышает лимит.
func (s *CombatSystem) AddPickup(p *entity.Pickup) {
	if len(s.pickups) >= config.MaxPickups {
		copy(s.pickups, s.pickups[1:])
		s.pickups[len(s.pickups)-1] = nil
		s.pickups = s.pickups[:len(s.pickups)-1]
		s.stats.PickupsEvicted++
	}
	s.pickups = append(s.pickups, p)
}

func (s *CombatSystem) updatePickups(dt float64) {
	for _, p := range s.pickups {
		p.Update(dt)
	}
	collected := s.player.CollectPickups(dt, s.pickups)
	if len(collected) == 0 {
		return
	}
	for _, p := range collected {
		s.stats.PickupsCollected++
		if p.Kind == entity.PickupXP {
			s.stats.XPCollected += float64(p.Value)
		}
		s.effects = append(s.effects, effect.NewFlash(p.Pos, 16, 0.2))
		s.dispatcher.Dispatch(event.Event{
			Type: event.PickupCollected,
			Data: event.PickupData{Health: p.Kind == entity.PickupHealth, Value: p.Value},
		})
	}
	kept := s.pickups[:0]
	for _, p := range s.pickups {
		if !p.Collected {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.pickups); i++ {
		s.pickups[i] = nil
	}
	s.pickups = kept
}

// Pickups - живые предметы. Не изменять снаружи.
func (s *CombatSystem) Pickups() []*entity.Pickup { return s.pickups }

// Effects - визуальные эффекты боя (вспышки, разлёт частиц).
func (s *CombatSystem) Effects() []effect.Effect { return s.effects }

// Stats - текущие счётчики.
func (s *CombatSystem) Stats() CombatStats { return s.stats }
