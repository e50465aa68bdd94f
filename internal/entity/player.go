// internal/entity/player.go
package entity

import (
	"karai-survival/internal/component"
	"karai-survival/internal/config"
	"karai-survival/internal/defs"
	"karai-survival/internal/types"
	"karai-survival/internal/weapon"
)

// Player - персонаж игрока: уровни, опыт, оружие, окно неуязвимости
// и регенерация поверх общей физики Base.
type Player struct {
	Base

	Level            int
	XP               float64
	RequiredXP       float64
	CollectionRadius float64
	Weapons          []*weapon.Weapon

	// Статистика забега
	Kills        int
	SurvivalTime float64
	DamageTaken  float64
	TotalXP      float64

	invulnerable    component.Timer
	regen           component.Timer
	regenRate       float64
	pendingLevelUps int

	lib            *defs.Library
	worldW, worldH float64
}

// NewPlayer создаёт игрока в точке pos со стартовым оружием из таблиц.
func NewPlayer(lib *defs.Library, pos types.Vec2, worldW, worldH float64) *Player {
	p := &Player{
		Base:             NewBase(pos, config.PlayerSpeed, config.PlayerMaxHealth, config.PlayerHitboxSize, config.PlayerHitboxSize),
		Level:            1,
		CollectionRadius: config.PlayerCollectionRadius,
		lib:              lib,
		worldW:           worldW,
		worldH:           worldH,
	}
	p.RequiredXP = lib.Progression.RequiredXP(p.Level)
	p.AddWeapon(lib.Progression.StartingWeapon)
	return p
}

// SetInput задаёт направление движения из снимка ввода.
func (p *Player) SetInput(dir types.Vec2) {
	p.Dir = dir
}

// Update двигает игрока и продвигает таймеры неуязвимости и регенерации.
func (p *Player) Update(dt float64) {
	if !p.IsAlive() {
		return
	}
	p.SurvivalTime += dt
	p.Move(dt)
	p.SetPosition(component.ClampToWorld(p.Pos, p.worldW, p.worldH))

	p.invulnerable.Tick(dt)

	if p.regen.Active {
		step := dt
		if left := p.regen.Remaining(); step > left {
			step = left
		}
		p.Heal(p.regenRate * step)
		if p.regen.Tick(dt) {
			p.regenRate = 0
		}
	}
}

// TakeDamage игнорирует урон, пока открыто окно неуязвимости;
// иначе снимает здоровье и открывает окно заново.
func (p *Player) TakeDamage(amount float64) float64 {
	if p.invulnerable.Active || !p.IsAlive() || amount <= 0 {
		return 0
	}
	applied := p.Base.TakeDamage(amount)
	p.DamageTaken += applied
	p.invulnerable.Start(config.InvulnerabilityTime)
	return applied
}

// IsInvulnerable - открыто ли окно неуязвимости.
func (p *Player) IsInvulnerable() bool { return p.invulnerable.Active }

// StartRegeneration (пере)запускает лечение rate ед./с на duration секунд.
func (p *Player) StartRegeneration(rate, duration float64) {
	p.regenRate = rate
	p.regen.Start(duration)
}

// IsRegenerating - действует ли регенерация.
func (p *Player) IsRegenerating() bool { return p.regen.Active }

// RegisterKill увеличивает счётчик убийств.
func (p *Player) RegisterKill() { p.Kills++ }

// GainXP начисляет опыт и за один вызов проходит все пересечённые пороги:
// каждый уровень лечит до максимума и добавляет отложенный выбор улучшения.
func (p *Player) GainXP(amount float64) {
	if amount <= 0 {
		return
	}
	p.TotalXP += amount
	if p.Level >= config.MaxLevel {
		return
	}
	p.XP += amount
	for p.XP >= p.RequiredXP && p.Level < config.MaxLevel {
		p.XP -= p.RequiredXP
		p.Level++
		p.RequiredXP = p.lib.Progression.RequiredXP(p.Level)
		p.Health.Refill()
		p.pendingLevelUps++
	}
	if p.Level >= config.MaxLevel {
		p.XP = 0
	}
}

// LevelUpPending - есть ли неиспользованные повышения уровня.
func (p *Player) LevelUpPending() bool { return p.pendingLevelUps > 0 }

// PendingLevelUps - сколько выборов улучшений ожидает игрока.
func (p *Player) PendingLevelUps() int { return p.pendingLevelUps }

// ConsumeLevelUp снимает одно отложенное повышение.
func (p *Player) ConsumeLevelUp() bool {
	if p.pendingLevelUps == 0 {
		return false
	}
	p.pendingLevelUps--
	return true
}

// AddWeapon добавляет оружие, если его ещё нет и есть свободный слот.
func (p *Player) AddWeapon(id string) bool {
	if len(p.Weapons) >= config.MaxWeapons || p.Weapon(id) != nil {
		return false
	}
	def, ok := p.lib.Weapons[id]
	if !ok {
		return false
	}
	p.Weapons = append(p.Weapons, weapon.New(def, p))
	return true
}

// Weapon возвращает экипированное оружие по ID или nil.
func (p *Player) Weapon(id string) *weapon.Weapon {
	for _, w := range p.Weapons {
		if w.ID() == id {
			return w
		}
	}
	return nil
}

// CollectPickups притягивает предметы в радиусе сбора со скоростью
// притяжения и начисляет те, что коснулись хитбокса игрока. Собранные
// предметы помечаются, удаляет их из коллекции владелец.
func (p *Player) CollectPickups(dt float64, pickups []*Pickup) []*Pickup {
	var collected []*Pickup
	for _, pk := range pickups {
		if pk.Collected {
			continue
		}
		dist := p.Pos.Dist(pk.Pos)
		if dist <= p.CollectionRadius {
			step := config.PickupAttractSpeed * dt
			if step >= dist {
				pk.Pos = p.Pos
			} else {
				pk.Pos = pk.Pos.Add(pk.Pos.DirTo(p.Pos).Scale(step))
			}
		}
		if !p.CollidesWith(pk) {
			continue
		}
		switch pk.Kind {
		case PickupXP:
			p.GainXP(float64(pk.Value))
		case PickupHealth:
			p.Heal(float64(pk.Value))
		}
		pk.Collected = true
		collected = append(collected, pk)
	}
	return collected
}
